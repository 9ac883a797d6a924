package system

import "github.com/younwookim/fruitmachine/internal/domain/entity"

// Surface is the 2D blit target the renderer draws into
type Surface interface {
	// DrawBackground fills the whole window with the background image.
	DrawBackground()

	// DrawSymbol draws a symbol icon into dst, clipped to clip.
	DrawSymbol(sym entity.Symbol, dst, clip entity.Rect)
}

// RenderSystem issues the draw calls for one frame
type RenderSystem struct{}

// NewRenderSystem creates a new render system
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// Draw paints the background, then each reel's visible layers clipped to its slot
func (s *RenderSystem) Draw(dst Surface, bank *entity.ReelBank) {
	dst.DrawBackground()

	for i := 0; i < entity.ReelCount; i++ {
		slot := bank.Rect(i)
		for _, layer := range bank.Reel(i).Layers() {
			r := entity.Rect{X: slot.X, Y: slot.Y + layer.OffsetY, W: slot.W, H: slot.H}
			// Layers fully outside the slot would be clipped away anyway
			if !r.Intersects(slot) {
				continue
			}
			dst.DrawSymbol(layer.Symbol, r, slot)
		}
	}
}
