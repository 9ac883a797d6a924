// Package graphics draws the machine onto an ebiten screen image.
package graphics

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/fruitmachine/internal/domain/entity"
	"github.com/younwookim/fruitmachine/internal/infrastructure/assets"
)

// Colors for rendering
var (
	colorButtonReady = color.RGBA{255, 215, 0, 48}
	colorButtonBusy  = color.RGBA{0, 0, 0, 64}
	colorLabelReady  = color.RGBA{255, 255, 255, 255}
	colorLabelBusy   = color.RGBA{160, 160, 160, 255}
)

var labelFace = text.NewGoXFace(basicfont.Face7x13)

// ButtonLabel is drawn centered on the start button
const ButtonLabel = "SPIN"

// Screen is an ebiten-backed blit surface for one frame
type Screen struct {
	dst   *ebiten.Image
	atlas *assets.Atlas
}

// NewScreen wraps the frame's screen image
func NewScreen(dst *ebiten.Image, atlas *assets.Atlas) *Screen {
	return &Screen{dst: dst, atlas: atlas}
}

// DrawBackground stretches the background over the whole screen
func (s *Screen) DrawBackground() {
	bg := s.atlas.Background
	if bg == nil {
		s.dst.Clear()
		return
	}

	sb := s.dst.Bounds()
	bb := bg.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sb.Dx())/float64(bb.Dx()), float64(sb.Dy())/float64(bb.Dy()))
	s.dst.DrawImage(bg, op)
}

// DrawSymbol draws the symbol's icon stretched to dst, clipped to clip
func (s *Screen) DrawSymbol(sym entity.Symbol, dst, clip entity.Rect) {
	icon := s.atlas.Symbol(sym)
	if icon == nil {
		return
	}

	// SubImage keeps screen coordinates, so dst needs no translation
	target, ok := s.dst.SubImage(ImageRect(clip)).(*ebiten.Image)
	if !ok {
		return
	}

	ib := icon.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/float64(ib.Dx()), dst.H/float64(ib.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	target.DrawImage(icon, op)
}

// DrawButton tints the start button and labels it
func (s *Screen) DrawButton(r entity.Rect, ready bool) {
	fill, label := colorButtonBusy, colorLabelBusy
	if ready {
		fill, label = colorButtonReady, colorLabelReady
	}
	ebitenutil.DrawRect(s.dst, r.X, r.Y, r.W, r.H, fill)

	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X+r.W/2, r.Y+r.H/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(label)
	text.Draw(s.dst, ButtonLabel, labelFace, op)
}

// ImageRect rounds a rectangle to whole pixels
func ImageRect(r entity.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.Right())),
		int(math.Round(r.Bottom())),
	)
}
