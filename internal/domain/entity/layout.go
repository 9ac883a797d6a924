package entity

import "errors"

// ErrOverlappingReels is returned when two reel slots share area
var ErrOverlappingReels = errors.New("reel rectangles overlap")

// ButtonRatios places the start button relative to the screen and reels
type ButtonRatios struct {
	CenterX float64 // Horizontal center as a fraction of screen width
	Width   float64 // Fraction of screen width
	Height  float64 // Fraction of screen height
	Gap     float64 // Pixels between the reel bottom and the button top
}

// LayoutRatios describes reel and button geometry independent of window size
type LayoutRatios struct {
	CenterX [ReelCount]float64
	CenterY float64
	Width   float64
	Height  float64
	Button  ButtonRatios
}

// Layout is the screen-space geometry derived from LayoutRatios
type Layout struct {
	Screen Rect
	Reels  [ReelCount]Rect
	Button Rect
}

// ComputeLayout derives reel slots and the start button for a screen size
func ComputeLayout(screenW, screenH int, ratios LayoutRatios) Layout {
	sw := float64(screenW)
	sh := float64(screenH)
	w := sw * ratios.Width
	h := sh * ratios.Height
	cy := ratios.CenterY * sh

	l := Layout{Screen: Rect{W: sw, H: sh}}
	for i, cx := range ratios.CenterX {
		l.Reels[i] = Rect{X: cx*sw - w/2, Y: cy - h/2, W: w, H: h}
	}

	bw := sw * ratios.Button.Width
	bh := sh * ratios.Button.Height
	l.Button = Rect{
		X: ratios.Button.CenterX*sw - bw/2,
		Y: cy + h/2 + ratios.Button.Gap,
		W: bw,
		H: bh,
	}
	return l
}

// Validate checks that no two reel slots overlap
func (l Layout) Validate() error {
	for i := 0; i < ReelCount; i++ {
		for j := i + 1; j < ReelCount; j++ {
			if l.Reels[i].Intersects(l.Reels[j]) {
				return ErrOverlappingReels
			}
		}
	}
	return nil
}
