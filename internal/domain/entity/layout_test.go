package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeLayout_MatchesClassicGeometry(t *testing.T) {
	l := ComputeLayout(640, 480, defaultTestRatios())

	// Reels are bg/5 wide, bg/3 tall, half a reel apart, centered
	wantX := []float64{64, 256, 448}
	for i, x := range wantX {
		assert.InDelta(t, x, l.Reels[i].X, 1e-9, "reel %d x", i)
		assert.InDelta(t, 80, l.Reels[i].Y, 1e-9, "reel %d y", i)
		assert.InDelta(t, 128, l.Reels[i].W, 1e-9)
		assert.InDelta(t, 160, l.Reels[i].H, 1e-9)
	}

	assert.InDelta(t, 192, l.Button.X, 1e-9)
	assert.InDelta(t, 260, l.Button.Y, 1e-9)
	assert.InDelta(t, 256, l.Button.W, 1e-9)
	assert.InDelta(t, 80, l.Button.H, 1e-9)
	assert.Equal(t, Rect{W: 640, H: 480}, l.Screen)
}

func TestLayout_Validate(t *testing.T) {
	assert.NoError(t, ComputeLayout(640, 480, defaultTestRatios()).Validate())

	crowded := defaultTestRatios()
	crowded.CenterX = [ReelCount]float64{0.4, 0.5, 0.6}
	assert.ErrorIs(t, ComputeLayout(640, 480, crowded).Validate(), ErrOverlappingReels)
}
