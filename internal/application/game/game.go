// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/fruitmachine/internal/application/scene"
	"github.com/younwookim/fruitmachine/internal/application/system"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	clock   system.Clock
	last    time.Duration
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, clock system.Clock) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		clock:   clock,
		last:    clock.Now(),
	}
	g.current.OnEnter()
	return g
}

// Update measures the time since the previous update, updates the
// current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	now := g.clock.Now()
	dt := now - g.last
	if dt < 0 {
		dt = 0
	}
	g.last = now

	next, err := g.current.Update(dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}
