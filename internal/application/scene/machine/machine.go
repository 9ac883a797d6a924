// Package machine provides the fruit machine scene.
package machine

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/fruitmachine/internal/application/scene"
	"github.com/younwookim/fruitmachine/internal/application/state"
	"github.com/younwookim/fruitmachine/internal/application/system"
	"github.com/younwookim/fruitmachine/internal/domain/entity"
	"github.com/younwookim/fruitmachine/internal/infrastructure/config"
)

// InputSource supplies one frame of input per update
type InputSource interface {
	GetInput() system.InputState
}

// Canvas is the per-frame drawing target
type Canvas interface {
	system.Surface
	DrawButton(r entity.Rect, ready bool)
}

// CanvasFunc wraps the frame's screen image in a Canvas
type CanvasFunc func(screen *ebiten.Image) Canvas

// Machine is the single scene: input, spin, advance, draw
type Machine struct {
	bank       *entity.ReelBank
	layout     entity.Layout
	input      InputSource
	dispatcher *system.InputDispatcher
	renderer   *system.RenderSystem
	canvas     CanvasFunc

	now      time.Duration // Simulation time, sum of clamped deltas
	maxDelta time.Duration
	state    state.MachineState
	spins    int
}

// LayoutFor computes the screen geometry for a window of the given size
func LayoutFor(cfg *config.MachineConfig, screenW, screenH int) entity.Layout {
	return entity.ComputeLayout(screenW, screenH, cfg.Layout.Ratios())
}

// New creates the machine scene over an already computed layout
func New(cfg *config.MachineConfig, layout entity.Layout, src entity.SymbolSource, input InputSource, canvas CanvasFunc) (*Machine, error) {
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid layout: %w", err)
	}

	return &Machine{
		bank:       entity.NewReelBank(src, layout, cfg.Spin.Bank()),
		layout:     layout,
		input:      input,
		dispatcher: system.NewInputDispatcher(layout.Button),
		renderer:   system.NewRenderSystem(),
		canvas:     canvas,
		maxDelta:   cfg.Spin.MaxFrameDelta(),
		state:      state.StateReady,
	}, nil
}

// Update handles input, then advances every reel (implements scene.Scene)
func (m *Machine) Update(dt time.Duration) (scene.Scene, error) {
	if dt < 0 {
		dt = 0
	}
	if m.maxDelta > 0 && dt > m.maxDelta {
		dt = m.maxDelta
	}
	m.now += dt

	for _, intent := range m.dispatcher.Dispatch(m.input.GetInput()) {
		switch it := intent.(type) {
		case system.QuitIntent:
			return nil, ebiten.Termination
		case system.StartIntent:
			m.bank.StartAll(m.now)
			m.spins++
			log.Printf("Spin %d started (click at %d,%d)", m.spins, it.X, it.Y)
		}
	}

	m.bank.AdvanceAll(m.now, dt)
	m.trackState()

	return nil, nil // nil = stay on this scene
}

func (m *Machine) trackState() {
	states := m.bank.States()
	next := state.FromReels(states[:])
	if next == m.state {
		return
	}

	if next == state.StateReady {
		r := m.bank.Results()
		log.Printf("Spin %d settled: %v | %v | %v", m.spins, r[0], r[1], r[2])
	}
	m.state = next
}

// Draw renders the reels and the start button (implements scene.Scene)
func (m *Machine) Draw(screen *ebiten.Image) {
	c := m.canvas(screen)
	m.renderer.Draw(c, m.bank)
	c.DrawButton(m.layout.Button, m.state == state.StateReady)
}

// OnEnter implements scene.Scene
func (m *Machine) OnEnter() {
	log.Printf("Machine ready: %d reels, button at (%.0f,%.0f %.0fx%.0f)",
		entity.ReelCount, m.layout.Button.X, m.layout.Button.Y, m.layout.Button.W, m.layout.Button.H)
}

// OnExit implements scene.Scene
func (m *Machine) OnExit() {}

// Bank returns the reel bank
func (m *Machine) Bank() *entity.ReelBank { return m.bank }

// State returns the aggregate machine state
func (m *Machine) State() state.MachineState { return m.state }

// Now returns the simulation time
func (m *Machine) Now() time.Duration { return m.now }

// Spins returns how many spins were started
func (m *Machine) Spins() int { return m.spins }
