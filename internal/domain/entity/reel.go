package entity

import (
	"fmt"
	"time"
)

// MinStopDelay is the shortest spin a reel accepts.
// Start always leaves stopTime strictly after now.
const MinStopDelay = time.Millisecond

// ReelState is the visible phase of a reel
type ReelState int

const (
	ReelIdle ReelState = iota
	ReelSpinning
	ReelSettling
)

// String returns the string representation of the reel state
func (s ReelState) String() string {
	switch s {
	case ReelIdle:
		return "Idle"
	case ReelSpinning:
		return "Spinning"
	case ReelSettling:
		return "Settling"
	default:
		return "Unknown"
	}
}

// SpinMode selects how a reel moves while spinning
type SpinMode int

const (
	// ModeScroll scrolls the symbol strip continuously and settles on a boundary
	ModeScroll SpinMode = iota
	// ModeSnap swaps the centered symbol at a fixed interval without scrolling
	ModeSnap
)

// String returns the config name of the mode
func (m SpinMode) String() string {
	switch m {
	case ModeScroll:
		return "scroll"
	case ModeSnap:
		return "snap"
	default:
		return "unknown"
	}
}

// ParseSpinMode converts a config name into a SpinMode
func ParseSpinMode(name string) (SpinMode, error) {
	switch name {
	case "scroll", "":
		return ModeScroll, nil
	case "snap":
		return ModeSnap, nil
	default:
		return ModeScroll, fmt.Errorf("unknown spin mode %q", name)
	}
}

// ReelConfig holds the motion parameters of a single reel
type ReelConfig struct {
	Mode           SpinMode
	Height         float64       // Pixels one symbol occupies
	Speed          float64       // Scroll speed in pixels per second
	SwitchInterval time.Duration // Symbol swap period in snap mode
}

// Layer is one symbol of the reel strip and its vertical draw offset
// relative to the top of the reel slot
type Layer struct {
	Symbol  Symbol
	OffsetY float64
}

// Reel owns spin state, timing and scroll offset for one reel.
//
// The strip moves downward: next enters from above the slot, current
// occupies it, previous leaves below. Each boundary crossing rotates
// previous <- current <- next and, while spinning, draws a fresh next.
type Reel struct {
	cfg ReelConfig
	src SymbolSource

	spinning   bool
	stopTime   time.Duration
	nextSwitch time.Duration
	offset     float64 // [0, Height)

	previous Symbol
	current  Symbol
	next     Symbol
}

// NewReel creates an idle reel showing three random symbols
func NewReel(src SymbolSource, cfg ReelConfig) *Reel {
	r := &Reel{cfg: cfg, src: src}
	r.roll()
	return r
}

func (r *Reel) roll() {
	r.previous = r.src.Next()
	r.current = r.src.Next()
	r.next = r.src.Next()
}

// Start begins a spin that stops requesting new symbols at now+stopDelay.
// It may be called at any time, including mid-spin.
func (r *Reel) Start(now, stopDelay time.Duration) {
	if stopDelay < MinStopDelay {
		stopDelay = MinStopDelay
	}
	r.spinning = true
	r.stopTime = now + stopDelay
	r.nextSwitch = now + r.cfg.SwitchInterval
	r.offset = 0
	r.roll()
}

// Advance moves the reel forward by dt of elapsed time ending at now
func (r *Reel) Advance(now, dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	switch r.cfg.Mode {
	case ModeSnap:
		r.advanceSnap(now)
	default:
		r.advanceScroll(now, dt)
	}
}

func (r *Reel) advanceScroll(now, dt time.Duration) {
	if r.cfg.Height <= 0 {
		r.offset = 0
	} else if r.spinning || r.offset > 0 {
		r.offset += r.cfg.Speed * dt.Seconds()

		// Loop so a long frame can cross several boundaries
		for r.offset >= r.cfg.Height {
			r.offset -= r.cfg.Height
			r.previous, r.current = r.current, r.next
			if !r.spinning {
				// Final settle lands exactly on current
				r.offset = 0
				break
			}
			r.next = r.src.Next()
		}
	}

	if r.spinning && now >= r.stopTime {
		r.spinning = false
	}
}

func (r *Reel) advanceSnap(now time.Duration) {
	r.offset = 0
	if !r.spinning {
		return
	}

	if now >= r.stopTime {
		r.spinning = false
	}
	if now >= r.nextSwitch {
		r.previous, r.current = r.current, r.next
		r.next = r.src.Next()
		r.nextSwitch = now + r.cfg.SwitchInterval
	}
}

// State returns the reel's current phase
func (r *Reel) State() ReelState {
	switch {
	case r.spinning:
		return ReelSpinning
	case r.offset > 0:
		return ReelSettling
	default:
		return ReelIdle
	}
}

// Layers returns previous, current and next with their draw offsets
func (r *Reel) Layers() [3]Layer {
	h := r.cfg.Height
	return [3]Layer{
		{Symbol: r.previous, OffsetY: r.offset + h},
		{Symbol: r.current, OffsetY: r.offset},
		{Symbol: r.next, OffsetY: r.offset - h},
	}
}

// Settled returns the landed symbol once the reel is idle
func (r *Reel) Settled() (Symbol, bool) {
	return r.current, r.State() == ReelIdle
}

// Spinning reports whether the reel is still before its stop time
func (r *Reel) Spinning() bool { return r.spinning }

// StopTime returns the time at which the current spin request ends
func (r *Reel) StopTime() time.Duration { return r.stopTime }

// Offset returns the sub-symbol scroll progress in pixels
func (r *Reel) Offset() float64 { return r.offset }

// Height returns the pixel height of one symbol
func (r *Reel) Height() float64 { return r.cfg.Height }

// Mode returns the reel's spin mode
func (r *Reel) Mode() SpinMode { return r.cfg.Mode }

// Previous returns the symbol leaving the slot
func (r *Reel) Previous() Symbol { return r.previous }

// Current returns the symbol in the slot
func (r *Reel) Current() Symbol { return r.current }

// Next returns the symbol entering the slot
func (r *Reel) Next() Symbol { return r.next }
