package entity

import "time"

// ReelCount is the fixed number of reels in a bank
const ReelCount = 3

// BankConfig holds the spin timing shared by every reel in a bank
type BankConfig struct {
	Mode             SpinMode
	SymbolsPerSecond float64       // Scroll speed in symbol heights per second
	SwitchInterval   time.Duration // Snap mode swap period
	BaseDelay        time.Duration // Spin length of the first reel
	Stagger          time.Duration // Extra spin length per reel index
}

// ReelBank owns the fixed set of reels and their screen slots
type ReelBank struct {
	reels     [ReelCount]*Reel
	rects     [ReelCount]Rect
	baseDelay time.Duration
	stagger   time.Duration
}

// NewReelBank creates three idle reels sized to the layout's slots
func NewReelBank(src SymbolSource, layout Layout, cfg BankConfig) *ReelBank {
	b := &ReelBank{
		rects:     layout.Reels,
		baseDelay: cfg.BaseDelay,
		stagger:   cfg.Stagger,
	}
	for i := range b.reels {
		h := layout.Reels[i].H
		b.reels[i] = NewReel(src, ReelConfig{
			Mode:           cfg.Mode,
			Height:         h,
			Speed:          cfg.SymbolsPerSecond * h,
			SwitchInterval: cfg.SwitchInterval,
		})
	}
	return b
}

// StopDelay returns the spin length assigned to reel i
func (b *ReelBank) StopDelay(i int) time.Duration {
	return b.baseDelay + time.Duration(i)*b.stagger
}

// StartAll starts every reel so they stop left to right
func (b *ReelBank) StartAll(now time.Duration) {
	for i, r := range b.reels {
		r.Start(now, b.StopDelay(i))
	}
}

// AdvanceAll advances every reel
func (b *ReelBank) AdvanceAll(now, dt time.Duration) {
	for _, r := range b.reels {
		r.Advance(now, dt)
	}
}

// Reel returns reel i
func (b *ReelBank) Reel(i int) *Reel { return b.reels[i] }

// Rect returns the screen slot of reel i
func (b *ReelBank) Rect(i int) Rect { return b.rects[i] }

// States returns the phase of every reel
func (b *ReelBank) States() [ReelCount]ReelState {
	var states [ReelCount]ReelState
	for i, r := range b.reels {
		states[i] = r.State()
	}
	return states
}

// Results returns the current symbol of every reel
func (b *ReelBank) Results() [ReelCount]Symbol {
	var out [ReelCount]Symbol
	for i, r := range b.reels {
		out[i] = r.Current()
	}
	return out
}

// Idle reports whether every reel has settled
func (b *ReelBank) Idle() bool {
	for _, r := range b.reels {
		if r.State() != ReelIdle {
			return false
		}
	}
	return true
}
