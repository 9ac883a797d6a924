package config

import "github.com/younwookim/fruitmachine/internal/domain/entity"

// Ratios converts the layout section into entity geometry ratios
func (c LayoutConfig) Ratios() entity.LayoutRatios {
	r := entity.LayoutRatios{
		CenterY: c.CenterYRatio,
		Width:   c.WidthRatio,
		Height:  c.HeightRatio,
		Button: entity.ButtonRatios{
			CenterX: c.Button.CenterXRatio,
			Width:   c.Button.WidthRatio,
			Height:  c.Button.HeightRatio,
			Gap:     c.Button.Gap,
		},
	}
	copy(r.CenterX[:], c.CenterXRatios)
	return r
}

// Bank converts the spin section into reel bank timing.
// Call Validate first; an unknown mode falls back to scroll.
func (c SpinConfig) Bank() entity.BankConfig {
	mode, _ := entity.ParseSpinMode(c.Mode)
	return entity.BankConfig{
		Mode:             mode,
		SymbolsPerSecond: c.SymbolsPerSecond,
		SwitchInterval:   c.SwitchInterval(),
		BaseDelay:        c.BaseDelay(),
		Stagger:          c.Stagger(),
	}
}
