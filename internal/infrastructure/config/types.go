package config

import "time"

// MachineConfig is the root config for machine.json
type MachineConfig struct {
	Display DisplayConfig `json:"display"`
	Spin    SpinConfig    `json:"spin"`
	Layout  LayoutConfig  `json:"layout"`
	Assets  AssetsConfig  `json:"assets"`
}

type DisplayConfig struct {
	Title          string `json:"title"`
	TPS            int    `json:"tps"`
	FallbackWidth  int    `json:"fallbackWidth"`  // Used when the background has no size
	FallbackHeight int    `json:"fallbackHeight"` // Used when the background has no size
}

// SpinConfig configures reel motion and timing
type SpinConfig struct {
	Mode             string  `json:"mode"`             // "scroll" or "snap"
	BaseDelayMs      int     `json:"baseDelayMs"`      // Spin length of the leftmost reel
	StaggerMs        int     `json:"staggerMs"`        // Extra spin length per reel
	SymbolsPerSecond float64 `json:"symbolsPerSecond"` // Scroll speed
	SwitchIntervalMs int     `json:"switchIntervalMs"` // Snap mode swap period
	MaxFrameDeltaMs  int     `json:"maxFrameDeltaMs"`  // Longest step fed to the reels
}

// BaseDelay returns the first reel's spin length
func (c SpinConfig) BaseDelay() time.Duration {
	return time.Duration(c.BaseDelayMs) * time.Millisecond
}

// Stagger returns the per-reel spin increment
func (c SpinConfig) Stagger() time.Duration {
	return time.Duration(c.StaggerMs) * time.Millisecond
}

// SwitchInterval returns the snap mode swap period
func (c SpinConfig) SwitchInterval() time.Duration {
	return time.Duration(c.SwitchIntervalMs) * time.Millisecond
}

// MaxFrameDelta returns the frame hitch clamp
func (c SpinConfig) MaxFrameDelta() time.Duration {
	return time.Duration(c.MaxFrameDeltaMs) * time.Millisecond
}

// LayoutConfig holds window-relative reel geometry
type LayoutConfig struct {
	CenterXRatios []float64    `json:"centerXRatios"`
	CenterYRatio  float64      `json:"centerYRatio"`
	WidthRatio    float64      `json:"widthRatio"`
	HeightRatio   float64      `json:"heightRatio"`
	Button        ButtonConfig `json:"button"`
}

// ButtonConfig places the start button below the reels
type ButtonConfig struct {
	CenterXRatio float64 `json:"centerXRatio"`
	WidthRatio   float64 `json:"widthRatio"`
	HeightRatio  float64 `json:"heightRatio"`
	Gap          float64 `json:"gap"` // Pixels below the reels
}

// AssetsConfig lists the image files, relative to Dir
type AssetsConfig struct {
	Dir        string   `json:"dir"`
	Background string   `json:"background"`
	Symbols    []string `json:"symbols"` // Palette order
}
