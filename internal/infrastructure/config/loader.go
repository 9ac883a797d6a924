package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/younwookim/fruitmachine/internal/domain/entity"
)

// MachineFile is the config file name inside the config directory
const MachineFile = "machine.json"

// Loader loads machine configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads, parses and validates machine.json
func (l *Loader) Load() (*MachineConfig, error) {
	data, err := fs.ReadFile(l.fsys, MachineFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", MachineFile, err)
	}

	var cfg MachineConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", MachineFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", MachineFile, err)
	}

	return &cfg, nil
}

// Validate checks values the machine cannot run without
func (c *MachineConfig) Validate() error {
	var errs []error

	if c.Display.TPS <= 0 {
		errs = append(errs, errors.New("display.tps must be positive"))
	}
	if _, err := entity.ParseSpinMode(c.Spin.Mode); err != nil {
		errs = append(errs, fmt.Errorf("spin.mode: %w", err))
	}
	if c.Spin.BaseDelayMs <= 0 {
		errs = append(errs, errors.New("spin.baseDelayMs must be positive"))
	}
	if c.Spin.StaggerMs < 0 {
		errs = append(errs, errors.New("spin.staggerMs must not be negative"))
	}
	if c.Spin.SymbolsPerSecond <= 0 {
		errs = append(errs, errors.New("spin.symbolsPerSecond must be positive"))
	}
	if c.Spin.SwitchIntervalMs <= 0 {
		errs = append(errs, errors.New("spin.switchIntervalMs must be positive"))
	}
	if c.Spin.MaxFrameDeltaMs <= 0 {
		errs = append(errs, errors.New("spin.maxFrameDeltaMs must be positive"))
	}

	if n := len(c.Layout.CenterXRatios); n != entity.ReelCount {
		errs = append(errs, fmt.Errorf("layout.centerXRatios has %d entries, want %d", n, entity.ReelCount))
	}
	if c.Layout.WidthRatio <= 0 || c.Layout.HeightRatio <= 0 {
		errs = append(errs, errors.New("layout width and height ratios must be positive"))
	}
	if c.Layout.Button.WidthRatio <= 0 || c.Layout.Button.HeightRatio <= 0 {
		errs = append(errs, errors.New("layout.button ratios must be positive"))
	}

	if c.Assets.Background == "" {
		errs = append(errs, errors.New("assets.background is required"))
	}
	if n := len(c.Assets.Symbols); n != entity.PaletteSize {
		errs = append(errs, fmt.Errorf("assets.symbols has %d entries, want %d", n, entity.PaletteSize))
	}

	return errors.Join(errs...)
}
