package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/fruitmachine/internal/application/game"
	"github.com/younwookim/fruitmachine/internal/application/scene/machine"
	"github.com/younwookim/fruitmachine/internal/application/system"
	"github.com/younwookim/fruitmachine/internal/domain/entity"
	"github.com/younwookim/fruitmachine/internal/infrastructure/assets"
	"github.com/younwookim/fruitmachine/internal/infrastructure/config"
	"github.com/younwookim/fruitmachine/internal/infrastructure/graphics"
)

func main() {
	// log.Fatal would skip deferred releases, so run owns all cleanup
	if err := run(); err != nil {
		log.Printf("fruitmachine: %v", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return fmt.Errorf("failed to get config subfs: %w", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The window takes the background's size; reel slots follow from it
	var screenW, screenH int
	var layout entity.Layout
	loader := assets.NewLoader(os.DirFS(cfg.Assets.Dir), assets.Manifest{
		Background: cfg.Assets.Background,
		Symbols:    cfg.Assets.Symbols,
	})
	atlas, err := loader.Load(func(bgW, bgH int) (int, int) {
		screenW, screenH = bgW, bgH
		if screenW <= 0 || screenH <= 0 {
			screenW, screenH = cfg.Display.FallbackWidth, cfg.Display.FallbackHeight
		}
		layout = machine.LayoutFor(cfg, screenW, screenH)
		slot := layout.Reels[0]
		return int(math.Round(slot.W)), int(math.Round(slot.H))
	})
	if err != nil {
		return err
	}
	defer atlas.Release()

	src := system.NewRandomSource()
	log.Printf("Symbol source seeded: %d", src.Seed())

	m, err := machine.New(cfg, layout, src, system.NewInputSystem(), func(screen *ebiten.Image) machine.Canvas {
		return graphics.NewScreen(screen, atlas)
	})
	if err != nil {
		return err
	}

	g := game.New(m, screenW, screenH, system.NewWallClock())

	// Set up ebiten
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetTPS(cfg.Display.TPS)

	// Run game; Escape and window close end with Termination
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("failed to run game: %w", err)
	}
	return nil
}
