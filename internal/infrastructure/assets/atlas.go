// Package assets loads the background and symbol images into GPU textures.
//
// Loading is all-or-nothing: if any file fails, every texture created
// so far is released before the error is returned.
package assets

import (
	"fmt"
	"image"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/fruitmachine/internal/domain/entity"
)

// Manifest names the image files, relative to the asset filesystem
type Manifest struct {
	Background string
	Symbols    []string // Palette order
}

// Validate checks that the manifest names one background and a full palette
func (m Manifest) Validate() error {
	if m.Background == "" {
		return fmt.Errorf("%w: no background image", ErrInit)
	}
	if len(m.Symbols) != entity.PaletteSize {
		return fmt.Errorf("%w: %d symbol images, want %d", ErrInit, len(m.Symbols), entity.PaletteSize)
	}
	return nil
}

// SlotFunc chooses the symbol texture size from the background size
type SlotFunc func(bgW, bgH int) (symbolW, symbolH int)

// Atlas holds every texture the machine draws
type Atlas struct {
	Background *ebiten.Image
	Symbols    [entity.PaletteSize]*ebiten.Image
}

// Symbol returns the texture for sym, or nil if it is not loaded
func (a *Atlas) Symbol(sym entity.Symbol) *ebiten.Image {
	if !sym.Valid() {
		return nil
	}
	return a.Symbols[sym]
}

// Release frees every texture held by the atlas. It is safe to call on
// a partially filled atlas and more than once.
func (a *Atlas) Release() {
	for i, img := range a.Symbols {
		if img != nil {
			img.Deallocate()
			a.Symbols[i] = nil
		}
	}
	if a.Background != nil {
		a.Background.Deallocate()
		a.Background = nil
	}
}

// Loader reads a Manifest's images from a filesystem
type Loader struct {
	fsys     fs.FS
	manifest Manifest
}

// NewLoader creates a loader for the given filesystem and manifest
func NewLoader(fsys fs.FS, manifest Manifest) *Loader {
	return &Loader{fsys: fsys, manifest: manifest}
}

// Load decodes the background, asks slot for the symbol size, then
// decodes and resamples every symbol. On failure nothing stays allocated.
func (l *Loader) Load(slot SlotFunc) (_ *Atlas, err error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("%w: no asset filesystem", ErrInit)
	}
	if err := l.manifest.Validate(); err != nil {
		return nil, err
	}

	atlas := &Atlas{}
	defer func() {
		if err != nil {
			atlas.Release()
		}
	}()

	bg, err := Decode(l.fsys, l.manifest.Background)
	if err != nil {
		return nil, err
	}
	atlas.Background = ebiten.NewImageFromImage(bg)

	b := bg.Bounds()
	w, h := slot(b.Dx(), b.Dy())

	for i, name := range l.manifest.Symbols {
		var img image.Image
		img, err = Decode(l.fsys, name)
		if err != nil {
			return nil, err
		}
		atlas.Symbols[i] = ebiten.NewImageFromImage(Fit(img, w, h))
	}

	log.Printf("Loaded %d symbols at %dx%d, background %dx%d", len(l.manifest.Symbols), w, h, b.Dx(), b.Dy())
	return atlas, nil
}
