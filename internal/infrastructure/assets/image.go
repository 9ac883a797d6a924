package assets

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"

	"golang.org/x/image/draw"
)

// Decode reads and decodes a single image file
func Decode(fsys fs.FS, name string) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, &LoadError{Name: name, Err: err}
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &LoadError{Name: name, Err: err}
	}
	return img, nil
}

// Fit resamples src to exactly w x h pixels.
// src is returned unchanged when it already has that size or the size is empty.
func Fit(src image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return src
	}
	b := src.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
