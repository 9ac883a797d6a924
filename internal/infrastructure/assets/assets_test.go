package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/fruitmachine/internal/domain/entity"
)

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func createTestManifest() Manifest {
	m := Manifest{Background: "body.jpeg"}
	for i := 0; i < entity.PaletteSize; i++ {
		m.Symbols = append(m.Symbols, fmt.Sprintf("icon-%d.jpeg", i))
	}
	return m
}

func createTestFS(t *testing.T, m Manifest) fstest.MapFS {
	fsys := fstest.MapFS{
		m.Background: &fstest.MapFile{Data: encodeJPEG(t, 64, 48)},
	}
	for _, name := range m.Symbols {
		fsys[name] = &fstest.MapFile{Data: encodeJPEG(t, 20, 20)}
	}
	return fsys
}

func TestDecode(t *testing.T) {
	fsys := fstest.MapFS{
		"ok.jpeg":      &fstest.MapFile{Data: encodeJPEG(t, 8, 6)},
		"corrupt.jpeg": &fstest.MapFile{Data: []byte("definitely not a jpeg")},
	}

	t.Run("valid image", func(t *testing.T) {
		img, err := Decode(fsys, "ok.jpeg")
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())
	})

	t.Run("missing file names the asset", func(t *testing.T) {
		_, err := Decode(fsys, "gone.jpeg")

		var loadErr *LoadError
		require.True(t, errors.As(err, &loadErr))
		assert.Equal(t, "gone.jpeg", loadErr.Name)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "gone.jpeg")
	})

	t.Run("corrupt file", func(t *testing.T) {
		_, err := Decode(fsys, "corrupt.jpeg")

		var loadErr *LoadError
		require.True(t, errors.As(err, &loadErr))
		assert.Equal(t, "corrupt.jpeg", loadErr.Name)
	})
}

func TestFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 40, 20))

	out := Fit(src, 10, 30)
	assert.Equal(t, image.Rect(0, 0, 10, 30), out.Bounds())

	assert.Same(t, src, Fit(src, 40, 20).(*image.RGBA), "same size is a no-op")
	assert.Same(t, src, Fit(src, 0, 10).(*image.RGBA), "empty size is a no-op")
}

func TestManifest_Validate(t *testing.T) {
	assert.NoError(t, createTestManifest().Validate())

	short := createTestManifest()
	short.Symbols = short.Symbols[:3]
	assert.ErrorIs(t, short.Validate(), ErrInit)

	noBG := createTestManifest()
	noBG.Background = ""
	assert.ErrorIs(t, noBG.Validate(), ErrInit)
}

func TestLoader_Load(t *testing.T) {
	m := createTestManifest()
	loader := NewLoader(createTestFS(t, m), m)

	var gotW, gotH int
	atlas, err := loader.Load(func(w, h int) (int, int) {
		gotW, gotH = w, h
		return 16, 12
	})
	require.NoError(t, err)
	defer atlas.Release()

	assert.Equal(t, 64, gotW)
	assert.Equal(t, 48, gotH)
	require.NotNil(t, atlas.Background)
	for i := 0; i < entity.PaletteSize; i++ {
		icon := atlas.Symbol(entity.Symbol(i))
		require.NotNil(t, icon)
		assert.Equal(t, image.Rect(0, 0, 16, 12), icon.Bounds())
	}
	assert.Nil(t, atlas.Symbol(entity.Symbol(-1)))
}

func TestLoader_Load_MissingSymbolUnwinds(t *testing.T) {
	m := createTestManifest()
	fsys := createTestFS(t, m)
	delete(fsys, m.Symbols[4])
	loader := NewLoader(fsys, m)

	atlas, err := loader.Load(func(w, h int) (int, int) { return 16, 16 })

	assert.Nil(t, atlas)
	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, m.Symbols[4], loadErr.Name)
}

func TestLoader_Load_MissingBackground(t *testing.T) {
	m := createTestManifest()
	fsys := createTestFS(t, m)
	delete(fsys, m.Background)

	_, err := NewLoader(fsys, m).Load(func(w, h int) (int, int) { return w, h })

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, m.Background, loadErr.Name)
}

func TestLoader_Load_InitFailure(t *testing.T) {
	_, err := NewLoader(nil, createTestManifest()).Load(nil)
	assert.ErrorIs(t, err, ErrInit)

	_, err = NewLoader(fstest.MapFS{}, Manifest{}).Load(nil)
	assert.ErrorIs(t, err, ErrInit)
}

func TestAtlas_Release_PartialAndRepeated(t *testing.T) {
	atlas := &Atlas{}
	atlas.Release()

	m := createTestManifest()
	loaded, err := NewLoader(createTestFS(t, m), m).Load(func(w, h int) (int, int) { return 4, 4 })
	require.NoError(t, err)

	loaded.Release()
	loaded.Release()
	assert.Nil(t, loaded.Background)
	assert.Nil(t, loaded.Symbols[0])
}
