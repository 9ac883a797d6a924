package main

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/fruitmachine/internal/application/scene/machine"
	"github.com/younwookim/fruitmachine/internal/infrastructure/config"
)

func TestEmbeddedConfig(t *testing.T) {
	fsys, err := fs.Sub(configFS, "configs")
	require.NoError(t, err)

	cfg, err := config.NewFSLoader(fsys, "configs").Load()
	require.NoError(t, err)

	layout := machine.LayoutFor(cfg, cfg.Display.FallbackWidth, cfg.Display.FallbackHeight)
	assert.NoError(t, layout.Validate())
	assert.True(t, layout.Screen.Contains(layout.Button.X, layout.Button.Y))
	assert.LessOrEqual(t, layout.Button.Bottom(), layout.Screen.H)
}
