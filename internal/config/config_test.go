package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 809, cfg.Width)
	assert.Equal(t, 500, cfg.Height)
	assert.Equal(t, "drawing.png", cfg.DefaultFilename)

	bg, paint, cursor := cfg.Colors()
	assert.Equal(t, color.NRGBA{R: 4, G: 101, B: 130, A: 255}, bg)
	assert.Equal(t, color.NRGBA{R: 243, G: 145, B: 137, A: 255}, paint)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, cursor)
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	path := writeFile(t, `
title = "Sketch"
width = 640
brush_radius = 12.5
paint = "#f00"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Sketch", cfg.Title)
	assert.Equal(t, 640, cfg.Width)
	assert.Equal(t, 500, cfg.Height)
	assert.Equal(t, float32(12.5), cfg.BrushRadius)

	_, paint, _ := cfg.Colors()
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, paint)
}

func TestLoadRejectsInvalid(t *testing.T) {
	for name, body := range map[string]string{
		"syntax":     `width = `,
		"size":       `height = 0`,
		"radius":     `brush_radius = 0.5`,
		"multiplier": `scroll_multiplier = -1`,
		"step":       `scroll_step = 0`,
		"color":      `cursor = "#12345"`,
		"filename":   `default_filename = "  "`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body))
			assert.Error(t, err)
		})
	}
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/drawpad.toml")
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/drawpad.toml", p)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("046582")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 4, G: 101, B: 130, A: 255}, c)

	_, err = ParseColor("#zzzzzz")
	assert.Error(t, err)
}
