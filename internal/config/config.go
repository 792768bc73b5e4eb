// Package config loads the optional DrawPad settings file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvPath names the environment variable that points at a settings file.
const EnvPath = "DRAWPAD_CONFIG"

type Config struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	StartX      float32 `toml:"start_x"`
	StartY      float32 `toml:"start_y"`
	BrushRadius float32 `toml:"brush_radius"`

	// Radius change per scroll-wheel unit.
	ScrollMultiplier float32 `toml:"scroll_multiplier"`
	// Scroll delta the toolkit reports for one wheel notch.
	ScrollStep float32 `toml:"scroll_step"`

	Background string `toml:"background"`
	Paint      string `toml:"paint"`
	Cursor     string `toml:"cursor"`

	DefaultFilename string `toml:"default_filename"`
}

func Default() Config {
	return Config{
		Title:            "Drawing Example",
		Width:            809,
		Height:           500,
		StartX:           100,
		StartY:           100,
		BrushRadius:      50,
		ScrollMultiplier: 4,
		ScrollStep:       10,
		Background:       "#046582",
		Paint:            "#f39189",
		Cursor:           "#ffffff",
		DefaultFilename:  "drawing.png",
	}
}

// Path returns the settings file location: $DRAWPAD_CONFIG when set,
// otherwise drawpad/config.toml under the user config directory.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "drawpad", "config.toml"), nil
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("canvas size %dx%d must be positive", c.Width, c.Height)
	case c.BrushRadius < 1:
		return fmt.Errorf("brush_radius %v must be at least 1", c.BrushRadius)
	case c.ScrollMultiplier <= 0:
		return fmt.Errorf("scroll_multiplier %v must be positive", c.ScrollMultiplier)
	case c.ScrollStep <= 0:
		return fmt.Errorf("scroll_step %v must be positive", c.ScrollStep)
	case strings.TrimSpace(c.DefaultFilename) == "":
		return errors.New("default_filename is empty")
	}
	for name, v := range map[string]string{"background": c.Background, "paint": c.Paint, "cursor": c.Cursor} {
		if _, err := ParseColor(v); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Colors returns the parsed background, paint and cursor colors. Call it on
// a validated config.
func (c Config) Colors() (background, paint, cursor color.NRGBA) {
	background, _ = ParseColor(c.Background)
	paint, _ = ParseColor(c.Paint)
	cursor, _ = ParseColor(c.Cursor)
	return
}

// ParseColor accepts #rgb and #rrggbb, with or without the leading '#'.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
