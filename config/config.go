// Package config loads the scene configuration from YAML.
//
// A file only needs the keys it changes; everything else keeps the values of
// Default, which reproduce the original animation:
//
//	title: Village Scenery
//	width: 900
//	height: 500
//	edition: windmill
//	interval_ms: 20
//	speeds:
//	  boat: 1.5
//	  windmill: 4
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gogpu/gg"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/village"
)

// ErrInvalid is returned by Validate for out-of-range values.
var ErrInvalid = errors.New("config: invalid value")

// Config is the scene configuration.
type Config struct {
	Title      string         `yaml:"title"`
	Width      int            `yaml:"width"`
	Height     int            `yaml:"height"`
	Edition    string         `yaml:"edition"`
	IntervalMs int            `yaml:"interval_ms"`
	Frames     int            `yaml:"frames"`
	Scale      float64        `yaml:"scale"`
	HUD        bool           `yaml:"hud"`
	Background string         `yaml:"background"`
	Speeds     village.Speeds `yaml:"speeds"`
}

// Default returns the configuration of the original script: a 900x500
// cyan-sky window titled "Village Scenery", redrawn every 20 ms.
func Default() Config {
	return Config{
		Title:      "Village Scenery",
		Width:      village.WorldWidth,
		Height:     village.WorldHeight,
		Edition:    "classic",
		IntervalMs: 20,
		Frames:     250,
		Scale:      1,
		Background: "#00e6e6",
		Speeds:     village.DefaultSpeeds(),
	}
}

// Load reads path and overlays it on Default. The result is validated.
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks ranges and that the edition name parses.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.IntervalMs <= 0:
		return fmt.Errorf("%w: interval_ms %d", ErrInvalid, c.IntervalMs)
	case c.Frames <= 0:
		return fmt.Errorf("%w: frames %d", ErrInvalid, c.Frames)
	case c.Scale <= 0:
		return fmt.Errorf("%w: scale %v", ErrInvalid, c.Scale)
	}
	if _, err := village.ParseEdition(c.Edition); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Background != "" && !validHex(c.Background) {
		return fmt.Errorf("%w: background %q", ErrInvalid, c.Background)
	}
	return nil
}

// EditionValue returns the parsed edition.
func (c Config) EditionValue() (village.Edition, error) {
	return village.ParseEdition(c.Edition)
}

// Interval returns the frame interval.
func (c Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// Options converts the configuration into renderer options. The HUD face is
// not part of the file and is added by the caller.
func (c Config) Options() ([]village.Option, error) {
	e, err := c.EditionValue()
	if err != nil {
		return nil, err
	}
	opts := []village.Option{
		village.WithEdition(e),
		village.WithSize(c.Width, c.Height),
		village.WithSpeeds(c.Speeds),
	}
	if c.Background != "" {
		opts = append(opts, village.WithBackground(gg.Hex(c.Background)))
	}
	return opts, nil
}

func validHex(s string) bool {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		if !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F') {
			return false
		}
	}
	return true
}
