package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/village"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "village.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if c.Width != 900 || c.Height != 500 {
		t.Errorf("size = %dx%d, want 900x500", c.Width, c.Height)
	}
	if c.Interval() != 20*time.Millisecond {
		t.Errorf("Interval() = %v, want 20ms", c.Interval())
	}
	if c.Title != "Village Scenery" {
		t.Errorf("Title = %q", c.Title)
	}
	e, err := c.EditionValue()
	if err != nil || e != village.Classic {
		t.Errorf("EditionValue() = %v, %v; want Classic", e, err)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, `
edition: windmill
interval_ms: 40
speeds:
  boat: 3
`)
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.Edition != "windmill" {
		t.Errorf("Edition = %q, want windmill", c.Edition)
	}
	if c.IntervalMs != 40 {
		t.Errorf("IntervalMs = %d, want 40", c.IntervalMs)
	}
	if c.Speeds.Boat != 3 {
		t.Errorf("Speeds.Boat = %v, want 3", c.Speeds.Boat)
	}
	if c.Speeds.Windmill != village.DefaultSpeeds().Windmill {
		t.Errorf("Speeds.Windmill = %v, want default", c.Speeds.Windmill)
	}
	if c.Width != 900 {
		t.Errorf("Width = %d, want default 900", c.Width)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{"bad yaml", "width: [", false},
		{"zero width", "width: 0", true},
		{"negative interval", "interval_ms: -5", true},
		{"negative frames", "frames: -1", true},
		{"zero frames", "frames: 0", true},
		{"zero scale", "scale: 0", true},
		{"unknown edition", "edition: rocket", true},
		{"bad background", "background: '#12345'", true},
		{"non-hex background", "background: zzzzzz", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if tt.invalid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Load() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want not-exist", err)
	}
}

func TestOptionsBuildRenderer(t *testing.T) {
	c := Default()
	c.Edition = "4"
	c.Width, c.Height = 180, 100
	c.Background = "#ffffff"

	opts, err := c.Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	r, err := village.NewRenderer(opts...)
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	defer r.Close()

	if r.Edition() != village.Pasture {
		t.Errorf("Edition() = %v, want Pasture", r.Edition())
	}
	if r.Width() != 180 || r.Height() != 100 {
		t.Errorf("size = %dx%d, want 180x100", r.Width(), r.Height())
	}
	// Top-left corner is sky.
	if got := r.Static().GetPixel(0, 0); got.R < 0.99 || got.G < 0.99 || got.B < 0.99 {
		t.Errorf("sky pixel = %v, want white background", got)
	}
}

func TestOptionsUnknownEdition(t *testing.T) {
	c := Default()
	c.Edition = "nine"
	if _, err := c.Options(); !errors.Is(err, village.ErrUnknownEdition) {
		t.Errorf("Options() error = %v, want ErrUnknownEdition", err)
	}
}
