package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
)

// PNGWriter writes each frame to its own numbered PNG file in a directory.
type PNGWriter struct {
	dir    string
	opts   options
	n      int
	closed bool
}

// NewPNGWriter creates dir if needed and returns a writer for it.
func NewPNGWriter(dir string, opts ...Option) (*PNGWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &PNGWriter{dir: dir, opts: o}, nil
}

// FrameName returns the file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%05d.png", i)
}

// WriteFrame saves pm as the next numbered file.
func (p *PNGWriter) WriteFrame(pm *gg.Pixmap) error {
	if p.closed {
		return ErrClosed
	}
	out := pm
	if p.opts.scale != 1 {
		out = gg.FromImage(scaled(pm, p.opts.scale))
	}
	path := filepath.Join(p.dir, FrameName(p.n))
	if err := out.SavePNG(path); err != nil {
		return fmt.Errorf("export: %s: %w", path, err)
	}
	p.n++
	return nil
}

// Frames returns the number of files written.
func (p *PNGWriter) Frames() int {
	return p.n
}

// Close marks the writer closed. Files are already complete.
func (p *PNGWriter) Close() error {
	p.closed = true
	return nil
}
