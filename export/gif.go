package export

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"time"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Common errors returned by writers.
var (
	// ErrClosed is returned when writing to a closed writer.
	ErrClosed = errors.New("export: writer is closed")

	// ErrNoFrames is returned by GIFWriter.Close when nothing was written.
	ErrNoFrames = errors.New("export: no frames written")
)

// minDelay is the smallest GIF frame delay, in hundredths of a second, that
// viewers honor.
const minDelay = 2

// GIFWriter collects frames and encodes them as a looping animated GIF on
// Close.
type GIFWriter struct {
	w      io.Writer
	opts   options
	delay  int
	anim   gif.GIF
	closed bool
}

// NewGIFWriter creates a writer that encodes to w with one frame per
// interval.
func NewGIFWriter(w io.Writer, interval time.Duration, opts ...Option) *GIFWriter {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &GIFWriter{
		w:     w,
		opts:  o,
		delay: Delay(interval),
	}
}

// Delay converts a frame interval to GIF hundredths of a second.
func Delay(interval time.Duration) int {
	d := int((interval + 5*time.Millisecond) / (10 * time.Millisecond))
	return max(d, minDelay)
}

// WriteFrame quantizes pm to the palette and appends it.
func (g *GIFWriter) WriteFrame(pm *gg.Pixmap) error {
	if g.closed {
		return ErrClosed
	}
	src := scaled(pm, g.opts.scale)
	b := src.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
	var drawer draw.Drawer = draw.Src
	if g.opts.dither {
		drawer = draw.FloydSteinberg
	}
	drawer.Draw(dst, dst.Bounds(), src, b.Min)

	g.anim.Image = append(g.anim.Image, dst)
	g.anim.Delay = append(g.anim.Delay, g.delay)
	return nil
}

// Frames returns the number of frames written so far.
func (g *GIFWriter) Frames() int {
	return len(g.anim.Image)
}

// Close encodes the animation. The writer cannot be used afterwards.
func (g *GIFWriter) Close() error {
	if g.closed {
		return ErrClosed
	}
	g.closed = true
	if len(g.anim.Image) == 0 {
		return ErrNoFrames
	}
	g.anim.LoopCount = 0
	if err := gif.EncodeAll(g.w, &g.anim); err != nil {
		return fmt.Errorf("export: encode gif: %w", err)
	}
	return nil
}
