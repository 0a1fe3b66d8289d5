package village

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gg"
)

// Common errors returned by Renderer operations.
var (
	// ErrInvalidSize is returned when width or height is not positive.
	ErrInvalidSize = errors.New("village: invalid size")

	// ErrClosed is returned when rendering after Close.
	ErrClosed = errors.New("village: renderer is closed")
)

// Renderer draws frames of one scene edition at a fixed size.
//
// Static layers are rasterized once by NewRenderer. Render copies them into
// the frame buffer and draws the animated layers on top.
//
// Renderer is NOT safe for concurrent use.
type Renderer struct {
	opts   options
	scale  float64
	static *gg.Pixmap
	frame  *gg.Pixmap
	dc     *gg.Context
	hud    *hud
	closed bool
}

// NewRenderer creates a renderer and draws the static layers.
func NewRenderer(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, o.width, o.height)
	}
	if !o.edition.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEdition, int(o.edition))
	}

	r := &Renderer{
		opts:   o,
		scale:  math.Min(float64(o.width)/WorldWidth, float64(o.height)/WorldHeight),
		static: gg.NewPixmap(o.width, o.height),
		frame:  gg.NewPixmap(o.width, o.height),
	}
	if o.hudFace != nil {
		r.hud = newHUD(o.hudFace, o.edition)
	}
	if err := r.drawStatic(); err != nil {
		return nil, err
	}
	r.dc = gg.NewContext(o.width, o.height, gg.WithPixmap(r.frame))
	return r, nil
}

// Edition returns the edition being drawn.
func (r *Renderer) Edition() Edition {
	return r.opts.edition
}

// Width returns the frame width in pixels.
func (r *Renderer) Width() int {
	return r.opts.width
}

// Height returns the frame height in pixels.
func (r *Renderer) Height() int {
	return r.opts.height
}

// Static returns the cached pixmap holding the layers that never move.
func (r *Renderer) Static() *gg.Pixmap {
	return r.static
}

func (r *Renderer) drawStatic() error {
	start := time.Now()
	dc := gg.NewContext(r.opts.width, r.opts.height, gg.WithPixmap(r.static))
	defer dc.Close()

	dc.ClearWithColor(r.opts.background)
	p := newPainter(dc, r.scale)
	e := r.opts.edition

	p.ground()
	p.river()
	p.hills()
	if e.Has(FeatureCar) {
		p.road()
		p.bridge()
	}
	if e.Has(FeatureWindmill) {
		p.windmillTower()
	}
	p.houses()
	p.tree()
	p.sun()
	if p.err != nil {
		return fmt.Errorf("village: static layers: %w", p.err)
	}
	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("village: static layers: %w", err)
	}

	Logger().Debug("static layers drawn",
		"edition", int(e), "width", r.opts.width, "height", r.opts.height,
		"elapsed", time.Since(start))
	return nil
}

// Render draws the frame for st and returns it. The returned pixmap is
// reused by the next call to Render.
func (r *Renderer) Render(st *State) (*gg.Pixmap, error) {
	if r.closed {
		return nil, ErrClosed
	}
	copy(r.frame.Data(), r.static.Data())

	p := newPainter(r.dc, r.scale)
	e := r.opts.edition

	p.sunHalo(st.WindPhase)
	p.boat(st.BoatX)
	p.clouds(st.CloudX)
	if e.Has(FeatureCar) {
		p.car(st.CarX)
	}
	if e.Has(FeatureWindmill) {
		p.windmillSails(st.WindmillAngle)
	}
	if e.Has(FeatureBirds) {
		p.birds(st.Birds, st.WingUp())
	}
	if e.Has(FeatureCow) {
		p.cow(st.WindPhase)
	}
	if p.err != nil {
		return nil, fmt.Errorf("village: frame %d: %w", st.Frame, p.err)
	}
	if err := r.dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("village: frame %d: %w", st.Frame, err)
	}
	if r.hud != nil {
		r.hud.draw(r.dc, st.Frame)
	}
	return r.frame, nil
}

// Close releases the drawing context. Close is idempotent.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.dc.Close()
}
