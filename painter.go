package village

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/village/internal/plot"
	"github.com/gogpu/village/turtle"
)

type pts = []turtle.Point

// painter draws scene shapes through a turtle and keeps the first error, so
// layer code reads as a flat list of shapes.
type painter struct {
	dc    *gg.Context
	t     *turtle.Turtle
	flush func() error
	err   error
}

func newPainter(dc *gg.Context, scale float64) *painter {
	t := turtle.New(dc)
	t.SetScale(scale)
	return &painter{dc: dc, t: t, flush: dc.FlushGPU}
}

func (p *painter) poly(c gg.RGBA, points pts) {
	if p.err != nil {
		return
	}
	p.t.SetColor(c)
	p.err = p.t.Polygon(points)
}

func (p *painter) ellipse(c gg.RGBA, rx, ry, cx, cy float64) {
	if p.err != nil {
		return
	}
	p.t.SetColor(c)
	p.err = p.t.Ellipse(rx, ry, cx, cy)
}

// at maps a world point to the nearest pixel.
func (p *painter) at(x, y float64) (int, int) {
	px, py := p.t.ToPixel(x, y)
	return int(math.Round(px)), int(math.Round(py))
}

// span converts a world length to whole pixels, never less than one.
func (p *painter) span(v float64) int {
	n := int(math.Round(v * p.t.Scale()))
	if n < 1 {
		return 1
	}
	return n
}

// pixels returns the plotter for direct pixel work. Pending accelerated
// shapes are flushed first so pixels land on top of them. It reports false
// once the painter has failed, including a failed flush.
func (p *painter) pixels() (plot.Plotter, bool) {
	if p.err != nil {
		return nil, false
	}
	if err := p.flush(); err != nil {
		p.err = fmt.Errorf("flush: %w", err)
		return nil, false
	}
	return p.dc, true
}

func (p *painter) circle(c gg.RGBA, x, y, r float64) {
	px, ok := p.pixels()
	if !ok {
		return
	}
	cx, cy := p.at(x, y)
	plot.Circle(px, cx, cy, p.span(r), c)
}

func (p *painter) disc(c gg.RGBA, x, y, r float64) {
	px, ok := p.pixels()
	if !ok {
		return
	}
	cx, cy := p.at(x, y)
	plot.FilledCircle(px, cx, cy, p.span(r), c)
}

func (p *painter) line(c gg.RGBA, x0, y0, x1, y1, width float64) {
	px, ok := p.pixels()
	if !ok {
		return
	}
	ax, ay := p.at(x0, y0)
	bx, by := p.at(x1, y1)
	plot.ThickLine(px, ax, ay, bx, by, p.span(width), c)
}

// rotate turns (x, y) by deg degrees counter-clockwise about (ox, oy).
func rotate(x, y, ox, oy, deg float64) turtle.Point {
	s, c := math.Sincos(deg * math.Pi / 180)
	dx, dy := x-ox, y-oy
	return turtle.Point{X: ox + dx*c - dy*s, Y: oy + dx*s + dy*c}
}

func sinPulse(phase, rate float64) float64 {
	return math.Sin(phase * rate)
}
