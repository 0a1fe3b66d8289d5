// Package plot draws single-pixel primitives: a midpoint circle and a DDA
// line. Both write through a Plotter, which is responsible for clipping.
package plot

import (
	"math"

	"github.com/gogpu/gg"
)

// Plotter receives individual pixels. *gg.Pixmap and *gg.Context satisfy it.
type Plotter interface {
	SetPixel(x, y int, c gg.RGBA)
}

// Circle draws the outline of a circle of radius r centred at (cx, cy) using
// the midpoint algorithm. A negative radius draws nothing.
func Circle(p Plotter, cx, cy, r int, c gg.RGBA) {
	if r < 0 {
		return
	}
	if r == 0 {
		p.SetPixel(cx, cy, c)
		return
	}

	x, y := r, 0
	d := 1 - r
	for x >= y {
		p.SetPixel(cx+x, cy+y, c)
		p.SetPixel(cx-x, cy+y, c)
		p.SetPixel(cx+x, cy-y, c)
		p.SetPixel(cx-x, cy-y, c)
		p.SetPixel(cx+y, cy+x, c)
		p.SetPixel(cx-y, cy+x, c)
		p.SetPixel(cx+y, cy-x, c)
		p.SetPixel(cx-y, cy-x, c)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// FilledCircle fills a disc using the same midpoint walk, one horizontal span
// per octant pair.
func FilledCircle(p Plotter, cx, cy, r int, c gg.RGBA) {
	if r < 0 {
		return
	}

	x, y := r, 0
	d := 1 - r
	for x >= y {
		span(p, cx-x, cx+x, cy+y, c)
		span(p, cx-x, cx+x, cy-y, c)
		span(p, cx-y, cx+y, cy+x, c)
		span(p, cx-y, cx+y, cy-x, c)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

func span(p Plotter, x0, x1, y int, c gg.RGBA) {
	for x := x0; x <= x1; x++ {
		p.SetPixel(x, y, c)
	}
}

// Line draws a line from (x0, y0) to (x1, y1) inclusive with the digital
// differential analyzer: one pixel per step along the major axis.
func Line(p Plotter, x0, y0, x1, y1 int, c gg.RGBA) {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		p.SetPixel(x0, y0, c)
		return
	}

	xInc := dx / float64(steps)
	yInc := dy / float64(steps)
	x, y := float64(x0), float64(y0)
	for i := 0; i <= steps; i++ {
		p.SetPixel(int(math.Round(x)), int(math.Round(y)), c)
		x += xInc
		y += yInc
	}
}

// ThickLine draws width parallel DDA lines, offset along the minor axis.
func ThickLine(p Plotter, x0, y0, x1, y1, width int, c gg.RGBA) {
	if width < 1 {
		width = 1
	}
	steep := abs(y1-y0) > abs(x1-x0)
	lo := -(width - 1) / 2
	for o := lo; o < lo+width; o++ {
		if steep {
			Line(p, x0+o, y0, x1+o, y1, c)
		} else {
			Line(p, x0, y0+o, x1, y1+o, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
