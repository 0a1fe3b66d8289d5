package turtle

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Common errors returned by Turtle operations.
var (
	// ErrNoFill is returned by EndFill when no fill is open.
	ErrNoFill = errors.New("turtle: EndFill without BeginFill")

	// ErrTooFewPoints is returned by Polygon for fewer than three vertices.
	ErrTooFewPoints = errors.New("turtle: polygon needs at least 3 points")
)

// ellipseSteps is the number of one-degree steps used to trace an ellipse.
// 361 closes the outline onto its starting vertex.
const ellipseSteps = 361

// Surface is the part of a drawing context the turtle needs.
// *gg.Context satisfies it.
type Surface interface {
	Width() int
	Height() int
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
	ClearPath()
	Fill() error
	Stroke() error
	SetRGBA(r, g, b, a float64)
	SetLineWidth(width float64)
}

// Point is a position in world coordinates.
type Point struct {
	X, Y float64
}

// Turtle is a pen that moves over a Surface.
type Turtle struct {
	s     Surface
	pos   Point
	down  bool
	color gg.RGBA
	width float64
	scale float64

	filling  bool
	fillDown bool
	fill     []Point
}

// New creates a turtle at the origin with the pen down, drawing black
// one-pixel lines.
func New(s Surface) *Turtle {
	return &Turtle{
		s:     s,
		down:  true,
		color: gg.Black,
		width: 1,
		scale: 1,
	}
}

// SetScale sets how many pixels one world unit covers.
// Non-positive values are ignored.
func (t *Turtle) SetScale(scale float64) {
	if scale > 0 {
		t.scale = scale
	}
}

// Scale returns the world-to-pixel scale factor.
func (t *Turtle) Scale() float64 {
	return t.scale
}

// PenUp lifts the pen: moves no longer draw.
func (t *Turtle) PenUp() {
	t.down = false
}

// PenDown lowers the pen.
func (t *Turtle) PenDown() {
	t.down = true
}

// IsDown reports whether the pen is down.
func (t *Turtle) IsDown() bool {
	return t.down
}

// Filling reports whether a fill is open.
func (t *Turtle) Filling() bool {
	return t.filling
}

// SetColor sets both the pen and the fill color.
func (t *Turtle) SetColor(c gg.RGBA) {
	t.color = c
}

// Color returns the current pen color.
func (t *Turtle) Color() gg.RGBA {
	return t.color
}

// SetPenSize sets the stroke width in world units.
func (t *Turtle) SetPenSize(w float64) {
	if w > 0 {
		t.width = w
	}
}

// Position returns the current position in world coordinates.
func (t *Turtle) Position() Point {
	return t.pos
}

// ToPixel maps world coordinates to surface pixel coordinates.
func (t *Turtle) ToPixel(x, y float64) (px, py float64) {
	cx := float64(t.s.Width()) / 2
	cy := float64(t.s.Height()) / 2
	return cx + x*t.scale, cy - y*t.scale
}

// Goto moves the turtle to (x, y). With the pen down and no fill open the
// segment is stroked immediately. While a fill is open the vertex is recorded
// and drawn by EndFill.
func (t *Turtle) Goto(x, y float64) error {
	from := t.pos
	t.pos = Point{x, y}

	if t.filling {
		t.fill = append(t.fill, t.pos)
		return nil
	}
	if !t.down {
		return nil
	}

	t.apply()
	fx, fy := t.ToPixel(from.X, from.Y)
	tx, ty := t.ToPixel(x, y)
	t.s.MoveTo(fx, fy)
	t.s.LineTo(tx, ty)
	if err := t.s.Stroke(); err != nil {
		return fmt.Errorf("turtle: stroke: %w", err)
	}
	return nil
}

// BeginFill opens a fill at the current position. An already open fill is
// discarded.
func (t *Turtle) BeginFill() {
	t.filling = true
	t.fillDown = t.down
	t.fill = append(t.fill[:0], t.pos)
}

// EndFill closes the open fill and paints it in the current color.
// Fills with fewer than three vertices paint nothing.
func (t *Turtle) EndFill() error {
	if !t.filling {
		return ErrNoFill
	}
	t.filling = false
	pts := t.fill
	t.fill = t.fill[:0]

	if len(pts) < 3 {
		return nil
	}

	t.apply()
	t.trace(pts)
	if err := t.s.Fill(); err != nil {
		return fmt.Errorf("turtle: fill: %w", err)
	}

	if t.fillDown || t.down {
		t.trace(pts)
		if err := t.s.Stroke(); err != nil {
			return fmt.Errorf("turtle: stroke: %w", err)
		}
	}
	return nil
}

// Polygon fills the closed polygon through points in the current color.
func (t *Turtle) Polygon(points []Point) error {
	if len(points) < 3 {
		return fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}

	t.PenUp()
	if err := t.Goto(points[0].X, points[0].Y); err != nil {
		return err
	}
	t.PenDown()
	t.BeginFill()
	for _, p := range points[1:] {
		if err := t.Goto(p.X, p.Y); err != nil {
			return err
		}
	}
	if err := t.Goto(points[0].X, points[0].Y); err != nil {
		return err
	}
	return t.EndFill()
}

// Ellipse fills an axis-aligned ellipse with radii rx, ry centred at
// (cx, cy).
func (t *Turtle) Ellipse(rx, ry, cx, cy float64) error {
	t.PenUp()
	if err := t.Goto(cx, cy-ry); err != nil {
		return err
	}
	t.PenDown()
	t.BeginFill()
	for i := 0; i < ellipseSteps; i++ {
		a := float64(i) * math.Pi / 180
		if err := t.Goto(rx*math.Cos(a)+cx, ry*math.Sin(a)+cy); err != nil {
			return err
		}
	}
	return t.EndFill()
}

// apply pushes the pen state to the surface.
func (t *Turtle) apply() {
	t.s.SetRGBA(t.color.R, t.color.G, t.color.B, t.color.A)
	t.s.SetLineWidth(t.width * t.scale)
}

func (t *Turtle) trace(pts []Point) {
	t.s.ClearPath()
	x, y := t.ToPixel(pts[0].X, pts[0].Y)
	t.s.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = t.ToPixel(p.X, p.Y)
		t.s.LineTo(x, y)
	}
	t.s.ClosePath()
}
