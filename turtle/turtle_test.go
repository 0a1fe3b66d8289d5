package turtle

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"
)

// recordingSurface records path commands issued by the turtle.
type recordingSurface struct {
	w, h    int
	ops     []string
	fills   int
	strokes int
	width   float64
	color   [4]float64
	fillErr error
}

func (r *recordingSurface) Width() int                 { return r.w }
func (r *recordingSurface) Height() int                { return r.h }
func (r *recordingSurface) MoveTo(x, y float64)        { r.ops = append(r.ops, "move") }
func (r *recordingSurface) LineTo(x, y float64)        { r.ops = append(r.ops, "line") }
func (r *recordingSurface) ClosePath()                 { r.ops = append(r.ops, "close") }
func (r *recordingSurface) ClearPath()                 {}
func (r *recordingSurface) SetLineWidth(width float64) { r.width = width }
func (r *recordingSurface) SetRGBA(cr, cg, cb, ca float64) {
	r.color = [4]float64{cr, cg, cb, ca}
}

func (r *recordingSurface) Fill() error {
	r.fills++
	return r.fillErr
}

func (r *recordingSurface) Stroke() error {
	r.strokes++
	return nil
}

func TestToPixel(t *testing.T) {
	tu := New(&recordingSurface{w: 900, h: 500})

	tests := []struct {
		name   string
		x, y   float64
		px, py float64
	}{
		{"origin", 0, 0, 450, 250},
		{"top left", -450, 250, 0, 0},
		{"bottom right", 450, -250, 900, 500},
		{"boat hull", 75, -30, 525, 280},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := tu.ToPixel(tt.x, tt.y)
			if px != tt.px || py != tt.py {
				t.Errorf("ToPixel(%v, %v) = (%v, %v), want (%v, %v)", tt.x, tt.y, px, py, tt.px, tt.py)
			}
		})
	}
}

func TestToPixelScaled(t *testing.T) {
	tu := New(&recordingSurface{w: 450, h: 250})
	tu.SetScale(0.5)

	px, py := tu.ToPixel(-450, 250)
	if px != 0 || py != 0 {
		t.Errorf("ToPixel(-450, 250) at scale 0.5 = (%v, %v), want (0, 0)", px, py)
	}

	tu.SetScale(-1)
	if tu.Scale() != 0.5 {
		t.Errorf("negative scale accepted: Scale() = %v", tu.Scale())
	}
}

func TestGotoPenUpDrawsNothing(t *testing.T) {
	s := &recordingSurface{w: 100, h: 100}
	tu := New(s)
	tu.PenUp()

	if err := tu.Goto(10, 10); err != nil {
		t.Fatalf("Goto() error = %v", err)
	}
	if s.strokes != 0 || len(s.ops) != 0 {
		t.Errorf("pen up issued %d strokes and ops %v", s.strokes, s.ops)
	}
	if got := tu.Position(); got != (Point{10, 10}) {
		t.Errorf("Position() = %v, want {10 10}", got)
	}
}

func TestGotoPenDownStrokes(t *testing.T) {
	s := &recordingSurface{w: 100, h: 100}
	tu := New(s)
	tu.SetPenSize(3)
	tu.SetColor(gg.RGB(1, 0, 0))

	if err := tu.Goto(10, 0); err != nil {
		t.Fatalf("Goto() error = %v", err)
	}
	if s.strokes != 1 {
		t.Errorf("strokes = %d, want 1", s.strokes)
	}
	if s.width != 3 {
		t.Errorf("line width = %v, want 3", s.width)
	}
	if s.color != [4]float64{1, 0, 0, 1} {
		t.Errorf("color = %v, want red", s.color)
	}
}

func TestEndFillWithoutBegin(t *testing.T) {
	tu := New(&recordingSurface{w: 10, h: 10})
	if err := tu.EndFill(); !errors.Is(err, ErrNoFill) {
		t.Errorf("EndFill() = %v, want ErrNoFill", err)
	}
}

func TestFillDefersDrawing(t *testing.T) {
	s := &recordingSurface{w: 100, h: 100}
	tu := New(s)

	tu.BeginFill()
	if !tu.Filling() {
		t.Fatal("Filling() = false after BeginFill")
	}
	for _, p := range []Point{{10, 0}, {10, 10}, {0, 0}} {
		if err := tu.Goto(p.X, p.Y); err != nil {
			t.Fatalf("Goto() error = %v", err)
		}
	}
	if s.fills != 0 || s.strokes != 0 {
		t.Fatalf("drawing happened before EndFill: fills=%d strokes=%d", s.fills, s.strokes)
	}

	if err := tu.EndFill(); err != nil {
		t.Fatalf("EndFill() error = %v", err)
	}
	if s.fills != 1 {
		t.Errorf("fills = %d, want 1", s.fills)
	}
	if s.strokes != 1 {
		t.Errorf("outline strokes = %d, want 1", s.strokes)
	}
}

func TestDegenerateFillPaintsNothing(t *testing.T) {
	s := &recordingSurface{w: 100, h: 100}
	tu := New(s)

	tu.BeginFill()
	_ = tu.Goto(5, 5)
	if err := tu.EndFill(); err != nil {
		t.Fatalf("EndFill() error = %v", err)
	}
	if s.fills != 0 {
		t.Errorf("fills = %d, want 0 for a two-vertex fill", s.fills)
	}
}

func TestFillErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	s := &recordingSurface{w: 100, h: 100, fillErr: boom}
	tu := New(s)

	err := tu.Polygon([]Point{{0, 0}, {10, 0}, {10, 10}})
	if !errors.Is(err, boom) {
		t.Errorf("Polygon() = %v, want wrapped surface error", err)
	}
}

func TestPolygonTooFewPoints(t *testing.T) {
	tu := New(&recordingSurface{w: 10, h: 10})
	for _, pts := range [][]Point{nil, {{0, 0}}, {{0, 0}, {1, 1}}} {
		if err := tu.Polygon(pts); !errors.Is(err, ErrTooFewPoints) {
			t.Errorf("Polygon(%v) = %v, want ErrTooFewPoints", pts, err)
		}
	}
}

func TestPolygonPaintsInterior(t *testing.T) {
	dc := gg.NewContext(100, 100)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	tu := New(dc)
	tu.SetColor(gg.RGB(0, 0, 1))
	// World square (-20,-20)..(20,20) covers pixels 30..70.
	if err := tu.Polygon([]Point{{-20, -20}, {20, -20}, {20, 20}, {-20, 20}}); err != nil {
		t.Fatalf("Polygon() error = %v", err)
	}

	img := dc.Image()
	assertColor(t, img.At(50, 50), 0, 0, 255)
	assertColor(t, img.At(5, 5), 255, 255, 255)
}

func TestEllipseStartsBelowCentre(t *testing.T) {
	s := &recordingSurface{w: 100, h: 100}
	tu := New(s)

	if err := tu.Ellipse(20, 30, 5, 5); err != nil {
		t.Fatalf("Ellipse() error = %v", err)
	}
	// The last vertex is 360 degrees: back at (cx+rx, cy).
	p := tu.Position()
	if math.Abs(p.X-25) > 1e-9 || math.Abs(p.Y-5) > 1e-9 {
		t.Errorf("Position() after ellipse = %v, want {25 5}", p)
	}
	if s.fills != 1 {
		t.Errorf("fills = %d, want 1", s.fills)
	}
}

func TestEllipsePaintsCentre(t *testing.T) {
	dc := gg.NewContext(100, 100)
	defer dc.Close()
	dc.ClearWithColor(gg.Black)

	tu := New(dc)
	tu.SetColor(gg.RGB(1, 1, 1))
	if err := tu.Ellipse(20, 30, 0, 0); err != nil {
		t.Fatalf("Ellipse() error = %v", err)
	}

	img := dc.Image()
	assertColor(t, img.At(50, 50), 255, 255, 255)
	assertColor(t, img.At(50, 10), 0, 0, 0)
	assertColor(t, img.At(75, 50), 0, 0, 0)
}

func assertColor(t *testing.T, c interface{ RGBA() (r, g, b, a uint32) }, r, g, b uint8) {
	t.Helper()
	cr, cg, cb, _ := c.RGBA()
	const tol = 2
	if diff(uint8(cr>>8), r) > tol || diff(uint8(cg>>8), g) > tol || diff(uint8(cb>>8), b) > tol {
		t.Errorf("color = (%d, %d, %d), want (%d, %d, %d)", cr>>8, cg>>8, cb>>8, r, g, b)
	}
}

func diff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
