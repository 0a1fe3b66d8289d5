package village

import "math"

// Cow placement: body centre in the left pasture, clear of road and house.
const (
	cowX = -370.0
	cowY = -115.0
)

// cow draws a grazing cow with layered shading to fake depth: a ground
// shadow, far legs set back and darker, a shaded body under a lit body, and
// near legs in front. The head bobs and the tail swings with the wind.
func (p *painter) cow(phase float64) {
	x, y := cowX, cowY
	bob := 2 * math.Sin(phase*1.5)

	p.ellipse(grassShadow, 48, 7, x+6, y-40)

	// Far legs: offset back and up, in shade.
	for _, lx := range []float64{x - 26, x + 22} {
		p.poly(cowShade, pts{{X: lx + 6, Y: y - 37}, {X: lx + 14, Y: y - 37}, {X: lx + 14, Y: y - 10}, {X: lx + 6, Y: y - 10}})
		p.poly(hoofGray, pts{{X: lx + 6, Y: y - 40}, {X: lx + 14, Y: y - 40}, {X: lx + 14, Y: y - 35}, {X: lx + 6, Y: y - 35}})
	}

	p.ellipse(cowShade, 42, 21, x, y)
	p.ellipse(cowWhite, 38, 17, x-3, y+3)
	p.ellipse(cowHighlite, 18, 6, x-8, y+12)
	p.ellipse(cowSpot, 9, 7, x-18, y+4)
	p.ellipse(cowSpot, 7, 9, x+12, y-2)
	p.ellipse(cowSpot, 5, 4, x-2, y+11)
	p.ellipse(cowPink, 7, 4, x+8, y-17)

	// Near legs.
	for _, lx := range []float64{x - 30, x + 18} {
		p.poly(cowWhite, pts{{X: lx, Y: y - 42}, {X: lx + 9, Y: y - 42}, {X: lx + 9, Y: y - 12}, {X: lx, Y: y - 12}})
		p.poly(hoofGray, pts{{X: lx, Y: y - 45}, {X: lx + 9, Y: y - 45}, {X: lx + 9, Y: y - 40}, {X: lx, Y: y - 40}})
	}

	// Head, lowered towards the grass.
	hx, hy := x+50, y-4+bob
	p.poly(cowWhite, pts{{X: x + 30, Y: y + 12}, {X: hx - 6, Y: hy + 10}, {X: hx - 6, Y: hy - 8}, {X: x + 30, Y: y - 8}})
	p.ellipse(cowShade, 14, 12, hx+2, hy-1)
	p.ellipse(cowWhite, 12, 11, hx, hy)
	p.ellipse(cowPink, 8, 6, hx+8, hy-7)
	p.poly(cowSpot, pts{{X: hx - 10, Y: hy + 8}, {X: hx - 20, Y: hy + 14}, {X: hx - 8, Y: hy + 12}})
	p.poly(hoofGray, pts{{X: hx - 2, Y: hy + 10}, {X: hx - 6, Y: hy + 19}, {X: hx + 1, Y: hy + 11}})
	p.poly(hoofGray, pts{{X: hx + 4, Y: hy + 10}, {X: hx + 7, Y: hy + 19}, {X: hx + 7, Y: hy + 10}})

	if p.err != nil {
		return
	}
	p.disc(cowSpot, hx+3, hy+3, 1.5)

	// Tail hangs from the rump and swings.
	swing := 15 * math.Sin(phase*3)
	tip := rotate(x-44, y-26, x-40, y+8, swing)
	p.line(cowSpot, x-40, y+8, tip.X, tip.Y, 2)
	p.disc(cowSpot, tip.X, tip.Y, 2.5)
}
