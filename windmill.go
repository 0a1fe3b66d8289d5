package village

// Windmill placement on the right-hand hill.
const (
	millX      = 330.0
	millBase   = 50.0
	millTop    = 150.0
	hubY       = 158.0
	sailLength = 68.0
	sailWidth  = 12.0
	sailInset  = 14.0
	sailCount  = 4
)

// windmillTower draws the static body: tapered tower, door and cap.
func (p *painter) windmillTower() {
	p.poly(millStone, pts{{X: millX - 22, Y: millBase}, {X: millX + 22, Y: millBase}, {X: millX + 14, Y: millTop}, {X: millX - 14, Y: millTop}})
	p.poly(millShade, pts{{X: millX + 6, Y: millBase}, {X: millX + 22, Y: millBase}, {X: millX + 14, Y: millTop}, {X: millX + 4, Y: millTop}})
	p.poly(sparBrown, pts{{X: millX - 7, Y: millBase}, {X: millX + 7, Y: millBase}, {X: millX + 7, Y: millBase + 22}, {X: millX - 7, Y: millBase + 22}})
	p.poly(millRoof, pts{{X: millX - 20, Y: millTop}, {X: millX + 20, Y: millTop}, {X: millX, Y: millTop + 22}})
}

// windmillSails draws four sails rotated by angle degrees about the hub.
// Spars are plotted with the DDA line, the hub with the midpoint circle.
func (p *painter) windmillSails(angle float64) {
	for i := 0; i < sailCount; i++ {
		a := angle + float64(i)*360/sailCount
		p.poly(sailCanvas, pts{
			rotate(millX+sailInset, hubY, millX, hubY, a),
			rotate(millX+sailLength, hubY, millX, hubY, a),
			rotate(millX+sailLength, hubY+sailWidth, millX, hubY, a),
			rotate(millX+sailInset, hubY+sailWidth, millX, hubY, a),
		})
	}
	if p.err != nil {
		return
	}
	for i := 0; i < sailCount; i++ {
		tip := rotate(millX+sailLength, hubY, millX, hubY, angle+float64(i)*360/sailCount)
		p.line(sparBrown, millX, hubY, tip.X, tip.Y, 2)
	}
	p.disc(sparBrown, millX, hubY, 4)
	p.circle(hubSilver, millX, hubY, 4)
}
