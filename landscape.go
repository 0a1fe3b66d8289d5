package village

// Road band and the stretch where it crosses the river.
const (
	roadBottom  = -205.0
	roadTop     = -165.0
	bridgeLeft  = 0.0
	bridgeRight = 200.0
)

func (p *painter) ground() {
	p.poly(grassGreen, pts{{X: -450, Y: -250}, {X: 450, Y: -250}, {X: 450, Y: 50}, {X: -450, Y: 50}})
}

func (p *painter) river() {
	p.poly(riverBlue, pts{{X: 50, Y: 50}, {X: 0, Y: -100}, {X: 150, Y: -100}, {X: 200, Y: 50}})
	p.poly(riverBlue, pts{{X: 50, Y: -100}, {X: 0, Y: -250}, {X: 150, Y: -250}, {X: 200, Y: -100}})
	p.poly(riverBlue, pts{{X: -490, Y: -50}, {X: -450, Y: 50}, {X: 450, Y: 50}, {X: 450, Y: -50}})
}

func (p *painter) hills() {
	p.poly(hillDark, pts{{X: -490, Y: 50}, {X: -50, Y: 50}, {X: -150, Y: 200}})
	p.poly(hillLight, pts{{X: -100, Y: 50}, {X: 100, Y: 50}, {X: 0, Y: 200}})
	p.poly(hillDark, pts{{X: 50, Y: 50}, {X: 470, Y: 50}, {X: 150, Y: 200}})
}

// road lays an asphalt band across the pasture with a dashed centre line.
func (p *painter) road() {
	p.poly(roadGray, pts{{X: -450, Y: roadBottom}, {X: 450, Y: roadBottom}, {X: 450, Y: roadTop}, {X: -450, Y: roadTop}})

	mid := (roadBottom + roadTop) / 2
	for x := -440.0; x < 450; x += 60 {
		p.poly(laneWhite, pts{{X: x, Y: mid - 1.5}, {X: x + 30, Y: mid - 1.5}, {X: x + 30, Y: mid + 1.5}, {X: x, Y: mid + 1.5}})
	}
}

// bridge puts railings and posts where the road crosses the river.
func (p *painter) bridge() {
	for _, y := range []float64{roadBottom, roadTop} {
		p.poly(railBrown, pts{{X: bridgeLeft, Y: y - 2}, {X: bridgeRight, Y: y - 2}, {X: bridgeRight, Y: y + 4}, {X: bridgeLeft, Y: y + 4}})
	}
	for x := bridgeLeft; x <= bridgeRight; x += 25 {
		p.poly(railBrown, pts{{X: x, Y: roadTop}, {X: x + 4, Y: roadTop}, {X: x + 4, Y: roadTop + 12}, {X: x, Y: roadTop + 12}})
	}
}
