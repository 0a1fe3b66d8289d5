package village

func (p *painter) houses() {
	// Right house.
	p.poly(chocolate, pts{{X: -150, Y: -30}, {X: -50, Y: -30}, {X: -75, Y: 20}, {X: -120, Y: 20}})
	p.poly(sandyBrown, pts{{X: -150, Y: -80}, {X: -65, Y: -80}, {X: -65, Y: -30}, {X: -150, Y: -30}})
	p.poly(sienna, pts{{X: -150, Y: -80}, {X: -60, Y: -80}, {X: -60, Y: -90}, {X: -150, Y: -90}})
	p.poly(sienna, pts{{X: -110, Y: -80}, {X: -85, Y: -80}, {X: -85, Y: -50}, {X: -110, Y: -50}})

	// Left house.
	p.poly(sienna, pts{{X: -250, Y: -30}, {X: -115, Y: -30}, {X: -140, Y: 20}, {X: -225, Y: 20}})
	p.poly(navajoWhite, pts{{X: -240, Y: -30}, {X: -200, Y: -30}, {X: -225, Y: 5}})
	p.poly(navajoWhite, pts{{X: -240, Y: -100}, {X: -200, Y: -100}, {X: -200, Y: -30}, {X: -240, Y: -30}})
	p.poly(burlyWood, pts{{X: -200, Y: -100}, {X: -125, Y: -100}, {X: -125, Y: -30}, {X: -200, Y: -30}})
	p.poly(sienna, pts{{X: -240, Y: -100}, {X: -125, Y: -100}, {X: -125, Y: -110}, {X: -240, Y: -110}})
	p.poly(sienna, pts{{X: -175, Y: -100}, {X: -155, Y: -100}, {X: -155, Y: -55}, {X: -175, Y: -55}})
	p.poly(sienna, pts{{X: -230, Y: -50}, {X: -215, Y: -50}, {X: -215, Y: -75}, {X: -230, Y: -75}})
}

func (p *painter) tree() {
	p.poly(saddleBrown, pts{{X: -200, Y: -100}, {X: -180, Y: -100}, {X: -180, Y: 50}, {X: -200, Y: 50}})

	p.ellipse(leafGreen, 30, 40, -215, 70)
	p.ellipse(leafGreen, 30, 40, -165, 70)
	p.ellipse(leafGreen, 25, 30, -205, 120)
	p.ellipse(leafGreen, 30, 30, -180, 120)
	p.ellipse(leafGreen, 25, 30, -195, 150)
}

const (
	sunX, sunY = -75.0, 200.0
	haloBase   = 36.0
)

func (p *painter) sun() {
	p.ellipse(sunGold, 25, 30, sunX, sunY)
}

// sunHalo draws two shimmering rings around the sun. Their radii breathe
// with the wind phase.
func (p *painter) sunHalo(phase float64) {
	if p.err != nil {
		return
	}
	r := haloBase + 2*sinPulse(phase, 2)
	p.circle(sunHalo, sunX, sunY, r)
	p.circle(sunHalo, sunX, sunY, r+5)
}
