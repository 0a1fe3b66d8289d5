package village

func (p *painter) boat(x float64) {
	p.poly(hullBlack, pts{{X: 75 + x, Y: -30}, {X: 150 + x, Y: -30}, {X: 175 + x, Y: 0}, {X: 50 + x, Y: 0}})
	p.poly(peru, pts{{X: 75 + x, Y: 0}, {X: 150 + x, Y: 0}, {X: 140 + x, Y: 30}, {X: 85 + x, Y: 30}})
	p.poly(sienna, pts{{X: 110 + x, Y: 30}, {X: 120 + x, Y: 30}, {X: 120 + x, Y: 60}, {X: 110 + x, Y: 60}})
	p.poly(sailPurple, pts{{X: 85 + x, Y: 40}, {X: 140 + x, Y: 40}, {X: 140 + x, Y: 125}, {X: 85 + x, Y: 125}})
}
