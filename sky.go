package village

func (p *painter) clouds(x float64) {
	p.ellipse(cloudWhite, 20, 30, 210+x, 210)
	p.ellipse(cloudWhite, 15, 20, 195+x, 210)
	p.ellipse(cloudWhite, 15, 20, 225+x, 210)

	p.ellipse(cloudWhite, 20, 30, 140+x, 170)
	p.ellipse(cloudWhite, 15, 20, 155+x, 170)
	p.ellipse(cloudWhite, 15, 20, 125+x, 170)
}

// Half wingspan and wing tip lift, in world units.
const (
	wingSpan = 9.0
	wingUp   = 6.0
	wingDown = -3.0
)

// birds draws each bird as a two-stroke "v" whose tips flap with the wind.
func (p *painter) birds(bs []Bird, up bool) {
	if p.err != nil {
		return
	}
	lift := wingDown
	if up {
		lift = wingUp
	}
	for _, b := range bs {
		p.line(birdBlack, b.X-wingSpan, b.Y+lift, b.X, b.Y, 2)
		p.line(birdBlack, b.X, b.Y, b.X+wingSpan, b.Y+lift, 2)
	}
}
