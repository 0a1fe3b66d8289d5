package village

// Car geometry, relative to the rear bumper at x and the axle line.
const (
	carAxle   = -190.0
	carLength = 92.0
	wheelR    = 8.0
	hubR      = 3.0
)

// car draws a small hatchback heading right with its rear bumper at x.
func (p *painter) car(x float64) {
	y := carAxle
	p.poly(carRed, pts{{X: x, Y: y + 2}, {X: x + carLength, Y: y + 2}, {X: x + carLength, Y: y + 16}, {X: x + 4, Y: y + 20}, {X: x, Y: y + 18}})
	p.poly(carDarkRed, pts{{X: x + 18, Y: y + 18}, {X: x + 70, Y: y + 18}, {X: x + 60, Y: y + 34}, {X: x + 26, Y: y + 34}})
	p.poly(glassBlue, pts{{X: x + 24, Y: y + 20}, {X: x + 42, Y: y + 20}, {X: x + 42, Y: y + 31}, {X: x + 28, Y: y + 31}})
	p.poly(glassBlue, pts{{X: x + 46, Y: y + 20}, {X: x + 66, Y: y + 20}, {X: x + 58, Y: y + 31}, {X: x + 46, Y: y + 31}})
	p.poly(lampYellow, pts{{X: x + carLength - 5, Y: y + 10}, {X: x + carLength, Y: y + 10}, {X: x + carLength, Y: y + 15}, {X: x + carLength - 5, Y: y + 15}})

	if p.err != nil {
		return
	}
	for _, wx := range []float64{x + 20, x + carLength - 20} {
		p.disc(tyreBlack, wx, y, wheelR)
		p.circle(hubSilver, wx, y, hubR)
		p.circle(hubSilver, wx, y, hubR+2)
	}
}
