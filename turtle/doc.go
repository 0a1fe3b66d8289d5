// Package turtle implements a turtle-graphics pen on top of a gg drawing
// surface.
//
// The turtle works in world coordinates: the origin is the centre of the
// surface, x grows to the right and y grows upwards. Every Goto is mapped to
// pixel space before it reaches the surface.
//
//	dc := gg.NewContext(900, 500)
//	t := turtle.New(dc)
//	t.SetColor(gg.RGB(0, 1, 0))
//	_ = t.Polygon([]turtle.Point{{-450, -250}, {450, -250}, {450, 50}, {-450, 50}})
//
// A Turtle is not safe for concurrent use.
package turtle
