package shape

import "github.com/shapesapp/shapes/internal/geom"

// Circle is centered on Position.
type Circle struct {
	Paint
	Position geom.Vec2
	Radius   float64
}

func NewCircle(center geom.Vec2, radius float64) *Circle {
	return &Circle{Paint: DefaultPaint(), Position: center, Radius: radius}
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) Draw(cv Canvas, selected bool) {
	cv.Circle(c.Position, c.Radius, c.style(selected))
}

func (c *Circle) Move(delta geom.Vec2) {
	c.Position = c.Position.Add(delta)
}

// Resize scales the radius; the center stays put.
func (c *Circle) Resize(factor float64) {
	c.Radius *= factor
}

func (c *Circle) Clone() Shape {
	cp := *c
	return &cp
}

func (c *Circle) Bounds() geom.Rect {
	return geom.Rect{
		X:      c.Position.X - c.Radius,
		Y:      c.Position.Y - c.Radius,
		Width:  c.Radius * 2,
		Height: c.Radius * 2,
	}
}
