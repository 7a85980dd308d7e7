package shape

import "github.com/shapesapp/shapes/internal/geom"

// Ellipse is inscribed in the box at Position (top-left) with the given size.
type Ellipse struct {
	Paint
	Position geom.Vec2
	Width    float64
	Height   float64
	Rotation float64
}

func NewEllipse(pos geom.Vec2, width, height float64) *Ellipse {
	return &Ellipse{Paint: DefaultPaint(), Position: pos, Width: width, Height: height}
}

func (e *Ellipse) Kind() Kind { return KindEllipse }

func (e *Ellipse) Draw(cv Canvas, selected bool) {
	cv.Ellipse(e.Center(), e.Width/2, e.Height/2, e.Rotation, e.style(selected))
}

func (e *Ellipse) Move(delta geom.Vec2) {
	e.Position = e.Position.Add(delta)
}

func (e *Ellipse) Resize(factor float64) {
	e.Width *= factor
	e.Height *= factor
}

func (e *Ellipse) Clone() Shape {
	cp := *e
	return &cp
}

func (e *Ellipse) Bounds() geom.Rect {
	return geom.Rect{X: e.Position.X, Y: e.Position.Y, Width: e.Width, Height: e.Height}
}

// Center returns the center of the bounding box.
func (e *Ellipse) Center() geom.Vec2 {
	return e.Bounds().Center()
}

// Radii returns the semi-axes.
func (e *Ellipse) Radii() (rx, ry float64) {
	return e.Width / 2, e.Height / 2
}
