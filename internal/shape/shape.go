// Package shape defines the closed set of editable shapes. Adding a kind means
// updating scene hit-testing, editor handles and cursors alongside it.
package shape

import "github.com/shapesapp/shapes/internal/geom"

// Kind discriminates the shape variants.
type Kind string

const (
	KindCircle    Kind = "circle"
	KindRectangle Kind = "rectangle"
	KindEllipse   Kind = "ellipse"
	KindTriangle  Kind = "triangle"
	KindLine      Kind = "line"
)

// Valid reports whether k names a known variant.
func (k Kind) Valid() bool {
	switch k {
	case KindCircle, KindRectangle, KindEllipse, KindTriangle, KindLine:
		return true
	}
	return false
}

// Shape is implemented by *Circle, *Rectangle, *Ellipse, *Triangle and
// *LineSegment. Shapes have identity: the scene and commands hold pointers.
type Shape interface {
	Kind() Kind
	Draw(c Canvas, selected bool)
	Move(delta geom.Vec2)
	Resize(factor float64)
	Clone() Shape
	Bounds() geom.Rect

	FillColor() Color
	SetFillColor(Color)
	StrokeColor() Color
	SetStrokeColor(Color)
}

// Paint holds the colors every shape carries.
type Paint struct {
	Fill   Color
	Stroke Color
}

// DefaultPaint returns the light-gray fill and black stroke new shapes get.
func DefaultPaint() Paint {
	return Paint{Fill: DefaultFill, Stroke: DefaultStroke}
}

func (p *Paint) FillColor() Color       { return p.Fill }
func (p *Paint) SetFillColor(c Color)   { p.Fill = c }
func (p *Paint) StrokeColor() Color     { return p.Stroke }
func (p *Paint) SetStrokeColor(c Color) { p.Stroke = c }

func (p *Paint) style(selected bool) Style {
	return Style{Fill: p.Fill, Stroke: p.Stroke, HasFill: true, StrokeWidth: outlineWidth(selected)}
}

// Rotation returns a shape's stored rotation in degrees. Only rectangles and
// ellipses store one; other kinds rotate their points directly and report 0.
func Rotation(s Shape) float64 {
	switch v := s.(type) {
	case *Rectangle:
		return v.Rotation
	case *Ellipse:
		return v.Rotation
	}
	return 0
}
