package shape

import "github.com/shapesapp/shapes/internal/geom"

// Style describes how a primitive is painted.
type Style struct {
	Fill        Color
	Stroke      Color
	HasFill     bool
	StrokeWidth float64
	Dashed      bool
}

// Canvas is the drawing surface shapes render onto. Rotations are in degrees,
// clockwise on screen, about the primitive's center.
type Canvas interface {
	Rect(pos geom.Vec2, width, height, rotation float64, st Style)
	Ellipse(center geom.Vec2, rx, ry, rotation float64, st Style)
	Circle(center geom.Vec2, r float64, st Style)
	Polygon(pts []geom.Vec2, st Style)
	Line(a, b geom.Vec2, st Style)
}

func outlineWidth(selected bool) float64 {
	if selected {
		return 3
	}
	return 1
}
