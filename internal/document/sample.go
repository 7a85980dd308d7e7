package document

import (
	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/shape"
)

// NewSampleScene returns one shape of every kind.
func NewSampleScene() *scene.Scene {
	circle := shape.NewCircle(geom.V(140, 140), 60)
	circle.Fill = shape.ARGB(255, 100, 149, 237)

	rect := shape.NewRectangle(geom.V(260, 90), 160, 100)
	rect.Fill = shape.ARGB(255, 255, 165, 0)
	rect.Rotation = 15

	ellipse := shape.NewEllipse(geom.V(480, 100), 180, 110)
	ellipse.Fill = shape.ARGB(200, 60, 179, 113)

	tri := shape.NewTriangle(geom.V(200, 300), geom.V(300, 460), geom.V(100, 460))
	tri.Fill = shape.ARGB(255, 220, 20, 60)

	line := shape.NewLineSegment(geom.V(380, 320), geom.V(760, 480))
	line.Stroke = shape.ARGB(255, 75, 0, 130)

	return scene.New(circle, rect, ellipse, tri, line)
}
