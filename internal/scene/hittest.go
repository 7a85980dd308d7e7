package scene

import (
	"math"

	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/shape"
)

// Hit-test slack in pixels.
const (
	EdgeTolerance = 6.0
	LineTolerance = 8.0
)

// FindShapeAt returns the topmost shape under p.
func (sc *Scene) FindShapeAt(p geom.Vec2) (shape.Shape, bool) {
	for i := len(sc.shapes) - 1; i >= 0; i-- {
		if Hit(sc.shapes[i], p) {
			return sc.shapes[i], true
		}
	}
	return nil, false
}

// Hit reports whether p selects s. Stored rotation is ignored.
func Hit(s shape.Shape, p geom.Vec2) bool {
	switch v := s.(type) {
	case *shape.Circle:
		return p.DistSq(v.Position) <= v.Radius*v.Radius
	case *shape.Rectangle:
		return hitRect(v.Bounds(), p)
	case *shape.Ellipse:
		return hitEllipse(v, p)
	case *shape.Triangle:
		if geom.PointInTriangle(p, v.P1, v.P2, v.P3) {
			return true
		}
		return geom.NearSegment(p, v.P1, v.P2, EdgeTolerance) ||
			geom.NearSegment(p, v.P2, v.P3, EdgeTolerance) ||
			geom.NearSegment(p, v.P3, v.P1, EdgeTolerance)
	case *shape.LineSegment:
		return geom.NearSegment(p, v.Position, v.End, LineTolerance)
	}
	return false
}

func hitRect(r geom.Rect, p geom.Vec2) bool {
	if r.Contains(p) {
		return true
	}
	left, right := r.X, r.X+r.Width
	top, bottom := r.Y, r.Y+r.Height
	inX := p.X >= left-EdgeTolerance && p.X <= right+EdgeTolerance
	inY := p.Y >= top-EdgeTolerance && p.Y <= bottom+EdgeTolerance

	nearV := math.Abs(p.X-left) <= EdgeTolerance || math.Abs(p.X-right) <= EdgeTolerance
	nearH := math.Abs(p.Y-top) <= EdgeTolerance || math.Abs(p.Y-bottom) <= EdgeTolerance
	return (nearV && inY) || (nearH && inX)
}

func hitEllipse(e *shape.Ellipse, p geom.Vec2) bool {
	rx, ry := e.Radii()
	if rx <= 0 || ry <= 0 {
		return false
	}
	c := e.Center()
	nx := (p.X - c.X) / rx
	ny := (p.Y - c.Y) / ry
	v := nx*nx + ny*ny
	if v <= 1 {
		return true
	}
	eps := EdgeTolerance * (1/max(rx, 1) + 1/max(ry, 1))
	return math.Abs(v-1) <= eps
}
