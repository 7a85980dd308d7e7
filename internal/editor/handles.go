package editor

import (
	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/shape"
)

// Handle geometry in pixels.
const (
	HandleSize           = 8.0
	RotationHandleRadius = 7.0
	RotationHandleOffset = 22.0
)

// ResizeHandles returns the hit boxes for s in handle-index order:
// rectangle and ellipse TL, TR, BL, BR; circle right, left, bottom, top;
// triangle one per vertex; line start then end.
func ResizeHandles(s shape.Shape) []geom.Rect {
	var pts []geom.Vec2
	switch v := s.(type) {
	case *shape.Rectangle, *shape.Ellipse:
		c := v.Bounds().Corners()
		pts = c[:]
	case *shape.Circle:
		p, r := v.Position, v.Radius
		pts = []geom.Vec2{
			{X: p.X + r, Y: p.Y},
			{X: p.X - r, Y: p.Y},
			{X: p.X, Y: p.Y + r},
			{X: p.X, Y: p.Y - r},
		}
	case *shape.Triangle:
		pts = []geom.Vec2{v.P1, v.P2, v.P3}
	case *shape.LineSegment:
		pts = []geom.Vec2{v.Position, v.End}
	}
	boxes := make([]geom.Rect, len(pts))
	for i, p := range pts {
		boxes[i] = geom.CenteredRect(p, HandleSize)
	}
	return boxes
}

// RotationHandleCenter sits above the middle of the bounding box's top edge.
func RotationHandleCenter(s shape.Shape) geom.Vec2 {
	return s.Bounds().TopCenter().Sub(geom.V(0, RotationHandleOffset))
}

func onRotationHandle(s shape.Shape, p geom.Vec2) bool {
	return p.DistSq(RotationHandleCenter(s)) <= RotationHandleRadius*RotationHandleRadius
}

// handleAt returns the index of the resize handle under p, or -1.
func handleAt(s shape.Shape, p geom.Vec2) int {
	for i, h := range ResizeHandles(s) {
		if h.Contains(p) {
			return i
		}
	}
	return -1
}

func handleCursor(s shape.Shape, i int) Cursor {
	switch s.(type) {
	case *shape.Rectangle, *shape.Ellipse:
		switch i {
		case 0, 3:
			return CursorResizeNWSE
		case 1, 2:
			return CursorResizeNESW
		}
	case *shape.Circle:
		switch i {
		case 0, 1:
			return CursorResizeWE
		case 2, 3:
			return CursorResizeNS
		}
	case *shape.Triangle, *shape.LineSegment:
		return CursorResizeAll
	}
	return CursorDefault
}

// oppositeCorner returns the corner of b that stays fixed while handle i of a
// rectangle or ellipse is dragged.
func oppositeCorner(b geom.Rect, i int) geom.Vec2 {
	c := b.Corners()
	switch i {
	case 0:
		return c[3]
	case 1:
		return c[2]
	case 2:
		return c[1]
	}
	return c[0]
}

// points returns the literal point fields of shapes that rotate and resize by
// moving points, or nil for the others.
func points(s shape.Shape) []geom.Vec2 {
	switch v := s.(type) {
	case *shape.Triangle:
		return []geom.Vec2{v.P1, v.P2, v.P3}
	case *shape.LineSegment:
		return []geom.Vec2{v.Position, v.End}
	}
	return nil
}

func setPoint(s shape.Shape, i int, p geom.Vec2) {
	switch v := s.(type) {
	case *shape.Triangle:
		switch i {
		case 0:
			v.P1 = p
		case 1:
			v.P2 = p
		case 2:
			v.P3 = p
		}
	case *shape.LineSegment:
		switch i {
		case 0:
			v.Position = p
		case 1:
			v.End = p
		}
	}
}
