package editor

import (
	"math"

	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/shape"
)

// Mode names the active gesture.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeResizing
	ModeRotating
)

func (m Mode) String() string {
	switch m {
	case ModeDragging:
		return "dragging"
	case ModeResizing:
		return "resizing"
	case ModeRotating:
		return "rotating"
	}
	return "idle"
}

// gesture is the scratch state of one pointer-down/move/up interaction.
// Exactly one is active at a time.
type gesture interface {
	mode() Mode
}

type idle struct{}

// dragging moves the whole shape live by incremental deltas.
type dragging struct {
	target shape.Shape
	start  geom.Vec2
	last   geom.Vec2
}

// resizing drags one handle. startRadius applies to circles, anchor to
// rectangles and ellipses, startPoints to triangles and lines.
type resizing struct {
	target      shape.Shape
	handle      int
	startMouse  geom.Vec2
	startRadius float64
	anchor      geom.Vec2
	startPoints []geom.Vec2
}

// rotating turns the shape about its bounding-box center. Rectangles and
// ellipses offset startRotation; triangles and lines rotate startPoints.
type rotating struct {
	target        shape.Shape
	center        geom.Vec2
	startAngle    float64
	startRotation float64
	startPoints   []geom.Vec2
}

func (idle) mode() Mode     { return ModeIdle }
func (dragging) mode() Mode { return ModeDragging }
func (resizing) mode() Mode { return ModeResizing }
func (rotating) mode() Mode { return ModeRotating }

func (g *resizing) apply(p geom.Vec2) {
	switch v := g.target.(type) {
	case *shape.Rectangle:
		v.Position, v.Width, v.Height = anchoredBox(g.anchor, p)
	case *shape.Ellipse:
		v.Position, v.Width, v.Height = anchoredBox(g.anchor, p)
	case *shape.Circle:
		v.Radius = max(MinCircleRadius, g.startRadius+(p.X-g.startMouse.X))
	case *shape.Triangle, *shape.LineSegment:
		if g.handle < len(g.startPoints) {
			setPoint(v, g.handle, g.startPoints[g.handle].Add(p.Sub(g.startMouse)))
		}
	}
}

// anchoredBox sizes a box spanning anchor and p, clamped to MinResizeExtent,
// keeping the anchor corner fixed.
func anchoredBox(anchor, p geom.Vec2) (pos geom.Vec2, w, h float64) {
	w = max(MinResizeExtent, math.Abs(p.X-anchor.X))
	h = max(MinResizeExtent, math.Abs(p.Y-anchor.Y))
	pos = anchor
	if p.X < anchor.X {
		pos.X = anchor.X - w
	}
	if p.Y < anchor.Y {
		pos.Y = anchor.Y - h
	}
	return pos, w, h
}

func (g *rotating) apply(p geom.Vec2) {
	d := p.Sub(g.center)
	delta := geom.NormalizeDeg(geom.Atan2Deg(d.Y, d.X) - g.startAngle)
	switch v := g.target.(type) {
	case *shape.Rectangle:
		v.Rotation = geom.NormalizeDeg(g.startRotation + delta)
	case *shape.Ellipse:
		v.Rotation = geom.NormalizeDeg(g.startRotation + delta)
	case *shape.Triangle, *shape.LineSegment:
		for i, sp := range g.startPoints {
			setPoint(v, i, geom.RotatePoint(sp, g.center, delta))
		}
	}
}
