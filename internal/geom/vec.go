// Package geom holds the value types and formulas shared by shapes, the scene
// and the interaction controller. Coordinates are screen pixels with y down.
package geom

import "math"

// Vec2 is a 2D point or offset. It is a plain value; methods never mutate.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2       { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2       { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Neg() Vec2             { return Vec2{-v.X, -v.Y} }
func (v Vec2) Scale(f float64) Vec2  { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) IsZero() bool          { return v.X == 0 && v.Y == 0 }
func (v Vec2) Dot(o Vec2) float64    { return v.X*o.X + v.Y*o.Y }
func (v Vec2) DistSq(o Vec2) float64 { return v.Sub(o).Dot(v.Sub(o)) }
func (v Vec2) Dist(o Vec2) float64   { return math.Sqrt(v.DistSq(o)) }

// ScaleAbout scales v relative to anchor by factor.
func (v Vec2) ScaleAbout(anchor Vec2, factor float64) Vec2 {
	return anchor.Add(v.Sub(anchor).Scale(factor))
}

// Centroid returns the arithmetic mean of the points.
func Centroid(pts ...Vec2) Vec2 {
	if len(pts) == 0 {
		return Vec2{}
	}
	var sum Vec2
	for _, p := range pts {
		sum = sum.Add(p)
	}
	n := float64(len(pts))
	return Vec2{sum.X / n, sum.Y / n}
}
