package geom

import "math"

// DistanceToSegment returns the Euclidean distance from p to the closest point
// of segment ab. A zero-length segment degrades to the distance to a.
func DistanceToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq == 0 {
		return p.Dist(a)
	}
	ap := p.Sub(a)
	t := (ap.X*ab.X + ap.Y*ab.Y) / lenSq
	t = max(0, min(1, t))
	return p.Dist(a.Add(ab.Scale(t)))
}

// NearSegment reports whether p lies within tol of segment ab.
func NearSegment(p, a, b Vec2, tol float64) bool {
	return DistanceToSegment(p, a, b) <= tol
}

func sign(p1, p2, p3 Vec2) float64 {
	return (p1.X-p3.X)*(p2.Y-p3.Y) - (p2.X-p3.X)*(p1.Y-p3.Y)
}

// PointInTriangle uses the edge sign test: p is inside unless it lies strictly
// on opposite sides of two edges. Points on an edge count as inside.
func PointInTriangle(p, a, b, c Vec2) bool {
	d1 := sign(p, a, b)
	d2 := sign(p, b, c)
	d3 := sign(p, c, a)

	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0

	return !(hasNeg && hasPos)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Atan2Deg is math.Atan2 in degrees.
func Atan2Deg(y, x float64) float64 {
	return math.Atan2(y, x) * 180 / math.Pi
}

// NormalizeDeg maps an angle into (-180, 180].
func NormalizeDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a <= -180 {
		a += 360
	} else if a > 180 {
		a -= 360
	}
	return a
}

// RotatePoint rotates p around center by deg (clockwise on screen).
func RotatePoint(p, center Vec2, deg float64) Vec2 {
	rad := Radians(deg)
	cos, sin := math.Cos(rad), math.Sin(rad)
	d := p.Sub(center)
	return Vec2{
		X: center.X + d.X*cos - d.Y*sin,
		Y: center.Y + d.X*sin + d.Y*cos,
	}
}
