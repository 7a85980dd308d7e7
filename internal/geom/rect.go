package geom

// Rect represents an axis-aligned bounding box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// RectFromPoints returns the smallest rect containing every point.
func RectFromPoints(pts ...Vec2) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// CenteredRect returns a size×size square centered on c.
func CenteredRect(c Vec2, size float64) Rect {
	return Rect{X: c.X - size/2, Y: c.Y - size/2, Width: size, Height: size}
}

// Contains checks if a point is inside the rect. Edges are inclusive.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// IsEmpty checks if the rect has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rect containing both rects.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	minX := min(r.X, other.X)
	minY := min(r.Y, other.Y)
	maxX := max(r.X+r.Width, other.X+other.Width)
	maxY := max(r.Y+r.Height, other.Y+other.Height)

	return Rect{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Inflate grows the rect by d on every side.
func (r Rect) Inflate(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Center returns the center point of the rect.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// TopCenter returns the midpoint of the top edge.
func (r Rect) TopCenter() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y}
}

// Corners returns the corners in TL, TR, BL, BR order.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{
		{r.X, r.Y},
		{r.X + r.Width, r.Y},
		{r.X, r.Y + r.Height},
		{r.X + r.Width, r.Y + r.Height},
	}
}
