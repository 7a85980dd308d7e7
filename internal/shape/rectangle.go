package shape

import "github.com/shapesapp/shapes/internal/geom"

// Rectangle is positioned by its top-left corner. Rotation (degrees) is applied
// about the center when drawing only.
type Rectangle struct {
	Paint
	Position geom.Vec2
	Width    float64
	Height   float64
	Rotation float64
}

func NewRectangle(pos geom.Vec2, width, height float64) *Rectangle {
	return &Rectangle{Paint: DefaultPaint(), Position: pos, Width: width, Height: height}
}

func (r *Rectangle) Kind() Kind { return KindRectangle }

func (r *Rectangle) Draw(cv Canvas, selected bool) {
	cv.Rect(r.Position, r.Width, r.Height, r.Rotation, r.style(selected))
}

func (r *Rectangle) Move(delta geom.Vec2) {
	r.Position = r.Position.Add(delta)
}

func (r *Rectangle) Resize(factor float64) {
	r.Width *= factor
	r.Height *= factor
}

func (r *Rectangle) Clone() Shape {
	cp := *r
	return &cp
}

func (r *Rectangle) Bounds() geom.Rect {
	return geom.Rect{X: r.Position.X, Y: r.Position.Y, Width: r.Width, Height: r.Height}
}
