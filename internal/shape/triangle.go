package shape

import "github.com/shapesapp/shapes/internal/geom"

// Triangle is defined by its three vertices. It has no rotation field;
// rotating moves the vertices.
type Triangle struct {
	Paint
	P1, P2, P3 geom.Vec2
}

func NewTriangle(p1, p2, p3 geom.Vec2) *Triangle {
	return &Triangle{Paint: DefaultPaint(), P1: p1, P2: p2, P3: p3}
}

func (t *Triangle) Kind() Kind { return KindTriangle }

func (t *Triangle) Draw(cv Canvas, selected bool) {
	cv.Polygon([]geom.Vec2{t.P1, t.P2, t.P3}, t.style(selected))
}

func (t *Triangle) Move(delta geom.Vec2) {
	t.P1 = t.P1.Add(delta)
	t.P2 = t.P2.Add(delta)
	t.P3 = t.P3.Add(delta)
}

// Resize scales each vertex about the centroid.
func (t *Triangle) Resize(factor float64) {
	c := t.Centroid()
	t.P1 = t.P1.ScaleAbout(c, factor)
	t.P2 = t.P2.ScaleAbout(c, factor)
	t.P3 = t.P3.ScaleAbout(c, factor)
}

func (t *Triangle) Clone() Shape {
	cp := *t
	return &cp
}

func (t *Triangle) Bounds() geom.Rect {
	return geom.RectFromPoints(t.P1, t.P2, t.P3)
}

func (t *Triangle) Centroid() geom.Vec2 {
	return geom.Centroid(t.P1, t.P2, t.P3)
}
