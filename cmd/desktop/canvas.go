package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/render"
	"github.com/shapesapp/shapes/internal/shape"
)

const ellipseSegments = 64

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// screenCanvas draws shapes onto an ebiten image with the vector package.
type screenCanvas struct {
	dst *ebiten.Image
}

var _ shape.Canvas = screenCanvas{}

func (c screenCanvas) Rect(pos geom.Vec2, width, height, rotation float64, st shape.Style) {
	m := geom.RotateAbout(geom.V(pos.X+width/2, pos.Y+height/2), rotation)
	pts := []geom.Vec2{
		m.TransformPoint(pos),
		m.TransformPoint(geom.V(pos.X+width, pos.Y)),
		m.TransformPoint(geom.V(pos.X+width, pos.Y+height)),
		m.TransformPoint(geom.V(pos.X, pos.Y+height)),
	}
	c.Polygon(pts, st)
}

func (c screenCanvas) Ellipse(center geom.Vec2, rx, ry, rotation float64, st shape.Style) {
	m := geom.Translate(center.X, center.Y).Multiply(geom.RotateDegrees(rotation))
	pts := make([]geom.Vec2, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts[i] = m.TransformPoint(geom.V(rx*math.Cos(a), ry*math.Sin(a)))
	}
	c.Polygon(pts, st)
}

func (c screenCanvas) Circle(center geom.Vec2, r float64, st shape.Style) {
	cx, cy := float32(center.X), float32(center.Y)
	if st.HasFill {
		vector.DrawFilledCircle(c.dst, cx, cy, float32(r), st.Fill, true)
	}
	vector.StrokeCircle(c.dst, cx, cy, float32(r), float32(st.StrokeWidth), st.Stroke, true)
}

func (c screenCanvas) Polygon(pts []geom.Vec2, st shape.Style) {
	if len(pts) < 2 {
		return
	}
	if st.HasFill {
		var path vector.Path
		path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
		for _, p := range pts[1:] {
			path.LineTo(float32(p.X), float32(p.Y))
		}
		path.Close()
		vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
		c.triangles(vs, is, st.Fill)
	}

	if st.Dashed {
		for i := range pts {
			c.dashed(pts[i], pts[(i+1)%len(pts)], st)
		}
		return
	}
	var outline vector.Path
	outline.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		outline.LineTo(float32(p.X), float32(p.Y))
	}
	outline.Close()
	vs, is := outline.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(st.StrokeWidth),
		LineJoin: vector.LineJoinMiter,
	})
	c.triangles(vs, is, st.Stroke)
}

func (c screenCanvas) Line(a, b geom.Vec2, st shape.Style) {
	if st.Dashed {
		c.dashed(a, b, st)
		return
	}
	vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(st.StrokeWidth), st.Stroke, true)
}

// dashed strokes a-b in the shared dash pattern.
func (c screenCanvas) dashed(a, b geom.Vec2, st shape.Style) {
	on, off := render.DashPattern[0], render.DashPattern[1]
	length := a.Dist(b)
	if length == 0 {
		return
	}
	dir := b.Sub(a).Scale(1 / length)
	for t := 0.0; t < length; t += on + off {
		p := a.Add(dir.Scale(t))
		q := a.Add(dir.Scale(math.Min(t+on, length)))
		vector.StrokeLine(c.dst, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), float32(st.StrokeWidth), st.Stroke, true)
	}
}

func (c screenCanvas) triangles(vs []ebiten.Vertex, is []uint16, col shape.Color) {
	r, g, b, a := float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(col.A)/255
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	c.dst.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
