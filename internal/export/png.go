package export

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"

	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/render"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/shape"
)

// rasterCanvas draws shapes onto a gg context. The first rendering error is
// kept and reported by the caller.
type rasterCanvas struct {
	dc  *gg.Context
	err error
}

var _ shape.Canvas = (*rasterCanvas)(nil)

func (c *rasterCanvas) Rect(pos geom.Vec2, width, height, rotation float64, st shape.Style) {
	c.dc.Push()
	defer c.dc.Pop()
	if rotation != 0 {
		c.dc.RotateAbout(geom.Radians(rotation), pos.X+width/2, pos.Y+height/2)
	}
	c.dc.DrawRectangle(pos.X, pos.Y, width, height)
	c.paint(st)
}

func (c *rasterCanvas) Ellipse(center geom.Vec2, rx, ry, rotation float64, st shape.Style) {
	c.dc.Push()
	defer c.dc.Pop()
	if rotation != 0 {
		c.dc.RotateAbout(geom.Radians(rotation), center.X, center.Y)
	}
	c.dc.DrawEllipse(center.X, center.Y, rx, ry)
	c.paint(st)
}

func (c *rasterCanvas) Circle(center geom.Vec2, r float64, st shape.Style) {
	c.dc.DrawCircle(center.X, center.Y, r)
	c.paint(st)
}

func (c *rasterCanvas) Polygon(pts []geom.Vec2, st shape.Style) {
	if len(pts) == 0 {
		return
	}
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	c.paint(st)
}

func (c *rasterCanvas) Line(a, b geom.Vec2, st shape.Style) {
	st.HasFill = false
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.paint(st)
}

func (c *rasterCanvas) paint(st shape.Style) {
	if st.HasFill {
		c.dc.SetColor(st.Fill)
		c.check(c.dc.FillPreserve())
	}
	c.dc.SetColor(st.Stroke)
	c.dc.SetLineWidth(st.StrokeWidth)
	if st.Dashed {
		c.dc.SetDash(render.DashPattern...)
	} else {
		c.dc.ClearDash()
	}
	c.check(c.dc.Stroke())
}

func (c *rasterCanvas) check(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

// PNG rasterizes the scene onto a width x height image filled with bg.
func PNG(w io.Writer, sc *scene.Scene, width, height int, bg shape.Color) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render png: invalid size %dx%d", width, height)
	}

	dc := gg.NewContext(width, height)
	defer dc.Close()
	dc.ClearWithColor(gg.FromColor(bg))

	c := &rasterCanvas{dc: dc}
	sc.Draw(c, nil)
	if c.err != nil {
		return fmt.Errorf("render png: %w", c.err)
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
