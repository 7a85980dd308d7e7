package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/render"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/shape"
)

// vectorCanvas writes shapes to a PDF page whose units are canvas pixels
// expressed as points, so coordinates map one to one.
type vectorCanvas struct {
	pdf *gofpdf.Fpdf
}

var _ shape.Canvas = (*vectorCanvas)(nil)

func (c *vectorCanvas) Rect(pos geom.Vec2, width, height, rotation float64, st shape.Style) {
	c.rotated(geom.V(pos.X+width/2, pos.Y+height/2), rotation, func() {
		c.pdf.Rect(pos.X, pos.Y, width, height, c.style(st))
	})
}

func (c *vectorCanvas) Ellipse(center geom.Vec2, rx, ry, rotation float64, st shape.Style) {
	c.rotated(center, rotation, func() {
		c.pdf.Ellipse(center.X, center.Y, rx, ry, 0, c.style(st))
	})
}

func (c *vectorCanvas) Circle(center geom.Vec2, r float64, st shape.Style) {
	c.pdf.Circle(center.X, center.Y, r, c.style(st))
}

func (c *vectorCanvas) Polygon(pts []geom.Vec2, st shape.Style) {
	if len(pts) == 0 {
		return
	}
	points := make([]gofpdf.PointType, len(pts))
	for i, p := range pts {
		points[i] = gofpdf.PointType{X: p.X, Y: p.Y}
	}
	c.pdf.Polygon(points, c.style(st))
}

func (c *vectorCanvas) Line(a, b geom.Vec2, st shape.Style) {
	st.HasFill = false
	c.style(st)
	c.pdf.Line(a.X, a.Y, b.X, b.Y)
}

// rotated runs draw with the page rotated clockwise by deg about center.
// gofpdf angles run counter-clockwise.
func (c *vectorCanvas) rotated(center geom.Vec2, deg float64, draw func()) {
	if deg == 0 {
		draw()
		return
	}
	c.pdf.TransformBegin()
	c.pdf.TransformRotate(-deg, center.X, center.Y)
	draw()
	c.pdf.TransformEnd()
}

// style applies st to the page and returns the gofpdf style string.
func (c *vectorCanvas) style(st shape.Style) string {
	c.pdf.SetDrawColor(int(st.Stroke.R), int(st.Stroke.G), int(st.Stroke.B))
	c.pdf.SetLineWidth(st.StrokeWidth)
	if st.Dashed {
		c.pdf.SetDashPattern(render.DashPattern, 0)
	} else {
		c.pdf.SetDashPattern([]float64{}, 0)
	}

	alpha := st.Stroke.A
	if st.HasFill {
		c.pdf.SetFillColor(int(st.Fill.R), int(st.Fill.G), int(st.Fill.B))
		alpha = st.Fill.A
	}
	c.pdf.SetAlpha(float64(alpha)/255, "Normal")

	if st.HasFill {
		return "FD"
	}
	return "D"
}

// PDF writes the scene as a single page sized width x height points.
func PDF(w io.Writer, sc *scene.Scene, width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("render pdf: invalid size %vx%v", width, height)
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()

	sc.Draw(&vectorCanvas{pdf: pdf}, nil)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
