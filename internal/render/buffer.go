package render

import (
	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/shape"
)

// Buffer is a shape.Canvas that records draw commands in painter's order.
type Buffer struct {
	commands []DrawCommand
	bounds   geom.Rect
}

var _ shape.Canvas = (*Buffer)(nil)

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Rect(pos geom.Vec2, width, height, rotation float64, st shape.Style) {
	center := pos.Add(geom.V(width/2, height/2))
	m := geom.RotateAbout(center, rotation).Multiply(geom.Translate(pos.X, pos.Y))
	b.emit(m, rectPath(width, height), st, true)
}

func (b *Buffer) Ellipse(center geom.Vec2, rx, ry, rotation float64, st shape.Style) {
	m := geom.Translate(center.X, center.Y).Multiply(geom.RotateDegrees(rotation))
	b.emit(m, ellipsePath(rx, ry), st, true)
}

func (b *Buffer) Circle(center geom.Vec2, r float64, st shape.Style) {
	b.emit(geom.Translate(center.X, center.Y), ellipsePath(r, r), st, true)
}

func (b *Buffer) Polygon(pts []geom.Vec2, st shape.Style) {
	b.emit(geom.Identity(), polylinePath(pts, true), st, true)
}

func (b *Buffer) Line(a, c geom.Vec2, st shape.Style) {
	st.HasFill = false
	b.emit(geom.Identity(), polylinePath([]geom.Vec2{a, c}, false), st, false)
}

func (b *Buffer) emit(m geom.Matrix2D, path []PathCommand, st shape.Style, closed bool) {
	if len(path) == 0 {
		return
	}
	cmd := DrawCommand{
		Op:          "path",
		Path:        path,
		Stroke:      st.Stroke.CSS(),
		StrokeWidth: st.StrokeWidth,
		Closed:      closed,
	}
	if !m.IsIdentity() {
		cmd.Transform = m.ToSlice()
	}
	if st.HasFill {
		cmd.Fill = st.Fill.CSS()
	}
	if st.Dashed {
		cmd.Dash = DashPattern
	}
	b.commands = append(b.commands, cmd)
	b.bounds = b.bounds.Union(pathBounds(path, m).Inflate(st.StrokeWidth / 2))
}

// Commands returns the recorded commands.
func (b *Buffer) Commands() []DrawCommand {
	return b.commands
}

// Bounds returns the world-space box covering everything drawn so far.
func (b *Buffer) Bounds() geom.Rect {
	return b.bounds
}

// Reset empties the buffer for the next frame.
func (b *Buffer) Reset() {
	b.commands = nil
	b.bounds = geom.Rect{}
}

// JSON serializes the recorded commands.
func (b *Buffer) JSON() (string, error) {
	return DrawCommandsToJSON(b.commands)
}
