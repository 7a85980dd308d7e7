package editor

import (
	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/shape"
)

var (
	handleStyle = shape.Style{Fill: shape.White, Stroke: shape.Black, HasFill: true, StrokeWidth: 1, Dashed: true}
	stemStyle   = shape.Style{Stroke: shape.Gray, StrokeWidth: 1}
	knobStyle   = shape.Style{Fill: shape.White, Stroke: shape.Black, HasFill: true, StrokeWidth: 1}
)

// Draw paints the scene in z-order followed by the selection overlay.
func (e *Editor) Draw(c shape.Canvas) {
	e.scene.Draw(c, e.selected)
	if e.selected == nil {
		return
	}
	for _, h := range ResizeHandles(e.selected) {
		c.Rect(geom.V(h.X, h.Y), h.Width, h.Height, 0, handleStyle)
	}
	knob := RotationHandleCenter(e.selected)
	c.Line(e.selected.Bounds().TopCenter(), knob, stemStyle)
	c.Circle(knob, RotationHandleRadius, knobStyle)
}
