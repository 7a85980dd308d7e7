// Package editor is the interaction controller. It owns the scene, the
// command history, the selection and the clipboard, and turns pointer and
// keyboard events into edits. An Editor is single-threaded: callers must
// serialize every call.
package editor

import (
	"io"
	"log/slog"

	"github.com/shapesapp/shapes/internal/command"
	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/shape"
)

// Interaction limits.
const (
	MinResizeExtent = 10.0
	MinCircleRadius = 5.0
)

// PasteOffset is applied to every pasted clone.
var PasteOffset = geom.V(20, 20)

// Editor holds all editing state. Methods that return a bool report whether
// the frontend should repaint.
type Editor struct {
	scene     *scene.Scene
	history   *command.History
	selected  shape.Shape
	clipboard shape.Shape
	gesture   gesture
	cursor    Cursor
	logger    *slog.Logger
}

// New creates an editor over an empty scene. A nil logger discards output.
func New(logger *slog.Logger) *Editor {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Editor{
		scene:   scene.New(),
		history: command.NewHistory(logger),
		gesture: idle{},
		logger:  logger,
	}
}

// Scene returns the live scene. Mutating it directly bypasses the history.
func (e *Editor) Scene() *scene.Scene { return e.scene }

// History returns the command log.
func (e *Editor) History() *command.History { return e.history }

// Selected returns the selected shape, or nil.
func (e *Editor) Selected() shape.Shape { return e.selected }

// SelectedIndex returns the z-index of the selection, or -1.
func (e *Editor) SelectedIndex() int {
	if e.selected == nil {
		return -1
	}
	return e.scene.IndexOf(e.selected)
}

// Select makes s the selection. Shapes not in the scene clear it.
func (e *Editor) Select(s shape.Shape) {
	if s != nil && !e.scene.Contains(s) {
		s = nil
	}
	e.selected = s
}

// Clipboard returns the copied shape, or nil.
func (e *Editor) Clipboard() shape.Shape { return e.clipboard }

// Cursor returns the pointer affordance for the last pointer event.
func (e *Editor) Cursor() Cursor { return e.cursor }

// Mode returns the active gesture.
func (e *Editor) Mode() Mode { return e.gesture.mode() }

// PointerDown starts a gesture. The rotation handle of the selection wins over
// its resize handles, which win over plain selection.
func (e *Editor) PointerDown(p geom.Vec2) bool {
	if s := e.selected; s != nil {
		if onRotationHandle(s, p) {
			e.beginRotate(s, p)
			return false
		}
		if i := handleAt(s, p); i >= 0 {
			e.beginResize(s, i, p)
			return false
		}
	}

	hit, ok := e.scene.FindShapeAt(p)
	e.selected = hit
	if ok {
		e.gesture = &dragging{target: hit, start: p, last: p}
		e.cursor = CursorMove
	}
	return true
}

func (e *Editor) beginRotate(s shape.Shape, p geom.Vec2) {
	center := s.Bounds().Center()
	d := p.Sub(center)
	e.gesture = &rotating{
		target:        s,
		center:        center,
		startAngle:    geom.Atan2Deg(d.Y, d.X),
		startRotation: shape.Rotation(s),
		startPoints:   points(s),
	}
	e.cursor = CursorRotate
}

func (e *Editor) beginResize(s shape.Shape, handle int, p geom.Vec2) {
	g := &resizing{target: s, handle: handle, startMouse: p}
	switch v := s.(type) {
	case *shape.Rectangle, *shape.Ellipse:
		g.anchor = oppositeCorner(v.Bounds(), handle)
	case *shape.Circle:
		g.startRadius = v.Radius
		g.anchor = v.Position
	case *shape.Triangle, *shape.LineSegment:
		g.startPoints = points(v)
	}
	e.gesture = g
	e.cursor = handleCursor(s, handle)
}

// PointerMove updates the active gesture, or the hover cursor when idle.
func (e *Editor) PointerMove(p geom.Vec2) bool {
	switch g := e.gesture.(type) {
	case *rotating:
		g.apply(p)
		e.cursor = CursorRotate
		return true
	case *resizing:
		g.apply(p)
		e.cursor = handleCursor(g.target, g.handle)
		return true
	case *dragging:
		g.target.Move(p.Sub(g.last))
		g.last = p
		e.cursor = CursorMove
		return true
	}
	e.cursor = e.hoverCursor(p)
	return false
}

func (e *Editor) hoverCursor(p geom.Vec2) Cursor {
	if s := e.selected; s != nil {
		if onRotationHandle(s, p) {
			return CursorRotate
		}
		if i := handleAt(s, p); i >= 0 {
			return handleCursor(s, i)
		}
	}
	if _, ok := e.scene.FindShapeAt(p); ok {
		return CursorMove
	}
	return CursorDefault
}

// PointerUp ends the gesture. A drag with a non-zero net displacement becomes
// one MoveShape entry in the history; resize and rotate are not recorded.
func (e *Editor) PointerUp(p geom.Vec2) bool {
	changed := false
	if g, ok := e.gesture.(*dragging); ok {
		g.target.Move(p.Sub(g.last))
		net := p.Sub(g.start)
		if !net.IsZero() {
			// roll back the live displacement so Execute owns the change
			g.target.Move(net.Neg())
			e.history.Execute(command.NewMoveShape(g.target, net))
		}
		changed = !p.Sub(g.last).IsZero() || !net.IsZero()
	}
	e.gesture = idle{}
	e.cursor = CursorDefault
	return changed
}

// cancelGesture drops any in-flight gesture, leaving live edits in place.
func (e *Editor) cancelGesture() {
	e.gesture = idle{}
	e.cursor = CursorDefault
}

// revalidate clears the selection when undo or redo removed it from the scene.
func (e *Editor) revalidate() {
	if e.selected != nil && !e.scene.Contains(e.selected) {
		e.selected = nil
	}
}
