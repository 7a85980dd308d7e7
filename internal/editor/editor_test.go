package editor

import (
	"math"
	"strings"
	"testing"

	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/shape"
)

func nearVec(a, b geom.Vec2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

// withShape returns an editor holding one default shape of kind k, selected.
func withShape(t *testing.T, k shape.Kind) (*Editor, shape.Shape) {
	t.Helper()
	e := New(nil)
	if !e.AddShape(k) {
		t.Fatalf("AddShape(%q) failed", k)
	}
	s := e.Scene().At(0)
	e.Select(s)
	return e, s
}

func click(e *Editor, p geom.Vec2) {
	e.PointerDown(p)
	e.PointerUp(p)
}

func TestClickSelectsAndMissClears(t *testing.T) {
	e := New(nil)
	e.AddShape(shape.KindRectangle)
	click(e, geom.V(250, 180))
	if e.Selected() == nil || e.Selected().Kind() != shape.KindRectangle {
		t.Fatalf("Selected = %v, want the rectangle", e.Selected())
	}
	click(e, geom.V(800, 550))
	if e.Selected() != nil {
		t.Fatal("clicking empty canvas should clear the selection")
	}
	if e.History().UndoLen() != 1 {
		t.Fatalf("clicks must not record commands, undo depth = %d", e.History().UndoLen())
	}
}

func TestDragRecordsOneMove(t *testing.T) {
	e := New(nil)
	e.AddShape(shape.KindRectangle)
	r := e.Scene().At(0).(*shape.Rectangle)

	e.PointerDown(geom.V(250, 180))
	if e.Mode() != ModeDragging {
		t.Fatalf("Mode = %v, want dragging", e.Mode())
	}
	e.PointerMove(geom.V(260, 185))
	e.PointerMove(geom.V(265, 188))
	if r.Position != geom.V(215, 158) {
		t.Fatalf("live position = %v", r.Position)
	}
	e.PointerUp(geom.V(270, 190))

	if r.Position != geom.V(220, 160) {
		t.Fatalf("position after drag = %v, want (220,160)", r.Position)
	}
	if got := e.History().UndoLen(); got != 2 {
		t.Fatalf("undo depth = %d, want create + one move", got)
	}
	e.Undo()
	if r.Position != geom.V(200, 150) {
		t.Fatalf("undo drag = %v, want (200,150)", r.Position)
	}
	e.Redo()
	if r.Position != geom.V(220, 160) {
		t.Fatalf("redo drag = %v, want (220,160)", r.Position)
	}
	if e.Mode() != ModeIdle {
		t.Fatalf("Mode = %v after pointer up", e.Mode())
	}
}

func TestResizeRectangleClampsToMinimum(t *testing.T) {
	e, s := withShape(t, shape.KindRectangle)
	r := s.(*shape.Rectangle)

	// bottom-right handle, anchored at the top-left corner (200,150)
	e.PointerDown(geom.V(300, 210))
	if e.Mode() != ModeResizing || e.Cursor() != CursorResizeNWSE {
		t.Fatalf("mode %v cursor %v, want resizing nwse", e.Mode(), e.Cursor())
	}
	e.PointerMove(geom.V(195, 100))
	if r.Width != MinResizeExtent {
		t.Errorf("Width = %v, want exactly %v", r.Width, MinResizeExtent)
	}
	if r.Height != 50 || r.Position != geom.V(190, 100) {
		t.Errorf("box = %v %vx%v, want (190,100) 10x50", r.Position, r.Width, r.Height)
	}

	e.PointerMove(geom.V(350, 260))
	if r.Position != geom.V(200, 150) || r.Width != 150 || r.Height != 110 {
		t.Errorf("box = %v %vx%v, anchor must stay at (200,150)", r.Position, r.Width, r.Height)
	}
	e.PointerUp(geom.V(350, 260))
	if e.History().UndoLen() != 1 {
		t.Error("resize must not be recorded")
	}
}

func TestResizeEllipseFromTopLeft(t *testing.T) {
	e, s := withShape(t, shape.KindEllipse)
	el := s.(*shape.Ellipse)
	// ellipse (250,200) 120x80, TL handle; anchor is BR (370,280)
	e.PointerDown(geom.V(250, 200))
	e.PointerMove(geom.V(300, 240))
	if el.Position != geom.V(300, 240) || el.Width != 70 || el.Height != 40 {
		t.Errorf("ellipse = %v %vx%v", el.Position, el.Width, el.Height)
	}
}

func TestResizeCircle(t *testing.T) {
	e, s := withShape(t, shape.KindCircle)
	c := s.(*shape.Circle)

	e.PointerDown(geom.V(140, 100))
	if e.Cursor() != CursorResizeWE {
		t.Fatalf("cursor = %v, want ew-resize", e.Cursor())
	}
	e.PointerMove(geom.V(120, 100))
	if c.Radius != 20 {
		t.Errorf("Radius = %v, want 20", c.Radius)
	}
	e.PointerMove(geom.V(50, 130))
	if c.Radius != MinCircleRadius {
		t.Errorf("Radius = %v, want clamp %v", c.Radius, MinCircleRadius)
	}
}

func TestResizeLineEndpoint(t *testing.T) {
	e, s := withShape(t, shape.KindLine)
	l := s.(*shape.LineSegment)
	e.PointerDown(geom.V(400, 300))
	e.PointerMove(geom.V(410, 280))
	if l.End != geom.V(410, 280) || l.Position != geom.V(300, 200) {
		t.Errorf("line = %v -> %v", l.Position, l.End)
	}
}

func TestRotateRectangle(t *testing.T) {
	e, s := withShape(t, shape.KindRectangle)
	r := s.(*shape.Rectangle)

	knob := RotationHandleCenter(r)
	if knob != geom.V(250, 128) {
		t.Fatalf("rotation handle at %v, want (250,128)", knob)
	}
	e.PointerDown(knob)
	if e.Mode() != ModeRotating || e.Cursor() != CursorRotate {
		t.Fatalf("mode %v cursor %v", e.Mode(), e.Cursor())
	}
	e.PointerMove(geom.V(302, 180))
	if math.Abs(r.Rotation-90) > 1e-9 {
		t.Errorf("Rotation = %v, want 90", r.Rotation)
	}
	e.PointerMove(geom.V(250, 232))
	if math.Abs(r.Rotation-180) > 1e-9 {
		t.Errorf("Rotation = %v, want 180", r.Rotation)
	}
	e.PointerUp(geom.V(250, 232))
	if r.Position != geom.V(200, 150) {
		t.Errorf("rotation moved the box to %v", r.Position)
	}
	if e.History().UndoLen() != 1 {
		t.Error("rotation must not be recorded")
	}
}

func TestRotateTriangleHasNoDrift(t *testing.T) {
	e, s := withShape(t, shape.KindTriangle)
	tri := s.(*shape.Triangle)
	start := *tri

	knob := RotationHandleCenter(tri)
	e.PointerDown(knob)
	e.PointerMove(geom.V(447, 325))
	if !nearVec(tri.P1, geom.V(425, 325)) {
		t.Errorf("P1 = %v, want (425,325)", tri.P1)
	}
	for i := 0; i < 50; i++ {
		e.PointerMove(geom.V(447, 325+float64(i)))
	}
	e.PointerMove(knob)
	if !nearVec(tri.P1, start.P1) || !nearVec(tri.P2, start.P2) || !nearVec(tri.P3, start.P3) {
		t.Errorf("returning to the start angle gave %v %v %v", tri.P1, tri.P2, tri.P3)
	}
}

func TestHoverCursor(t *testing.T) {
	e, _ := withShape(t, shape.KindRectangle)
	tests := []struct {
		p    geom.Vec2
		want Cursor
	}{
		{geom.V(200, 150), CursorResizeNWSE},
		{geom.V(300, 150), CursorResizeNESW},
		{geom.V(200, 210), CursorResizeNESW},
		{geom.V(300, 210), CursorResizeNWSE},
		{geom.V(250, 128), CursorRotate},
		{geom.V(250, 180), CursorMove},
		{geom.V(600, 500), CursorDefault},
	}
	for _, tt := range tests {
		if e.PointerMove(tt.p) {
			t.Errorf("hover at %v asked for a repaint", tt.p)
		}
		if got := e.Cursor(); got != tt.want {
			t.Errorf("cursor at %v = %v, want %v", tt.p, got, tt.want)
		}
	}

	c, _ := withShape(t, shape.KindCircle)
	c.PointerMove(geom.V(100, 140))
	if c.Cursor() != CursorResizeNS {
		t.Errorf("circle bottom handle cursor = %v", c.Cursor())
	}
	tri, _ := withShape(t, shape.KindTriangle)
	tri.PointerMove(geom.V(450, 350))
	if tri.Cursor() != CursorResizeAll {
		t.Errorf("triangle vertex cursor = %v", tri.Cursor())
	}
}

func TestShortcuts(t *testing.T) {
	e := New(nil)

	if _, changed := e.HandleKey(KeyEvent{Key: "C", Ctrl: true, Shift: true}); !changed {
		t.Fatal("Ctrl+Shift+C should add a circle")
	}
	if e.Scene().Len() != 1 || e.Scene().At(0).Kind() != shape.KindCircle {
		t.Fatalf("scene = %v", e.Scene().Shapes())
	}
	for _, k := range []string{"r", "l", "e", "t"} {
		e.HandleKey(KeyEvent{Key: k, Ctrl: true})
	}
	if e.Scene().Len() != 5 {
		t.Fatalf("Len = %d, want 5", e.Scene().Len())
	}

	if a, _ := e.HandleKey(KeyEvent{Key: "f", Ctrl: true}); a != ActionNone {
		t.Errorf("fill without selection = %v, want none", a)
	}
	click(e, geom.V(100, 100))
	if a, _ := e.HandleKey(KeyEvent{Key: "f", Ctrl: true}); a != ActionPickFill {
		t.Errorf("fill = %v, want pickFill", a)
	}
	for key, want := range map[string]Action{"s": ActionSave, "o": ActionOpen, "h": ActionHelp} {
		if a, _ := e.HandleKey(KeyEvent{Key: key, Ctrl: true}); a != want {
			t.Errorf("Ctrl+%s = %v, want %v", key, a, want)
		}
	}
	if _, changed := e.HandleKey(KeyEvent{Key: "q", Ctrl: true}); changed {
		t.Error("unbound key reported a change")
	}
}

func TestCopyPasteDeleteUndo(t *testing.T) {
	e := New(nil)
	e.AddShape(shape.KindRectangle)
	e.AddShape(shape.KindCircle)
	click(e, geom.V(250, 180))
	rect := e.Selected()

	e.HandleKey(KeyEvent{Key: "c", Ctrl: true})
	e.HandleKey(KeyEvent{Key: "v", Ctrl: true})
	pasted, ok := e.Selected().(*shape.Rectangle)
	if !ok || pasted == rect {
		t.Fatalf("pasted shape should be a new selected rectangle, got %v", e.Selected())
	}
	if pasted.Position != geom.V(220, 170) {
		t.Errorf("pasted at %v, want (220,170)", pasted.Position)
	}
	if e.Scene().Len() != 3 {
		t.Fatalf("Len = %d", e.Scene().Len())
	}

	e.Select(rect)
	e.HandleKey(KeyEvent{Key: "Delete"})
	if e.Scene().Contains(rect) || e.Selected() != nil {
		t.Fatal("delete left the rectangle or the selection")
	}
	e.HandleKey(KeyEvent{Key: "z", Ctrl: true})
	if e.Scene().IndexOf(rect) != 0 {
		t.Errorf("undo delete restored at %d, want 0", e.Scene().IndexOf(rect))
	}
}

func TestUndoClearsRemovedSelection(t *testing.T) {
	e, s := withShape(t, shape.KindEllipse)
	if e.Selected() != s {
		t.Fatal("expected selection")
	}
	e.Undo()
	if e.Selected() != nil {
		t.Fatal("selection should clear when undo removes the shape")
	}
	if e.Undo() {
		t.Fatal("second undo should be a no-op")
	}
}

func TestSetFillColorIsNotRecorded(t *testing.T) {
	e, s := withShape(t, shape.KindCircle)
	red := shape.ARGB(255, 255, 0, 0)
	if !e.SetFillColor(red) || s.FillColor() != red {
		t.Fatal("fill not applied")
	}
	if e.History().UndoLen() != 1 {
		t.Error("fill change must not enter the history")
	}
	if got, ok := e.SelectedFill(); !ok || got != red {
		t.Errorf("SelectedFill = %v, %v", got, ok)
	}
}

func TestLoadSceneResetsState(t *testing.T) {
	e, _ := withShape(t, shape.KindCircle)
	loaded := scene.New(shape.NewRectangle(geom.V(0, 0), 10, 10), shape.NewCircle(geom.V(5, 5), 3))
	e.LoadScene(loaded)
	if e.Scene().Len() != 2 || e.Selected() != nil {
		t.Fatalf("Len %d selected %v", e.Scene().Len(), e.Selected())
	}
	if e.History().CanUndo() {
		t.Error("history should be reset on load")
	}
}

type countingCanvas struct {
	rects, circles, lines int
	dashed                int
	widths                []float64
}

func (c *countingCanvas) Rect(_ geom.Vec2, _, _, _ float64, st shape.Style) {
	c.rects++
	if st.Dashed {
		c.dashed++
	}
	c.widths = append(c.widths, st.StrokeWidth)
}

func (c *countingCanvas) Ellipse(geom.Vec2, float64, float64, float64, shape.Style) {}
func (c *countingCanvas) Polygon([]geom.Vec2, shape.Style)                         {}

func (c *countingCanvas) Circle(geom.Vec2, float64, shape.Style) { c.circles++ }
func (c *countingCanvas) Line(geom.Vec2, geom.Vec2, shape.Style) { c.lines++ }

func TestDrawOverlay(t *testing.T) {
	e, _ := withShape(t, shape.KindRectangle)
	var c countingCanvas
	e.Draw(&c)
	if c.rects != 5 || c.dashed != 4 {
		t.Errorf("rects = %d dashed = %d, want the shape plus 4 dashed handles", c.rects, c.dashed)
	}
	if c.widths[0] != 3 {
		t.Errorf("selected outline width = %v, want 3", c.widths[0])
	}
	if c.lines != 1 || c.circles != 1 {
		t.Errorf("stem lines = %d knobs = %d, want 1 each", c.lines, c.circles)
	}

	e.Select(nil)
	c = countingCanvas{}
	e.Draw(&c)
	if c.rects != 1 || c.lines != 0 || c.circles != 0 {
		t.Errorf("unselected draw = %+v", c)
	}
}

func TestHelpListsShortcuts(t *testing.T) {
	h := Help()
	for _, want := range []string{"Ctrl + Z", "Ctrl+Shift+C", "Ctrl+T"} {
		if !strings.Contains(h, want) {
			t.Errorf("help text missing %q", want)
		}
	}
}

func TestCursorAndActionText(t *testing.T) {
	for c := CursorDefault; c <= CursorResizeAll; c++ {
		text, _ := c.MarshalText()
		var got Cursor
		if err := got.UnmarshalText(text); err != nil || got != c {
			t.Errorf("cursor %q round trip = %v, %v", text, got, err)
		}
	}
	for a := ActionNone; a <= ActionHelp; a++ {
		text, _ := a.MarshalText()
		var got Action
		if err := got.UnmarshalText(text); err != nil || got != a {
			t.Errorf("action %q round trip = %v, %v", text, got, err)
		}
	}
	var c Cursor
	if err := c.UnmarshalText([]byte("crosshair")); err == nil {
		t.Error("unknown cursor accepted")
	}
}
