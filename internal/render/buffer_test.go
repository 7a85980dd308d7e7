package render

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/shape"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestBufferRect(t *testing.T) {
	b := NewBuffer()
	b.Rect(geom.V(10, 20), 30, 40, 0, shape.Style{Fill: shape.LightGray, Stroke: shape.Black, HasFill: true, StrokeWidth: 1})

	cmds := b.Commands()
	if len(cmds) != 1 {
		t.Fatalf("got %d commands", len(cmds))
	}
	c := cmds[0]
	if c.Op != "path" || !c.Closed {
		t.Errorf("op = %q closed = %v", c.Op, c.Closed)
	}
	want := []float64{1, 0, 0, 1, 10, 20}
	for i := range want {
		if !near(c.Transform[i], want[i]) {
			t.Fatalf("Transform = %v, want %v", c.Transform, want)
		}
	}
	if c.Fill != "rgba(211,211,211,1)" || c.Stroke != "rgba(0,0,0,1)" {
		t.Errorf("colors = %q / %q", c.Fill, c.Stroke)
	}
	got := b.Bounds()
	if !near(got.X, 9.5) || !near(got.Y, 19.5) || !near(got.Width, 31) || !near(got.Height, 41) {
		t.Errorf("Bounds = %+v", got)
	}
}

func TestBufferRotatedRectBounds(t *testing.T) {
	b := NewBuffer()
	b.Rect(geom.V(0, 0), 20, 10, 90, shape.Style{})
	got := b.Bounds()
	if !near(got.X, 5) || !near(got.Y, -5) || !near(got.Width, 10) || !near(got.Height, 20) {
		t.Errorf("Bounds = %+v, want {5 -5 10 20}", got)
	}
}

func TestBufferLineAndDash(t *testing.T) {
	b := NewBuffer()
	b.Line(geom.V(0, 0), geom.V(5, 5), shape.Style{Fill: shape.White, HasFill: true, StrokeWidth: 2})
	b.Rect(geom.V(0, 0), 8, 8, 0, shape.Style{Dashed: true, StrokeWidth: 1})

	line := b.Commands()[0]
	if line.Fill != "" || line.Closed || line.Transform != nil {
		t.Errorf("line = %+v, want unfilled open path without transform", line)
	}
	if len(line.Path) != 2 {
		t.Errorf("line path = %v", line.Path)
	}
	if dash := b.Commands()[1].Dash; len(dash) != 2 {
		t.Errorf("dash = %v", dash)
	}
}

func TestBufferJSON(t *testing.T) {
	b := NewBuffer()
	if s, err := b.JSON(); err != nil || s != "[]" {
		t.Fatalf("empty JSON = %q, %v", s, err)
	}
	b.Circle(geom.V(1, 2), 3, shape.Style{StrokeWidth: 1})
	s, err := b.JSON()
	if err != nil {
		t.Fatal(err)
	}
	var decoded []map[string]any
	if err := json.Unmarshal([]byte(s), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 1 || decoded[0]["op"] != "path" {
		t.Errorf("decoded = %v", decoded)
	}
	b.Reset()
	if len(b.Commands()) != 0 || !b.Bounds().IsEmpty() {
		t.Error("Reset left state behind")
	}
}
