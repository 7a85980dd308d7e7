package command

import (
	"testing"

	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/shape"
)

func TestCreateUndoRedo(t *testing.T) {
	sc := scene.New()
	h := NewHistory(nil)
	c := shape.NewCircle(geom.V(10, 10), 5)

	h.Execute(NewCreateShape(sc, c))
	if sc.Len() != 1 {
		t.Fatalf("Len after create = %d", sc.Len())
	}
	if !h.Undo() || sc.Len() != 0 {
		t.Fatalf("undo create left %d shapes", sc.Len())
	}
	if !h.Redo() || sc.Len() != 1 || sc.At(0) != c {
		t.Fatal("redo did not restore the same shape")
	}
}

func TestUndoOrderIsLIFO(t *testing.T) {
	sc := scene.New()
	h := NewHistory(nil)
	c := shape.NewCircle(geom.V(0, 0), 5)

	h.Execute(NewCreateShape(sc, c))
	h.Execute(NewMoveShape(c, geom.V(10, 0)))
	h.Execute(NewMoveShape(c, geom.V(0, 7)))

	if c.Position != geom.V(10, 7) {
		t.Fatalf("position = %v", c.Position)
	}
	h.Undo()
	if c.Position != geom.V(10, 0) {
		t.Fatalf("after first undo = %v, want (10,0)", c.Position)
	}
	h.Undo()
	if c.Position != geom.V(0, 0) {
		t.Fatalf("after second undo = %v, want origin", c.Position)
	}
	h.Undo()
	if sc.Len() != 0 {
		t.Fatal("third undo should remove the shape")
	}
	if h.Undo() {
		t.Fatal("undo on empty stack reported work")
	}
	if h.UndoLen() != 0 || h.RedoLen() != 3 {
		t.Fatalf("stacks = %d/%d", h.UndoLen(), h.RedoLen())
	}
}

func TestExecuteClearsRedo(t *testing.T) {
	sc := scene.New()
	h := NewHistory(nil)
	c := shape.NewCircle(geom.V(0, 0), 5)

	h.Execute(NewCreateShape(sc, c))
	h.Undo()
	if !h.CanRedo() {
		t.Fatal("expected redo to be available")
	}
	h.Execute(NewCreateShape(sc, shape.NewCircle(geom.V(1, 1), 1)))
	if h.CanRedo() {
		t.Fatal("new command must clear the redo stack")
	}
	if h.Redo() {
		t.Fatal("redo on empty stack reported work")
	}
}

func TestDeleteRestoresZOrder(t *testing.T) {
	a := shape.NewCircle(geom.V(0, 0), 1)
	b := shape.NewCircle(geom.V(0, 0), 2)
	c := shape.NewCircle(geom.V(0, 0), 3)
	sc := scene.New(a, b, c)
	h := NewHistory(nil)

	h.Execute(NewDeleteShape(sc, b))
	if sc.Len() != 2 || sc.Contains(b) {
		t.Fatal("delete did not remove the shape")
	}
	h.Undo()
	if sc.IndexOf(b) != 1 {
		t.Fatalf("undo delete put shape at %d, want 1", sc.IndexOf(b))
	}
	h.Redo()
	if sc.Contains(b) {
		t.Fatal("redo delete left the shape in the scene")
	}
}

func TestDeleteMissingShapeUndoIsNoop(t *testing.T) {
	sc := scene.New()
	h := NewHistory(nil)
	h.Execute(NewDeleteShape(sc, shape.NewCircle(geom.V(0, 0), 1)))
	h.Undo()
	if sc.Len() != 0 {
		t.Fatal("undo of a no-op delete inserted a shape")
	}
}

func TestReset(t *testing.T) {
	sc := scene.New()
	h := NewHistory(nil)
	h.Execute(NewCreateShape(sc, shape.NewCircle(geom.V(0, 0), 1)))
	h.Execute(NewCreateShape(sc, shape.NewCircle(geom.V(0, 0), 1)))
	h.Undo()
	h.Reset()
	if h.CanUndo() || h.CanRedo() {
		t.Fatal("Reset left entries behind")
	}
}
