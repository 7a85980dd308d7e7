package editor

import (
	"github.com/shapesapp/shapes/internal/command"
	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/shape"
)

// Placement returns a new shape of kind k at its menu default position, or
// nil for an unknown kind.
func Placement(k shape.Kind) shape.Shape {
	switch k {
	case shape.KindCircle:
		return shape.NewCircle(geom.V(100, 100), 40)
	case shape.KindRectangle:
		return shape.NewRectangle(geom.V(200, 150), 100, 60)
	case shape.KindLine:
		return shape.NewLineSegment(geom.V(300, 200), geom.V(400, 300))
	case shape.KindEllipse:
		return shape.NewEllipse(geom.V(250, 200), 120, 80)
	case shape.KindTriangle:
		return shape.NewTriangle(geom.V(400, 300), geom.V(450, 350), geom.V(350, 350))
	}
	return nil
}

// AddShape creates a default shape of kind k through the history.
func (e *Editor) AddShape(k shape.Kind) bool {
	s := Placement(k)
	if s == nil {
		return false
	}
	e.history.Execute(command.NewCreateShape(e.scene, s))
	return true
}

// DeleteSelected removes the selection through the history.
func (e *Editor) DeleteSelected() bool {
	if e.selected == nil {
		return false
	}
	e.cancelGesture()
	e.history.Execute(command.NewDeleteShape(e.scene, e.selected))
	e.selected = nil
	return true
}

// CopySelected stores a clone of the selection. It never needs a repaint.
func (e *Editor) CopySelected() bool {
	if e.selected != nil {
		e.clipboard = e.selected.Clone()
	}
	return false
}

// Paste adds an offset clone of the clipboard and selects it.
func (e *Editor) Paste() bool {
	if e.clipboard == nil {
		return false
	}
	s := e.clipboard.Clone()
	s.Move(PasteOffset)
	e.history.Execute(command.NewCreateShape(e.scene, s))
	e.selected = s
	return true
}

// SelectedFill returns the fill of the selection, for seeding a color picker.
func (e *Editor) SelectedFill() (shape.Color, bool) {
	if e.selected == nil {
		return shape.Color{}, false
	}
	return e.selected.FillColor(), true
}

// SetFillColor recolors the selection. The change is not recorded in the
// history.
func (e *Editor) SetFillColor(c shape.Color) bool {
	if e.selected == nil {
		return false
	}
	e.selected.SetFillColor(c)
	return true
}

func (e *Editor) Undo() bool {
	e.cancelGesture()
	ok := e.history.Undo()
	e.revalidate()
	return ok
}

func (e *Editor) Redo() bool {
	e.cancelGesture()
	ok := e.history.Redo()
	e.revalidate()
	return ok
}

// LoadScene replaces the scene contents with those of sc and starts a fresh
// history. The clipboard survives.
func (e *Editor) LoadScene(sc *scene.Scene) bool {
	e.scene.Replace(sc)
	e.selected = nil
	e.cancelGesture()
	e.history.Reset()
	e.logger.Debug("scene loaded", "shapes", e.scene.Len())
	return true
}
