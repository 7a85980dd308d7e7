// Package command implements the reversible edit log. A command's Undo must
// exactly invert its Execute, and Execute may be replayed after Undo (redo).
package command

import (
	"fmt"

	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/shape"
)

// Command is a reversible scene edit.
type Command interface {
	Execute()
	Undo()
	Name() string
}

// CreateShape adds a shape on top of the scene.
type CreateShape struct {
	scene *scene.Scene
	shape shape.Shape
}

func NewCreateShape(sc *scene.Scene, s shape.Shape) *CreateShape {
	return &CreateShape{scene: sc, shape: s}
}

func (c *CreateShape) Execute() { c.scene.Add(c.shape) }
func (c *CreateShape) Undo()    { c.scene.Remove(c.shape) }
func (c *CreateShape) Name() string {
	return fmt.Sprintf("create %s", c.shape.Kind())
}

// Shape returns the shape the command adds.
func (c *CreateShape) Shape() shape.Shape { return c.shape }

// DeleteShape removes a shape and, on undo, puts it back at the z-index it
// occupied.
type DeleteShape struct {
	scene *scene.Scene
	shape shape.Shape
	index int
}

func NewDeleteShape(sc *scene.Scene, s shape.Shape) *DeleteShape {
	return &DeleteShape{scene: sc, shape: s, index: -1}
}

func (c *DeleteShape) Execute() { c.index = c.scene.Remove(c.shape) }

func (c *DeleteShape) Undo() {
	if c.index < 0 {
		return
	}
	c.scene.Insert(c.index, c.shape)
}

func (c *DeleteShape) Name() string {
	return fmt.Sprintf("delete %s", c.shape.Kind())
}

// MoveShape translates a shape by a fixed delta.
type MoveShape struct {
	shape shape.Shape
	delta geom.Vec2
}

func NewMoveShape(s shape.Shape, delta geom.Vec2) *MoveShape {
	return &MoveShape{shape: s, delta: delta}
}

func (c *MoveShape) Execute() { c.shape.Move(c.delta) }
func (c *MoveShape) Undo()    { c.shape.Move(c.delta.Neg()) }
func (c *MoveShape) Name() string {
	return fmt.Sprintf("move %s by (%g, %g)", c.shape.Kind(), c.delta.X, c.delta.Y)
}

// Delta returns the translation the command applies.
func (c *MoveShape) Delta() geom.Vec2 { return c.delta }
