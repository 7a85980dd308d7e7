// Package scene holds the ordered shape collection. Insertion order is z-order:
// the last shape is drawn last and hit-tested first.
package scene

import "github.com/shapesapp/shapes/internal/shape"

// Scene is an ordered list of shapes. It is not safe for concurrent use.
type Scene struct {
	shapes []shape.Shape
}

// New returns a scene holding the given shapes in order.
func New(shapes ...shape.Shape) *Scene {
	return &Scene{shapes: append([]shape.Shape(nil), shapes...)}
}

// Add appends s on top of every other shape.
func (sc *Scene) Add(s shape.Shape) {
	sc.shapes = append(sc.shapes, s)
}

// Insert places s at index i, clamped to [0, Len()].
func (sc *Scene) Insert(i int, s shape.Shape) {
	i = max(0, min(i, len(sc.shapes)))
	sc.shapes = append(sc.shapes, nil)
	copy(sc.shapes[i+1:], sc.shapes[i:])
	sc.shapes[i] = s
}

// Remove deletes the first occurrence of s by identity and returns the index
// it occupied, or -1 if s was not present.
func (sc *Scene) Remove(s shape.Shape) int {
	i := sc.IndexOf(s)
	if i < 0 {
		return -1
	}
	copy(sc.shapes[i:], sc.shapes[i+1:])
	sc.shapes[len(sc.shapes)-1] = nil
	sc.shapes = sc.shapes[:len(sc.shapes)-1]
	return i
}

func (sc *Scene) Clear() {
	clear(sc.shapes)
	sc.shapes = sc.shapes[:0]
}

func (sc *Scene) Len() int { return len(sc.shapes) }

func (sc *Scene) At(i int) shape.Shape { return sc.shapes[i] }

// IndexOf returns the position of s by identity, or -1.
func (sc *Scene) IndexOf(s shape.Shape) int {
	for i, x := range sc.shapes {
		if x == s {
			return i
		}
	}
	return -1
}

// Contains reports whether s is in the scene.
func (sc *Scene) Contains(s shape.Shape) bool {
	return sc.IndexOf(s) >= 0
}

// Shapes returns a copy of the sequence, bottom to top.
func (sc *Scene) Shapes() []shape.Shape {
	return append([]shape.Shape(nil), sc.shapes...)
}

// Replace swaps in the contents of other. The shapes themselves are shared.
func (sc *Scene) Replace(other *Scene) {
	sc.Clear()
	if other != nil {
		sc.shapes = append(sc.shapes, other.shapes...)
	}
}

// Draw renders every shape in z-order. selected may be nil.
func (sc *Scene) Draw(c shape.Canvas, selected shape.Shape) {
	for _, s := range sc.shapes {
		s.Draw(c, s == selected)
	}
}
