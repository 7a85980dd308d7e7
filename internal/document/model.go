// Package document is the persisted scene format: a versioned JSON document
// listing shapes bottom to top, each tagged with its kind.
package document

import (
	"encoding/json"

	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/shape"
)

// CurrentVersion is written by Encode. Documents without a version are read
// as version 1.
const CurrentVersion = 1

type Document struct {
	Version int          `json:"version"`
	Shapes  []ShapeEntry `json:"shapes"`
}

// ShapeEntry is one shape. Data holds the geometry for Type; Fill is absent
// for line segments.
type ShapeEntry struct {
	Type   shape.Kind      `json:"type"`
	Fill   *shape.Color    `json:"fill,omitempty"`
	Stroke shape.Color     `json:"stroke"`
	Data   json.RawMessage `json:"data"`
}

type CircleData struct {
	Position geom.Vec2 `json:"position"`
	Radius   float64   `json:"radius"`
}

// BoxData is shared by rectangles and ellipses. Position is the top-left corner.
type BoxData struct {
	Position geom.Vec2 `json:"position"`
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Rotation float64   `json:"rotation"`
}

type TriangleData struct {
	P1 geom.Vec2 `json:"p1"`
	P2 geom.Vec2 `json:"p2"`
	P3 geom.Vec2 `json:"p3"`
}

type LineData struct {
	Position geom.Vec2 `json:"position"`
	End      geom.Vec2 `json:"end"`
}
