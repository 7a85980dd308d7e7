// Package render records shape drawing as a serializable draw-command buffer.
// Browser frontends replay the buffer on a Canvas2D context.
package render

import (
	"encoding/json"

	"github.com/shapesapp/shapes/internal/geom"
)

// DrawCommand represents a single drawing operation for the frontend to execute.
type DrawCommand struct {
	Op          string        `json:"op"`                    // Operation: "path"
	Transform   []float64     `json:"transform,omitempty"`   // [a, b, c, d, e, f] affine matrix, identity when absent
	Path        []PathCommand `json:"path"`                  // Path data in local coordinates
	Fill        string        `json:"fill,omitempty"`        // Fill color, none when empty
	Stroke      string        `json:"stroke,omitempty"`      // Stroke color
	StrokeWidth float64       `json:"strokeWidth,omitempty"` // Stroke width
	Dash        []float64     `json:"dash,omitempty"`        // Line dash pattern
	Closed      bool          `json:"closed,omitempty"`      // Path ends with Z
}

// PathCommand represents a single path segment for rendering.
// Format matches Canvas2D: ["M", x, y], ["L", x, y], ["C", x1, y1, x2, y2, x, y], ["Z"].
type PathCommand []any

// DashPattern is the on/off pattern used for dashed outlines.
var DashPattern = []float64{4, 4}

// rectPath generates path commands for a w×h rectangle at the origin.
func rectPath(w, h float64) []PathCommand {
	return []PathCommand{
		{"M", 0.0, 0.0},
		{"L", w, 0.0},
		{"L", w, h},
		{"L", 0.0, h},
		{"Z"},
	}
}

// ellipsePath generates path commands for an ellipse centered on the origin
// using bezier curves.
func ellipsePath(rx, ry float64) []PathCommand {
	// k = 4 * (sqrt(2) - 1) / 3
	k := 0.5522847498
	kx, ky := rx*k, ry*k

	return []PathCommand{
		{"M", rx, 0.0},
		{"C", rx, ky, kx, ry, 0.0, ry},
		{"C", -kx, ry, -rx, ky, -rx, 0.0},
		{"C", -rx, -ky, -kx, -ry, 0.0, -ry},
		{"C", kx, -ry, rx, -ky, rx, 0.0},
		{"Z"},
	}
}

// polylinePath generates an open or closed path through pts.
func polylinePath(pts []geom.Vec2, closed bool) []PathCommand {
	if len(pts) == 0 {
		return nil
	}
	path := make([]PathCommand, 0, len(pts)+1)
	path = append(path, PathCommand{"M", pts[0].X, pts[0].Y})
	for _, p := range pts[1:] {
		path = append(path, PathCommand{"L", p.X, p.Y})
	}
	if closed {
		path = append(path, PathCommand{"Z"})
	}
	return path
}

// pathBounds computes the axis-aligned bounding box of a path in world space.
// Bezier control points are included, so curves yield a slightly loose box.
func pathBounds(path []PathCommand, m geom.Matrix2D) geom.Rect {
	var pts []geom.Vec2
	for _, cmd := range path {
		if len(cmd) == 0 {
			continue
		}
		op, ok := cmd[0].(string)
		if !ok {
			continue
		}
		switch op {
		case "M", "L", "C":
			for i := 1; i+1 < len(cmd); i += 2 {
				p := geom.V(toFloat64(cmd[i]), toFloat64(cmd[i+1]))
				pts = append(pts, m.TransformPoint(p))
			}
		}
	}
	return geom.RectFromPoints(pts...)
}

// toFloat64 converts a path operand to float64.
func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		commands = []DrawCommand{}
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
