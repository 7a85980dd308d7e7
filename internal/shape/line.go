package shape

import "github.com/shapesapp/shapes/internal/geom"

// LineSegment runs from Position to End. It is stroked only and has no fill.
type LineSegment struct {
	Position geom.Vec2
	End      geom.Vec2
	Stroke   Color
}

func NewLineSegment(start, end geom.Vec2) *LineSegment {
	return &LineSegment{Position: start, End: end, Stroke: DefaultStroke}
}

func (l *LineSegment) Kind() Kind { return KindLine }

func (l *LineSegment) Draw(cv Canvas, selected bool) {
	w := 2.0
	if selected {
		w = 3
	}
	cv.Line(l.Position, l.End, Style{Stroke: l.Stroke, StrokeWidth: w})
}

func (l *LineSegment) Move(delta geom.Vec2) {
	l.Position = l.Position.Add(delta)
	l.End = l.End.Add(delta)
}

// Resize scales the end point relative to the start point.
func (l *LineSegment) Resize(factor float64) {
	l.End = l.End.ScaleAbout(l.Position, factor)
}

func (l *LineSegment) Clone() Shape {
	cp := *l
	return &cp
}

func (l *LineSegment) Bounds() geom.Rect {
	return geom.RectFromPoints(l.Position, l.End)
}

// FillColor is always transparent; lines are not filled.
func (l *LineSegment) FillColor() Color { return Color{} }

// SetFillColor is a no-op for lines.
func (l *LineSegment) SetFillColor(Color) {}

func (l *LineSegment) StrokeColor() Color     { return l.Stroke }
func (l *LineSegment) SetStrokeColor(c Color) { l.Stroke = c }
