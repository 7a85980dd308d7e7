package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/shape"
)

var (
	ErrNotFound           = errors.New("scene file not found")
	ErrUnknownShape       = errors.New("unknown shape type")
	ErrUnsupportedVersion = errors.New("unsupported document version")
)

// FromScene captures the scene in document form.
func FromScene(sc *scene.Scene) (Document, error) {
	doc := Document{Version: CurrentVersion, Shapes: make([]ShapeEntry, 0, sc.Len())}
	for _, s := range sc.Shapes() {
		entry, err := encodeShape(s)
		if err != nil {
			return Document{}, err
		}
		doc.Shapes = append(doc.Shapes, entry)
	}
	return doc, nil
}

func encodeShape(s shape.Shape) (ShapeEntry, error) {
	var data any
	switch v := s.(type) {
	case *shape.Circle:
		data = CircleData{Position: v.Position, Radius: v.Radius}
	case *shape.Rectangle:
		data = BoxData{Position: v.Position, Width: v.Width, Height: v.Height, Rotation: v.Rotation}
	case *shape.Ellipse:
		data = BoxData{Position: v.Position, Width: v.Width, Height: v.Height, Rotation: v.Rotation}
	case *shape.Triangle:
		data = TriangleData{P1: v.P1, P2: v.P2, P3: v.P3}
	case *shape.LineSegment:
		data = LineData{Position: v.Position, End: v.End}
	default:
		return ShapeEntry{}, fmt.Errorf("encode %T: %w", s, ErrUnknownShape)
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return ShapeEntry{}, fmt.Errorf("encode %s: %w", s.Kind(), err)
	}
	entry := ShapeEntry{Type: s.Kind(), Stroke: s.StrokeColor(), Data: raw}
	if s.Kind() != shape.KindLine {
		fill := s.FillColor()
		entry.Fill = &fill
	}
	return entry, nil
}

// Scene rebuilds the shapes in document order.
func (d Document) Scene() (*scene.Scene, error) {
	if d.Version > CurrentVersion {
		return nil, fmt.Errorf("version %d: %w", d.Version, ErrUnsupportedVersion)
	}
	sc := scene.New()
	for i, entry := range d.Shapes {
		s, err := decodeShape(entry)
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		sc.Add(s)
	}
	return sc, nil
}

func decodeShape(e ShapeEntry) (shape.Shape, error) {
	var s shape.Shape
	var err error
	switch e.Type {
	case shape.KindCircle:
		var d CircleData
		err = unmarshalData(e.Data, &d)
		s = shape.NewCircle(d.Position, d.Radius)
	case shape.KindRectangle:
		var d BoxData
		err = unmarshalData(e.Data, &d)
		r := shape.NewRectangle(d.Position, d.Width, d.Height)
		r.Rotation = d.Rotation
		s = r
	case shape.KindEllipse:
		var d BoxData
		err = unmarshalData(e.Data, &d)
		el := shape.NewEllipse(d.Position, d.Width, d.Height)
		el.Rotation = d.Rotation
		s = el
	case shape.KindTriangle:
		var d TriangleData
		err = unmarshalData(e.Data, &d)
		s = shape.NewTriangle(d.P1, d.P2, d.P3)
	case shape.KindLine:
		var d LineData
		err = unmarshalData(e.Data, &d)
		s = shape.NewLineSegment(d.Position, d.End)
	default:
		return nil, fmt.Errorf("%q: %w", e.Type, ErrUnknownShape)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", e.Type, err)
	}

	s.SetStrokeColor(e.Stroke)
	if e.Fill != nil {
		s.SetFillColor(*e.Fill)
	}
	return s, nil
}

func unmarshalData(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return errors.New("missing data")
	}
	return json.Unmarshal(raw, v)
}

// Encode writes the scene as indented JSON.
func Encode(w io.Writer, sc *scene.Scene) error {
	doc, err := FromScene(sc)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// Decode reads a scene document.
func Decode(r io.Reader) (*scene.Scene, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return doc.Scene()
}

func Marshal(sc *scene.Scene) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, sc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(data []byte) (*scene.Scene, error) {
	return Decode(bytes.NewReader(data))
}

// SaveFile writes the scene to path, replacing any existing file.
func SaveFile(path string, sc *scene.Scene) error {
	data, err := Marshal(sc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".scene-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write scene: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close scene: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename scene: %w", err)
	}
	return nil
}

// LoadFile reads the scene at path. A missing file yields ErrNotFound and the
// caller should keep its current scene.
func LoadFile(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Unmarshal(data)
}
