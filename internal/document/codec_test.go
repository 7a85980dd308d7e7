package document

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/shape"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	sc := NewSampleScene()
	e := sc.At(2).(*shape.Ellipse)
	e.Rotation = -72.25
	e.Stroke = shape.ARGB(10, 20, 30, 40)

	path := filepath.Join(t.TempDir(), "scene.json")
	if err := SaveFile(path, sc); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	if got.Len() != sc.Len() {
		t.Fatalf("Len = %d, want %d", got.Len(), sc.Len())
	}
	for i := range sc.Len() {
		want, have := sc.At(i), got.At(i)
		if have == want {
			t.Errorf("shape %d: loaded the same pointer", i)
		}
		if !reflect.DeepEqual(have, want) {
			t.Errorf("shape %d: got %+v, want %+v", i, have, want)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		is   error
	}{
		{"malformed", `{"version":1,"shapes":[`, nil},
		{"unknown type", `{"version":1,"shapes":[{"type":"hexagon","stroke":{"a":255,"r":0,"g":0,"b":0},"data":{}}]}`, ErrUnknownShape},
		{"future version", `{"version":9,"shapes":[]}`, ErrUnsupportedVersion},
		{"missing data", `{"shapes":[{"type":"circle","stroke":{"a":255,"r":0,"g":0,"b":0}}]}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("err = %v, want %v", err, tt.is)
			}
		})
	}
}

func TestEncodeFormat(t *testing.T) {
	sc := scene.New(shape.NewLineSegment(geom.V(1, 2), geom.V(3, 4)))
	data, err := Marshal(sc)
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, want := range []string{`"version": 1`, `"type": "line"`, `"end"`} {
		if !strings.Contains(s, want) {
			t.Errorf("encoded document missing %s:\n%s", want, s)
		}
	}
	if strings.Contains(s, `"fill"`) {
		t.Errorf("line segments must not carry a fill:\n%s", s)
	}
}

func TestVersionlessDocument(t *testing.T) {
	in := `{"shapes":[{"type":"circle","fill":{"a":255,"r":1,"g":2,"b":3},"stroke":{"a":255,"r":0,"g":0,"b":0},"data":{"position":{"x":5,"y":6},"radius":7}}]}`
	sc, err := Unmarshal([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	c := sc.At(0).(*shape.Circle)
	if c.Position != geom.V(5, 6) || c.Radius != 7 || c.Fill != shape.ARGB(255, 1, 2, 3) {
		t.Errorf("circle = %+v", c)
	}
}

func TestSaveFileLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := SaveFile(filepath.Join(dir, "a.json"), NewSampleScene()); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("dir has %d entries, want 1", len(entries))
	}
}
