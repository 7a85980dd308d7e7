package store

import (
	"context"
	"errors"
	"testing"

	"github.com/shapesapp/shapes/internal/document"
	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/shape"
)

// exerciseStore runs the behavior every Store must share.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Load(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load missing = %v, want ErrNotFound", err)
	}

	first, err := s.Save(ctx, "drawing", document.NewSampleScene())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if first.Version != 1 || first.Name != "drawing" || first.ID == "" {
		t.Fatalf("first snapshot = %+v", first)
	}

	second, err := s.Save(ctx, "drawing", scene.New(shape.NewCircle(geom.V(1, 2), 3)))
	if err != nil {
		t.Fatalf("Save v2: %v", err)
	}
	if second.Version != 2 {
		t.Fatalf("second version = %d, want 2", second.Version)
	}

	sc, err := s.Load(ctx, "drawing")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if sc.Len() != 1 || sc.At(0).Kind() != shape.KindCircle {
		t.Fatalf("Load returned %d shapes, want the latest version", sc.Len())
	}

	if _, err := s.Save(ctx, "other", scene.New()); err != nil {
		t.Fatal(err)
	}
	list, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("List = %+v, want 2 names", list)
	}
	for _, snap := range list {
		if snap.Name == "drawing" && snap.Version != 2 {
			t.Errorf("List reports version %d for drawing, want 2", snap.Version)
		}
	}

	if err := s.Delete(ctx, "drawing"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "drawing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete = %v, want ErrNotFound", err)
	}
	if _, err := s.Load(ctx, "drawing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load after delete = %v", err)
	}

	if _, err := s.Save(ctx, "../escape", scene.New()); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("Save with bad name = %v, want ErrInvalidName", err)
	}
}

func TestFileStore(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	exerciseStore(t, s)
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"scene1", true},
		{"my-scene_2", true},
		{"", false},
		{"-leading", false},
		{"has space", false},
		{"a/b", false},
		{"..", false},
	}
	for _, tt := range tests {
		if err := ValidateName(tt.name); (err == nil) != tt.ok {
			t.Errorf("ValidateName(%q) = %v, want ok=%v", tt.name, err, tt.ok)
		}
	}
}
