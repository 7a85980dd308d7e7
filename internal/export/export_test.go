package export

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/shapesapp/shapes/internal/document"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/scenes"
	"github.com/shapesapp/shapes/internal/session"
	"github.com/shapesapp/shapes/internal/shape"
	"github.com/shapesapp/shapes/internal/store"
)

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, document.NewSampleScene(), 320, 200, shape.White); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 200 {
		t.Errorf("bounds = %v", b)
	}
}

func TestPNGInvalidSize(t *testing.T) {
	if err := PNG(&bytes.Buffer{}, scene.New(), 0, 10, shape.White); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := PDF(&buf, document.NewSampleScene(), 900, 600); err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", buf.Bytes()[:min(8, buf.Len())])
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct{ in, want string }{
		{"my scene", "my-scene"},
		{"../etc/passwd", "---etc-passwd"},
		{"ok_name-1", "ok_name-1"},
		{"", "scene"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHandler(t *testing.T) {
	st, err := store.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	svc := scenes.NewService(st)
	if _, err := svc.Save(t.Context(), "demo", document.NewSampleScene()); err != nil {
		t.Fatal(err)
	}
	hub := session.NewHub(st, nil)
	defer hub.Stop()
	sess := hub.Create()

	h := NewHandler(hub, svc, 200, 100)
	r := mux.NewRouter()
	r.HandleFunc("/sessions/{sessionId}/export.{format}", h.ExportSession)
	r.HandleFunc("/api/scenes/{name}/export.{format}", h.ExportScene)

	tests := []struct {
		name        string
		path        string
		status      int
		contentType string
		filename    string
	}{
		{"stored png", "/api/scenes/demo/export.png", http.StatusOK, "image/png", `filename="demo.png"`},
		{"stored pdf named", "/api/scenes/demo/export.pdf?name=my%20board", http.StatusOK, "application/pdf", `filename="my-board.pdf"`},
		{"session png", "/sessions/" + sess.ID + "/export.png?width=50&height=40", http.StatusOK, "image/png", `filename="scene.png"`},
		{"bad format", "/api/scenes/demo/export.svg", http.StatusBadRequest, "", ""},
		{"bad width", "/api/scenes/demo/export.png?width=-3", http.StatusBadRequest, "", ""},
		{"missing scene", "/api/scenes/nope/export.png", http.StatusNotFound, "", ""},
		{"missing session", "/sessions/sess_missing/export.png", http.StatusNotFound, "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest("GET", tt.path, nil))
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body.String())
			}
			if tt.contentType == "" {
				return
			}
			if got := rec.Header().Get("Content-Type"); got != tt.contentType {
				t.Errorf("Content-Type = %q", got)
			}
			if got := rec.Header().Get("Content-Disposition"); !strings.Contains(got, tt.filename) {
				t.Errorf("Content-Disposition = %q, want %s", got, tt.filename)
			}
		})
	}
}
