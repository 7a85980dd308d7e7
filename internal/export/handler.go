// Package export renders scenes to PNG and PDF and serves them over HTTP.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/scenes"
	"github.com/shapesapp/shapes/internal/session"
	"github.com/shapesapp/shapes/internal/shape"
	"github.com/shapesapp/shapes/internal/typeid"
)

const maxDimension = 8192

type Handler struct {
	hub    *session.Hub
	scenes *scenes.Service
	width  int
	height int
}

// NewHandler serves exports for live sessions and stored scenes. width and
// height are the default canvas size.
func NewHandler(hub *session.Hub, scenes *scenes.Service, width, height int) *Handler {
	return &Handler{hub: hub, scenes: scenes, width: width, height: height}
}

// ExportSession renders the current scene of the session named by the
// sessionId path variable.
func (h *Handler) ExportSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["sessionId"]

	s, err := h.hub.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	sc, err := s.Snapshot()
	if err != nil {
		writeError(w, http.StatusNotFound, "session closed")
		return
	}

	h.export(w, r, sc, "scene")
}

// ExportScene renders the latest stored version of the scene named by the
// name path variable.
func (h *Handler) ExportScene(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	sc, err := h.scenes.Scene(r.Context(), name)
	if err != nil {
		switch {
		case errors.Is(err, scenes.ErrNotFound):
			writeError(w, http.StatusNotFound, "not found")
		case errors.Is(err, scenes.ErrInvalidName):
			writeError(w, http.StatusBadRequest, "invalid scene name")
		default:
			slog.Error("load scene for export", "error", err, "name", name)
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	h.export(w, r, sc, name)
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request, sc *scene.Scene, defaultName string) {
	format := mux.Vars(r)["format"]
	if format != "png" && format != "pdf" {
		writeError(w, http.StatusBadRequest, "invalid format: must be png or pdf")
		return
	}

	width, err := dimension(r.URL.Query().Get("width"), h.width)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := dimension(r.URL.Query().Get("height"), h.height)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = defaultName
	}
	name = SanitizeFilename(name)

	exportID := typeid.NewExportID()
	slog.Info("export started", "export", exportID, "format", format, "shapes", sc.Len(), "width", width, "height", height)

	var buf bytes.Buffer
	var contentType string
	switch format {
	case "png":
		contentType = "image/png"
		err = PNG(&buf, sc, width, height, shape.White)
	case "pdf":
		contentType = "application/pdf"
		err = PDF(&buf, sc, float64(width), float64(height))
	}
	if err != nil {
		slog.Error("export failed", "export", exportID, "error", err)
		writeError(w, http.StatusInternalServerError, "export failed")
		return
	}

	slog.Info("export complete", "export", exportID, "bytes", buf.Len())

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, name, format))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Write(buf.Bytes())
}

func dimension(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 || v > maxDimension {
		return 0, fmt.Errorf("invalid dimension %q", raw)
	}
	return v, nil
}

// SanitizeFilename replaces everything outside [A-Za-z0-9_-] with '-'.
func SanitizeFilename(name string) string {
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)
	if name == "" {
		return "scene"
	}
	return name
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
