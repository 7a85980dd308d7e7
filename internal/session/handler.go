package session

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/shapesapp/shapes/internal/auth"
)

type Handler struct {
	hub     *Hub
	auth    *auth.Service
	origins []string
}

// NewHandler serves session creation and WebSocket attachment. origins are
// the host patterns accepted for cross-origin upgrades.
func NewHandler(hub *Hub, authSvc *auth.Service, origins []string) *Handler {
	return &Handler{hub: hub, auth: authSvc, origins: origins}
}

type createResponse struct {
	SessionID string    `json:"sessionId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	s := h.hub.Create()

	token, err := h.auth.IssueToken(s.ID)
	if err != nil {
		h.hub.Close(s.ID)
		slog.Error("issue session token failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusCreated, createResponse{
		SessionID: s.ID,
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
	})
}

// Delete closes the session. Use behind auth.RequireSession.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.hub.Close(mux.Vars(r)["sessionId"]); err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ServeWS upgrades the request and attaches a client to the session. Use
// behind auth.RequireSession.
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	s, err := h.hub.Get(mux.Vars(r)["sessionId"])
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.origins,
	})
	if err != nil {
		slog.Error("websocket accept", "error", err)
		return
	}

	client := NewClient(s, conn, uuid.New().String())
	client.Serve(r.Context())
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
