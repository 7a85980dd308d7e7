package session

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/shapesapp/shapes/internal/store"
	"github.com/shapesapp/shapes/internal/typeid"
)

var ErrSessionNotFound = errors.New("session not found")

// Hub tracks the live sessions by ID.
type Hub struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	store    store.Store
	logger   *slog.Logger
}

// NewHub creates a hub whose sessions save and load through st. st may be nil.
func NewHub(st store.Store, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Hub{
		sessions: make(map[string]*Session),
		store:    st,
		logger:   logger,
	}
}

func (h *Hub) Create() *Session {
	s := newSession(typeid.NewSessionID(), h.store, h.logger)

	h.mu.Lock()
	h.sessions[s.ID] = s
	h.mu.Unlock()

	h.logger.Info("session created", "session", s.ID)
	return s
}

func (h *Hub) Get(id string) (*Session, error) {
	if err := typeid.Validate(id, typeid.PrefixSession); err != nil {
		return nil, ErrSessionNotFound
	}
	h.mu.RLock()
	s, ok := h.sessions[id]
	h.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (h *Hub) Close(id string) error {
	h.mu.Lock()
	s, ok := h.sessions[id]
	delete(h.sessions, id)
	h.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	s.Close()
	h.logger.Info("session closed", "session", id)
	return nil
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Reap closes sessions that have no clients and have been idle longer than
// maxIdle. It returns the number of sessions closed.
func (h *Hub) Reap(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	h.mu.Lock()
	var stale []*Session
	for id, s := range h.sessions {
		if s.Clients() == 0 && s.LastActive().Before(cutoff) {
			stale = append(stale, s)
			delete(h.sessions, id)
		}
	}
	h.mu.Unlock()

	for _, s := range stale {
		s.Close()
		h.logger.Info("session expired", "session", s.ID)
	}
	return len(stale)
}

// Run reaps idle sessions every interval until stop is closed.
func (h *Hub) Run(interval, maxIdle time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			h.Reap(maxIdle)
		case <-stop:
			return
		}
	}
}

// Stop closes every session.
func (h *Hub) Stop() {
	h.mu.Lock()
	sessions := h.sessions
	h.sessions = make(map[string]*Session)
	h.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
	h.logger.Info("hub stopped", "sessions", len(sessions))
}
