// Package session runs live editing sessions. Each session owns one editor
// and applies every event for it on a single goroutine.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shapesapp/shapes/internal/document"
	"github.com/shapesapp/shapes/internal/editor"
	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/render"
	"github.com/shapesapp/shapes/internal/scene"
	"github.com/shapesapp/shapes/internal/shape"
	"github.com/shapesapp/shapes/internal/store"
)

var ErrSessionClosed = errors.New("session closed")

const storeTimeout = 10 * time.Second

type Session struct {
	ID string

	editor *editor.Editor
	store  store.Store
	logger *slog.Logger

	events    chan func()
	done      chan struct{}
	closeOnce sync.Once

	mu      sync.RWMutex
	clients map[string]*Client
	touched time.Time
}

func newSession(id string, st store.Store, logger *slog.Logger) *Session {
	logger = logger.With("session", id)
	s := &Session{
		ID:      id,
		editor:  editor.New(logger),
		store:   st,
		logger:  logger,
		events:  make(chan func()),
		done:    make(chan struct{}),
		clients: make(map[string]*Client),
		touched: time.Now(),
	}
	go s.run()
	return s
}

func (s *Session) run() {
	for {
		select {
		case fn := <-s.events:
			fn()
		case <-s.done:
			return
		}
	}
}

// Do runs fn on the session goroutine and waits for it to finish.
func (s *Session) Do(fn func(*editor.Editor)) error {
	finished := make(chan struct{})
	task := func() {
		defer close(finished)
		fn(s.editor)
	}
	select {
	case s.events <- task:
	case <-s.done:
		return ErrSessionClosed
	}
	<-finished
	return nil
}

// Close stops the event loop and disconnects every client.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.mu.Lock()
		for id, c := range s.clients {
			c.close()
			delete(s.clients, id)
		}
		s.mu.Unlock()
	})
}

func (s *Session) Closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// LastActive reports when a client last joined, left or sent an event.
func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.touched
}

func (s *Session) Clients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Session) touch() {
	s.mu.Lock()
	s.touched = time.Now()
	s.mu.Unlock()
}

// join queues the welcome and the current frame for c and then publishes it,
// all on the session goroutine, so no frame can overtake the welcome.
func (s *Session) join(c *Client) error {
	joined := false
	err := s.Do(func(e *editor.Editor) {
		c.Send(newMessage(TypeWelcome, WelcomePayload{SessionID: s.ID, ClientID: c.ID}))
		c.Send(frameMessage(e))

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.Closed() {
			return
		}
		s.clients[c.ID] = c
		s.touched = time.Now()
		joined = true
	})
	if err != nil {
		return err
	}
	if !joined {
		return ErrSessionClosed
	}

	s.logger.Info("client joined", "client", c.ID)
	return nil
}

func (s *Session) leave(c *Client) {
	s.mu.Lock()
	if _, ok := s.clients[c.ID]; ok {
		delete(s.clients, c.ID)
		c.close()
	}
	s.touched = time.Now()
	s.mu.Unlock()

	s.logger.Info("client left", "client", c.ID)
}

// Handle applies one inbound message on the session goroutine. The replies
// are queued for the sender and, when the scene changed, the new frame for
// every other client before the next event runs. A pointer event that only
// changes the cursor yields a cursor message for the sender. The replies are
// also returned.
func (s *Session) Handle(ctx context.Context, senderID string, msg *Message) ([]*Message, error) {
	s.touch()

	var replies []*Message
	err := s.Do(func(e *editor.Editor) {
		before := e.Cursor()
		changed, reply := s.apply(ctx, e, msg)
		if reply != nil {
			replies = append(replies, reply)
		}

		var frame *Message
		switch {
		case changed:
			frame = frameMessage(e)
			replies = append(replies, frame)
		case e.Cursor() != before:
			replies = append(replies, newMessage(TypeCursor, CursorPayload{Cursor: e.Cursor()}))
		}
		s.deliver(senderID, replies, frame)
	})
	if err != nil {
		return nil, err
	}
	return replies, nil
}

func (s *Session) apply(ctx context.Context, e *editor.Editor, msg *Message) (bool, *Message) {
	switch msg.Type {
	case TypePointerDown, TypePointerMove, TypePointerUp:
		var p PointerPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return false, errorMessage("invalid pointer payload")
		}
		pt := geom.V(p.X, p.Y)
		switch msg.Type {
		case TypePointerDown:
			return e.PointerDown(pt), nil
		case TypePointerMove:
			return e.PointerMove(pt), nil
		default:
			return e.PointerUp(pt), nil
		}

	case TypeKeyDown:
		var ev editor.KeyEvent
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			return false, errorMessage("invalid key payload")
		}
		action, changed := e.HandleKey(ev)
		if action == editor.ActionNone {
			return changed, nil
		}
		req := RequestPayload{Action: action}
		if action == editor.ActionHelp {
			req.Help = editor.Help()
		}
		return changed, newMessage(TypeRequest, req)

	case TypeShapeAdd:
		var p ShapeAddPayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil || !p.Kind.Valid() {
			return false, errorMessage("invalid shape kind")
		}
		return e.AddShape(p.Kind), nil

	case TypeFillSet:
		var c shape.Color
		if err := json.Unmarshal(msg.Payload, &c); err != nil {
			return false, errorMessage("invalid color payload")
		}
		return e.SetFillColor(c), nil

	case TypeUndo:
		return e.Undo(), nil

	case TypeRedo:
		return e.Redo(), nil

	case TypeSceneLoad:
		sc, err := s.loadScene(ctx, msg.Payload)
		if err != nil {
			s.logger.Warn("scene load failed", "error", err)
			return false, errorMessage(err.Error())
		}
		return e.LoadScene(sc), nil

	case TypeSceneSave:
		var p SceneSavePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return false, errorMessage("invalid save payload")
		}
		snap, err := s.saveScene(ctx, p.Name, e.Scene())
		if err != nil {
			s.logger.Warn("scene save failed", "error", err, "name", p.Name)
			return false, errorMessage(err.Error())
		}
		return false, newMessage(TypeSaved, SavedPayload{Snapshot: snap})
	}

	s.logger.Warn("unknown message type", "type", msg.Type)
	return false, errorMessage(fmt.Sprintf("unknown message type %q", msg.Type))
}

func (s *Session) loadScene(ctx context.Context, raw json.RawMessage) (*scene.Scene, error) {
	var p SceneLoadPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("invalid load payload: %w", err)
	}
	if len(p.Document) > 0 {
		return document.Unmarshal(p.Document)
	}
	if s.store == nil || p.Name == "" {
		return nil, errors.New("nothing to load")
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.store.Load(ctx, p.Name)
}

func (s *Session) saveScene(ctx context.Context, name string, sc *scene.Scene) (store.Snapshot, error) {
	if s.store == nil {
		return store.Snapshot{}, errors.New("no scene store configured")
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()
	return s.store.Save(ctx, name, sc)
}

// deliver queues replies for the sender and frame, if any, for everyone else.
// It must run on the session goroutine.
func (s *Session) deliver(senderID string, replies []*Message, frame *Message) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, c := range s.clients {
		switch {
		case id == senderID:
			for _, m := range replies {
				c.Send(m)
			}
		case frame != nil:
			c.Send(frame)
		}
	}
}

// Snapshot returns an independent copy of the session's scene.
func (s *Session) Snapshot() (*scene.Scene, error) {
	var sc *scene.Scene
	err := s.Do(func(e *editor.Editor) {
		shapes := e.Scene().Shapes()
		for i, sh := range shapes {
			shapes[i] = sh.Clone()
		}
		sc = scene.New(shapes...)
	})
	return sc, err
}

func frameMessage(e *editor.Editor) *Message {
	buf := render.NewBuffer()
	e.Draw(buf)
	commands := buf.Commands()
	if commands == nil {
		commands = []render.DrawCommand{}
	}
	return newMessage(TypeFrame, FramePayload{
		Commands:  commands,
		Cursor:    e.Cursor(),
		Mode:      e.Mode().String(),
		Selection: e.SelectedIndex(),
		CanUndo:   e.History().CanUndo(),
		CanRedo:   e.History().CanRedo(),
	})
}
