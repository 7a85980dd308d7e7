package session

import (
	"encoding/json"

	"github.com/shapesapp/shapes/internal/editor"
	"github.com/shapesapp/shapes/internal/render"
	"github.com/shapesapp/shapes/internal/shape"
	"github.com/shapesapp/shapes/internal/store"
)

type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

const (
	// Inbound
	TypePointerDown = "pointer.down"
	TypePointerMove = "pointer.move"
	TypePointerUp   = "pointer.up"
	TypeKeyDown     = "key.down"
	TypeShapeAdd    = "shape.add"
	TypeFillSet     = "fill.set"
	TypeSceneLoad   = "scene.load"
	TypeSceneSave   = "scene.save"
	TypeUndo        = "undo"
	TypeRedo        = "redo"

	// Outbound
	TypeWelcome = "welcome"
	TypeFrame   = "frame"
	TypeCursor  = "cursor"
	TypeRequest = "request"
	TypeSaved   = "saved"
	TypeError   = "error"
)

type PointerPayload struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ShapeAddPayload struct {
	Kind shape.Kind `json:"kind"`
}

// SceneLoadPayload carries either an inline document or the name of a stored
// scene.
type SceneLoadPayload struct {
	Document json.RawMessage `json:"document,omitempty"`
	Name     string          `json:"name,omitempty"`
}

type SceneSavePayload struct {
	Name string `json:"name"`
}

type WelcomePayload struct {
	SessionID string `json:"sessionId"`
	ClientID  string `json:"clientId"`
}

type FramePayload struct {
	Commands  []render.DrawCommand `json:"commands"`
	Cursor    editor.Cursor        `json:"cursor"`
	Mode      string               `json:"mode"`
	Selection int                  `json:"selection"`
	CanUndo   bool                 `json:"canUndo"`
	CanRedo   bool                 `json:"canRedo"`
}

// CursorPayload updates the pointer affordance when the scene is unchanged.
type CursorPayload struct {
	Cursor editor.Cursor `json:"cursor"`
}

type RequestPayload struct {
	Action editor.Action `json:"action"`
	Help   string        `json:"help,omitempty"`
}

type SavedPayload struct {
	Snapshot store.Snapshot `json:"snapshot"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func newMessage(typ string, payload any) *Message {
	raw, err := json.Marshal(payload)
	if err != nil {
		return errorMessage("encode " + typ + ": " + err.Error())
	}
	return &Message{Type: typ, Payload: raw}
}

func errorMessage(text string) *Message {
	raw, _ := json.Marshal(ErrorPayload{Message: text})
	return &Message{Type: TypeError, Payload: raw}
}
