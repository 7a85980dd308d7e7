package editor

import "fmt"

// Cursor is the pointer affordance the frontend should display.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorMove
	CursorRotate
	CursorResizeNWSE
	CursorResizeNESW
	CursorResizeWE
	CursorResizeNS
	CursorResizeAll
)

var cursorNames = [...]string{
	CursorDefault:    "default",
	CursorMove:       "move",
	CursorRotate:     "pointer",
	CursorResizeNWSE: "nwse-resize",
	CursorResizeNESW: "nesw-resize",
	CursorResizeWE:   "ew-resize",
	CursorResizeNS:   "ns-resize",
	CursorResizeAll:  "all-scroll",
}

// String returns the CSS cursor keyword.
func (c Cursor) String() string {
	if c < 0 || int(c) >= len(cursorNames) {
		return "default"
	}
	return cursorNames[c]
}

func (c Cursor) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cursor) UnmarshalText(text []byte) error {
	for i, name := range cursorNames {
		if name == string(text) {
			*c = Cursor(i)
			return nil
		}
	}
	return fmt.Errorf("unknown cursor %q", text)
}
