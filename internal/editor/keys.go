package editor

import (
	"fmt"
	"strings"

	"github.com/shapesapp/shapes/internal/shape"
)

// KeyEvent is a key press. Key is a lowercase letter for letter keys, or
// "delete".
type KeyEvent struct {
	Key   string `json:"key"`
	Ctrl  bool   `json:"ctrl"`
	Shift bool   `json:"shift"`
}

// Action is work the frontend must complete because it needs an external
// collaborator (color picker, file dialog, message box).
type Action int

const (
	ActionNone Action = iota
	ActionPickFill
	ActionSave
	ActionOpen
	ActionHelp
)

func (a Action) String() string {
	switch a {
	case ActionPickFill:
		return "pickFill"
	case ActionSave:
		return "save"
	case ActionOpen:
		return "open"
	case ActionHelp:
		return "help"
	}
	return "none"
}

func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Action) UnmarshalText(text []byte) error {
	for _, v := range []Action{ActionNone, ActionPickFill, ActionSave, ActionOpen, ActionHelp} {
		if v.String() == string(text) {
			*a = v
			return nil
		}
	}
	return fmt.Errorf("unknown action %q", text)
}

// HandleKey applies a keyboard shortcut. It returns the follow-up the
// frontend has to perform and whether a repaint is needed.
func (e *Editor) HandleKey(ev KeyEvent) (Action, bool) {
	key := strings.ToLower(ev.Key)
	if key == "delete" {
		return ActionNone, e.DeleteSelected()
	}
	if !ev.Ctrl {
		return ActionNone, false
	}
	// Ctrl+Shift+C adds a circle; plain Ctrl+C copies.
	if ev.Shift {
		if key == "c" {
			return ActionNone, e.AddShape(shape.KindCircle)
		}
		return ActionNone, false
	}
	switch key {
	case "z":
		return ActionNone, e.Undo()
	case "y":
		return ActionNone, e.Redo()
	case "c":
		return ActionNone, e.CopySelected()
	case "v":
		return ActionNone, e.Paste()
	case "f":
		if e.selected == nil {
			return ActionNone, false
		}
		return ActionPickFill, false
	case "r":
		return ActionNone, e.AddShape(shape.KindRectangle)
	case "l":
		return ActionNone, e.AddShape(shape.KindLine)
	case "e":
		return ActionNone, e.AddShape(shape.KindEllipse)
	case "t":
		return ActionNone, e.AddShape(shape.KindTriangle)
	case "s":
		return ActionSave, false
	case "o":
		return ActionOpen, false
	case "h":
		return ActionHelp, false
	}
	return ActionNone, false
}

// Help returns the shortcut reference shown by the help action.
func Help() string {
	return `Commands and Shortcuts:

1. Delete - Select + Delete
2. Undo - Ctrl + Z
3. Redo - Ctrl + Y
4. Copy - Ctrl + C
5. Paste - Ctrl + V
6. Fill Color - Ctrl + F
7. Add Circle - Ctrl+Shift+C
8. Add Rectangle - Ctrl+R
9. Add Line - Ctrl+L
10. Add Ellipse - Ctrl+E
11. Add Triangle - Ctrl+T
12. Save - Ctrl+S
13. Open - Ctrl+O
14. Select/Move - Click and drag
15. Resize - Drag square handles
16. Rotate - Drag the small circle above the shape`
}
