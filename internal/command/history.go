package command

import (
	"io"
	"log/slog"
)

// History keeps the undo and redo stacks. It is not safe for concurrent use.
type History struct {
	undo   []Command
	redo   []Command
	logger *slog.Logger
}

// NewHistory creates an empty history. A nil logger discards output.
func NewHistory(logger *slog.Logger) *History {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &History{logger: logger}
}

// Execute runs cmd, records it for undo and drops the redo stack.
func (h *History) Execute(cmd Command) {
	cmd.Execute()
	h.undo = append(h.undo, cmd)
	clear(h.redo)
	h.redo = h.redo[:0]
	h.logger.Debug("command executed", "command", cmd.Name(), "undo_depth", len(h.undo))
}

// Undo reverts the most recent command. It reports false when there is
// nothing to undo.
func (h *History) Undo() bool {
	if len(h.undo) == 0 {
		return false
	}
	cmd := h.undo[len(h.undo)-1]
	h.undo[len(h.undo)-1] = nil
	h.undo = h.undo[:len(h.undo)-1]
	cmd.Undo()
	h.redo = append(h.redo, cmd)
	h.logger.Debug("command undone", "command", cmd.Name())
	return true
}

// Redo re-executes the most recently undone command.
func (h *History) Redo() bool {
	if len(h.redo) == 0 {
		return false
	}
	cmd := h.redo[len(h.redo)-1]
	h.redo[len(h.redo)-1] = nil
	h.redo = h.redo[:len(h.redo)-1]
	cmd.Execute()
	h.undo = append(h.undo, cmd)
	h.logger.Debug("command redone", "command", cmd.Name())
	return true
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
func (h *History) UndoLen() int  { return len(h.undo) }
func (h *History) RedoLen() int  { return len(h.redo) }

// Reset forgets both stacks.
func (h *History) Reset() {
	clear(h.undo)
	clear(h.redo)
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}
