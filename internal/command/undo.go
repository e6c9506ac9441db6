package command

import (
	"fmt"

	"github.com/pablasso/watodo/internal/model"
)

// Undo messages
const (
	MessageUndoSuccess   = "%s reverted."
	MessageNothingToUndo = "No command left to undo."
	MessageUndoFailure   = "Failed to undo."
)

// Undo reverts the command held by the history.
type Undo struct {
	history *History
}

// NewUndo creates an Undo command bound to h.
func NewUndo(h *History) *Undo {
	return &Undo{history: h}
}

// BindHistory implements HistoryBinder.
func (c *Undo) BindHistory(h *History) {
	c.history = h
}

// Execute unexecutes the previous command. An empty history is not an
// error: the result says there is nothing to undo.
func (c *Undo) Execute(m *model.TaskManager) (Result, error) {
	if c.history == nil {
		panic("undo: executed without a history")
	}

	previous, ok := c.history.Take()
	if !ok {
		return message("%s", MessageNothingToUndo), nil
	}
	if err := previous.Unexecute(m); err != nil {
		return Result{}, NewError(MessageUndoFailure, fmt.Errorf("%s: %w", previous, err))
	}
	return message(MessageUndoSuccess, previous), nil
}

// Unexecute panics: an undo is never recorded, so it is never undone.
func (c *Undo) Unexecute(*model.TaskManager) error {
	panic("undo: cannot be unexecuted")
}

func (c *Undo) String() string {
	return "undo"
}
