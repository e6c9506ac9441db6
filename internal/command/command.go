// Package command implements the reversible commands applied to the task
// manager and the history used to undo them.
package command

import (
	"errors"
	"fmt"

	"github.com/pablasso/watodo/internal/model"
	"github.com/pablasso/watodo/internal/task"
)

// NoJump is the Result.JumpTo value when no task should be highlighted.
const NoJump = -1

// User-facing messages shared by several commands.
const (
	MessageInvalidIndex  = "The task index provided is invalid."
	MessageDuplicateTask = "This task already exists in the task list."
	MessageTaskNotFound  = "The target task is missing from the task list."
)

var (
	ErrInvalidIndex  = errors.New("invalid task index")
	ErrNothingToEdit = errors.New("nothing to edit")
	ErrAlreadyMarked = errors.New("task already has that status")

	ErrInvalidArgument = errors.New("invalid argument")
)

// Command is a reversible unit of work applied to a task manager.
//
// Execute applies the command and captures whatever it needs to reverse
// itself. Unexecute restores the task list to exactly the state it had
// before Execute. Calling Unexecute before a successful Execute, or twice,
// panics; the history is responsible for sequencing.
type Command interface {
	Execute(m *model.TaskManager) (Result, error)
	Unexecute(m *model.TaskManager) error
	String() string
}

// ReadOnly is implemented by commands that never change the task list.
// They are not recorded in the history.
type ReadOnly interface {
	readOnly()
}

// HistoryBinder is implemented by commands that operate on the history
// rather than on the task list.
type HistoryBinder interface {
	BindHistory(h *History)
}

// IsReadOnly reports whether c leaves the task list untouched.
func IsReadOnly(c Command) bool {
	_, ok := c.(ReadOnly)
	return ok
}

// Result is the outcome of a successful command.
type Result struct {
	Message string
	// JumpTo is the 0-based position in the filtered view to highlight,
	// or NoJump.
	JumpTo int
}

func message(format string, args ...any) Result {
	return Result{Message: fmt.Sprintf(format, args...), JumpTo: NoJump}
}

// Error is returned by Execute when a command cannot be applied. Message is
// shown to the user; Err carries the cause for errors.Is.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s (%v)", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError builds a command error.
func NewError(msg string, err error) *Error {
	return &Error{Message: msg, Err: err}
}

// fromTaskError maps task list failures onto command errors.
func fromTaskError(err error) error {
	switch {
	case errors.Is(err, task.ErrDuplicateTask):
		return NewError(MessageDuplicateTask, err)
	case errors.Is(err, task.ErrTaskNotFound):
		return NewError(MessageTaskNotFound, err)
	case errors.Is(err, task.ErrInvalidTask):
		return NewError(err.Error(), err)
	default:
		return NewError("The command could not be applied.", err)
	}
}

// resolveIndex maps a 1-based display index onto the filtered view.
func resolveIndex(m *model.TaskManager, index int) (task.Task, error) {
	shown := m.FilteredTasks()
	if index < 1 || index > len(shown) {
		return task.Task{}, NewError(MessageInvalidIndex, fmt.Errorf("%w: %d", ErrInvalidIndex, index))
	}
	return shown[index-1], nil
}

// jumpTo returns the filtered position of t, or NoJump when it is hidden.
func jumpTo(m *model.TaskManager, t task.Task) int {
	if i := m.FilteredIndexOf(t); i >= 0 {
		return i
	}
	return NoJump
}

// lifecycle enforces execute-once, unexecute-at-most-once.
type lifecycle struct {
	executed   bool
	unexecuted bool
}

func (l *lifecycle) done() {
	l.executed = true
}

func (l *lifecycle) beginUnexecute(name string) {
	if !l.executed {
		panic(fmt.Sprintf("%s: unexecute called before execute", name))
	}
	if l.unexecuted {
		panic(fmt.Sprintf("%s: unexecute called twice", name))
	}
	l.unexecuted = true
}
