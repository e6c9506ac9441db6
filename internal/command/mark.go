package command

import (
	"fmt"

	"github.com/pablasso/watodo/internal/model"
	"github.com/pablasso/watodo/internal/task"
)

// Mark sets the completion status of the task at a display index.
type Mark struct {
	Index int
	Done  bool

	original task.Task
	marked   task.Task
	lifecycle
}

// NewMark creates a Mark command. done selects "done" or "undone".
func NewMark(index int, done bool) *Mark {
	return &Mark{Index: index, Done: done}
}

func (c *Mark) Execute(m *model.TaskManager) (Result, error) {
	original, err := resolveIndex(m, c.Index)
	if err != nil {
		return Result{}, err
	}
	if original.Completed == c.Done {
		return Result{}, NewError(fmt.Sprintf("Task is already marked %s.", c.status()), ErrAlreadyMarked)
	}

	marked := original.Clone()
	marked.Completed = c.Done
	if err := m.UpdateTask(original, marked); err != nil {
		return Result{}, fromTaskError(err)
	}
	c.original = original
	c.marked = marked
	c.done()

	res := message("Task marked %s: %s", c.status(), marked)
	res.JumpTo = jumpTo(m, marked)
	return res, nil
}

func (c *Mark) Unexecute(m *model.TaskManager) error {
	c.beginUnexecute(c.word())
	return m.UpdateTask(c.marked, c.original)
}

func (c *Mark) String() string {
	if c.executed {
		return c.word() + " " + c.original.Description
	}
	return fmt.Sprintf("%s %d", c.word(), c.Index)
}

func (c *Mark) word() string {
	if c.Done {
		return "done"
	}
	return "undone"
}

func (c *Mark) status() string {
	if c.Done {
		return "as done"
	}
	return "as not done"
}
