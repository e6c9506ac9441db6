package command

import (
	"fmt"

	"github.com/pablasso/watodo/internal/model"
	"github.com/pablasso/watodo/internal/task"
)

// Delete removes the task shown at a display index.
type Delete struct {
	Index int

	deleted  task.Task
	position int
	lifecycle
}

// NewDelete creates a Delete command for the 1-based display index.
func NewDelete(index int) *Delete {
	return &Delete{Index: index}
}

func (c *Delete) Execute(m *model.TaskManager) (Result, error) {
	target, err := resolveIndex(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	position := m.IndexOf(target)
	if err := m.DeleteTask(target); err != nil {
		return Result{}, fromTaskError(err)
	}
	c.deleted = target
	c.position = position
	c.done()

	return message("Deleted task: %s", target), nil
}

// Unexecute puts the task back at the position it was deleted from.
func (c *Delete) Unexecute(m *model.TaskManager) error {
	c.beginUnexecute("delete")
	return m.InsertTask(c.position, c.deleted)
}

func (c *Delete) String() string {
	if c.executed {
		return "delete " + c.deleted.Description
	}
	return fmt.Sprintf("delete %d", c.Index)
}
