package command

import (
	"github.com/pablasso/watodo/internal/model"
	"github.com/pablasso/watodo/internal/task"
)

// Add appends a new task.
type Add struct {
	Task task.Task

	lifecycle
}

// NewAdd creates an Add command for t.
func NewAdd(t task.Task) *Add {
	return &Add{Task: t}
}

func (c *Add) Execute(m *model.TaskManager) (Result, error) {
	if err := c.Task.Validate(); err != nil {
		return Result{}, fromTaskError(err)
	}
	if err := m.AddTask(c.Task); err != nil {
		return Result{}, fromTaskError(err)
	}
	c.done()

	res := message("New task added: %s", c.Task)
	res.JumpTo = jumpTo(m, c.Task)
	return res, nil
}

func (c *Add) Unexecute(m *model.TaskManager) error {
	c.beginUnexecute("add")
	return m.DeleteTask(c.Task)
}

func (c *Add) String() string {
	return "add " + c.Task.String()
}
