package command

import (
	"github.com/pablasso/watodo/internal/model"
	"github.com/pablasso/watodo/internal/task"
)

// Clear removes every task.
type Clear struct {
	snapshot []task.Task
	lifecycle
}

// NewClear creates a Clear command.
func NewClear() *Clear {
	return &Clear{}
}

func (c *Clear) Execute(m *model.TaskManager) (Result, error) {
	c.snapshot = m.Tasks()
	if err := m.ResetData(nil); err != nil {
		return Result{}, fromTaskError(err)
	}
	c.done()
	return message("Task list has been cleared!"), nil
}

func (c *Clear) Unexecute(m *model.TaskManager) error {
	c.beginUnexecute("clear")
	return m.ResetData(c.snapshot)
}

func (c *Clear) String() string {
	return "clear"
}
