// Package msgs defines the tea messages the TUI reacts to.
package msgs

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pablasso/watodo/internal/events"
)

// TaskListChangedMsg asks the task list view to reload its tasks.
type TaskListChangedMsg struct {
	Size int
}

// JumpToMsg moves the selection to a 0-based position in the shown list.
type JumpToMsg struct {
	Index int
}

// ResultMsg carries the message produced by the last command.
type ResultMsg struct {
	Message string
	Failed  bool
}

// CommandDoneMsg is sent when a submitted command has finished running.
type CommandDoneMsg struct {
	Err error
}

// FromEvent converts a logic event into the matching message.
func FromEvent(e events.Event) tea.Msg {
	switch e := e.(type) {
	case events.TaskListChanged:
		return TaskListChangedMsg{Size: e.Size}
	case events.JumpToListRequest:
		return JumpToMsg{Index: e.TargetIndex}
	case events.ResultAvailable:
		return ResultMsg{Message: e.Message, Failed: e.Failed}
	default:
		return nil
	}
}
