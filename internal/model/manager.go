// Package model holds the task manager, the single mutable root that
// commands act upon.
package model

import (
	"fmt"

	"github.com/pablasso/watodo/internal/task"
)

// Predicate selects which tasks are shown.
type Predicate func(task.Task) bool

// TaskManager owns the task list and the current display filter.
type TaskManager struct {
	tasks  *task.UniqueList
	filter Predicate
}

// NewTaskManager creates a manager holding the given tasks.
func NewTaskManager(initial []task.Task) (*TaskManager, error) {
	l := task.NewUniqueList()
	if err := l.SetTasks(initial); err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}
	return &TaskManager{tasks: l}, nil
}

// AddTask appends t to the list.
func (m *TaskManager) AddTask(t task.Task) error {
	return m.tasks.Add(t)
}

// InsertTask places t at position i of the full list.
func (m *TaskManager) InsertTask(i int, t task.Task) error {
	return m.tasks.Insert(i, t)
}

// DeleteTask removes t from the list.
func (m *TaskManager) DeleteTask(t task.Task) error {
	return m.tasks.Remove(t)
}

// UpdateTask replaces target with edited, keeping its position.
func (m *TaskManager) UpdateTask(target, edited task.Task) error {
	return m.tasks.Replace(target, edited)
}

// ResetData replaces every task.
func (m *TaskManager) ResetData(tasks []task.Task) error {
	return m.tasks.SetTasks(tasks)
}

// IndexOf returns the position of t in the full list, or -1.
func (m *TaskManager) IndexOf(t task.Task) int {
	return m.tasks.IndexOf(t)
}

// Tasks returns every task in order.
func (m *TaskManager) Tasks() []task.Task {
	return m.tasks.View()
}

// Len returns the number of tasks in the full list.
func (m *TaskManager) Len() int {
	return m.tasks.Len()
}

// FilteredTasks returns the tasks that pass the current filter, in order.
// Display indices are 1-based positions in this slice.
func (m *TaskManager) FilteredTasks() []task.Task {
	all := m.tasks.View()
	if m.filter == nil {
		return all
	}
	out := make([]task.Task, 0, len(all))
	for _, t := range all {
		if m.filter(t) {
			out = append(out, t)
		}
	}
	return out
}

// FilteredIndexOf returns the 0-based position of t in the filtered view,
// or -1 if it is hidden or absent.
func (m *TaskManager) FilteredIndexOf(t task.Task) int {
	for i, candidate := range m.FilteredTasks() {
		if candidate.Equal(t) {
			return i
		}
	}
	return -1
}

// UpdateFilter sets the display filter. A nil predicate shows everything.
func (m *TaskManager) UpdateFilter(p Predicate) {
	m.filter = p
}

// Filter returns the current display filter.
func (m *TaskManager) Filter() Predicate {
	return m.filter
}
