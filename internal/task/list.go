package task

import (
	"fmt"
	"slices"
)

// UniqueList is an ordered list of tasks in which no two tasks are Equal.
// Order is insertion order and is what display indices refer to.
//
// Every mutating method either succeeds completely or leaves the list
// untouched.
type UniqueList struct {
	tasks []Task
}

// NewUniqueList returns an empty list.
func NewUniqueList() *UniqueList {
	return &UniqueList{}
}

// Len returns the number of tasks.
func (l *UniqueList) Len() int {
	return len(l.tasks)
}

// Contains reports whether a task equal to t is in the list.
func (l *UniqueList) Contains(t Task) bool {
	return l.IndexOf(t) >= 0
}

// IndexOf returns the position of the task equal to t, or -1.
func (l *UniqueList) IndexOf(t Task) int {
	return slices.IndexFunc(l.tasks, t.Equal)
}

// At returns a copy of the task at position i.
func (l *UniqueList) At(i int) (Task, error) {
	if i < 0 || i >= len(l.tasks) {
		return Task{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return l.tasks[i].Clone(), nil
}

// Add appends t.
func (l *UniqueList) Add(t Task) error {
	if l.Contains(t) {
		return ErrDuplicateTask
	}
	l.tasks = append(l.tasks, t.Clone())
	return nil
}

// Insert places t at position i, shifting later tasks down.
func (l *UniqueList) Insert(i int, t Task) error {
	if i < 0 || i > len(l.tasks) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	if l.Contains(t) {
		return ErrDuplicateTask
	}
	l.tasks = slices.Insert(l.tasks, i, t.Clone())
	return nil
}

// Remove deletes the task equal to t.
func (l *UniqueList) Remove(t Task) error {
	i := l.IndexOf(t)
	if i < 0 {
		return ErrTaskNotFound
	}
	l.tasks = slices.Delete(l.tasks, i, i+1)
	return nil
}

// Replace swaps target for replacement in place. Replacing a task with a
// value equal to itself (e.g. only completion or tags changed) is allowed.
func (l *UniqueList) Replace(target, replacement Task) error {
	i := l.IndexOf(target)
	if i < 0 {
		return ErrTaskNotFound
	}
	if j := l.IndexOf(replacement); j >= 0 && j != i {
		return ErrDuplicateTask
	}
	l.tasks[i] = replacement.Clone()
	return nil
}

// SetTasks replaces the whole content of the list.
func (l *UniqueList) SetTasks(tasks []Task) error {
	next := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if slices.ContainsFunc(next, t.Equal) {
			return fmt.Errorf("%w: %s", ErrDuplicateTask, t.Description)
		}
		next = append(next, t.Clone())
	}
	l.tasks = next
	return nil
}

// View returns a copy of the tasks in order. Changing the returned slice
// or its tasks does not affect the list.
func (l *UniqueList) View() []Task {
	out := make([]Task, len(l.tasks))
	for i, t := range l.tasks {
		out[i] = t.Clone()
	}
	return out
}
