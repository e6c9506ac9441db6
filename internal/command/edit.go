package command

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pablasso/watodo/internal/model"
	"github.com/pablasso/watodo/internal/task"
)

// Bounds replaces a task's time bounds. Both nil makes the task floating.
type Bounds struct {
	Start *time.Time
	End   *time.Time
}

// EditDescriptor lists the changes an Edit applies. Nil fields are left
// unchanged.
type EditDescriptor struct {
	Description *string
	Bounds      *Bounds
	AddTags     []string
	RemoveTags  []string
}

// IsEmpty reports whether the descriptor changes nothing.
func (d EditDescriptor) IsEmpty() bool {
	return d.Description == nil && d.Bounds == nil && len(d.AddTags) == 0 && len(d.RemoveTags) == 0
}

// Apply returns a copy of t with the changes applied.
func (d EditDescriptor) Apply(t task.Task) task.Task {
	edited := t.Clone()
	if d.Description != nil {
		edited.Description = strings.TrimSpace(*d.Description)
	}
	if d.Bounds != nil {
		edited.Start = d.Bounds.Start
		edited.End = d.Bounds.End
	}
	tags := append(slices.Clone(edited.Tags), d.AddTags...)
	remove := task.NormalizeTags(d.RemoveTags)
	tags = task.NormalizeTags(tags)
	tags = slices.DeleteFunc(tags, func(tag string) bool {
		return slices.Contains(remove, tag)
	})
	if len(tags) == 0 {
		tags = nil
	}
	edited.Tags = tags
	return edited
}

// Edit replaces the task at a display index with an edited copy.
type Edit struct {
	Index   int
	Changes EditDescriptor

	original task.Task
	edited   task.Task
	lifecycle
}

// NewEdit creates an Edit command for the 1-based display index.
func NewEdit(index int, changes EditDescriptor) *Edit {
	return &Edit{Index: index, Changes: changes}
}

func (c *Edit) Execute(m *model.TaskManager) (Result, error) {
	if c.Changes.IsEmpty() {
		return Result{}, NewError("At least one field to edit must be provided.", ErrNothingToEdit)
	}
	original, err := resolveIndex(m, c.Index)
	if err != nil {
		return Result{}, err
	}

	edited := c.Changes.Apply(original)
	if err := edited.Validate(); err != nil {
		return Result{}, fromTaskError(err)
	}
	if err := m.UpdateTask(original, edited); err != nil {
		return Result{}, fromTaskError(err)
	}
	c.original = original
	c.edited = edited
	c.done()

	res := message("Edited task: %s", edited)
	res.JumpTo = jumpTo(m, edited)
	return res, nil
}

// Unexecute restores the original value in place.
func (c *Edit) Unexecute(m *model.TaskManager) error {
	c.beginUnexecute("edit")
	return m.UpdateTask(c.edited, c.original)
}

func (c *Edit) String() string {
	if c.executed {
		return "edit " + c.original.Description
	}
	return fmt.Sprintf("edit %d", c.Index)
}
