package command

import (
	"errors"
	"testing"

	"github.com/pablasso/watodo/internal/model"
	"github.com/pablasso/watodo/internal/task"
)

// run executes c the way the logic layer does: undo is bound to the
// history, everything else that changes the list is recorded.
func run(t *testing.T, m *model.TaskManager, h *History, c Command) Result {
	t.Helper()
	if b, ok := c.(HistoryBinder); ok {
		b.BindHistory(h)
	}
	res, err := c.Execute(m)
	if err != nil {
		t.Fatalf("%s failed: %v", c, err)
	}
	if _, isUndo := c.(*Undo); !isUndo && !IsReadOnly(c) {
		h.Record(c)
	}
	return res
}

func TestHistory_States(t *testing.T) {
	h := NewHistory()
	if !h.Empty() {
		t.Fatal("new history should be empty")
	}
	if _, ok := h.Previous(); ok {
		t.Fatal("expected no previous command")
	}

	a := NewClear()
	b := NewAdd(task.Task{Description: "b"})
	h.Record(a)
	h.Record(b)

	got, ok := h.Previous()
	if !ok || got != b {
		t.Fatalf("expected b to overwrite a, got %v", got)
	}

	got, ok = h.Take()
	if !ok || got != b {
		t.Fatalf("expected to take b, got %v", got)
	}
	if !h.Empty() {
		t.Error("expected history to be empty after take")
	}
}

func TestUndo_EmptyHistory(t *testing.T) {
	m := newManager(t, "a")
	before := snapshot(m)

	res, err := NewUndo(NewHistory()).Execute(m)
	if err != nil {
		t.Fatalf("undo with empty history must not fail: %v", err)
	}
	if res.Message != MessageNothingToUndo {
		t.Errorf("unexpected message: %q", res.Message)
	}
	assertSameTasks(t, snapshot(m), before)
}

func TestUndo_Example(t *testing.T) {
	m := newManager(t)
	h := NewHistory()

	run(t, m, h, NewAdd(task.Task{Description: "Buy milk"}))
	run(t, m, h, NewAdd(task.Task{Description: "Walk dog"}))

	res := run(t, m, h, &Undo{})
	if res.Message != "add Walk dog reverted." {
		t.Errorf("unexpected undo message: %q", res.Message)
	}
	tasks := m.Tasks()
	if len(tasks) != 1 || tasks[0].Description != "Buy milk" {
		t.Fatalf("expected only Buy milk, got %+v", tasks)
	}

	res = run(t, m, h, &Undo{})
	if res.Message != MessageNothingToUndo {
		t.Errorf("expected nothing to undo, got %q", res.Message)
	}
	if m.Len() != 1 {
		t.Errorf("second undo must not mutate the list")
	}
}

func TestUndo_OnlyReversesLastCommand(t *testing.T) {
	m := newManager(t, "a", "b", "c")
	h := NewHistory()

	run(t, m, h, NewDelete(1))
	afterA := snapshot(m)
	run(t, m, h, NewMark(1, true))

	run(t, m, h, &Undo{})

	assertSameTasks(t, snapshot(m), afterA)
}

func TestUndo_ReadOnlyCommandsDoNotOverwriteHistory(t *testing.T) {
	m := newManager(t, "a")
	h := NewHistory()

	run(t, m, h, NewAdd(task.Task{Description: "b"}))
	run(t, m, h, NewList(ScopeDone))
	run(t, m, h, NewFind([]string{"a"}))
	run(t, m, h, Help{})

	run(t, m, h, &Undo{})
	if m.Len() != 1 {
		t.Errorf("expected the add to be undone, got %d tasks", m.Len())
	}
}

func TestUndo_SequenceRoundTrip(t *testing.T) {
	desc := "renamed"
	steps := []func() Command{
		func() Command { return NewAdd(task.Task{Description: "x"}) },
		func() Command { return NewDelete(2) },
		func() Command { return NewEdit(1, EditDescriptor{Description: &desc}) },
		func() Command { return NewMark(1, true) },
		func() Command { return NewAdd(task.Task{Description: "y", Tags: []string{"t"}}) },
	}

	m := newManager(t, "a", "b", "c")
	h := NewHistory()
	for i, step := range steps {
		before := snapshot(m)
		run(t, m, h, step())
		run(t, m, h, &Undo{})
		assertSameTasks(t, snapshot(m), before)

		// Re-apply so the next step builds on it.
		run(t, m, h, steps[i]())
	}
}

type failingCommand struct {
	Clear
}

func (f *failingCommand) Unexecute(*model.TaskManager) error {
	return task.ErrTaskNotFound
}

func TestUndo_UnexecuteFailure(t *testing.T) {
	m := newManager(t, "a")
	h := NewHistory()
	h.Record(&failingCommand{})

	_, err := NewUndo(h).Execute(m)
	var cmdErr *Error
	if !errors.As(err, &cmdErr) || cmdErr.Message != MessageUndoFailure {
		t.Fatalf("expected undo failure, got %v", err)
	}
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("expected cause to be preserved")
	}
}

func TestUndo_CannotBeUnexecuted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	_ = NewUndo(NewHistory()).Unexecute(newManager(t))
}
