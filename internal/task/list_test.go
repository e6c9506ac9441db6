package task

import (
	"errors"
	"testing"
	"time"
)

func mustTask(t *testing.T, description string) Task {
	t.Helper()
	task, err := New(description, nil, nil, nil)
	if err != nil {
		t.Fatalf("failed to create task %q: %v", description, err)
	}
	return task
}

func descriptions(tasks []Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Description
	}
	return out
}

func assertDescriptions(t *testing.T, l *UniqueList, want ...string) {
	t.Helper()
	got := descriptions(l.View())
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestUniqueList_Add(t *testing.T) {
	l := NewUniqueList()

	if err := l.Add(mustTask(t, "Buy milk")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Add(mustTask(t, "Walk dog")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDescriptions(t, l, "Buy milk", "Walk dog")
}

func TestUniqueList_Add_Duplicate(t *testing.T) {
	l := NewUniqueList()
	if err := l.Add(mustTask(t, "Buy milk")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := l.Add(mustTask(t, "Buy milk"))
	if !errors.Is(err, ErrDuplicateTask) {
		t.Fatalf("expected ErrDuplicateTask, got %v", err)
	}

	if l.Len() != 1 {
		t.Errorf("expected exactly one copy, got %d tasks", l.Len())
	}
}

func TestUniqueList_Add_SameDescriptionDifferentBounds(t *testing.T) {
	l := NewUniqueList()
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	withDeadline, err := New("Buy milk", nil, &due, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := l.Add(mustTask(t, "Buy milk")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Add(withDeadline); err != nil {
		t.Fatalf("tasks with different bounds should both be accepted: %v", err)
	}
}

func TestUniqueList_Remove(t *testing.T) {
	l := NewUniqueList()
	_ = l.Add(mustTask(t, "a"))
	_ = l.Add(mustTask(t, "b"))
	_ = l.Add(mustTask(t, "c"))

	if err := l.Remove(mustTask(t, "b")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDescriptions(t, l, "a", "c")
}

func TestUniqueList_Remove_NotFound(t *testing.T) {
	l := NewUniqueList()
	_ = l.Add(mustTask(t, "a"))

	err := l.Remove(mustTask(t, "missing"))
	if !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}

	assertDescriptions(t, l, "a")
}

func TestUniqueList_Replace(t *testing.T) {
	l := NewUniqueList()
	_ = l.Add(mustTask(t, "a"))
	_ = l.Add(mustTask(t, "b"))
	_ = l.Add(mustTask(t, "c"))

	if err := l.Replace(mustTask(t, "b"), mustTask(t, "B")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assertDescriptions(t, l, "a", "B", "c")
}

func TestUniqueList_Replace_WithEqualValue(t *testing.T) {
	l := NewUniqueList()
	_ = l.Add(mustTask(t, "a"))

	done := mustTask(t, "a")
	done.Completed = true
	if err := l.Replace(mustTask(t, "a"), done); err != nil {
		t.Fatalf("replacing a task with an equal value should succeed: %v", err)
	}

	got, _ := l.At(0)
	if !got.Completed {
		t.Error("expected replacement to be stored")
	}
}

func TestUniqueList_Replace_Errors(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		replacement string
		wantErr     error
	}{
		{name: "target missing", target: "missing", replacement: "x", wantErr: ErrTaskNotFound},
		{name: "replacement collides", target: "a", replacement: "b", wantErr: ErrDuplicateTask},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewUniqueList()
			_ = l.Add(mustTask(t, "a"))
			_ = l.Add(mustTask(t, "b"))

			err := l.Replace(mustTask(t, tt.target), mustTask(t, tt.replacement))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			assertDescriptions(t, l, "a", "b")
		})
	}
}

func TestUniqueList_Insert(t *testing.T) {
	l := NewUniqueList()
	_ = l.Add(mustTask(t, "a"))
	_ = l.Add(mustTask(t, "c"))

	if err := l.Insert(1, mustTask(t, "b")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertDescriptions(t, l, "a", "b", "c")

	if err := l.Insert(3, mustTask(t, "d")); err != nil {
		t.Fatalf("inserting at the end should succeed: %v", err)
	}
	assertDescriptions(t, l, "a", "b", "c", "d")
}

func TestUniqueList_Insert_Errors(t *testing.T) {
	l := NewUniqueList()
	_ = l.Add(mustTask(t, "a"))

	if err := l.Insert(5, mustTask(t, "b")); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := l.Insert(-1, mustTask(t, "b")); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
	if err := l.Insert(0, mustTask(t, "a")); !errors.Is(err, ErrDuplicateTask) {
		t.Errorf("expected ErrDuplicateTask, got %v", err)
	}
	assertDescriptions(t, l, "a")
}

func TestUniqueList_SetTasks_RejectsDuplicates(t *testing.T) {
	l := NewUniqueList()
	_ = l.Add(mustTask(t, "keep"))

	err := l.SetTasks([]Task{mustTask(t, "x"), mustTask(t, "x")})
	if !errors.Is(err, ErrDuplicateTask) {
		t.Fatalf("expected ErrDuplicateTask, got %v", err)
	}
	assertDescriptions(t, l, "keep")
}

func TestUniqueList_View_NoAliasing(t *testing.T) {
	l := NewUniqueList()
	task := mustTask(t, "a")
	task.Tags = []string{"home"}
	_ = l.Add(task)

	view := l.View()
	view[0].Description = "changed"
	view[0].Tags[0] = "changed"

	got, _ := l.At(0)
	if got.Description != "a" || got.Tags[0] != "home" {
		t.Errorf("list was mutated through its view: %+v", got)
	}

	// Mutating the value passed to Add must not leak in either.
	task.Tags[0] = "leaked"
	got, _ = l.At(0)
	if got.Tags[0] != "home" {
		t.Errorf("list shares memory with added task: %+v", got)
	}
}
