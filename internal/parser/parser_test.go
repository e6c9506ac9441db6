package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/pablasso/watodo/internal/command"
)

func newTestParser() *Parser {
	return &Parser{
		Location: time.UTC,
		Now:      func() time.Time { return time.Date(2026, 3, 14, 16, 20, 0, 0, time.UTC) },
	}
}

func TestParse_Add(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantDesc  string
		wantStart *time.Time
		wantEnd   *time.Time
		wantTags  []string
	}{
		{
			name:     "floating",
			input:    "add Buy milk",
			wantDesc: "Buy milk",
		},
		{
			name:     "deadline with tags",
			input:    "ADD Pay rent by 2026-04-01 #Bills #home",
			wantDesc: "Pay rent",
			wantEnd:  ptr(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)),
			wantTags: []string{"bills", "home"},
		},
		{
			name:      "event",
			input:     "add Standup from 2026-04-02 09:00 to 2026-04-02 09:15",
			wantDesc:  "Standup",
			wantStart: ptr(time.Date(2026, 4, 2, 9, 0, 0, 0, time.UTC)),
			wantEnd:   ptr(time.Date(2026, 4, 2, 9, 15, 0, 0, time.UTC)),
		},
		{
			name:     "relative deadline",
			input:    "add Call mum by tomorrow 18:30",
			wantDesc: "Call mum",
			wantEnd:  ptr(time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)),
		},
		{
			name:     "keyword inside description",
			input:    "add Walk by the river by today",
			wantDesc: "Walk by the river",
			wantEnd:  ptr(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:     "incomplete clause stays in description",
			input:    "add Drive from home to work",
			wantDesc: "Drive from home to work",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := newTestParser().Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			add, ok := c.(*command.Add)
			if !ok {
				t.Fatalf("expected *command.Add, got %T", c)
			}
			if add.Task.Description != tt.wantDesc {
				t.Errorf("description: got %q, want %q", add.Task.Description, tt.wantDesc)
			}
			assertTime(t, "start", add.Task.Start, tt.wantStart)
			assertTime(t, "end", add.Task.End, tt.wantEnd)
			if len(add.Task.Tags) != len(tt.wantTags) {
				t.Fatalf("tags: got %v, want %v", add.Task.Tags, tt.wantTags)
			}
			for i := range tt.wantTags {
				if add.Task.Tags[i] != tt.wantTags[i] {
					t.Errorf("tags: got %v, want %v", add.Task.Tags, tt.wantTags)
				}
			}
		})
	}
}

func TestParse_IndexCommands(t *testing.T) {
	p := newTestParser()

	c, err := p.Parse("delete 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d, ok := c.(*command.Delete); !ok || d.Index != 2 {
		t.Errorf("expected delete 2, got %#v", c)
	}

	c, err = p.Parse("done 3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m, ok := c.(*command.Mark); !ok || m.Index != 3 || !m.Done {
		t.Errorf("expected done 3, got %#v", c)
	}

	c, err = p.Parse("undone 1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m, ok := c.(*command.Mark); !ok || m.Done {
		t.Errorf("expected undone 1, got %#v", c)
	}
}

func TestParse_Edit(t *testing.T) {
	c, err := newTestParser().Parse("edit 1 Buy oat milk by 2026-05-01 #shop -#home")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e, ok := c.(*command.Edit)
	if !ok {
		t.Fatalf("expected *command.Edit, got %T", c)
	}
	if e.Index != 1 {
		t.Errorf("index: got %d, want 1", e.Index)
	}
	if e.Changes.Description == nil || *e.Changes.Description != "Buy oat milk" {
		t.Errorf("unexpected description: %v", e.Changes.Description)
	}
	if e.Changes.Bounds == nil || e.Changes.Bounds.End == nil || e.Changes.Bounds.Start != nil {
		t.Errorf("expected deadline bounds, got %+v", e.Changes.Bounds)
	}
	if len(e.Changes.AddTags) != 1 || e.Changes.AddTags[0] != "shop" {
		t.Errorf("unexpected added tags: %v", e.Changes.AddTags)
	}
	if len(e.Changes.RemoveTags) != 1 || e.Changes.RemoveTags[0] != "home" {
		t.Errorf("unexpected removed tags: %v", e.Changes.RemoveTags)
	}
}

func TestParse_EditFloating(t *testing.T) {
	c, err := newTestParser().Parse("edit 2 floating")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	e := c.(*command.Edit)
	if e.Changes.Bounds == nil || e.Changes.Bounds.Start != nil || e.Changes.Bounds.End != nil {
		t.Errorf("expected cleared bounds, got %+v", e.Changes.Bounds)
	}
	if e.Changes.Description != nil {
		t.Errorf("expected description to be unchanged")
	}
}

func TestParse_Simple(t *testing.T) {
	p := newTestParser()

	tests := map[string]string{
		"clear":       "*command.Clear",
		"undo":        "*command.Undo",
		"help":        "command.Help",
		"list":        "*command.List",
		"list done":   "*command.List",
		"find milk":   "*command.Find",
		"  UNDO  ":    "*command.Undo",
		"find a b c":  "*command.Find",
		"list UNDONE": "*command.List",
	}

	for input, want := range tests {
		c, err := p.Parse(input)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", input, err)
			continue
		}
		if got := typeName(c); got != want {
			t.Errorf("Parse(%q): got %s, want %s", input, got, want)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		{input: "", wantErr: ErrInvalidFormat},
		{input: "fly away", wantErr: ErrUnknownCommand},
		{input: "add", wantErr: ErrInvalidFormat},
		{input: "add #onlytags", wantErr: ErrInvalidFormat},
		{input: "delete", wantErr: ErrInvalidFormat},
		{input: "delete two", wantErr: ErrInvalidFormat},
		{input: "delete 0", wantErr: ErrInvalidFormat},
		{input: "done 1 2", wantErr: ErrInvalidFormat},
		{input: "edit 1", wantErr: ErrInvalidFormat},
		{input: "list later", wantErr: ErrInvalidFormat},
		{input: "find", wantErr: ErrInvalidFormat},
	}

	for _, tt := range tests {
		_, err := newTestParser().Parse(tt.input)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Parse(%q): expected %v, got %v", tt.input, tt.wantErr, err)
		}
		var cmdErr *command.Error
		if !errors.As(err, &cmdErr) || cmdErr.Message == "" {
			t.Errorf("Parse(%q): expected a *command.Error with a message, got %v", tt.input, err)
		}
	}
}

func TestParse_StartAfterEnd(t *testing.T) {
	_, err := newTestParser().Parse("add Trip from 2026-05-02 to 2026-05-01")
	if err == nil {
		t.Fatal("expected error for reversed bounds")
	}
}

func ptr(t time.Time) *time.Time {
	return &t
}

func assertTime(t *testing.T, name string, got, want *time.Time) {
	t.Helper()
	if want == nil {
		if got != nil {
			t.Errorf("%s: expected nil, got %v", name, got)
		}
		return
	}
	if got == nil || !got.Equal(*want) {
		t.Errorf("%s: got %v, want %v", name, got, want)
	}
}

func typeName(c command.Command) string {
	switch c.(type) {
	case *command.Clear:
		return "*command.Clear"
	case *command.Undo:
		return "*command.Undo"
	case command.Help:
		return "command.Help"
	case *command.List:
		return "*command.List"
	case *command.Find:
		return "*command.Find"
	default:
		return "unknown"
	}
}
