package task

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
)

// Task is a single to-do item. Tasks are values: changing one means
// replacing it in the list with a new value.
type Task struct {
	Description string     `json:"description"`
	Start       *time.Time `json:"start,omitempty"`
	End         *time.Time `json:"end,omitempty"`
	Completed   bool       `json:"completed"`
	Tags        []string   `json:"tags,omitempty"`
}

// Kind describes which time bounds a task carries.
type Kind string

// Task kind constants
const (
	KindFloating Kind = "floating"
	KindDeadline Kind = "deadline"
	KindEvent    Kind = "event"
)

// New builds a validated task with normalized tags.
func New(description string, start, end *time.Time, tags []string) (Task, error) {
	t := Task{
		Description: strings.TrimSpace(description),
		Start:       start,
		End:         end,
		Tags:        NormalizeTags(tags),
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

// Validate checks the description and the time bounds.
func (t Task) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: description must not be empty", ErrInvalidTask)
	}
	if t.Start != nil && t.End == nil {
		return fmt.Errorf("%w: a start time needs an end time", ErrInvalidTask)
	}
	if t.Start != nil && t.Start.After(*t.End) {
		return fmt.Errorf("%w: start time is after end time", ErrInvalidTask)
	}
	return nil
}

// Kind returns the task kind derived from its bounds.
func (t Task) Kind() Kind {
	switch {
	case t.Start != nil && t.End != nil:
		return KindEvent
	case t.End != nil:
		return KindDeadline
	default:
		return KindFloating
	}
}

// Equal is the uniqueness predicate: same description and same bounds.
// Completion status and tags are ignored.
func (t Task) Equal(other Task) bool {
	return strings.TrimSpace(t.Description) == strings.TrimSpace(other.Description) &&
		sameTime(t.Start, other.Start) &&
		sameTime(t.End, other.End)
}

// HasTag reports whether the task carries the given tag.
func (t Task) HasTag(tag string) bool {
	return slices.Contains(t.Tags, normalizeTag(tag))
}

// Clone returns a copy that shares no memory with t.
func (t Task) Clone() Task {
	c := t
	if t.Start != nil {
		s := *t.Start
		c.Start = &s
	}
	if t.End != nil {
		e := *t.End
		c.End = &e
	}
	if t.Tags != nil {
		c.Tags = slices.Clone(t.Tags)
	}
	return c
}

// String renders the task the way command results refer to it.
func (t Task) String() string {
	var sb strings.Builder
	sb.WriteString(t.Description)
	switch t.Kind() {
	case KindEvent:
		fmt.Fprintf(&sb, " from %s to %s", formatTime(*t.Start), formatTime(*t.End))
	case KindDeadline:
		fmt.Fprintf(&sb, " by %s", formatTime(*t.End))
	}
	for _, tag := range t.Tags {
		sb.WriteString(" #")
		sb.WriteString(tag)
	}
	return sb.String()
}

// NormalizeTags lowercases tags into kebab-case, drops empties and
// duplicates, and sorts the result.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, raw := range tags {
		tag := normalizeTag(raw)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	slices.Sort(out)
	return out
}

// normalizeTag converts a tag to kebab-case. A leading '#' is dropped.
func normalizeTag(s string) string {
	var result strings.Builder

	for _, r := range strings.TrimPrefix(strings.TrimSpace(s), "#") {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(unicode.ToLower(r))
		} else if r == ' ' || r == '_' || r == '-' {
			result.WriteRune('-')
		}
	}

	str := result.String()
	for strings.Contains(str, "--") {
		str = strings.ReplaceAll(str, "--", "-")
	}
	return strings.Trim(str, "-")
}

func sameTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func formatTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 {
		return t.Format("2006-01-02")
	}
	return t.Format("2006-01-02 15:04")
}
