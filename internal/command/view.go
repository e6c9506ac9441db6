package command

import (
	"fmt"
	"strings"

	"github.com/pablasso/watodo/internal/model"
	"github.com/pablasso/watodo/internal/task"
)

// Scope selects which tasks List shows.
type Scope string

// List scopes
const (
	ScopeAll    Scope = "all"
	ScopeDone   Scope = "done"
	ScopeUndone Scope = "undone"
)

// filterCommand holds the previous filter so the change can be reverted.
type filterCommand struct {
	previous model.Predicate
	lifecycle
}

func (filterCommand) readOnly() {}

func (c *filterCommand) apply(m *model.TaskManager, p model.Predicate) {
	c.previous = m.Filter()
	m.UpdateFilter(p)
	c.done()
}

func (c *filterCommand) restore(m *model.TaskManager, name string) error {
	c.beginUnexecute(name)
	m.UpdateFilter(c.previous)
	return nil
}

// List changes the display filter to a completion scope.
type List struct {
	Scope Scope
	filterCommand
}

// NewList creates a List command.
func NewList(scope Scope) *List {
	return &List{Scope: scope}
}

func (c *List) Execute(m *model.TaskManager) (Result, error) {
	switch c.Scope {
	case ScopeAll, "":
		c.apply(m, nil)
		return message("Listed all tasks."), nil
	case ScopeDone:
		c.apply(m, func(t task.Task) bool { return t.Completed })
	case ScopeUndone:
		c.apply(m, func(t task.Task) bool { return !t.Completed })
	default:
		return Result{}, NewError(fmt.Sprintf("Unknown list scope %q.", c.Scope), ErrInvalidArgument)
	}
	return message("Listed %d %s tasks.", len(m.FilteredTasks()), c.Scope), nil
}

func (c *List) Unexecute(m *model.TaskManager) error {
	return c.restore(m, "list")
}

func (c *List) String() string {
	return "list " + string(c.Scope)
}

// Find shows tasks whose description or tags contain any keyword.
type Find struct {
	Keywords []string
	filterCommand
}

// NewFind creates a Find command.
func NewFind(keywords []string) *Find {
	return &Find{Keywords: keywords}
}

func (c *Find) Execute(m *model.TaskManager) (Result, error) {
	keywords := make([]string, 0, len(c.Keywords))
	for _, k := range c.Keywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}
	if len(keywords) == 0 {
		return Result{}, NewError("Provide at least one keyword to find.", ErrInvalidArgument)
	}

	c.apply(m, func(t task.Task) bool {
		desc := strings.ToLower(t.Description)
		for _, k := range keywords {
			if strings.Contains(desc, k) || t.HasTag(k) {
				return true
			}
		}
		return false
	})
	return message("%d tasks listed!", len(m.FilteredTasks())), nil
}

func (c *Find) Unexecute(m *model.TaskManager) error {
	return c.restore(m, "find")
}

func (c *Find) String() string {
	return "find " + strings.Join(c.Keywords, " ")
}

// HelpText describes every command word.
const HelpText = `Commands:
  add <description> [from <time> to <time> | by <time>] [#tag ...]
  delete <index>
  edit <index> [<description>] [from <time> to <time> | by <time> | floating] [#tag ...] [-#tag ...]
  done <index> | undone <index>
  clear
  list [all|done|undone]
  find <keyword ...>
  undo
  help`

// Help shows usage.
type Help struct{}

func (Help) readOnly() {}

func (Help) Execute(*model.TaskManager) (Result, error) {
	return message("%s", HelpText), nil
}

func (Help) Unexecute(*model.TaskManager) error {
	return nil
}

func (Help) String() string {
	return "help"
}
