// Package logic runs command text against the task list and reports the
// outcome to the rest of the application.
package logic

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/pablasso/watodo/internal/command"
	"github.com/pablasso/watodo/internal/events"
	"github.com/pablasso/watodo/internal/journal"
	"github.com/pablasso/watodo/internal/model"
	"github.com/pablasso/watodo/internal/storage"
	"github.com/pablasso/watodo/internal/task"
)

// Logic is what the presentation layer talks to.
type Logic interface {
	Execute(commandText string) (command.Result, error)
	FilteredTaskList() []task.Task
}

// Parser turns command text into a command.
type Parser interface {
	Parse(input string) (command.Command, error)
}

// Options configures a Manager. Store, Journal and Bus are optional.
type Options struct {
	Parser  Parser
	Store   storage.Store
	Journal journal.Recorder
	Bus     *events.Bus
}

// Manager is the Logic implementation. It owns the task manager and the
// command history.
type Manager struct {
	mu      sync.Mutex
	parser  Parser
	tasks   *model.TaskManager
	history *command.History
	store   storage.Store
	journal journal.Recorder
	bus     *events.Bus
}

var _ Logic = (*Manager)(nil)

// New loads the stored tasks and returns a Manager ready to execute
// commands.
func New(opts Options) (*Manager, error) {
	if opts.Parser == nil {
		return nil, errors.New("logic: a parser is required")
	}

	var initial []task.Task
	if opts.Store != nil {
		loaded, err := opts.Store.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load tasks: %w", err)
		}
		initial = loaded
	}
	tasks, err := model.NewTaskManager(initial)
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks: %w", err)
	}

	m := &Manager{
		parser:  opts.Parser,
		tasks:   tasks,
		history: command.NewHistory(),
		store:   opts.Store,
		journal: opts.Journal,
		bus:     opts.Bus,
	}
	if m.journal == nil {
		m.journal = journal.Discard{}
	}
	if m.bus == nil {
		m.bus = events.Default()
	}
	return m, nil
}

// Execute parses and runs commandText. Events are published once the
// command has been applied and persisted.
func (m *Manager) Execute(commandText string) (command.Result, error) {
	m.mu.Lock()
	res, pending, err := m.execute(commandText)
	m.mu.Unlock()

	for _, e := range pending {
		m.bus.Publish(e)
	}
	return res, err
}

// FilteredTaskList returns the tasks the current filter shows.
func (m *Manager) FilteredTaskList() []task.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tasks.FilteredTasks()
}

func (m *Manager) execute(text string) (command.Result, []events.Event, error) {
	cmd, err := m.parser.Parse(text)
	if err != nil {
		return command.Result{}, m.fail(text, err), err
	}

	if b, ok := cmd.(command.HistoryBinder); ok {
		b.BindHistory(m.history)
	}
	_, isUndo := cmd.(*command.Undo)
	undoable := !m.history.Empty()

	var before []task.Task
	if isUndo {
		before = m.tasks.Tasks()
	}

	res, err := cmd.Execute(m.tasks)
	if err != nil {
		return command.Result{}, m.fail(text, err), err
	}

	changed := !command.IsReadOnly(cmd) && (!isUndo || undoable)
	if changed {
		if err := m.persist(); err != nil {
			m.rollback(cmd, isUndo, before)
			err = fmt.Errorf("failed to save tasks: %w", err)
			return command.Result{}, m.fail(text, err), err
		}
	}
	if !isUndo && !command.IsReadOnly(cmd) {
		m.history.Record(cmd)
	}

	m.record(cmd, isUndo, undoable, res)

	pending := []events.Event{events.NewTaskListChanged(len(m.tasks.FilteredTasks()))}
	if res.JumpTo != command.NoJump {
		pending = append(pending, events.NewJumpToListRequest(res.JumpTo))
	}
	pending = append(pending, events.NewResultAvailable(res.Message, false))
	return res, pending, nil
}

func (m *Manager) persist() error {
	if m.store == nil {
		return nil
	}
	return m.store.Save(m.tasks.Tasks())
}

// rollback returns the in-memory list to its state before cmd ran. A
// reverted undo cannot be undone again, so it restores the snapshot
// instead.
func (m *Manager) rollback(cmd command.Command, isUndo bool, before []task.Task) {
	var err error
	if isUndo {
		err = m.tasks.ResetData(before)
	} else {
		err = cmd.Unexecute(m.tasks)
	}
	if err != nil {
		warn("failed to roll back %s: %v", cmd, err)
	}
}

func (m *Manager) record(cmd command.Command, isUndo, undoable bool, res command.Result) {
	var err error
	switch {
	case isUndo && undoable:
		err = m.journal.CommandUndone(res.Message)
	case isUndo:
		err = m.journal.NothingToUndo()
	default:
		err = m.journal.CommandExecuted(cmd.String(), res.Message)
	}
	if err != nil {
		warn("failed to write journal: %v", err)
	}
}

func (m *Manager) fail(text string, err error) []events.Event {
	if jerr := m.journal.CommandFailed(text, err); jerr != nil {
		warn("failed to write journal: %v", jerr)
	}
	return []events.Event{events.NewResultAvailable(Message(err), true)}
}

// Message returns the user-facing text for an error returned by Execute.
func Message(err error) string {
	var cmdErr *command.Error
	if errors.As(err, &cmdErr) {
		return cmdErr.Message
	}
	return err.Error()
}

func warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
