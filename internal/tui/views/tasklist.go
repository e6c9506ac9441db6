// Package views holds the screens of the TUI.
package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/pablasso/watodo/internal/logic"
	"github.com/pablasso/watodo/internal/task"
	"github.com/pablasso/watodo/internal/tui/components"
	"github.com/pablasso/watodo/internal/tui/msgs"
	"github.com/pablasso/watodo/internal/tui/styles"
)

const (
	progressWidth = 10
	welcomeText   = "Type 'help' to see the commands."
)

// TaskListModel shows the filtered task list, a command box and the result
// of the last command.
type TaskListModel struct {
	logic logic.Logic

	tasks  []task.Task
	cursor int
	list   components.ListViewport

	input textinput.Model
	keys  keyMap
	help  help.Model

	result string
	failed bool
	busy   bool

	now    func() time.Time
	width  int
	height int
}

// NewTaskListModel creates the view over l.
func NewTaskListModel(l logic.Logic) TaskListModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "add Buy milk by tomorrow #errands"
	ti.CharLimit = 512
	ti.Focus()

	m := TaskListModel{
		logic:  l,
		list:   components.NewListViewport(0, 0),
		input:  ti,
		keys:   defaultKeyMap(),
		help:   help.New(),
		result: welcomeText,
		now:    time.Now,
	}
	m.tasks = l.FilteredTaskList()
	m.syncList()
	return m
}

// Init implements tea.Model.
func (m TaskListModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m TaskListModel) Update(msg tea.Msg) (TaskListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case msgs.TaskListChangedMsg:
		m.tasks = m.logic.FilteredTaskList()
		m.moveCursor(0)
		return m, nil

	case msgs.JumpToMsg:
		m.cursor = msg.Index
		m.moveCursor(0)
		return m, nil

	case msgs.ResultMsg:
		m.result = msg.Message
		m.failed = msg.Failed
		return m, nil

	case msgs.CommandDoneMsg:
		m.busy = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
			return m, nil
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.moveCursor(-m.pageSize())
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.moveCursor(m.pageSize())
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the typed command off the UI goroutine. The outcome arrives
// as event messages; CommandDoneMsg only unlocks the input.
func (m TaskListModel) submit() (TaskListModel, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.busy {
		return m, nil
	}
	m.busy = true
	m.input.Reset()

	l := m.logic
	return m, func() tea.Msg {
		_, err := l.Execute(text)
		return msgs.CommandDoneMsg{Err: err}
	}
}

func (m *TaskListModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.syncList()
}

func (m *TaskListModel) syncList() {
	now := m.now()
	lines := make([]string, len(m.tasks))
	for i, t := range m.tasks {
		lines[i] = m.formatTaskLine(i, t, now)
	}
	m.list.SetLines(lines)
	m.list.EnsureVisible(m.cursor)
}

func (m TaskListModel) pageSize() int {
	if n := m.listHeight(); n > 1 {
		return n - 1
	}
	return 1
}

// formatTaskLine formats a single task line for display.
func (m TaskListModel) formatTaskLine(index int, t task.Task, now time.Time) string {
	indicator := " "
	if index == m.cursor {
		indicator = "›"
	}
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}

	line := fmt.Sprintf("%s %3d. %s %s", indicator, index+1, check, t.Description)
	if when := formatWhen(t, now); when != "" {
		line += " " + styles.SubtleStyle.Render(when)
	}

	switch {
	case index == m.cursor:
		line = styles.SelectedStyle.Render(line)
	case t.Completed:
		line = styles.SubtleStyle.Render(line)
	}

	if len(t.Tags) > 0 {
		line += " " + styles.TagStyle.Render("#"+strings.Join(t.Tags, " #"))
	}
	return line
}

func formatWhen(t task.Task, now time.Time) string {
	switch t.Kind() {
	case task.KindDeadline:
		return "(due " + humanize.RelTime(*t.End, now, "ago", "from now") + ")"
	case task.KindEvent:
		return fmt.Sprintf("(%s → %s)", t.Start.Format("Jan 2 15:04"), t.End.Format("Jan 2 15:04"))
	default:
		return ""
	}
}

// View implements tea.Model.
func (m TaskListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("watodo"))
	b.WriteString("\n\n")

	if len(m.tasks) == 0 {
		empty := lipgloss.Place(m.width, m.listHeight(), lipgloss.Center, lipgloss.Center,
			styles.SubtleStyle.Render("No tasks to show."))
		b.WriteString(empty)
	} else {
		b.WriteString(m.list.View())
	}
	b.WriteString("\n\n")

	resultStyle := styles.SuccessStyle
	if m.failed {
		resultStyle = styles.ErrorStyle
	}
	b.WriteString(resultStyle.Render(m.result))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(components.NewStatusBar().Render(m.width, m.statusItems(), ""))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m TaskListModel) statusItems() []string {
	done := 0
	for _, t := range m.tasks {
		if t.Completed {
			done++
		}
	}
	items := []string{fmt.Sprintf("%d shown", len(m.tasks))}
	if bar := components.NewProgress(done, len(m.tasks), progressWidth).View(); bar != "" {
		items = append(items, bar)
	}
	return items
}

// listHeight is what remains after the title, result, input, status bar
// and help lines.
func (m TaskListModel) listHeight() int {
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	h := m.height - 7 - helpHeight
	if h < 1 {
		return 1
	}
	return h
}

func (m *TaskListModel) layout() {
	m.help.Width = m.width
	m.input.Width = m.width - lipgloss.Width(m.input.Prompt) - 1
	m.list.SetSize(m.width, m.listHeight())
	m.list.EnsureVisible(m.cursor)
}

// SetSize updates the model dimensions.
func (m *TaskListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.layout()
}

// Tasks returns the tasks currently shown.
func (m TaskListModel) Tasks() []task.Task {
	return m.tasks
}

// Cursor returns the current cursor position.
func (m TaskListModel) Cursor() int {
	return m.cursor
}

// Result returns the last command result and whether it failed.
func (m TaskListModel) Result() (string, bool) {
	return m.result, m.failed
}

// Input returns the text typed in the command box.
func (m TaskListModel) Input() string {
	return m.input.Value()
}
