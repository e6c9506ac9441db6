// Package tui is the interactive task list.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/watodo/internal/events"
	"github.com/pablasso/watodo/internal/logic"
	"github.com/pablasso/watodo/internal/session"
	"github.com/pablasso/watodo/internal/tui/msgs"
	"github.com/pablasso/watodo/internal/tui/styles"
	"github.com/pablasso/watodo/internal/tui/views"
)

// Minimum terminal dimensions
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 15
)

// Model is the root Bubble Tea model.
type Model struct {
	width  int
	height int

	taskList views.TaskListModel
}

// Run opens the data directory and starts the TUI. Logic events are
// forwarded to the program as messages.
func Run(opts Options) error {
	settings, err := session.Resolve(opts.DataDir, opts.Storage)
	if err != nil {
		return err
	}
	bus := events.NewBus()
	settings.Bus = bus

	s, err := session.Open(settings)
	if err != nil {
		return err
	}
	defer s.Close()

	p := tea.NewProgram(
		initialModel(s.Logic),
		tea.WithAltScreen(),
	)
	unsubscribe := bus.Subscribe(func(e events.Event) {
		if msg := msgs.FromEvent(e); msg != nil {
			p.Send(msg)
		}
	})
	defer unsubscribe()

	_, err = p.Run()
	return err
}

func initialModel(l logic.Logic) Model {
	return Model{taskList: views.NewTaskListModel(l)}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.taskList.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width < MinTerminalWidth || m.height < MinTerminalHeight {
		return m.renderTerminalTooSmall()
	}
	return m.taskList.View()
}

func (m Model) renderTerminalTooSmall() string {
	msg := fmt.Sprintf("Terminal too small\n\nMinimum: %dx%d\nCurrent: %dx%d",
		MinTerminalWidth, MinTerminalHeight, m.width, m.height)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
		styles.SubtleStyle.Render(msg))
}
