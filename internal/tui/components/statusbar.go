package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/watodo/internal/tui/styles"
)

// StatusBar renders a bottom line with summary items on the left and an
// optional hint pinned to the right.
type StatusBar struct{}

// NewStatusBar creates a new StatusBar instance.
func NewStatusBar() StatusBar {
	return StatusBar{}
}

// Render returns the status bar string for the given width. Items are
// joined with " • ". The hint is dropped when both do not fit.
func (s StatusBar) Render(width int, items []string, hint string) string {
	left := strings.Join(items, " • ")

	gap := width - lipgloss.Width(left) - lipgloss.Width(hint)
	if hint == "" || gap < 1 {
		return styles.StatusBarStyle.Width(width).Render(left)
	}
	return styles.StatusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + hint)
}
