package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// ListViewport wraps bubbles/viewport.Model for a list with a selection.
// It keeps the selected line on screen and draws a scrollbar once the list
// is taller than the viewport.
type ListViewport struct {
	viewport viewport.Model
	lines    []string
	width    int // total width including scrollbar
	height   int
}

// NewListViewport creates a ListViewport. The width includes 1 column for
// the scrollbar.
func NewListViewport(width, height int) ListViewport {
	l := ListViewport{viewport: viewport.New(0, 0)}
	l.SetSize(width, height)
	return l
}

// SetSize updates the viewport dimensions.
func (l *ListViewport) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 0 {
		height = 0
	}
	l.width = width
	l.height = height
	l.viewport.Width = width - 1
	l.viewport.Height = height
	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	l.viewport.SetYOffset(l.viewport.YOffset)
}

// SetLines replaces the content, keeping the scroll offset where possible.
func (l *ListViewport) SetLines(lines []string) {
	l.lines = append(l.lines[:0], lines...)
	l.viewport.SetContent(strings.Join(l.lines, "\n"))
	l.viewport.SetYOffset(l.viewport.YOffset)
}

// EnsureVisible scrolls the minimum amount needed to show line i.
func (l *ListViewport) EnsureVisible(i int) {
	if i < 0 || i >= len(l.lines) || l.height == 0 {
		return
	}
	top := l.viewport.YOffset
	bottom := top + l.height - 1
	switch {
	case i < top:
		l.viewport.SetYOffset(i)
	case i > bottom:
		l.viewport.SetYOffset(i - l.height + 1)
	}
}

// YOffset returns the index of the first visible line.
func (l ListViewport) YOffset() int {
	return l.viewport.YOffset
}

// View renders the visible lines with a 1-column scrollbar on the right.
func (l ListViewport) View() string {
	if l.height == 0 {
		return ""
	}
	content := strings.Split(l.viewport.View(), "\n")
	bar := scrollbar(l.height, len(l.lines), l.viewport.YOffset)

	var b strings.Builder
	for i := 0; i < l.height; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		line := ""
		if i < len(content) {
			line = content[i]
		}
		b.WriteString(line)
		if pad := l.width - 1 - lipgloss.Width(line); pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
		b.WriteString(bar[i])
	}
	return b.String()
}

// scrollbar returns one cell per row: blank while everything fits, then a
// │ track with a █ thumb sized to the visible fraction.
func scrollbar(height, total, offset int) []string {
	cells := make([]string, height)
	if total <= height {
		for i := range cells {
			cells[i] = " "
		}
		return cells
	}

	thumb := height * height / total
	if thumb < 1 {
		thumb = 1
	}
	maxTop := height - thumb
	top := offset * maxTop / (total - height)
	if top > maxTop {
		top = maxTop
	}
	if top < 0 {
		top = 0
	}

	for i := range cells {
		if i >= top && i < top+thumb {
			cells[i] = "█"
		} else {
			cells[i] = "│"
		}
	}
	return cells
}
