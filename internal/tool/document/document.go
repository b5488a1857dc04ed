// Package document implements the read-only text viewer tool.
package document

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

var (
	textStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#fbbf24"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#92400e"))
)

// Model is a scrollable viewport over a document.
type Model struct {
	content  string
	viewport viewport.Model
	width    int
	height   int
}

// New creates a viewer for content.
func New(content string) Model {
	m := Model{
		content:  content,
		viewport: viewport.New(80, 20),
		width:    80,
		height:   21,
	}
	m.wrap()
	return m
}

// Init does nothing; the viewer is static.
func (m Model) Init() tea.Cmd {
	return nil
}

// Content returns the unwrapped document text.
func (m Model) Content() string {
	return m.content
}

// SetSize resizes the viewer, re-wrapping the text to the new width.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	// one line for the scroll status
	m.viewport.Height = max(height-1, 1)
	m.wrap()
}

// Update scrolls the viewport.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(size.Width, size.Height)
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the visible page and the scroll position.
func (m Model) View() string {
	status := statusStyle.Render(fmt.Sprintf("-- %3.f%% --", m.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), status)
}

func (m *Model) wrap() {
	m.viewport.SetContent(textStyle.Render(Wrap(m.content, m.width)))
}

// Wrap word-wraps text at width columns.
func Wrap(text string, width int) string {
	if width < 1 {
		return text
	}
	return wordwrap.String(text, width)
}
