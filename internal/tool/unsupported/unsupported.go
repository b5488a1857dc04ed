// Package unsupported renders the fallback view for files with no usable tool.
package unsupported

import (
	"fmt"

	"github.com/Cyclone1070/cassette/internal/catalog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Message is the text shown in place of a tool.
const Message = "UNKNOWN_EXECUTABLE_FORMAT"

var (
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#b45309")).Bold(true)
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#78350f"))
)

// Model is an inert view. It ignores every message.
type Model struct {
	tool   catalog.ToolID
	width  int
	height int
}

// New creates the fallback view for tool.
func New(tool catalog.ToolID) Model {
	return Model{tool: tool, width: 80, height: 20}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.SetSize(size.Width, size.Height)
	}
	return m, nil
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		messageStyle.Render(Message),
		detailStyle.Render(fmt.Sprintf("HANDLER: %s", m.tool)),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
