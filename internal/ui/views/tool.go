package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TerminateLabel is the control that closes the running tool.
const TerminateLabel = "[X] TERMINATE"

// RenderToolFrame renders the bar above a running tool and the tool's own view.
func RenderToolFrame(frame ToolFrame, width int) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		ToolTitleStyle.Render("■ EXECUTING: "+strings.ToUpper(frame.Name)),
		SubtitleStyle.Render(frame.Title),
	)
	right := TerminateStyle.Render(TerminateLabel)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := ToolBarStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), right))

	return lipgloss.JoinVertical(lipgloss.Left, bar, frame.Body)
}
