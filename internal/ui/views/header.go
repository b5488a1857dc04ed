package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	// Version is shown under the title.
	Version = "V.2.0.4"
)

// RenderHeader renders the title block and the clock.
func RenderHeader(width int, now time.Time) string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("CASSETTE")+TitleOSStyle.Render("OS"),
		SubtitleStyle.Render("SYSTEM_READY // "+Version),
	)
	right := lipgloss.JoinVertical(lipgloss.Right,
		ClockStyle.Render(now.Format("15:04:05")),
		DateStyle.Render(now.Format("2006-01-02")),
	)

	// padding of the header style
	inner := width - 2
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	spacer := strings.Repeat(" ", gap)

	return HeaderStyle.Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right))
}
