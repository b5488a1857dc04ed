package views

import (
	"github.com/charmbracelet/lipgloss"
)

// ChromeHeight is the number of lines used around the tool body:
// header (3), tool bar (4) and status line (1).
const ChromeHeight = 8

// RenderRoot renders the complete screen.
func RenderRoot(s Screen) string {
	sections := []string{RenderHeader(s.Width, s.Now)}

	if s.Tool != nil {
		sections = append(sections, RenderToolFrame(*s.Tool, s.Width))
	} else {
		sections = append(sections,
			RenderBreadcrumbs(s.Trail, s.CrumbFocus, s.CrumbIndex),
			RenderGrid(s.Items, s.Selected, s.Columns, s.Width),
			RenderFolderFooter(len(s.Items), s.Width),
		)
	}

	sections = append(sections, RenderStatus(s.Help, s.Tool != nil))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
