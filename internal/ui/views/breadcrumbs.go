package views

import (
	"strings"

	"github.com/Cyclone1070/cassette/internal/navigation"
)

// RenderBreadcrumbs renders the trail as "root@system: /ROOT /APPLICATIONS".
// The last segment is the current folder. When focused, the segment at index is highlighted.
func RenderBreadcrumbs(trail navigation.Trail, focused bool, index int) string {
	var b strings.Builder
	b.WriteString(PromptStyle.Render("root@system:"))
	for i, crumb := range trail {
		b.WriteString(" ")
		b.WriteString(SeparatorStyle.Render("/"))
		switch {
		case focused && i == index:
			b.WriteString(CrumbFocusedStyle.Render(crumb.Name))
		case i == len(trail)-1:
			b.WriteString(CrumbCurrentStyle.Render(crumb.Name))
		default:
			b.WriteString(CrumbStyle.Render(crumb.Name))
		}
	}
	b.WriteString(" ")
	b.WriteString(CrumbCurrentStyle.Render("█"))
	return BreadcrumbBarStyle.Render(b.String())
}
