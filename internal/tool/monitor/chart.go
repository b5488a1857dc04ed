package monitor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	lineStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d97706"))
	areaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#78350f"))
	gridStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#451a03"))
	axisStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#92400e"))
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f59e0b")).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#78350f")).
			Padding(0, 1)
)

// level maps a sample in [0, 100) to a row in [0, rows).
func level(v float64, rows int) int {
	l := int(v / 100 * float64(rows))
	if l < 0 {
		return 0
	}
	if l >= rows {
		return rows - 1
	}
	return l
}

// RenderChart draws samples as a step chart of the given height. Each sample
// holds its level for colWidth cells, like a step-after curve.
func RenderChart(samples []float64, rows, colWidth int) string {
	if rows < 2 {
		rows = 2
	}
	if colWidth < 1 {
		colWidth = 1
	}

	levels := make([]int, len(samples))
	for i, v := range samples {
		levels[i] = level(v, rows)
	}

	var b strings.Builder
	for row := rows - 1; row >= 0; row-- {
		b.WriteString(axisStyle.Render(fmt.Sprintf("%3d┤", (row+1)*100/rows)))
		for i, l := range levels {
			var cell string
			switch {
			case l == row:
				cell = lineStyle.Render(strings.Repeat("▀", colWidth))
			case l > row:
				cell = areaStyle.Render(strings.Repeat("░", colWidth))
			case row%2 == 0:
				cell = gridStyle.Render(strings.Repeat("·", colWidth))
			default:
				cell = strings.Repeat(" ", colWidth)
			}
			b.WriteString(cell)
			// vertical riser between steps
			if i+1 < len(levels) && row > min(l, levels[i+1]) && row < max(l, levels[i+1]) {
				b.WriteString(lineStyle.Render("│"))
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(axisStyle.Render("  0└" + strings.Repeat("─", len(levels)*(colWidth+1))))
	return b.String()
}

// RenderFooter draws the decorative memory readouts.
func RenderFooter(memMB, swapMB int) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		footerStyle.Render(fmt.Sprintf("MEM: %dMB", memMB)),
		footerStyle.Render(fmt.Sprintf("SWAP: %dMB", swapMB)),
		footerStyle.Render("TAPE: RW"),
	)
}
