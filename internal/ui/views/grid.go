package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/cassette/internal/catalog"
	"github.com/charmbracelet/lipgloss"
)

const (
	EmptyTitle   = "DIR_EMPTY"
	EmptyMessage = "[NO DATA FOUND ON TAPE]"

	minCellWidth = 16
)

// ItemIcon returns the glyph shown above an item's name.
func ItemIcon(item catalog.Item) string {
	file, ok := item.(*catalog.File)
	if !ok {
		return "[DIR]"
	}
	switch file.Tool() {
	case catalog.ToolChatConsole:
		return "[EXE]"
	case catalog.ToolMonitor:
		return "[DAT]"
	case catalog.ToolDocument:
		return "[TXT]"
	default:
		return "[???]"
	}
}

// RenderGrid lays the items of the current folder out in rows of columns cells.
func RenderGrid(items []catalog.Item, selected, columns, width int) string {
	if len(items) == 0 {
		body := lipgloss.JoinVertical(lipgloss.Center,
			EmptyTitleStyle.Render(EmptyTitle),
			"",
			EmptyStyle.Render(EmptyMessage),
		)
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, "\n"+body+"\n")
	}

	if columns < 1 {
		columns = 1
	}
	// border and gutter
	cellWidth := max(width/columns-3, minCellWidth)

	var rows []string
	for start := 0; start < len(items); start += columns {
		end := min(start+columns, len(items))
		var cells []string
		for i := start; i < end; i++ {
			cells = append(cells, renderCell(items[i], i == selected, cellWidth), " ")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCell(item catalog.Item, selected bool, width int) string {
	iconStyle := FileIconStyle
	if item.Kind() == catalog.KindFolder {
		iconStyle = FolderIconStyle
	}
	name := truncate(strings.ToUpper(item.Name()), width)
	desc := truncate(strings.ToUpper(item.Description()), width)

	style := CellStyle
	if selected {
		style = CellSelectedStyle
		name = "> " + truncate(name, width-2)
	}
	return style.Width(width).Render(lipgloss.JoinVertical(lipgloss.Center,
		iconStyle.Render(ItemIcon(item)),
		ItemNameStyle.Render(name),
		ItemDescStyle.Render(desc),
	))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width < 2 || len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

// RenderFolderFooter renders the object count line under the grid.
func RenderFolderFooter(objects, width int) string {
	left := fmt.Sprintf("OBJECTS: %d", objects)
	right := "FREE SPACE: 0KB"
	gap := max(width-len(left)-len(right), 4)
	return FolderFooterStyle.Render(left + strings.Repeat(" ", gap) + right)
}
