package dispatch

import (
	"testing"

	"github.com/Cyclone1070/cassette/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name string
		file *catalog.File
		want View
	}{
		{
			name: "chat console",
			file: catalog.NewFile("t", "AI_CONSOLE.EXE", "", catalog.ToolChatConsole, ""),
			want: ChatConsoleView{},
		},
		{
			name: "monitor",
			file: catalog.NewFile("m", "VISUALIZER.DAT", "", catalog.ToolMonitor, ""),
			want: MonitorView{},
		},
		{
			name: "document carries content",
			file: catalog.NewFile("r", "README.TXT", "", catalog.ToolDocument, "hello"),
			want: DocumentView{Content: "hello"},
		},
		{
			name: "explicit none",
			file: catalog.NewFile("n", "BLANK.BIN", "", catalog.ToolNone, ""),
			want: UnsupportedView{Tool: catalog.ToolNone},
		},
		{
			name: "missing tool id",
			file: catalog.NewFile("n", "BLANK.BIN", "", "", ""),
			want: UnsupportedView{Tool: catalog.ToolNone},
		},
		{
			name: "unknown tool id",
			file: catalog.NewFile("h", "HOLODECK.EXE", "", catalog.ToolID("holodeck"), "ignored"),
			want: UnsupportedView{Tool: catalog.ToolID("holodeck")},
		},
		{
			name: "nil file",
			file: nil,
			want: UnsupportedView{Tool: catalog.ToolNone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Select(tt.file)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.Title())
		})
	}
}

func TestSelect_TotalOverDefaultTree(t *testing.T) {
	tree := catalog.Default()
	tree.Walk(func(item catalog.Item, depth int) bool {
		if file, ok := item.(*catalog.File); ok {
			view := Select(file)
			assert.NotNil(t, view, file.ID())
			_, unsupported := view.(UnsupportedView)
			assert.False(t, unsupported, "builtin file %q should have a tool", file.ID())
		}
		return true
	})
}
