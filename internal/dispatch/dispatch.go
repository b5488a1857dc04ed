// Package dispatch maps an activated file to the tool view that should be mounted for it.
package dispatch

import "github.com/Cyclone1070/cassette/internal/catalog"

// View is the closed set of tool views. It is implemented only by the types in this package.
type View interface {
	// Title is the label shown in the tool frame header.
	Title() string

	isView()
}

// ChatConsoleView mounts the chat console.
type ChatConsoleView struct{}

// MonitorView mounts the sample monitor.
type MonitorView struct{}

// DocumentView mounts a read-only viewer over Content.
type DocumentView struct {
	Content string
}

// UnsupportedView is the inert fallback for files without a recognised tool.
type UnsupportedView struct {
	Tool catalog.ToolID
}

func (ChatConsoleView) Title() string { return "MOTHER // AI CONSOLE" }
func (MonitorView) Title() string     { return "CPU_CORE_TEMP_VISUALIZER" }
func (DocumentView) Title() string    { return "DOCUMENT VIEWER" }
func (UnsupportedView) Title() string { return "UNKNOWN_EXECUTABLE_FORMAT" }

func (ChatConsoleView) isView() {}
func (MonitorView) isView()     {}
func (DocumentView) isView()    {}
func (UnsupportedView) isView() {}

// Select returns the view for file. It is total: a nil file, ToolNone and any
// unrecognised tool id all yield UnsupportedView.
func Select(file *catalog.File) View {
	if file == nil {
		return UnsupportedView{Tool: catalog.ToolNone}
	}

	switch file.Tool() {
	case catalog.ToolChatConsole:
		return ChatConsoleView{}
	case catalog.ToolMonitor:
		return MonitorView{}
	case catalog.ToolDocument:
		return DocumentView{Content: file.Content()}
	default:
		return UnsupportedView{Tool: file.Tool()}
	}
}
