// Package views renders the shell: header, breadcrumb bar, folder grid and tool frame.
package views

import (
	"time"

	"github.com/Cyclone1070/cassette/internal/catalog"
	"github.com/Cyclone1070/cassette/internal/navigation"
)

// Screen is everything the renderer needs for one frame.
type Screen struct {
	Width  int
	Height int
	Now    time.Time

	Trail    navigation.Trail
	Items    []catalog.Item
	Selected int
	Columns  int

	// CrumbFocus is set while the breadcrumb bar has keyboard focus.
	CrumbFocus bool
	CrumbIndex int

	// Tool is nil while browsing.
	Tool *ToolFrame

	Help string
}

// ToolFrame describes the mounted tool.
type ToolFrame struct {
	Name  string
	Title string
	Body  string
}
