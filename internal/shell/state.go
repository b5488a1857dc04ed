// Package shell holds the shell controller: the explicit shell state and the reducer that
// moves it between browsing and running a tool.
package shell

import (
	"github.com/Cyclone1070/cassette/internal/catalog"
	"github.com/Cyclone1070/cassette/internal/dispatch"
	"github.com/Cyclone1070/cassette/internal/navigation"
)

// Mode is the shell mode derived from State.
type Mode string

const (
	ModeBrowsing    Mode = "browsing"
	ModeRunningTool Mode = "running_tool"
)

// State is the whole navigational state of the shell.
// The shell is running a tool iff Active is non-nil; Trail is kept while it runs so that
// terminating returns to the same folder.
type State struct {
	Trail  navigation.Trail
	Active *catalog.File
	View   dispatch.View
}

// New returns the initial state: browsing the root.
func New(tree *catalog.Tree) State {
	return State{Trail: navigation.NewTrail(tree.Root())}
}

// Mode reports the current mode.
func (s State) Mode() Mode {
	if s.Active != nil {
		return ModeRunningTool
	}
	return ModeBrowsing
}

// Browsing reports whether no tool is mounted.
func (s State) Browsing() bool {
	return s.Active == nil
}

// Folder resolves the folder the trail points at.
func (s State) Folder(tree *catalog.Tree) (*catalog.Folder, error) {
	return navigation.CurrentFolder(tree, s.Trail)
}
