package shell

import (
	"testing"

	"github.com/Cyclone1070/cassette/internal/catalog"
	"github.com/Cyclone1070/cassette/internal/dispatch"
	"github.com/Cyclone1070/cassette/internal/navigation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func find(t *testing.T, tree *catalog.Tree, id string) catalog.Item {
	t.Helper()
	item, ok := tree.Find(id)
	require.True(t, ok, "item %q not in tree", id)
	return item
}

func reduce(t *testing.T, tree *catalog.Tree, state State, event Event) State {
	t.Helper()
	next, err := Reduce(tree, state, event)
	require.NoError(t, err)
	return next
}

func childNames(t *testing.T, tree *catalog.Tree, state State) []string {
	t.Helper()
	folder, err := state.Folder(tree)
	require.NoError(t, err)
	var names []string
	for _, c := range folder.Children() {
		names = append(names, c.Name())
	}
	return names
}

func TestNew_BrowsingRoot(t *testing.T) {
	tree := catalog.Default()
	state := New(tree)

	assert.Equal(t, ModeBrowsing, state.Mode())
	assert.True(t, state.Browsing())
	assert.Equal(t, []string{"root"}, state.Trail.IDs())
	assert.Nil(t, state.Active)
	assert.Nil(t, state.View)
}

func TestEndToEnd_ToolKeepsTrail(t *testing.T) {
	tree := catalog.Default()
	state := New(tree)

	state = reduce(t, tree, state, Activate{Item: find(t, tree, "apps")})
	assert.Equal(t, []string{"root", "apps"}, state.Trail.IDs())
	assert.Equal(t, []string{"AI_CONSOLE.EXE", "VISUALIZER.DAT"}, childNames(t, tree, state))

	state = reduce(t, tree, state, Activate{Item: find(t, tree, "gemini-term")})
	assert.Equal(t, ModeRunningTool, state.Mode())
	assert.Equal(t, []string{"root", "apps"}, state.Trail.IDs())
	assert.Equal(t, "gemini-term", state.Active.ID())
	assert.Equal(t, dispatch.ChatConsoleView{}, state.View)

	state = reduce(t, tree, state, Terminate{})
	assert.Equal(t, ModeBrowsing, state.Mode())
	assert.Equal(t, []string{"root", "apps"}, state.Trail.IDs())
	assert.Nil(t, state.View)
}

func TestEndToEnd_BreadcrumbToRoot(t *testing.T) {
	tree := catalog.Default()
	state := New(tree)
	state = reduce(t, tree, state, Activate{Item: find(t, tree, "apps")})

	state = reduce(t, tree, state, JumpTo{ID: "root"})

	assert.Equal(t, []string{"root"}, state.Trail.IDs())
	assert.Equal(t, []string{"APPLICATIONS", "DOCUMENTS", "SYSTEM"}, childNames(t, tree, state))
}

func TestReduce_JumpToIndex(t *testing.T) {
	tree := catalog.Default()
	state := New(tree)
	state = reduce(t, tree, state, Activate{Item: find(t, tree, "docs")})

	state = reduce(t, tree, state, JumpToIndex{Index: 0})
	assert.Equal(t, []string{"root"}, state.Trail.IDs())

	state = reduce(t, tree, state, JumpToIndex{Index: 5})
	assert.Equal(t, []string{"root"}, state.Trail.IDs())
}

func TestReduce_JumpToUnknownIsNoop(t *testing.T) {
	tree := catalog.Default()
	state := reduce(t, tree, New(tree), Activate{Item: find(t, tree, "apps")})

	next := reduce(t, tree, state, JumpTo{ID: "docs"})

	assert.Equal(t, state.Trail, next.Trail)
}

func TestReduce_DocumentView(t *testing.T) {
	tree := catalog.Default()
	state := reduce(t, tree, New(tree), Activate{Item: find(t, tree, "docs")})

	state = reduce(t, tree, state, Activate{Item: find(t, tree, "readme")})

	view, ok := state.View.(dispatch.DocumentView)
	require.True(t, ok)
	assert.Contains(t, view.Content, "WELCOME")
}

func TestReduce_UnknownToolMountsFallback(t *testing.T) {
	tree := catalog.MustNew(catalog.NewFolder(catalog.RootID, "ROOT", "",
		catalog.NewFile("odd", "ODD.BIN", "", catalog.ToolID("teleporter"), ""),
	))
	state := reduce(t, tree, New(tree), Activate{Item: find(t, tree, "odd")})

	assert.Equal(t, ModeRunningTool, state.Mode())
	assert.Equal(t, dispatch.UnsupportedView{Tool: "teleporter"}, state.View)
}

func TestReduce_InvariantViolations(t *testing.T) {
	tree := catalog.Default()
	start := New(tree)

	tests := []struct {
		name    string
		event   Event
		wantErr error
	}{
		{name: "folder not a child", event: Activate{Item: find(t, tree, "root")}, wantErr: navigation.ErrNotChild},
		{name: "file not a child", event: Activate{Item: find(t, tree, "readme")}, wantErr: navigation.ErrNotChild},
		{name: "nil item", event: Activate{Item: nil}},
		{name: "nil event", event: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := Reduce(tree, start, tt.event)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Equal(t, start, next)
		})
	}
}

func TestReduce_NavigationIgnoredWhileRunning(t *testing.T) {
	tree := catalog.Default()
	state := reduce(t, tree, New(tree), Activate{Item: find(t, tree, "apps")})
	running := reduce(t, tree, state, Activate{Item: find(t, tree, "sys-mon")})

	for _, event := range []Event{
		Activate{Item: find(t, tree, "gemini-term")},
		JumpTo{ID: "root"},
		JumpToIndex{Index: 0},
	} {
		next := reduce(t, tree, running, event)
		assert.Equal(t, running, next, "%T", event)
	}
}

func TestReduce_TerminateWhileBrowsingIsNoop(t *testing.T) {
	tree := catalog.Default()
	state := reduce(t, tree, New(tree), Activate{Item: find(t, tree, "apps")})

	next := reduce(t, tree, state, Terminate{})

	assert.Equal(t, state, next)
}
