package shell

import (
	"fmt"

	"github.com/Cyclone1070/cassette/internal/catalog"
	"github.com/Cyclone1070/cassette/internal/dispatch"
	"github.com/Cyclone1070/cassette/internal/navigation"
)

// Reduce applies event to state and returns the next state.
//
// While a tool runs only Terminate has an effect; the host does not offer navigation
// controls in that mode, so other events are ignored. On error the returned state is
// the input state.
func Reduce(tree *catalog.Tree, state State, event Event) (State, error) {
	if !state.Browsing() {
		if _, ok := event.(Terminate); ok {
			return State{Trail: state.Trail}, nil
		}
		return state, nil
	}

	switch e := event.(type) {
	case Activate:
		return activate(tree, state, e.Item)

	case JumpTo:
		return State{Trail: navigation.NavigateTo(state.Trail, e.ID)}, nil

	case JumpToIndex:
		return State{Trail: navigation.NavigateToIndex(state.Trail, e.Index)}, nil

	case Terminate:
		return state, nil

	default:
		return state, fmt.Errorf("unknown event %T", event)
	}
}

func activate(tree *catalog.Tree, state State, item catalog.Item) (State, error) {
	switch it := item.(type) {
	case *catalog.Folder:
		trail, err := navigation.NavigateInto(tree, state.Trail, it)
		if err != nil {
			return state, err
		}
		return State{Trail: trail}, nil

	case *catalog.File:
		if it == nil {
			return state, fmt.Errorf("activate: nil file")
		}
		parent, err := state.Folder(tree)
		if err != nil {
			return state, err
		}
		if child, ok := parent.Child(it.ID()); !ok || child != catalog.Item(it) {
			return state, fmt.Errorf("activate %q from %s: %w", it.ID(), state.Trail, navigation.ErrNotChild)
		}
		return State{
			Trail:  state.Trail,
			Active: it,
			View:   dispatch.Select(it),
		}, nil

	default:
		return state, fmt.Errorf("activate: unsupported item %T", item)
	}
}
