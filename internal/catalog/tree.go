package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// RootID is the reserved id of the tree root.
const RootID = "root"

var (
	// ErrTreeResolution is returned when a path does not name a folder in the tree.
	ErrTreeResolution = errors.New("tree resolution failed")

	// ErrInvalidTree is returned when a tree fails construction checks.
	ErrInvalidTree = errors.New("invalid tree")
)

// TreeResolutionError describes where resolving a path failed.
type TreeResolutionError struct {
	Path  []string
	Index int
	ID    string
}

func (e *TreeResolutionError) Error() string {
	return fmt.Sprintf("cannot resolve %q at position %d of /%s", e.ID, e.Index, strings.Join(e.Path, "/"))
}

func (e *TreeResolutionError) Unwrap() error {
	return ErrTreeResolution
}

// Tree is an immutable item hierarchy with a global id index.
type Tree struct {
	root  *Folder
	index map[string]Item
}

// New validates the hierarchy under root and indexes it.
// The root must carry RootID and every id must be non-empty and globally unique.
func New(root *Folder) (*Tree, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ErrInvalidTree)
	}
	if root.ID() != RootID {
		return nil, fmt.Errorf("%w: root id must be %q, got %q", ErrInvalidTree, RootID, root.ID())
	}

	index := make(map[string]Item)
	var visit func(item Item, depth int) error
	visit = func(item Item, depth int) error {
		if item == nil {
			return fmt.Errorf("%w: nil item at depth %d", ErrInvalidTree, depth)
		}
		id := item.ID()
		if id == "" {
			return fmt.Errorf("%w: empty id for %q", ErrInvalidTree, item.Name())
		}
		if _, dup := index[id]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidTree, id)
		}
		index[id] = item
		if folder, ok := item.(*Folder); ok {
			for _, child := range folder.children {
				if err := visit(child, depth+1); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := visit(root, 0); err != nil {
		return nil, err
	}

	return &Tree{root: root, index: index}, nil
}

// MustNew is like New but panics on error. Intended for builtin trees.
func MustNew(root *Folder) *Tree {
	t, err := New(root)
	if err != nil {
		panic(err)
	}
	return t
}

// Root returns the root folder.
func (t *Tree) Root() *Folder {
	return t.root
}

// Len returns the total number of items, root included.
func (t *Tree) Len() int {
	return len(t.index)
}

// Find looks an item up by its global id.
func (t *Tree) Find(id string) (Item, bool) {
	item, ok := t.index[id]
	return item, ok
}

// Resolve walks path from the root and returns the folder it names.
// path[0] must be the root id; every following id must name a child folder of the previous one.
func (t *Tree) Resolve(path []string) (*Folder, error) {
	if len(path) == 0 || path[0] != t.root.ID() {
		first := ""
		if len(path) > 0 {
			first = path[0]
		}
		return nil, &TreeResolutionError{Path: path, Index: 0, ID: first}
	}

	current := t.root
	for i := 1; i < len(path); i++ {
		child, ok := current.Child(path[i])
		if !ok {
			return nil, &TreeResolutionError{Path: path, Index: i, ID: path[i]}
		}
		folder, ok := child.(*Folder)
		if !ok {
			return nil, &TreeResolutionError{Path: path, Index: i, ID: path[i]}
		}
		current = folder
	}
	return current, nil
}

// Walk visits every item depth-first in display order. Returning false from fn skips the
// item's children.
func (t *Tree) Walk(fn func(item Item, depth int) bool) {
	var visit func(item Item, depth int)
	visit = func(item Item, depth int) {
		if !fn(item, depth) {
			return
		}
		if folder, ok := item.(*Folder); ok {
			for _, child := range folder.children {
				visit(child, depth+1)
			}
		}
	}
	visit(t.root, 0)
}
