// Package navigation implements the breadcrumb trail that records where the shell is in
// the item tree. The trail is the only record of location; the current folder is always
// derived from it.
package navigation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Cyclone1070/cassette/internal/catalog"
)

var (
	// ErrNotFolder is returned when navigating into an item that is not a folder.
	ErrNotFolder = errors.New("item is not a folder")

	// ErrNotChild is returned when navigating into an item outside the current folder.
	ErrNotChild = errors.New("item is not a child of the current folder")

	// ErrEmptyTrail is returned for a trail without a root breadcrumb.
	ErrEmptyTrail = errors.New("trail is empty")
)

// Breadcrumb identifies one folder on the path from the root to the current folder.
type Breadcrumb struct {
	ID   string
	Name string
}

// Trail is the ordered path of breadcrumbs from the root to the current folder.
type Trail []Breadcrumb

// NewTrail returns the initial trail holding only the root.
func NewTrail(root *catalog.Folder) Trail {
	return Trail{{ID: root.ID(), Name: root.Name()}}
}

// IDs returns the breadcrumb ids in order.
func (t Trail) IDs() []string {
	ids := make([]string, len(t))
	for i, b := range t {
		ids[i] = b.ID
	}
	return ids
}

// Names returns the breadcrumb names in order.
func (t Trail) Names() []string {
	names := make([]string, len(t))
	for i, b := range t {
		names[i] = b.Name
	}
	return names
}

// Index returns the position of the first breadcrumb with the given id, or -1.
func (t Trail) Index(id string) int {
	for i, b := range t {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// Contains reports whether a breadcrumb with the given id is on the trail.
func (t Trail) Contains(id string) bool {
	return t.Index(id) >= 0
}

// Last returns the breadcrumb of the current folder.
func (t Trail) Last() Breadcrumb {
	if len(t) == 0 {
		return Breadcrumb{}
	}
	return t[len(t)-1]
}

// String renders the trail as a slash separated path, e.g. /ROOT/APPLICATIONS.
func (t Trail) String() string {
	return "/" + strings.Join(t.Names(), "/")
}

// Equal reports whether both trails hold the same breadcrumbs.
func (t Trail) Equal(other Trail) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if t[i] != other[i] {
			return false
		}
	}
	return true
}

// Validate checks that the trail resolves to a folder in tree.
func (t Trail) Validate(tree *catalog.Tree) error {
	if len(t) == 0 {
		return ErrEmptyTrail
	}
	_, err := tree.Resolve(t.IDs())
	return err
}

// CurrentFolder resolves the folder the trail points at.
func CurrentFolder(tree *catalog.Tree, t Trail) (*catalog.Folder, error) {
	if len(t) == 0 {
		return nil, ErrEmptyTrail
	}
	return tree.Resolve(t.IDs())
}

// NavigateInto returns a new trail extended by item.
// item must be a folder and a direct child of the folder current resolves to.
func NavigateInto(tree *catalog.Tree, current Trail, item catalog.Item) (Trail, error) {
	folder, ok := item.(*catalog.Folder)
	if !ok {
		return current, fmt.Errorf("navigate into %q: %w", itemID(item), ErrNotFolder)
	}
	if folder == nil {
		return current, fmt.Errorf("navigate into nil folder: %w", ErrNotFolder)
	}

	parent, err := CurrentFolder(tree, current)
	if err != nil {
		return current, fmt.Errorf("navigate into %q: %w", folder.ID(), err)
	}
	child, ok := parent.Child(folder.ID())
	if !ok || child != catalog.Item(folder) {
		return current, fmt.Errorf("navigate into %q from %s: %w", folder.ID(), current, ErrNotChild)
	}

	next := make(Trail, len(current), len(current)+1)
	copy(next, current)
	return append(next, Breadcrumb{ID: folder.ID(), Name: folder.Name()}), nil
}

// NavigateTo truncates the trail after the first breadcrumb whose id is targetID.
// An id that is not on the trail leaves it unchanged.
func NavigateTo(current Trail, targetID string) Trail {
	i := current.Index(targetID)
	if i < 0 {
		return current
	}
	return NavigateToIndex(current, i)
}

// NavigateToIndex truncates the trail after position i.
// Out of range positions leave it unchanged.
func NavigateToIndex(current Trail, i int) Trail {
	if i < 0 || i >= len(current) {
		return current
	}
	next := make(Trail, i+1)
	copy(next, current[:i+1])
	return next
}

func itemID(item catalog.Item) string {
	if item == nil {
		return ""
	}
	return item.ID()
}
