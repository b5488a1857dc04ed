package shell

import "github.com/Cyclone1070/cassette/internal/catalog"

// Event is a discrete user action fed to Reduce.
type Event interface {
	isEvent()
}

// Activate is a click on an item of the folder grid.
type Activate struct {
	Item catalog.Item
}

// JumpTo is a click on the breadcrumb segment with the given id.
type JumpTo struct {
	ID string
}

// JumpToIndex is a click on the breadcrumb segment at the given position.
type JumpToIndex struct {
	Index int
}

// Terminate is a click on the terminate control of the mounted tool.
type Terminate struct{}

func (Activate) isEvent()    {}
func (JumpTo) isEvent()      {}
func (JumpToIndex) isEvent() {}
func (Terminate) isEvent()   {}
