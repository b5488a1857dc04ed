// Package catalog defines the static item tree the shell browses.
//
// The tree is built once at startup, either from the builtin definition or from a YAML
// definition file, and is never mutated afterwards. Every navigation operation is a
// read over it.
package catalog

// Kind distinguishes folders from files.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

// ToolID identifies the embedded tool a file launches.
// Values outside the declared set are kept verbatim and treated as unknown by the dispatcher.
type ToolID string

const (
	ToolNone        ToolID = "none"
	ToolChatConsole ToolID = "chat_console"
	ToolMonitor     ToolID = "monitor"
	ToolDocument    ToolID = "document"
)

// Known reports whether the id names one of the declared tools (excluding ToolNone).
func (t ToolID) Known() bool {
	switch t {
	case ToolChatConsole, ToolMonitor, ToolDocument:
		return true
	}
	return false
}

// Item is one node of the tree. It is implemented only by *Folder and *File.
type Item interface {
	ID() string
	Name() string
	Description() string
	Kind() Kind

	isItem()
}

// Folder is an item holding an ordered list of children.
type Folder struct {
	id          string
	name        string
	description string
	children    []Item
}

// NewFolder creates a folder. The children slice is copied.
func NewFolder(id, name, description string, children ...Item) *Folder {
	return &Folder{
		id:          id,
		name:        name,
		description: description,
		children:    append([]Item(nil), children...),
	}
}

func (f *Folder) ID() string          { return f.id }
func (f *Folder) Name() string        { return f.name }
func (f *Folder) Description() string { return f.description }
func (f *Folder) Kind() Kind          { return KindFolder }
func (f *Folder) isItem()             {}

// Children returns the folder contents in display order.
func (f *Folder) Children() []Item {
	return append([]Item(nil), f.children...)
}

// Len returns the number of direct children.
func (f *Folder) Len() int {
	return len(f.children)
}

// Child returns the direct child with the given id.
func (f *Folder) Child(id string) (Item, bool) {
	for _, c := range f.children {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

// File is a leaf item that launches a tool when activated.
type File struct {
	id          string
	name        string
	description string
	tool        ToolID
	content     string
}

// NewFile creates a file. An empty tool id is normalised to ToolNone.
func NewFile(id, name, description string, tool ToolID, content string) *File {
	if tool == "" {
		tool = ToolNone
	}
	return &File{
		id:          id,
		name:        name,
		description: description,
		tool:        tool,
		content:     content,
	}
}

func (f *File) ID() string          { return f.id }
func (f *File) Name() string        { return f.name }
func (f *File) Description() string { return f.description }
func (f *File) Kind() Kind          { return KindFile }
func (f *File) isItem()             {}

// Tool returns the declared tool id.
func (f *File) Tool() ToolID { return f.tool }

// Content returns the inline text payload (used by documents only).
func (f *File) Content() string { return f.content }
