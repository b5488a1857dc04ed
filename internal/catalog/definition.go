package catalog

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDefinition is returned when a tree definition cannot be turned into a tree.
var ErrInvalidDefinition = errors.New("invalid tree definition")

// nodeDef is one node of a YAML tree definition.
//
//	id: root
//	name: ROOT
//	children:
//	  - id: apps
//	    name: APPLICATIONS
//	    children:
//	      - {id: term, name: AI_CONSOLE.EXE, tool: chat_console}
type nodeDef struct {
	ID          string    `mapstructure:"id"`
	Name        string    `mapstructure:"name"`
	Kind        string    `mapstructure:"kind"`
	Description string    `mapstructure:"description"`
	Tool        string    `mapstructure:"tool"`
	Content     string    `mapstructure:"content"`
	Children    []nodeDef `mapstructure:"children"`
}

// LoadFile reads a YAML tree definition from path.
func LoadFile(path string) (*Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open tree definition: %w", err)
	}
	defer f.Close()

	tree, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

// Decode reads a YAML tree definition and builds the tree it describes.
func Decode(r io.Reader) (*Tree, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}

	var def nodeDef
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &def,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}

	item, err := build(def, "")
	if err != nil {
		return nil, err
	}
	root, ok := item.(*Folder)
	if !ok {
		return nil, fmt.Errorf("%w: top-level node must be a folder", ErrInvalidDefinition)
	}

	tree, err := New(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return tree, nil
}

func build(def nodeDef, parent string) (Item, error) {
	where := def.ID
	if parent != "" {
		where = parent + "/" + def.ID
	}

	kind := Kind(def.Kind)
	if kind == "" {
		kind = KindFile
		if def.Children != nil {
			kind = KindFolder
		}
	}

	switch kind {
	case KindFolder:
		if def.Tool != "" || def.Content != "" {
			return nil, fmt.Errorf("%w: folder %q cannot declare a tool or content", ErrInvalidDefinition, where)
		}
		children := make([]Item, 0, len(def.Children))
		for _, c := range def.Children {
			child, err := build(c, where)
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		return NewFolder(def.ID, def.Name, def.Description, children...), nil

	case KindFile:
		if len(def.Children) > 0 {
			return nil, fmt.Errorf("%w: file %q cannot have children", ErrInvalidDefinition, where)
		}
		return NewFile(def.ID, def.Name, def.Description, ToolID(def.Tool), def.Content), nil

	default:
		return nil, fmt.Errorf("%w: unknown kind %q for %q", ErrInvalidDefinition, def.Kind, where)
	}
}
