package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"sigs.k8s.io/yaml"
)

// Format identifies the on-disk encoding of one catalog file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var errNotMapping = errors.New("top-level value is not a mapping")

// FormatForFile maps a file name to its catalog format by extension.
// The second return is false for files that are not catalogs.
func FormatForFile(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".toml":
		return FormatTOML, true
	default:
		return "", false
	}
}

type kind int

const (
	kindMapping kind = iota
	kindLeaf
)

// Node is one position in a catalog tree: either a mapping of string keys to
// child nodes, or a leaf value. The discriminant is fixed when the tree is
// built from parsed data, so traversal never type-switches on raw values.
type Node struct {
	kind     kind
	children map[string]*Node
	keys     []string
	value    any
}

// IsMapping reports whether the node has children rather than a value.
func (n *Node) IsMapping() bool { return n.kind == kindMapping }

// Value returns the leaf value; nil for mapping nodes.
func (n *Node) Value() any {
	if n.kind != kindLeaf {
		return nil
	}
	return n.value
}

// Keys returns the child keys of a mapping node in traversal order.
func (n *Node) Keys() []string { return n.keys }

// Child returns the named child of a mapping node, or nil.
func (n *Node) Child(key string) *Node {
	if n.kind != kindMapping {
		return nil
	}
	return n.children[key]
}

// Parse decodes one catalog file into a node tree. The top-level value must
// be a mapping of string keys.
func Parse(data []byte, format Format) (*Node, error) {
	var raw map[string]any
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s catalog: %w", format, err)
	}
	if raw == nil {
		return nil, errNotMapping
	}
	return buildMapping(raw), nil
}

func buildMapping(m map[string]any) *Node {
	node := &Node{
		kind:     kindMapping,
		children: make(map[string]*Node, len(m)),
		keys:     make([]string, 0, len(m)),
	}
	for key := range m {
		node.keys = append(node.keys, key)
	}
	// Decoded maps carry no source order, so traversal order is fixed by
	// sorting. Flattening the same catalog always yields the same result.
	sort.Strings(node.keys)
	for _, key := range node.keys {
		node.children[key] = build(m[key])
	}
	return node
}

func build(v any) *Node {
	if m, ok := v.(map[string]any); ok {
		return buildMapping(m)
	}
	return &Node{kind: kindLeaf, value: v}
}

// Flat is a flattened catalog: dotted key path to leaf value. Leaves are
// usually strings; other scalar types pass through unchanged.
type Flat map[string]any

// Flatten converts the tree into its flat path-to-leaf form. Key paths are
// unique by construction since each path names exactly one traversal route.
func (n *Node) Flatten() Flat {
	flat := Flat{}
	n.flattenInto("", flat)
	return flat
}

func (n *Node) flattenInto(prefix string, flat Flat) {
	if n.kind == kindLeaf {
		flat[prefix] = n.value
		return
	}
	for _, key := range n.keys {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		n.children[key].flattenInto(path, flat)
	}
}
