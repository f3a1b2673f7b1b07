package printer

import (
	"github.com/segmentio/encoding/json"

	"github.com/example/sqltree/internal/sql/ast"
)

// Node is the JSON form of a syntax tree node.
type Node struct {
	Node     string         `json:"node"`
	Props    map[string]any `json:"props,omitempty"`
	Children []*Node        `json:"children,omitempty"`
}

// Build converts a syntax tree into its JSON form.
func Build(node ast.Node) *Node {
	b := &builder{}
	ast.Walk(b, node)
	return b.root
}

// JSON returns the indented JSON document for node.
func JSON(node ast.Node) ([]byte, error) {
	return json.MarshalIndent(Build(node), "", "  ")
}

type builder struct {
	root  *Node
	stack []*Node
}

func (b *builder) Visit(node ast.Node) ast.Visitor {
	if node == nil {
		b.stack = b.stack[:len(b.stack)-1]
		return nil
	}
	n := &Node{Node: kind(node), Props: props(node)}
	if len(b.stack) == 0 {
		b.root = n
	} else {
		parent := b.stack[len(b.stack)-1]
		parent.Children = append(parent.Children, n)
	}
	b.stack = append(b.stack, n)
	return b
}
