package printer

import (
	"strings"

	"github.com/example/sqltree/internal/sql/ast"
)

const indent = "  "

// Tree renders node as an indented outline, one node per line, children
// indented two spaces below their parent.
func Tree(node ast.Node) string {
	p := &treePrinter{}
	ast.Walk(p, node)
	return p.sb.String()
}

type treePrinter struct {
	sb    strings.Builder
	depth int
}

func (p *treePrinter) Visit(node ast.Node) ast.Visitor {
	if node == nil {
		p.depth--
		return nil
	}
	p.sb.WriteString(strings.Repeat(indent, p.depth))
	p.sb.WriteString(kind(node))
	if d := detail(node); d != "" {
		p.sb.WriteString(": ")
		p.sb.WriteString(d)
	}
	p.sb.WriteByte('\n')
	p.depth++
	return p
}
