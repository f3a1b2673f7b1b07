// Package printer renders syntax trees for people and tools: an indented
// text outline and a JSON document in the node/props/children shape.
package printer

import (
	"strconv"
	"strings"

	"github.com/example/sqltree/internal/sql/ast"
)

// kind returns the display name of a node.
func kind(node ast.Node) string {
	switch node.(type) {
	case *ast.SelectStmt:
		return "SelectStmt"
	case *ast.InsertStmt:
		return "InsertStmt"
	case *ast.UpdateStmt:
		return "UpdateStmt"
	case *ast.SetItem:
		return "SetItem"
	case *ast.DeleteStmt:
		return "DeleteStmt"
	case *ast.UnionStmt:
		return "UnionStmt"
	case *ast.Column:
		return "Column"
	case *ast.Table:
		return "Table"
	case *ast.Alias:
		return "Alias"
	case *ast.Where:
		return "Where"
	case *ast.Having:
		return "Having"
	case *ast.Join:
		return "Join"
	case *ast.GroupBy:
		return "GroupBy"
	case *ast.OrderBy:
		return "OrderBy"
	case *ast.OrderByItem:
		return "OrderByItem"
	case *ast.Limit:
		return "Limit"
	case *ast.Grouped:
		return "Grouped"
	case *ast.BinaryExpr:
		return "Binary"
	case *ast.ColumnRef:
		return "ColumnRef"
	case *ast.Literal:
		return "Literal"
	case *ast.FunctionCall:
		return "FunctionCall"
	case *ast.Subquery:
		return "Subquery"
	default:
		return "Unknown"
	}
}

// detail returns the one-line summary printed after the node name, or ""
// when the node has nothing beyond its children.
func detail(node ast.Node) string {
	switch n := node.(type) {
	case *ast.InsertStmt:
		return strings.Join(n.Columns, ", ")
	case *ast.UnionStmt:
		if n.All {
			return "UNION ALL"
		}
		return "UNION"
	case *ast.Column:
		return n.Name
	case *ast.Table:
		return n.Name
	case *ast.Alias:
		return n.Name
	case *ast.Join:
		return n.Type.String()
	case *ast.OrderByItem:
		return n.Direction.String()
	case *ast.Limit:
		text := strconv.Itoa(n.Count)
		if n.Offset != nil {
			text += " OFFSET " + strconv.Itoa(*n.Offset)
		}
		return text
	case *ast.BinaryExpr:
		return n.Op
	case *ast.ColumnRef, *ast.Literal:
		return ast.Format(n)
	case *ast.FunctionCall:
		return n.Name
	default:
		return ""
	}
}

// props returns the structured attributes of a node for JSON output.
func props(node ast.Node) map[string]any {
	switch n := node.(type) {
	case *ast.InsertStmt:
		if n.Columns == nil {
			return nil
		}
		return map[string]any{"columns": n.Columns}
	case *ast.UnionStmt:
		return map[string]any{"all": n.All}
	case *ast.Column:
		return map[string]any{"name": n.Name}
	case *ast.Table:
		return map[string]any{"name": n.Name}
	case *ast.Alias:
		return map[string]any{"name": n.Name}
	case *ast.Join:
		return map[string]any{"joinType": n.Type.String()}
	case *ast.OrderByItem:
		return map[string]any{"dir": n.Direction.String()}
	case *ast.Limit:
		p := map[string]any{"limit": n.Count}
		if n.Offset != nil {
			p["offset"] = *n.Offset
		}
		return p
	case *ast.BinaryExpr:
		return map[string]any{"op": n.Op}
	case *ast.ColumnRef:
		p := map[string]any{"column": n.Name}
		if n.Table != "" {
			p["table"] = n.Table
		}
		return p
	case *ast.Literal:
		if n.Kind == ast.LiteralString {
			return map[string]any{"type": "string", "value": n.Value}
		}
		return map[string]any{"type": "number", "value": n.Number.String()}
	case *ast.FunctionCall:
		return map[string]any{"name": n.Name}
	default:
		return nil
	}
}
