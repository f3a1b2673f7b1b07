package ast

import (
	"strconv"
	"strings"
)

// Format renders a node as SQL text. Operands that are themselves binary
// expressions are wrapped in parentheses, so the text shows the tree shape:
// "a = 1 OR b = 2 AND c = 3" after balancing formats as
// "(a = 1) OR ((b = 2) AND (c = 3))".
func Format(node Node) string {
	var sb strings.Builder
	format(&sb, node, false)
	return sb.String()
}

func format(sb *strings.Builder, node Node, nested bool) {
	switch n := node.(type) {
	case nil:
		sb.WriteString("<nil>")
	case *SelectStmt:
		if n == nil {
			sb.WriteString("<nil>")
			return
		}
		formatSelect(sb, n)
	case *InsertStmt:
		sb.WriteString("INSERT INTO ")
		format(sb, n.Table, false)
		if n.Columns != nil {
			sb.WriteString(" (")
			sb.WriteString(strings.Join(n.Columns, ", "))
			sb.WriteString(")")
		}
		sb.WriteString(" VALUES (")
		for i, v := range n.Values {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, v, false)
		}
		sb.WriteString(")")
	case *UpdateStmt:
		sb.WriteString("UPDATE ")
		format(sb, n.Table, false)
		sb.WriteString(" SET ")
		for i, s := range n.Set {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, s, false)
		}
		if n.Where != nil {
			sb.WriteString(" ")
			format(sb, n.Where, false)
		}
	case *SetItem:
		format(sb, n.Column, false)
		sb.WriteString(" = ")
		format(sb, n.Value, false)
	case *DeleteStmt:
		sb.WriteString("DELETE FROM ")
		format(sb, n.Table, false)
		if n.Where != nil {
			sb.WriteString(" ")
			format(sb, n.Where, false)
		}
	case *UnionStmt:
		format(sb, n.Left, false)
		if n.All {
			sb.WriteString(" UNION ALL ")
		} else {
			sb.WriteString(" UNION ")
		}
		format(sb, n.Right, false)
	case *Column:
		sb.WriteString(n.Name)
		if n.Alias != nil {
			sb.WriteString(" AS ")
			sb.WriteString(n.Alias.Name)
		}
	case *Table:
		sb.WriteString(n.Name)
		if n.Alias != nil {
			sb.WriteString(" ")
			sb.WriteString(n.Alias.Name)
		}
	case *Alias:
		sb.WriteString(n.Name)
	case *Where:
		sb.WriteString("WHERE ")
		format(sb, n.Condition, false)
	case *Having:
		sb.WriteString("HAVING ")
		format(sb, n.Condition, false)
	case *Join:
		if n.Type == JoinCross {
			sb.WriteString("CROSS JOIN ")
		} else {
			sb.WriteString(n.Type.String())
			sb.WriteString(" JOIN ")
		}
		format(sb, n.Table, false)
		if n.Condition != nil {
			sb.WriteString(" ON ")
			format(sb, n.Condition, false)
		}
	case *GroupBy:
		sb.WriteString("GROUP BY ")
		for i, c := range n.Columns {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, c, false)
		}
	case *OrderBy:
		sb.WriteString("ORDER BY ")
		for i, item := range n.Items {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, item, false)
		}
	case *OrderByItem:
		format(sb, n.Column, false)
		if n.Direction == Desc {
			sb.WriteString(" DESC")
		}
	case *Limit:
		sb.WriteString("LIMIT ")
		sb.WriteString(strconv.Itoa(n.Count))
		if n.Offset != nil {
			sb.WriteString(" OFFSET ")
			sb.WriteString(strconv.Itoa(*n.Offset))
		}
	case *Grouped:
		sb.WriteString("(")
		format(sb, n.Inner, false)
		sb.WriteString(")")
	case *BinaryExpr:
		if nested {
			sb.WriteString("(")
		}
		format(sb, n.Left, true)
		sb.WriteString(" ")
		sb.WriteString(n.Op)
		sb.WriteString(" ")
		format(sb, n.Right, true)
		if nested {
			sb.WriteString(")")
		}
	case *ColumnRef:
		if n.Table != "" {
			sb.WriteString(n.Table)
			sb.WriteString(".")
		}
		sb.WriteString(n.Name)
	case *Literal:
		sb.WriteString(formatLiteral(n))
	case *FunctionCall:
		sb.WriteString(n.Name)
		sb.WriteString("(")
		for i, a := range n.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			format(sb, a, false)
		}
		sb.WriteString(")")
	case *Subquery:
		sb.WriteString("(")
		format(sb, n.Select, false)
		sb.WriteString(")")
	default:
		sb.WriteString("<node>")
	}
}

func formatSelect(sb *strings.Builder, n *SelectStmt) {
	sb.WriteString("SELECT ")
	for i, c := range n.Columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		format(sb, c, false)
	}
	if n.From != nil {
		sb.WriteString(" FROM ")
		format(sb, n.From, false)
	}
	for _, j := range n.Joins {
		sb.WriteString(" ")
		format(sb, j, false)
	}
	clauses := []Node{}
	if n.Where != nil {
		clauses = append(clauses, n.Where)
	}
	if n.GroupBy != nil {
		clauses = append(clauses, n.GroupBy)
	}
	if n.Having != nil {
		clauses = append(clauses, n.Having)
	}
	if n.OrderBy != nil {
		clauses = append(clauses, n.OrderBy)
	}
	if n.Limit != nil {
		clauses = append(clauses, n.Limit)
	}
	for _, c := range clauses {
		sb.WriteString(" ")
		format(sb, c, false)
	}
}

var literalEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

func formatLiteral(l *Literal) string {
	switch l.Kind {
	case LiteralString:
		return "'" + literalEscaper.Replace(l.Value) + "'"
	default:
		if l.Value == "" {
			return l.Number.String()
		}
		return l.Value
	}
}
