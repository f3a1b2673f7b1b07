package ast

import "fmt"

// A Visitor's Visit method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children of
// node with w, followed by a call of w.Visit(nil).
type Visitor interface {
	Visit(node Node) (w Visitor)
}

// Walk traverses a tree in depth-first order, children in source order.
// Nil children are skipped.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *SelectStmt:
		for _, c := range n.Columns {
			Walk(v, c)
		}
		if n.From != nil {
			Walk(v, n.From)
		}
		for _, j := range n.Joins {
			Walk(v, j)
		}
		if n.Where != nil {
			Walk(v, n.Where)
		}
		if n.GroupBy != nil {
			Walk(v, n.GroupBy)
		}
		if n.Having != nil {
			Walk(v, n.Having)
		}
		if n.OrderBy != nil {
			Walk(v, n.OrderBy)
		}
		if n.Limit != nil {
			Walk(v, n.Limit)
		}
	case *InsertStmt:
		Walk(v, n.Table)
		for _, e := range n.Values {
			Walk(v, e)
		}
	case *UpdateStmt:
		Walk(v, n.Table)
		for _, s := range n.Set {
			Walk(v, s)
		}
		if n.Where != nil {
			Walk(v, n.Where)
		}
	case *SetItem:
		Walk(v, n.Column)
		Walk(v, n.Value)
	case *DeleteStmt:
		Walk(v, n.Table)
		if n.Where != nil {
			Walk(v, n.Where)
		}
	case *UnionStmt:
		if n.Left != nil {
			Walk(v, n.Left)
		}
		if n.Right != nil {
			Walk(v, n.Right)
		}
	case *Column:
		if n.Alias != nil {
			Walk(v, n.Alias)
		}
	case *Table:
		if n.Alias != nil {
			Walk(v, n.Alias)
		}
	case *Where:
		Walk(v, n.Condition)
	case *Having:
		Walk(v, n.Condition)
	case *Join:
		Walk(v, n.Table)
		if n.Condition != nil {
			Walk(v, n.Condition)
		}
	case *GroupBy:
		for _, c := range n.Columns {
			Walk(v, c)
		}
	case *OrderBy:
		for _, item := range n.Items {
			Walk(v, item)
		}
	case *OrderByItem:
		Walk(v, n.Column)
	case *Grouped:
		Walk(v, n.Inner)
	case *BinaryExpr:
		if n.Left != nil {
			Walk(v, n.Left)
		}
		if n.Right != nil {
			Walk(v, n.Right)
		}
	case *FunctionCall:
		for _, a := range n.Args {
			Walk(v, a)
		}
	case *Subquery:
		if n.Select != nil {
			Walk(v, n.Select)
		}
	case *Alias, *Limit, *ColumnRef, *Literal:
		// leaves
	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect traverses a tree in depth-first order, calling f(node) for each
// node. If f returns true, Inspect descends into the children of node,
// followed by a call of f(nil).
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}
