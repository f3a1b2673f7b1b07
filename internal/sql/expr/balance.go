// Package expr restores operator precedence in expression trees.
//
// The parser builds AND/OR chains strictly left to right without looking at
// precedence. A Balancer rewrites such a tree with local rotations until no
// binary node has a binary child of strictly greater rank, which is the tree
// a precedence-aware parser would have built. Rotations keep the in-order
// sequence of operands, and equal ranks are never rotated, so same-precedence
// chains stay left-associative.
package expr

import "github.com/example/sqltree/internal/sql/ast"

// Balancer rotates expression trees according to a precedence Table.
type Balancer struct {
	table Table
}

// New returns a balancer using the default table for ctx.
func New(ctx Context) *Balancer {
	return &Balancer{table: DefaultTable(ctx)}
}

// NewWithTable returns a balancer using a caller supplied table.
func NewWithTable(t Table) *Balancer {
	return &Balancer{table: t}
}

// Balance is shorthand for New(ctx).Balance(e).
func Balance(e ast.Expression, ctx Context) ast.Expression {
	return New(ctx).Balance(e)
}

// Table returns the precedence table in use.
func (b *Balancer) Table() Table {
	return b.table
}

// Balance returns a precedence-correct copy of e. The input tree is not
// modified; leaves are shared with the result.
func (b *Balancer) Balance(e ast.Expression) ast.Expression {
	switch n := e.(type) {
	case *ast.BinaryExpr:
		return b.settle(&ast.BinaryExpr{
			Left:  b.Balance(n.Left),
			Op:    n.Op,
			Right: b.Balance(n.Right),
		})
	case *ast.Grouped:
		return &ast.Grouped{Inner: b.Balance(n.Inner)}
	default:
		return e
	}
}

// settle rotates node until neither child outranks it. Both children must
// already be balanced. Every rotation raises the rank at the root, so the
// loop ends after at most as many steps as there are distinct ranks.
func (b *Balancer) settle(node *ast.BinaryExpr) *ast.BinaryExpr {
	for {
		rank := b.rank(node)
		if left, ok := node.Left.(*ast.BinaryExpr); ok && b.rank(left) > rank {
			node = b.rotateRight(node, left)
			continue
		}
		if right, ok := node.Right.(*ast.BinaryExpr); ok && b.rank(right) > rank {
			node = b.rotateLeft(node, right)
			continue
		}
		return node
	}
}

// rotateRight promotes the left child:
//
//	    node            left
//	   /    \          /    \
//	 left    r   =>   a     node'
//	 /  \                   /   \
//	a    b                 b     r
func (b *Balancer) rotateRight(node, left *ast.BinaryExpr) *ast.BinaryExpr {
	demoted := b.settle(&ast.BinaryExpr{Left: left.Right, Op: node.Op, Right: node.Right})
	return &ast.BinaryExpr{Left: left.Left, Op: left.Op, Right: demoted}
}

// rotateLeft promotes the right child; the mirror image of rotateRight.
func (b *Balancer) rotateLeft(node, right *ast.BinaryExpr) *ast.BinaryExpr {
	demoted := b.settle(&ast.BinaryExpr{Left: node.Left, Op: node.Op, Right: right.Left})
	return &ast.BinaryExpr{Left: demoted, Op: right.Op, Right: right.Right}
}

func (b *Balancer) rank(e ast.Expression) int {
	return Rank(e, b.table)
}

// Rank returns the rank of e under t. Non-binary expressions rank RankLeaf.
func Rank(e ast.Expression, t Table) int {
	if bin, ok := e.(*ast.BinaryExpr); ok {
		return t.Rank(bin.Op)
	}
	return RankLeaf
}

// Stable reports whether no binary node in e, including inside groups, has
// a binary child that outranks it under t.
func Stable(e ast.Expression, t Table) bool {
	switch n := e.(type) {
	case *ast.BinaryExpr:
		rank := t.Rank(n.Op)
		for _, child := range []ast.Expression{n.Left, n.Right} {
			if _, ok := child.(*ast.BinaryExpr); ok && Rank(child, t) > rank {
				return false
			}
		}
		return Stable(n.Left, t) && Stable(n.Right, t)
	case *ast.Grouped:
		return Stable(n.Inner, t)
	default:
		return true
	}
}
