// Package ast defines the syntax tree produced by the SQL parser.
//
// The node set is closed: every node implements Node through an unexported
// marker method, so new kinds can only be added here, and consumers switch
// over the concrete pointer types.
package ast

import "github.com/shopspring/decimal"

// Node is implemented by every syntax tree node.
type Node interface {
	node()
}

// Statement represents a parsed SQL statement.
type Statement interface {
	Node
	stmt()
}

// Expression represents a scalar or boolean expression.
type Expression interface {
	Node
	expr()
}

// SelectStmt models SELECT with its optional clauses.
type SelectStmt struct {
	Columns []*Column
	From    *Table
	Joins   []*Join
	Where   *Where
	GroupBy *GroupBy
	Having  *Having
	OrderBy *OrderBy
	Limit   *Limit
}

// InsertStmt represents INSERT INTO. Columns is nil when no column list was
// given.
type InsertStmt struct {
	Table   *Table
	Columns []string
	Values  []Expression
}

// UpdateStmt represents UPDATE ... SET.
type UpdateStmt struct {
	Table *Table
	Set   []*SetItem
	Where *Where
}

// SetItem is a single assignment in an UPDATE.
type SetItem struct {
	Column *ColumnRef
	Value  Expression
}

// DeleteStmt represents DELETE FROM.
type DeleteStmt struct {
	Table *Table
	Where *Where
}

// UnionStmt combines two selects. The parser does not produce it yet.
type UnionStmt struct {
	Left  *SelectStmt
	Right *SelectStmt
	All   bool
}

// Column is an item of a SELECT, GROUP BY or ORDER BY list. Name holds
// "*", "col", "tbl.col" or "tbl.*".
type Column struct {
	Name  string
	Alias *Alias
}

// Table references a table, optionally schema qualified ("schema.tbl").
type Table struct {
	Name  string
	Alias *Alias
}

// Alias names a column or table.
type Alias struct {
	Name string
}

// Where holds a balanced filter condition.
type Where struct {
	Condition Expression
}

// Having holds a balanced group filter condition.
type Having struct {
	Condition Expression
}

// JoinType enumerates supported join kinds.
type JoinType int

const (
	JoinInner JoinType = iota
	JoinLeft
	JoinRight
	JoinFull
	JoinCross
)

func (t JoinType) String() string {
	switch t {
	case JoinInner:
		return "INNER"
	case JoinLeft:
		return "LEFT"
	case JoinRight:
		return "RIGHT"
	case JoinFull:
		return "FULL"
	case JoinCross:
		return "CROSS"
	default:
		return "UNKNOWN"
	}
}

// Join is one JOIN clause. Condition is nil for CROSS joins.
type Join struct {
	Type      JoinType
	Table     *Table
	Condition Expression
}

// GroupBy lists grouping columns.
type GroupBy struct {
	Columns []*Column
}

// SortDirection is the ordering of an ORDER BY item.
type SortDirection int

const (
	Asc SortDirection = iota
	Desc
)

func (d SortDirection) String() string {
	if d == Desc {
		return "DESC"
	}
	return "ASC"
}

// OrderBy lists ordering terms in source order.
type OrderBy struct {
	Items []*OrderByItem
}

// OrderByItem is a single ORDER BY term.
type OrderByItem struct {
	Column    *Column
	Direction SortDirection
}

// Limit captures LIMIT/OFFSET information. Offset is nil when absent.
type Limit struct {
	Count  int
	Offset *int
}

// Grouped is a parenthesised expression.
type Grouped struct {
	Inner Expression
}

// BinaryExpr applies Op to two operands. Op is the operator text as it
// appears in the precedence table ("=", "AND", "LIKE", ...).
type BinaryExpr struct {
	Left  Expression
	Op    string
	Right Expression
}

// ColumnRef references a column, optionally qualified by a table or alias.
type ColumnRef struct {
	Name  string
	Table string
}

// LiteralKind identifies literal types.
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralString
)

// Literal captures a constant. Value keeps the source text; Number is set
// for numeric literals.
type Literal struct {
	Kind   LiteralKind
	Value  string
	Number decimal.Decimal
}

// NewNumber builds a numeric literal from its source text.
func NewNumber(text string) (*Literal, error) {
	d, err := decimal.NewFromString(text)
	if err != nil {
		return nil, err
	}
	return &Literal{Kind: LiteralNumber, Value: text, Number: d}, nil
}

// NewString builds a string literal.
func NewString(value string) *Literal {
	return &Literal{Kind: LiteralString, Value: value}
}

// FunctionCall is a function application. No grammar rule produces it yet.
type FunctionCall struct {
	Name string
	Args []Expression
}

// Subquery wraps a nested SELECT. No grammar rule produces it yet.
type Subquery struct {
	Select *SelectStmt
}

func (*SelectStmt) node()   {}
func (*InsertStmt) node()   {}
func (*UpdateStmt) node()   {}
func (*SetItem) node()      {}
func (*DeleteStmt) node()   {}
func (*UnionStmt) node()    {}
func (*Column) node()       {}
func (*Table) node()        {}
func (*Alias) node()        {}
func (*Where) node()        {}
func (*Having) node()       {}
func (*Join) node()         {}
func (*GroupBy) node()      {}
func (*OrderBy) node()      {}
func (*OrderByItem) node()  {}
func (*Limit) node()        {}
func (*Grouped) node()      {}
func (*BinaryExpr) node()   {}
func (*ColumnRef) node()    {}
func (*Literal) node()      {}
func (*FunctionCall) node() {}
func (*Subquery) node()     {}

func (*SelectStmt) stmt() {}
func (*InsertStmt) stmt() {}
func (*UpdateStmt) stmt() {}
func (*DeleteStmt) stmt() {}
func (*UnionStmt) stmt()  {}

func (*Grouped) expr()      {}
func (*BinaryExpr) expr()   {}
func (*ColumnRef) expr()    {}
func (*Literal) expr()      {}
func (*FunctionCall) expr() {}
func (*Subquery) expr()     {}
