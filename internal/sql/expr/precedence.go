package expr

import (
	"math"
	"strings"
)

// Context is the syntactic position of an expression. It decides how
// tightly "=" binds.
type Context int

const (
	// ContextDefault treats "=" as the loosest operator (assignment-like).
	ContextDefault Context = iota
	// ContextWhere treats "=" as a comparison.
	ContextWhere
	// ContextJoin treats "=" as a comparison.
	ContextJoin
)

func (c Context) String() string {
	switch c {
	case ContextWhere:
		return "where"
	case ContextJoin:
		return "join"
	default:
		return "default"
	}
}

// Rank bounds. Higher rank binds looser and sits closer to the root.
const (
	// RankUnknown is assigned to operators missing from a table.
	RankUnknown = 0
	// RankLeaf is assigned to every non-binary expression.
	RankLeaf = math.MaxInt
)

var baseRanks = map[string]int{
	"~":       1,
	"*":       2,
	"/":       2,
	"%":       2,
	"+":       3,
	"-":       3,
	"&":       3,
	"^":       3,
	"|":       3,
	">":       4,
	"<":       4,
	">=":      4,
	"<=":      4,
	"<>":      4,
	"!=":      4,
	"!>":      4,
	"!<":      4,
	"NOT":     5,
	"AND":     6,
	"ALL":     7,
	"ANY":     7,
	"BETWEEN": 7,
	"IN":      7,
	"LIKE":    7,
	"OR":      7,
	"SOME":    7,
}

// Table maps operator text to its precedence rank. The zero value is an
// empty table in which every operator ranks RankUnknown.
type Table struct {
	ranks map[string]int
}

// DefaultTable returns the standard ranks for ctx.
func DefaultTable(ctx Context) Table {
	ranks := make(map[string]int, len(baseRanks)+1)
	for op, r := range baseRanks {
		ranks[op] = r
	}
	switch ctx {
	case ContextWhere, ContextJoin:
		ranks["="] = 4
	default:
		ranks["="] = 8
	}
	return Table{ranks: ranks}
}

// With returns a copy of t with op assigned rank.
func (t Table) With(op string, rank int) Table {
	ranks := make(map[string]int, len(t.ranks)+1)
	for k, v := range t.ranks {
		ranks[k] = v
	}
	ranks[strings.ToUpper(op)] = rank
	return Table{ranks: ranks}
}

// Rank returns the rank of op, matching operator words case-insensitively.
func (t Table) Rank(op string) int {
	if r, ok := t.ranks[op]; ok {
		return r
	}
	if r, ok := t.ranks[strings.ToUpper(op)]; ok {
		return r
	}
	return RankUnknown
}

// Known reports whether op has an entry in t.
func (t Table) Known(op string) bool {
	if _, ok := t.ranks[op]; ok {
		return true
	}
	_, ok := t.ranks[strings.ToUpper(op)]
	return ok
}
