package printer_test

import (
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"

	"github.com/example/sqltree/internal/sql/ast"
	"github.com/example/sqltree/internal/sql/parser"
	"github.com/example/sqltree/internal/sql/printer"
)

func mustParse(t *testing.T, sql string) ast.Statement {
	t.Helper()
	stmt, err := parser.Parse(sql)
	if err != nil {
		t.Fatalf("parse %q: %v", sql, err)
	}
	return stmt
}

func TestTreeJoinWithAndOr(t *testing.T) {
	stmt := mustParse(t, "SELECT * FROM table1 JOIN table2 ON id1 = id1 OR id2 = id2 AND id3 = id3")
	want := strings.Join([]string{
		"SelectStmt",
		"  Column: *",
		"  Table: table1",
		"  Join: INNER",
		"    Table: table2",
		"    Binary: OR",
		"      Binary: =",
		"        ColumnRef: id1",
		"        ColumnRef: id1",
		"      Binary: AND",
		"        Binary: =",
		"          ColumnRef: id2",
		"          ColumnRef: id2",
		"        Binary: =",
		"          ColumnRef: id3",
		"          ColumnRef: id3",
	}, "\n") + "\n"
	if got := printer.Tree(stmt); got != want {
		t.Fatalf("tree mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeGroupedSitsBelowAnd(t *testing.T) {
	out := printer.Tree(mustParse(t, "SELECT * FROM table1 JOIN table2 ON (id1 = id1 OR id2 = id2) AND id3 = id3"))
	and := strings.Index(out, "Binary: AND")
	grouped := strings.Index(out, "Grouped")
	or := strings.Index(out, "Binary: OR")
	if and < 0 || grouped < 0 || or < 0 {
		t.Fatalf("missing expected lines:\n%s", out)
	}
	if !(and < grouped && grouped < or) {
		t.Fatalf("expected AND, then Grouped, then OR:\n%s", out)
	}
	if !strings.Contains(out, "\n      Grouped\n") {
		t.Fatalf("expected Grouped as a direct child of AND:\n%s", out)
	}
}

func TestTreeClauses(t *testing.T) {
	stmt := mustParse(t, "SELECT a AS x FROM schema.tbl t WHERE t.id = 'k' ORDER BY a DESC LIMIT 5 OFFSET 20")
	want := strings.Join([]string{
		"SelectStmt",
		"  Column: a",
		"    Alias: x",
		"  Table: schema.tbl",
		"    Alias: t",
		"  Where",
		"    Binary: =",
		"      ColumnRef: t.id",
		"      Literal: 'k'",
		"  OrderBy",
		"    OrderByItem: DESC",
		"      Column: a",
		"  Limit: 5 OFFSET 20",
	}, "\n") + "\n"
	if got := printer.Tree(stmt); got != want {
		t.Fatalf("tree mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestTreeDelete(t *testing.T) {
	want := "DeleteStmt\n  Table: schema.tbl\n    Alias: t\n  Where\n    Binary: =\n      ColumnRef: t.id\n      Literal: 0\n"
	if got := printer.Tree(mustParse(t, "DELETE FROM schema.tbl t WHERE t.id = 0")); got != want {
		t.Fatalf("tree mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestJSON(t *testing.T) {
	data, err := printer.JSON(mustParse(t, "SELECT * FROM t LEFT JOIN u ON t.id = u.tid WHERE t.n > 2.50 LIMIT 3"))
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	var root printer.Node
	if err := json.Unmarshal(data, &root); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if root.Node != "SelectStmt" || root.Props != nil {
		t.Fatalf("unexpected root %+v", root)
	}
	if len(root.Children) != 5 {
		t.Fatalf("expected column, table, join, where and limit children, got %d", len(root.Children))
	}
	join := root.Children[2]
	if join.Node != "Join" || join.Props["joinType"] != "LEFT" {
		t.Fatalf("unexpected join node %+v", join)
	}
	cond := join.Children[1]
	if cond.Node != "Binary" || cond.Props["op"] != "=" {
		t.Fatalf("unexpected join condition %+v", cond)
	}
	if ref := cond.Children[0]; ref.Props["table"] != "t" || ref.Props["column"] != "id" {
		t.Fatalf("unexpected column ref %+v", ref)
	}
	lit := root.Children[3].Children[0].Children[1]
	if lit.Node != "Literal" || lit.Props["type"] != "number" || lit.Props["value"] != "2.5" {
		t.Fatalf("unexpected literal %+v", lit)
	}
	limit := root.Children[4]
	if limit.Props["limit"] != float64(3) {
		t.Fatalf("unexpected limit props %+v", limit.Props)
	}
	if _, ok := limit.Props["offset"]; ok {
		t.Fatalf("expected no offset prop")
	}
}

func TestBuildMatchesTreeShape(t *testing.T) {
	stmt := mustParse(t, "UPDATE people SET name = 'Bob', age = 3 WHERE id = 7")
	var count func(n *printer.Node) int
	count = func(n *printer.Node) int {
		total := 1
		for _, c := range n.Children {
			total += count(c)
		}
		return total
	}
	lines := strings.Count(printer.Tree(stmt), "\n")
	if got := count(printer.Build(stmt)); got != lines {
		t.Fatalf("expected %d JSON nodes to match tree lines, got %d", lines, got)
	}
}
