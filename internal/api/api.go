// Package api is the entry point for tools that need tokens, syntax trees
// or rendered explanations of a SQL statement.
package api

import (
	"fmt"

	"github.com/segmentio/encoding/json"

	"github.com/example/sqltree/internal/sql/ast"
	"github.com/example/sqltree/internal/sql/lexer"
	"github.com/example/sqltree/internal/sql/parser"
	"github.com/example/sqltree/internal/sql/printer"
)

// Format selects the rendering produced by Explain.
type Format int

const (
	// FormatTree renders the indented outline.
	FormatTree Format = iota
	// FormatJSON renders an Explanation document.
	FormatJSON
	// FormatSQL renders the normalised statement text.
	FormatSQL
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "tree", "":
		return FormatTree, nil
	case "json":
		return FormatJSON, nil
	case "sql":
		return FormatSQL, nil
	default:
		return 0, fmt.Errorf("api: unknown format %q", name)
	}
}

// ExplanationVersion is the schema version of Explanation documents.
const ExplanationVersion = 1

// Explanation bundles the parsed forms of a statement for tooling.
type Explanation struct {
	Version int           `json:"version"`
	SQL     string        `json:"sql"`
	Tree    *printer.Node `json:"tree"`
	Text    string        `json:"text"`
}

// Tokenize returns every token of sql up to and including EOF.
func Tokenize(sql string) ([]lexer.Token, error) {
	return lexer.Tokenize(sql)
}

// Parse parses a single SELECT, UPDATE or DELETE statement.
func Parse(sql string) (ast.Statement, error) {
	return parser.Parse(sql)
}

// ParseInsert parses a single INSERT statement.
func ParseInsert(sql string) (*ast.InsertStmt, error) {
	tokens, err := lexer.Tokenize(sql)
	if err != nil {
		return nil, err
	}
	return parser.New(tokens).ParseInsert()
}

// Describe parses sql and returns its explanation.
func Describe(sql string) (*Explanation, error) {
	stmt, err := Parse(sql)
	if err != nil {
		return nil, err
	}
	return DescribeNode(stmt), nil
}

// DescribeNode builds the explanation of an already parsed node.
func DescribeNode(node ast.Node) *Explanation {
	return &Explanation{
		Version: ExplanationVersion,
		SQL:     ast.Format(node),
		Tree:    printer.Build(node),
		Text:    printer.Tree(node),
	}
}

// Explain parses sql and renders it in the requested format.
func Explain(sql string, format Format) (string, error) {
	stmt, err := Parse(sql)
	if err != nil {
		return "", err
	}
	return Render(stmt, format)
}

// Render renders a parsed node in the requested format.
func Render(node ast.Node, format Format) (string, error) {
	switch format {
	case FormatTree:
		return printer.Tree(node), nil
	case FormatSQL:
		return ast.Format(node), nil
	case FormatJSON:
		data, err := json.MarshalIndent(DescribeNode(node), "", "  ")
		if err != nil {
			return "", fmt.Errorf("api: encode explanation: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("api: unknown format %d", format)
	}
}
