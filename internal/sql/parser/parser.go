// Package parser turns lexer tokens into ast statements.
//
// The grammar is parsed by recursive descent without operator precedence:
// AND/OR chains come out left-deep and are handed to an expr.Balancer
// before they are attached to WHERE, HAVING or JOIN nodes.
package parser

import (
	"fmt"
	"strings"

	"github.com/example/sqltree/internal/sql/ast"
	"github.com/example/sqltree/internal/sql/expr"
	"github.com/example/sqltree/internal/sql/lexer"
)

// Parse tokenizes and parses a single SQL statement.
func Parse(input string) (ast.Statement, error) {
	tokens, err := lexer.Tokenize(input)
	if err != nil {
		return nil, err
	}
	return New(tokens).Parse()
}

// Option configures a Parser.
type Option func(*Parser)

// WithTable replaces the precedence table used to balance conditions that
// appear in ctx.
func WithTable(ctx expr.Context, t expr.Table) Option {
	return func(p *Parser) {
		p.balancers[ctx] = expr.NewWithTable(t)
	}
}

// Parser implements a hand-rolled recursive descent parser over a token
// slice. A Parser is single use.
type Parser struct {
	tokens    []lexer.Token
	pos       int
	used      bool
	balancers map[expr.Context]*expr.Balancer
}

// New returns a parser over tokens. The slice should end with an EOF token;
// one is synthesised if it does not.
func New(tokens []lexer.Token, opts ...Option) *Parser {
	p := &Parser{
		tokens: tokens,
		balancers: map[expr.Context]*expr.Balancer{
			expr.ContextWhere: expr.New(expr.ContextWhere),
			expr.ContextJoin:  expr.New(expr.ContextJoin),
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FromLexer drains l and returns a parser over its tokens.
func FromLexer(l *lexer.Lexer, opts ...Option) (*Parser, error) {
	tokens, err := l.All()
	if err != nil {
		return nil, err
	}
	return New(tokens, opts...), nil
}

// Parse parses one SELECT, UPDATE or DELETE statement, optionally followed
// by a semicolon, and requires the input to end there.
func (p *Parser) Parse() (ast.Statement, error) {
	if err := p.begin(); err != nil {
		return nil, err
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// ParseInsert parses an INSERT statement. INSERT is not reachable from
// Parse.
func (p *Parser) ParseInsert() (*ast.InsertStmt, error) {
	if err := p.begin(); err != nil {
		return nil, err
	}
	stmt, err := p.parseInsert()
	if err != nil {
		return nil, err
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return stmt, nil
}

// ParseGroupBy parses a standalone GROUP BY clause.
func (p *Parser) ParseGroupBy() (*ast.GroupBy, error) {
	if err := p.begin(); err != nil {
		return nil, err
	}
	if !p.match(lexer.Keyword, "GROUP") {
		return nil, p.missing("GROUP")
	}
	clause, err := p.parseGroupBy()
	if err != nil {
		return nil, err
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return clause, nil
}

// ParseHaving parses a standalone HAVING clause.
func (p *Parser) ParseHaving() (*ast.Having, error) {
	if err := p.begin(); err != nil {
		return nil, err
	}
	if !p.match(lexer.Keyword, "HAVING") {
		return nil, p.missing("HAVING")
	}
	clause, err := p.parseHaving()
	if err != nil {
		return nil, err
	}
	if err := p.finish(); err != nil {
		return nil, err
	}
	return clause, nil
}

func (p *Parser) begin() error {
	if p.used {
		return ErrConsumed
	}
	p.used = true
	return nil
}

func (p *Parser) finish() error {
	if p.match(lexer.Punctuation, ";") {
		p.advance()
	}
	if !p.match(lexer.EOF) {
		return p.unexpected("end of input")
	}
	return nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.match(lexer.Keyword, "SELECT"):
		return p.parseSelect()
	case p.match(lexer.Keyword, "UPDATE"):
		return p.parseUpdate()
	case p.match(lexer.Keyword, "DELETE"):
		return p.parseDelete()
	default:
		return nil, p.unexpected("SELECT, UPDATE or DELETE")
	}
}

func (p *Parser) balance(e ast.Expression, ctx expr.Context) ast.Expression {
	return p.balancers[ctx].Balance(e)
}

// comparison reports whether op is an operator the table for ctx can rank.
func (p *Parser) comparison(op lexer.Token, ctx expr.Context) bool {
	return op.Kind == lexer.Operator && p.balancers[ctx].Table().Known(op.Lexeme)
}

func (p *Parser) current() lexer.Token {
	return p.peek(0)
}

func (p *Parser) peek(n int) lexer.Token {
	if i := p.pos + n; i >= 0 && i < len(p.tokens) {
		return p.tokens[i]
	}
	return p.eof()
}

func (p *Parser) eof() lexer.Token {
	if len(p.tokens) == 0 {
		return lexer.Token{Kind: lexer.EOF}
	}
	last := p.tokens[len(p.tokens)-1]
	if last.Kind == lexer.EOF {
		return last
	}
	return lexer.Token{Kind: lexer.EOF, Start: last.End, End: last.End}
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) match(kind lexer.Kind, lexemes ...string) bool {
	return p.current().Is(kind, lexemes...)
}

// consume returns the current token and advances past it when it matches,
// and a syntax error otherwise.
func (p *Parser) consume(kind lexer.Kind, lexemes ...string) (lexer.Token, error) {
	tok := p.current()
	if !tok.Is(kind, lexemes...) {
		if kind == lexer.Keyword && len(lexemes) > 0 {
			return tok, p.missing(strings.Join(lexemes, " or "))
		}
		if len(lexemes) > 0 {
			return tok, p.unexpected(fmt.Sprintf("%q", strings.Join(lexemes, `" or "`)))
		}
		return tok, p.unexpected(strings.ToLower(kind.String()))
	}
	p.advance()
	return tok, nil
}

func (p *Parser) unexpected(expected string) error {
	code := CodeUnexpectedToken
	if p.current().Kind == lexer.EOF {
		code = CodeUnexpectedEnd
	}
	return &SyntaxError{Code: code, Expected: expected, Found: p.current()}
}

func (p *Parser) missing(keyword string) error {
	return &SyntaxError{Code: CodeMissingKeyword, Expected: keyword, Found: p.current()}
}
