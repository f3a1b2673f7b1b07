package parser

import (
	"github.com/example/sqltree/internal/sql/ast"
	"github.com/example/sqltree/internal/sql/expr"
	"github.com/example/sqltree/internal/sql/lexer"
)

// parseCondition reads term (AND|OR term)* into a left-deep chain. The
// caller balances the result in the same context.
func (p *Parser) parseCondition(ctx expr.Context) (ast.Expression, error) {
	left, err := p.parseConditionTerm(ctx)
	if err != nil {
		return nil, err
	}
	for p.match(lexer.Keyword, "AND", "OR") {
		op := p.current().Lexeme
		p.advance()
		right, err := p.parseConditionTerm(ctx)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// parseConditionTerm reads a parenthesised condition or a single
// comparison "colref op (literal | colref)".
func (p *Parser) parseConditionTerm(ctx expr.Context) (ast.Expression, error) {
	if p.match(lexer.Punctuation, "(") {
		return p.parseGrouped(ctx)
	}
	left, err := p.parseColumnRef()
	if err != nil {
		return nil, err
	}
	op := p.current()
	if !p.comparison(op, ctx) {
		return nil, p.unexpected("comparison operator")
	}
	p.advance()
	var right ast.Expression
	if isLiteral(p.current()) {
		right, err = p.parseLiteral()
	} else {
		right, err = p.parseColumnRef()
	}
	if err != nil {
		return nil, err
	}
	return &ast.BinaryExpr{Left: left, Op: op.Lexeme, Right: right}, nil
}

func (p *Parser) parseGrouped(ctx expr.Context) (*ast.Grouped, error) {
	if _, err := p.consume(lexer.Punctuation, "("); err != nil {
		return nil, err
	}
	inner, err := p.parseCondition(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Punctuation, ")"); err != nil {
		return nil, err
	}
	return &ast.Grouped{Inner: inner}, nil
}

// parsePrimary reads a value: a grouped condition, a literal or a column
// reference.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch {
	case p.match(lexer.Punctuation, "("):
		return p.parseGrouped(expr.ContextWhere)
	case isLiteral(p.current()):
		return p.parseLiteral()
	default:
		return p.parseColumnRef()
	}
}

func (p *Parser) parseColumnRef() (*ast.ColumnRef, error) {
	tok, err := p.consume(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	if !p.match(lexer.Punctuation, ".") {
		return &ast.ColumnRef{Name: tok.Lexeme}, nil
	}
	p.advance()
	col, err := p.consume(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	return &ast.ColumnRef{Name: col.Lexeme, Table: tok.Lexeme}, nil
}

func (p *Parser) parseLiteral() (*ast.Literal, error) {
	tok := p.current()
	switch tok.Kind {
	case lexer.String:
		p.advance()
		return ast.NewString(tok.Lexeme), nil
	case lexer.Number:
		lit, err := ast.NewNumber(tok.Lexeme)
		if err != nil {
			return nil, &SyntaxError{Code: CodeInvalidLiteral, Expected: "number", Found: tok, Detail: err.Error()}
		}
		p.advance()
		return lit, nil
	default:
		return nil, p.unexpected("literal")
	}
}

func isLiteral(tok lexer.Token) bool {
	return tok.Kind == lexer.String || tok.Kind == lexer.Number
}
