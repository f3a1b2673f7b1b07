package parser

import (
	"github.com/example/sqltree/internal/sql/ast"
	"github.com/example/sqltree/internal/sql/lexer"
)

func (p *Parser) parseUpdate() (*ast.UpdateStmt, error) {
	if _, err := p.consume(lexer.Keyword, "UPDATE"); err != nil {
		return nil, err
	}
	table, err := p.parseTable()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Keyword, "SET"); err != nil {
		return nil, err
	}
	stmt := &ast.UpdateStmt{Table: table}
	for {
		col, err := p.parseColumnRef()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.Operator, "="); err != nil {
			return nil, err
		}
		value, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		stmt.Set = append(stmt.Set, &ast.SetItem{Column: col, Value: value})
		if !p.match(lexer.Punctuation, ",") {
			break
		}
		p.advance()
	}
	if stmt.Where, err = p.parseWhere(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseDelete() (*ast.DeleteStmt, error) {
	if _, err := p.consume(lexer.Keyword, "DELETE"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Keyword, "FROM"); err != nil {
		return nil, err
	}
	table, err := p.parseTable()
	if err != nil {
		return nil, err
	}
	stmt := &ast.DeleteStmt{Table: table}
	if stmt.Where, err = p.parseWhere(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseInsert() (*ast.InsertStmt, error) {
	if _, err := p.consume(lexer.Keyword, "INSERT"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Keyword, "INTO"); err != nil {
		return nil, err
	}
	table, err := p.parseTable()
	if err != nil {
		return nil, err
	}
	stmt := &ast.InsertStmt{Table: table}
	if p.match(lexer.Punctuation, "(") {
		if stmt.Columns, err = p.parseIdentifierList(); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.Keyword, "VALUES"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Punctuation, "("); err != nil {
		return nil, err
	}
	for {
		value, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		stmt.Values = append(stmt.Values, value)
		if !p.match(lexer.Punctuation, ",") {
			break
		}
		p.advance()
	}
	if _, err := p.consume(lexer.Punctuation, ")"); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseIdentifierList() ([]string, error) {
	if _, err := p.consume(lexer.Punctuation, "("); err != nil {
		return nil, err
	}
	var names []string
	for {
		tok, err := p.consume(lexer.Identifier)
		if err != nil {
			return nil, err
		}
		names = append(names, tok.Lexeme)
		if !p.match(lexer.Punctuation, ",") {
			break
		}
		p.advance()
	}
	if _, err := p.consume(lexer.Punctuation, ")"); err != nil {
		return nil, err
	}
	return names, nil
}
