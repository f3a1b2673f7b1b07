package parser

import (
	"strconv"
	"strings"

	"github.com/example/sqltree/internal/sql/ast"
	"github.com/example/sqltree/internal/sql/expr"
	"github.com/example/sqltree/internal/sql/lexer"
)

var joinTypes = map[string]ast.JoinType{
	"JOIN":             ast.JoinInner,
	"INNER JOIN":       ast.JoinInner,
	"LEFT JOIN":        ast.JoinLeft,
	"LEFT OUTER JOIN":  ast.JoinLeft,
	"RIGHT JOIN":       ast.JoinRight,
	"RIGHT OUTER JOIN": ast.JoinRight,
	"FULL JOIN":        ast.JoinFull,
	"FULL OUTER JOIN":  ast.JoinFull,
	"CROSS JOIN":       ast.JoinCross,
}

func (p *Parser) parseSelect() (*ast.SelectStmt, error) {
	if _, err := p.consume(lexer.Keyword, "SELECT"); err != nil {
		return nil, err
	}
	columns, err := p.parseColumns()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Keyword, "FROM"); err != nil {
		return nil, err
	}
	from, err := p.parseTable()
	if err != nil {
		return nil, err
	}
	joins, err := p.parseJoins()
	if err != nil {
		return nil, err
	}
	// GroupBy and Having stay nil here; those clauses are only reachable
	// through ParseGroupBy and ParseHaving.
	stmt := &ast.SelectStmt{Columns: columns, From: from, Joins: joins}

	if stmt.Where, err = p.parseWhere(); err != nil {
		return nil, err
	}
	if p.match(lexer.Keyword, "ORDER") {
		if stmt.OrderBy, err = p.parseOrderBy(); err != nil {
			return nil, err
		}
	}
	if p.match(lexer.Keyword, "LIMIT") {
		if stmt.Limit, err = p.parseLimit(); err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *Parser) parseColumns() ([]*ast.Column, error) {
	var columns []*ast.Column
	for {
		col, err := p.parseColumn()
		if err != nil {
			return nil, err
		}
		columns = append(columns, col)
		if !p.match(lexer.Punctuation, ",") {
			return columns, nil
		}
		p.advance()
	}
}

// parseColumn reads "*", "name", "tbl.name" or "tbl.*". Aliases are only
// accepted on the non-star forms.
func (p *Parser) parseColumn() (*ast.Column, error) {
	if p.match(lexer.Operator, "*") {
		p.advance()
		return &ast.Column{Name: "*"}, nil
	}
	if !p.match(lexer.Identifier) {
		return nil, p.unexpected("column name or *")
	}
	name := p.current().Lexeme
	p.advance()
	if p.match(lexer.Punctuation, ".") {
		p.advance()
		if p.match(lexer.Operator, "*") {
			p.advance()
			return &ast.Column{Name: name + ".*"}, nil
		}
		if !p.match(lexer.Identifier) {
			return nil, p.unexpected("column name or * after " + name + ".")
		}
		name += "." + p.current().Lexeme
		p.advance()
	}
	col := &ast.Column{Name: name}
	if p.match(lexer.Keyword, "AS") {
		p.advance()
		alias, err := p.consume(lexer.Identifier)
		if err != nil {
			return nil, err
		}
		col.Alias = &ast.Alias{Name: alias.Lexeme}
	}
	return col, nil
}

// parseTable reads "name", "schema.name" and an optional bare alias.
func (p *Parser) parseTable() (*ast.Table, error) {
	tok, err := p.consume(lexer.Identifier)
	if err != nil {
		return nil, err
	}
	table := &ast.Table{Name: tok.Lexeme}
	if p.match(lexer.Punctuation, ".") && p.peek(1).Kind == lexer.Identifier {
		p.advance()
		table.Name += "." + p.current().Lexeme
		p.advance()
	}
	if p.match(lexer.Identifier) {
		table.Alias = &ast.Alias{Name: p.current().Lexeme}
		p.advance()
	}
	return table, nil
}

func (p *Parser) parseJoins() ([]*ast.Join, error) {
	var joins []*ast.Join
	for p.match(lexer.Keyword) {
		typ, ok := joinTypes[p.current().Lexeme]
		if !ok {
			break
		}
		p.advance()
		table, err := p.parseTable()
		if err != nil {
			return nil, err
		}
		join := &ast.Join{Type: typ, Table: table}
		if typ == ast.JoinCross {
			if p.match(lexer.Keyword, "ON") {
				return nil, &SyntaxError{
					Code:     CodeUnexpectedToken,
					Expected: "join, WHERE or end of statement",
					Found:    p.current(),
					Detail:   "CROSS JOIN takes no ON condition",
				}
			}
			joins = append(joins, join)
			continue
		}
		if _, err := p.consume(lexer.Keyword, "ON"); err != nil {
			return nil, err
		}
		cond, err := p.parseCondition(expr.ContextJoin)
		if err != nil {
			return nil, err
		}
		join.Condition = p.balance(cond, expr.ContextJoin)
		joins = append(joins, join)
	}
	return joins, nil
}

func (p *Parser) parseWhere() (*ast.Where, error) {
	if !p.match(lexer.Keyword, "WHERE") {
		return nil, nil
	}
	p.advance()
	cond, err := p.parseCondition(expr.ContextWhere)
	if err != nil {
		return nil, err
	}
	return &ast.Where{Condition: p.balance(cond, expr.ContextWhere)}, nil
}

func (p *Parser) parseGroupBy() (*ast.GroupBy, error) {
	if _, err := p.consume(lexer.Keyword, "GROUP"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Keyword, "BY"); err != nil {
		return nil, err
	}
	columns, err := p.parseColumns()
	if err != nil {
		return nil, err
	}
	return &ast.GroupBy{Columns: columns}, nil
}

func (p *Parser) parseHaving() (*ast.Having, error) {
	if _, err := p.consume(lexer.Keyword, "HAVING"); err != nil {
		return nil, err
	}
	cond, err := p.parseCondition(expr.ContextWhere)
	if err != nil {
		return nil, err
	}
	return &ast.Having{Condition: p.balance(cond, expr.ContextWhere)}, nil
}

func (p *Parser) parseOrderBy() (*ast.OrderBy, error) {
	if _, err := p.consume(lexer.Keyword, "ORDER"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Keyword, "BY"); err != nil {
		return nil, err
	}
	clause := &ast.OrderBy{}
	for {
		col, err := p.parseColumn()
		if err != nil {
			return nil, err
		}
		item := &ast.OrderByItem{Column: col, Direction: ast.Asc}
		if dir, ok := p.direction(); ok {
			item.Direction = dir
			p.advance()
		}
		clause.Items = append(clause.Items, item)
		if !p.match(lexer.Punctuation, ",") {
			return clause, nil
		}
		p.advance()
	}
}

// direction recognises ASC and DESC in any case. Neither is reserved, so
// they normally arrive as identifiers.
func (p *Parser) direction() (ast.SortDirection, bool) {
	tok := p.current()
	if tok.Kind != lexer.Identifier && tok.Kind != lexer.Keyword {
		return ast.Asc, false
	}
	switch strings.ToUpper(tok.Lexeme) {
	case "ASC":
		return ast.Asc, true
	case "DESC":
		return ast.Desc, true
	}
	return ast.Asc, false
}

func (p *Parser) parseLimit() (*ast.Limit, error) {
	if _, err := p.consume(lexer.Keyword, "LIMIT"); err != nil {
		return nil, err
	}
	count, err := p.parseCount()
	if err != nil {
		return nil, err
	}
	limit := &ast.Limit{Count: count}
	if p.match(lexer.Keyword, "OFFSET") {
		p.advance()
		offset, err := p.parseCount()
		if err != nil {
			return nil, err
		}
		limit.Offset = &offset
	}
	return limit, nil
}

func (p *Parser) parseCount() (int, error) {
	tok := p.current()
	if tok.Kind != lexer.Number {
		return 0, p.unexpected("integer")
	}
	n, err := strconv.Atoi(tok.Lexeme)
	if err != nil || n < 0 {
		return 0, &SyntaxError{Code: CodeInvalidLiteral, Expected: "non-negative integer", Found: tok}
	}
	p.advance()
	return n, nil
}
