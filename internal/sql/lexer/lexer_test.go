package lexer_test

import (
	"errors"
	"testing"

	"github.com/example/sqltree/internal/sql/lexer"
)

func TestTokenizeSimpleSelect(t *testing.T) {
	tokens, err := lexer.Tokenize("SELECT * FROM table")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	want := []struct {
		kind   lexer.Kind
		lexeme string
	}{
		{lexer.Keyword, "SELECT"},
		{lexer.Operator, "*"},
		{lexer.Keyword, "FROM"},
		{lexer.Identifier, "table"},
		{lexer.EOF, ""},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Lexeme != w.lexeme {
			t.Fatalf("token %d: expected %s(%s), got %v", i, w.kind, w.lexeme, tokens[i])
		}
	}
}

func TestEOFPositionMatchesInputLength(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"SELECT * FROM t",
		"SELECT a, b FROM t WHERE a = 'x' AND b >= 2.5;",
		"DELETE FROM schema.tbl t WHERE t.id = 0   ",
		"SELECT * FROM a LEFT OUTER JOIN b ON a.id = b.id",
	}
	for _, input := range inputs {
		tokens, err := lexer.Tokenize(input)
		if err != nil {
			t.Fatalf("tokenize %q: %v", input, err)
		}
		eofs := 0
		for _, tok := range tokens {
			if tok.Kind == lexer.EOF {
				eofs++
			}
		}
		if eofs != 1 {
			t.Fatalf("%q: expected exactly one EOF, got %d", input, eofs)
		}
		last := tokens[len(tokens)-1]
		if last.Kind != lexer.EOF {
			t.Fatalf("%q: expected trailing EOF, got %v", input, last)
		}
		if last.Start != len([]rune(input)) || last.Len() != 0 {
			t.Fatalf("%q: expected EOF at %d with zero length, got %v", input, len(input), last)
		}
	}
}

func TestKeywordsUppercasedIdentifiersPreserved(t *testing.T) {
	tokens, err := lexer.Tokenize("select Name from People where name like 'A%'")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if tokens[0].Lexeme != "SELECT" || tokens[2].Lexeme != "FROM" || tokens[4].Lexeme != "WHERE" {
		t.Fatalf("expected uppercase keywords, got %v", tokens)
	}
	if tokens[1].Lexeme != "Name" || tokens[3].Lexeme != "People" {
		t.Fatalf("expected identifiers to keep their case, got %v", tokens)
	}
	if tokens[6].Kind != lexer.Operator || tokens[6].Lexeme != "LIKE" {
		t.Fatalf("expected LIKE operator, got %v", tokens[6])
	}
	if tokens[7].Kind != lexer.String || tokens[7].Lexeme != "A%" {
		t.Fatalf("expected string literal A%%, got %v", tokens[7])
	}
}

func TestCompoundKeywords(t *testing.T) {
	cases := []struct {
		input string
		want  string
		start int
		end   int
	}{
		{"JOIN", "JOIN", 0, 4},
		{"inner join", "INNER JOIN", 0, 10},
		{"Left Join", "LEFT JOIN", 0, 9},
		{"LEFT OUTER JOIN", "LEFT OUTER JOIN", 0, 15},
		{"right  outer\tjoin", "RIGHT OUTER JOIN", 0, 17},
		{"FULL JOIN", "FULL JOIN", 0, 9},
		{"CROSS   JOIN", "CROSS JOIN", 0, 12},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			tokens, err := lexer.Tokenize(tc.input)
			if err != nil {
				t.Fatalf("tokenize: %v", err)
			}
			if len(tokens) != 2 {
				t.Fatalf("expected one keyword and EOF, got %v", tokens)
			}
			tok := tokens[0]
			if tok.Kind != lexer.Keyword || tok.Lexeme != tc.want {
				t.Fatalf("expected keyword %q, got %v", tc.want, tok)
			}
			if tok.Start != tc.start || tok.End != tc.end {
				t.Fatalf("expected span %d-%d, got %d-%d", tc.start, tc.end, tok.Start, tok.End)
			}
		})
	}
}

func TestCompoundLookaheadRollsBack(t *testing.T) {
	tokens, err := lexer.Tokenize("LEFT OUTER x ORDER BY y")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	want := []string{"LEFT", "OUTER", "x", "ORDER", "BY", "y", ""}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), tokens)
	}
	for i, lex := range want {
		if tokens[i].Lexeme != lex {
			t.Fatalf("token %d: expected %q, got %v", i, lex, tokens[i])
		}
	}
	if tokens[1].Start != 5 || tokens[1].End != 10 {
		t.Fatalf("expected OUTER at 5-10 after rollback, got %v", tokens[1])
	}
	if tokens[2].Kind != lexer.Identifier {
		t.Fatalf("expected identifier after rollback, got %v", tokens[2])
	}
}

func TestJoinStatementTokens(t *testing.T) {
	tokens, err := lexer.Tokenize("SELECT * FROM table1 JOIN table2 ON id1 = id2 AND id3 = id4 OR id5 = id6")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(tokens) != 19 {
		t.Fatalf("expected 19 tokens, got %d", len(tokens))
	}
	if !tokens[10].Is(lexer.Keyword, "AND") || !tokens[14].Is(lexer.Keyword, "OR") {
		t.Fatalf("expected AND/OR keywords, got %v and %v", tokens[10], tokens[14])
	}
	if !tokens[8].Is(lexer.Operator, "=") {
		t.Fatalf("expected = operator, got %v", tokens[8])
	}
}

func TestStringLiterals(t *testing.T) {
	tokens, err := lexer.Tokenize(`'it\'s' "say \"hi\"" 'a\\b'`)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	want := []string{"it's", `say "hi"`, `a\b`}
	for i, w := range want {
		if tokens[i].Kind != lexer.String || tokens[i].Lexeme != w {
			t.Fatalf("token %d: expected string %q, got %v", i, w, tokens[i])
		}
	}
	if tokens[0].Start != 0 || tokens[0].End != 7 {
		t.Fatalf("expected string span to include quotes, got %v", tokens[0])
	}
}

func TestNumbersAndPunctuation(t *testing.T) {
	tokens, err := lexer.Tokenize("t.id >= 3.14, (42);")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	want := []struct {
		kind   lexer.Kind
		lexeme string
	}{
		{lexer.Identifier, "t"},
		{lexer.Punctuation, "."},
		{lexer.Identifier, "id"},
		{lexer.Operator, ">="},
		{lexer.Number, "3.14"},
		{lexer.Punctuation, ","},
		{lexer.Punctuation, "("},
		{lexer.Number, "42"},
		{lexer.Punctuation, ")"},
		{lexer.Punctuation, ";"},
		{lexer.EOF, ""},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), tokens)
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Lexeme != w.lexeme {
			t.Fatalf("token %d: expected %s(%s), got %v", i, w.kind, w.lexeme, tokens[i])
		}
	}
}

func TestOperators(t *testing.T) {
	for _, op := range []string{"=", "<", ">", "<=", ">=", "<>", "!=", "+", "-", "*", "/", "%", "||"} {
		tokens, err := lexer.Tokenize("a " + op + " 1")
		if err != nil {
			t.Fatalf("tokenize %s: %v", op, err)
		}
		if !tokens[1].Is(lexer.Operator, op) {
			t.Fatalf("expected operator %s, got %v", op, tokens[1])
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		input string
		want  error
		pos   int
	}{
		{"SELECT @", lexer.ErrInvalidCharacter, 7},
		{"1.2.3", lexer.ErrNumberFormat, 0},
		{"'abc", lexer.ErrUnterminatedString, 0},
		{`x = 'abc\`, lexer.ErrUnterminatedString, 4},
		{"a =b", lexer.ErrInvalidOperator, 2},
		{"a == b", lexer.ErrInvalidOperator, 2},
		{"a | b", lexer.ErrInvalidOperator, 2},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			tokens, err := lexer.Tokenize(tc.input)
			if err == nil {
				t.Fatalf("expected error, got tokens %v", tokens)
			}
			if tokens != nil {
				t.Fatalf("expected no partial token list, got %v", tokens)
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			var lexErr *lexer.Error
			if !errors.As(err, &lexErr) {
				t.Fatalf("expected *lexer.Error, got %T", err)
			}
			if lexErr.Pos != tc.pos {
				t.Fatalf("expected error at %d, got %d", tc.pos, lexErr.Pos)
			}
		})
	}
}

func TestLexerSingleUse(t *testing.T) {
	l := lexer.New("SELECT 1")
	tok, err := l.Next()
	if err != nil || tok.Lexeme != "SELECT" {
		t.Fatalf("unexpected first token %v (%v)", tok, err)
	}
	if _, err := l.All(); !errors.Is(err, lexer.ErrConsumed) {
		t.Fatalf("expected ErrConsumed, got %v", err)
	}
}

func TestNextAfterEOF(t *testing.T) {
	l := lexer.New("x")
	for i := 0; i < 2; i++ {
		if _, err := l.Next(); err != nil {
			t.Fatalf("next: %v", err)
		}
	}
	tok, err := l.Next()
	if err != nil || tok.Kind != lexer.EOF || tok.Start != 1 {
		t.Fatalf("expected repeated EOF at 1, got %v (%v)", tok, err)
	}
}

func TestLexerErrorIsSticky(t *testing.T) {
	l := lexer.New("# x")
	_, first := l.Next()
	_, second := l.Next()
	if first == nil || first != second {
		t.Fatalf("expected the same error twice, got %v and %v", first, second)
	}
}
