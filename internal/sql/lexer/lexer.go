package lexer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var keywords = map[string]struct{}{
	"SELECT":   {},
	"FROM":     {},
	"WHERE":    {},
	"AND":      {},
	"OR":       {},
	"INSERT":   {},
	"UPDATE":   {},
	"DELETE":   {},
	"JOIN":     {},
	"ON":       {},
	"GROUP":    {},
	"BY":       {},
	"HAVING":   {},
	"ORDER":    {},
	"LIMIT":    {},
	"OFFSET":   {},
	"AS":       {},
	"INTO":     {},
	"VALUES":   {},
	"SET":      {},
	"LEFT":     {},
	"RIGHT":    {},
	"INNER":    {},
	"OUTER":    {},
	"FULL":     {},
	"CROSS":    {},
	"UNION":    {},
	"ALL":      {},
	"DISTINCT": {},
	"TOP":      {},
	"PERCENT":  {},
	"WITH":     {},
}

// compoundKeywords are emitted as a single Keyword token.
var compoundKeywords = []string{
	"INNER JOIN",
	"LEFT JOIN",
	"RIGHT JOIN",
	"FULL JOIN",
	"CROSS JOIN",
	"LEFT OUTER JOIN",
	"RIGHT OUTER JOIN",
	"FULL OUTER JOIN",
}

var operatorWords = map[string]struct{}{
	"LIKE":    {},
	"IN":      {},
	"BETWEEN": {},
	"IS":      {},
	"NOT":     {},
	"NULL":    {},
}

var operatorSymbols = map[string]struct{}{
	"=":  {},
	"<":  {},
	">":  {},
	"<=": {},
	">=": {},
	"<>": {},
	"!=": {},
	"!<": {},
	"!>": {},
	"+":  {},
	"-":  {},
	"*":  {},
	"/":  {},
	"%":  {},
	"||": {},
}

const operatorRunes = "=<>!+-*/%|"

// compoundState marks a space-joined word sequence as a complete compound
// keyword or as a proper prefix of one.
type compoundState int

const (
	compoundPrefix compoundState = iota + 1
	compoundFull
)

var compounds = buildCompounds(compoundKeywords)

func buildCompounds(list []string) map[string]compoundState {
	out := make(map[string]compoundState)
	for _, kw := range list {
		words := strings.Fields(kw)
		for i := 2; i < len(words); i++ {
			prefix := strings.Join(words[:i], " ")
			if _, ok := out[prefix]; !ok {
				out[prefix] = compoundPrefix
			}
		}
		out[kw] = compoundFull
	}
	return out
}

// Lexer performs tokenisation over the input SQL string. A Lexer is single
// use: once tokens have been pulled it cannot be drained again with All.
type Lexer struct {
	input   []rune
	pos     int
	emitted bool
	err     error
	upper   cases.Caser
}

// state is the part of the lexer restored when keyword lookahead fails.
type state struct {
	pos int
}

// New initialises a lexer for the provided SQL source.
func New(input string) *Lexer {
	return &Lexer{input: []rune(input), upper: cases.Upper(language.Und)}
}

// Tokenize runs a fresh lexer over input and returns every token up to and
// including EOF.
func Tokenize(input string) ([]Token, error) {
	return New(input).All()
}

// Next returns the next token from the stream. At the end of input it keeps
// returning EOF. After a failure every call returns the same error.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return Token{}, l.err
	}
	tok, err := l.scan()
	if err != nil {
		l.err = err
		return Token{}, err
	}
	l.emitted = true
	return tok, nil
}

// All drains the lexer, returning the tokens up to and including EOF.
func (l *Lexer) All() ([]Token, error) {
	if l.emitted || l.err != nil {
		return nil, newError(ErrConsumed, l.pos, "")
	}
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) scan() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return Token{Kind: EOF, Start: l.pos, End: l.pos}, nil
	}

	ch := l.input[l.pos]
	switch {
	case isWordStart(ch):
		return l.scanWord(), nil
	case unicode.IsDigit(ch):
		return l.scanNumber()
	case ch == '"' || ch == '\'':
		return l.scanString(ch)
	case ch == '=' || ch == '<' || ch == '>' || ch == '!':
		return l.scanOperator()
	}

	switch ch {
	case '.', ',', ';', '(', ')':
		start := l.pos
		l.pos++
		return Token{Kind: Punctuation, Lexeme: string(ch), Start: start, End: l.pos}, nil
	case '+', '-', '*', '/', '%', '|':
		return l.scanOperator()
	}
	return Token{}, newError(ErrInvalidCharacter, l.pos, string(ch))
}

func isWordStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isWordRune(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

func (l *Lexer) readWord() string {
	start := l.pos
	for l.pos < len(l.input) && isWordRune(l.input[l.pos]) {
		l.pos++
	}
	return string(l.input[start:l.pos])
}

func (l *Lexer) scanWord() Token {
	start := l.pos
	word := l.readWord()
	upper := l.upper.String(word)
	if _, ok := keywords[upper]; ok {
		if tok, ok := l.scanCompound(upper, start); ok {
			return tok
		}
		return Token{Kind: Keyword, Lexeme: upper, Start: start, End: l.pos}
	}
	if _, ok := operatorWords[upper]; ok {
		return Token{Kind: Operator, Lexeme: upper, Start: start, End: l.pos}
	}
	return Token{Kind: Identifier, Lexeme: word, Start: start, End: l.pos}
}

// scanCompound tries to extend the keyword first into the longest compound
// keyword. On failure the lexer is left exactly where first ended.
func (l *Lexer) scanCompound(first string, start int) (Token, bool) {
	saved := l.save()
	text := first
	var (
		best  Token
		found bool
		after state
	)
	for {
		l.skipWhitespace()
		if l.pos >= len(l.input) || !isWordStart(l.input[l.pos]) {
			break
		}
		text += " " + l.upper.String(l.readWord())
		st, ok := compounds[text]
		if !ok {
			break
		}
		if st == compoundFull {
			best = Token{Kind: Keyword, Lexeme: text, Start: start, End: l.pos}
			found = true
			after = l.save()
		}
	}
	if found {
		l.restore(after)
		return best, true
	}
	l.restore(saved)
	return Token{}, false
}

func (l *Lexer) save() state {
	return state{pos: l.pos}
}

func (l *Lexer) restore(s state) {
	l.pos = s.pos
}

func (l *Lexer) scanNumber() (Token, error) {
	start := l.pos
	seenDot := false
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if unicode.IsDigit(ch) {
			l.pos++
			continue
		}
		if ch == '.' {
			if seenDot {
				return Token{}, newError(ErrNumberFormat, start, string(l.input[start:l.pos+1]))
			}
			seenDot = true
			l.pos++
			continue
		}
		break
	}
	return Token{Kind: Number, Lexeme: string(l.input[start:l.pos]), Start: start, End: l.pos}, nil
}

// scanString reads a quoted literal. A backslash takes the following rune
// verbatim, including the quote character.
func (l *Lexer) scanString(quote rune) (Token, error) {
	start := l.pos
	l.pos++
	var sb strings.Builder
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == quote {
			l.pos++
			return Token{Kind: String, Lexeme: sb.String(), Start: start, End: l.pos}, nil
		}
		if ch == '\\' {
			l.pos++
			if l.pos >= len(l.input) {
				break
			}
			ch = l.input[l.pos]
		}
		sb.WriteRune(ch)
		l.pos++
	}
	return Token{}, newError(ErrUnterminatedString, start, string(l.input[start:]))
}

func (l *Lexer) scanOperator() (Token, error) {
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if unicode.IsLetter(ch) || strings.ContainsRune(operatorRunes, ch) {
			l.pos++
			continue
		}
		break
	}
	text := l.upper.String(string(l.input[start:l.pos]))
	if _, ok := operatorSymbols[text]; ok {
		return Token{Kind: Operator, Lexeme: text, Start: start, End: l.pos}, nil
	}
	if _, ok := operatorWords[text]; ok {
		return Token{Kind: Operator, Lexeme: text, Start: start, End: l.pos}, nil
	}
	return Token{}, newError(ErrInvalidOperator, start, string(l.input[start:l.pos]))
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
}
