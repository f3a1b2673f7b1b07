package lexer

import "fmt"

// Kind identifies the lexical class of a token.
type Kind int

const (
	EOF Kind = iota
	Keyword
	Identifier
	Number
	String
	Operator
	Punctuation
)

var kindNames = [...]string{
	EOF:         "EOF",
	Keyword:     "Keyword",
	Identifier:  "Identifier",
	Number:      "Number",
	String:      "String",
	Operator:    "Operator",
	Punctuation: "Punctuation",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token represents a lexical item. Start and End are rune offsets into the
// input; End is exclusive. Keyword and operator-word lexemes are uppercase.
type Token struct {
	Kind   Kind
	Lexeme string
	Start  int
	End    int
}

// Len reports the number of runes the token spans in the source.
func (t Token) Len() int {
	return t.End - t.Start
}

func (t Token) String() string {
	if t.Kind == EOF {
		return fmt.Sprintf("EOF at %d", t.Start)
	}
	if t.Len() <= 1 {
		return fmt.Sprintf("%s(%s) at %d", t.Kind, t.Lexeme, t.Start)
	}
	return fmt.Sprintf("%s(%s) at %d-%d", t.Kind, t.Lexeme, t.Start, t.End)
}

// Is reports whether the token has the given kind and, when lexemes are
// provided, one of the given lexemes.
func (t Token) Is(kind Kind, lexemes ...string) bool {
	if t.Kind != kind {
		return false
	}
	if len(lexemes) == 0 {
		return true
	}
	for _, lex := range lexemes {
		if t.Lexeme == lex {
			return true
		}
	}
	return false
}
