package parser

import (
	"errors"
	"fmt"

	"github.com/example/sqltree/internal/sql/lexer"
)

var (
	// ErrSyntax matches every *SyntaxError through errors.Is.
	ErrSyntax = errors.New("syntax error")
	// ErrConsumed is returned when a parser is used a second time.
	ErrConsumed = errors.New("parser has already been used, create a new instance")
)

// ErrorCode is a stable numeric identifier for syntax failures.
type ErrorCode int

const (
	CodeUnexpectedToken ErrorCode = 1001
	CodeMissingKeyword  ErrorCode = 1002
	CodeUnexpectedEnd   ErrorCode = 1004
	CodeInvalidLiteral  ErrorCode = 1005
)

// SyntaxError reports the construct the parser expected and the token it
// found instead.
type SyntaxError struct {
	Code     ErrorCode
	Expected string
	Found    lexer.Token
	Detail   string
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("parser: expected %s but found %s", e.Expected, describe(e.Found))
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Is makes errors.Is(err, ErrSyntax) hold for every syntax error.
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Pos returns the rune offset of the offending token.
func (e *SyntaxError) Pos() int {
	return e.Found.Start
}

func describe(tok lexer.Token) string {
	if tok.Kind == lexer.EOF {
		return fmt.Sprintf("end of input at %d", tok.Start)
	}
	return fmt.Sprintf("%s %q at %d", tok.Kind, tok.Lexeme, tok.Start)
}
