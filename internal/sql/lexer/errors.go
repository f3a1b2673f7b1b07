package lexer

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCharacter   = errors.New("invalid character")
	ErrNumberFormat       = errors.New("invalid number format: multiple decimal points")
	ErrUnterminatedString = errors.New("unterminated string literal")
	ErrInvalidOperator    = errors.New("invalid operator")
	ErrConsumed           = errors.New("lexer has already been used, create a new instance")
)

// ErrorCode is a stable numeric identifier for lexical failures.
type ErrorCode int

const (
	CodeInvalidLiteral   ErrorCode = 1005
	CodeUnclosedString   ErrorCode = 1006
	CodeInvalidOperator  ErrorCode = 1007
	CodeInvalidCharacter ErrorCode = 1008
	CodeLexerConsumed    ErrorCode = 1009
)

// Error describes a fatal tokenisation failure at a rune offset.
type Error struct {
	Code ErrorCode
	Pos  int
	Text string
	Err  error
}

func (e *Error) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("lexer: %v at %d", e.Err, e.Pos)
	}
	return fmt.Sprintf("lexer: %v %q at %d", e.Err, e.Text, e.Pos)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(cause error, pos int, text string) *Error {
	return &Error{Code: codeFor(cause), Pos: pos, Text: text, Err: cause}
}

func codeFor(cause error) ErrorCode {
	switch cause {
	case ErrNumberFormat:
		return CodeInvalidLiteral
	case ErrUnterminatedString:
		return CodeUnclosedString
	case ErrInvalidOperator:
		return CodeInvalidOperator
	case ErrConsumed:
		return CodeLexerConsumed
	default:
		return CodeInvalidCharacter
	}
}
