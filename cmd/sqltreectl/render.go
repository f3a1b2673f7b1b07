package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/example/sqltree/internal/sql/lexer"
	"github.com/example/sqltree/internal/sql/parser"
)

// writeTokens prints tokens as a table, or one lexeme per line when raw.
func writeTokens(w io.Writer, tokens []lexer.Token, raw bool) {
	if raw {
		for _, tok := range tokens {
			if tok.Kind != lexer.EOF {
				fmt.Fprintln(w, tok.Lexeme)
			}
		}
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kind", "Lexeme", "Start", "End"})
	table.SetAutoFormatHeaders(true)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, tok := range tokens {
		table.Append([]string{
			tok.Kind.String(),
			tok.Lexeme,
			strconv.Itoa(tok.Start),
			strconv.Itoa(tok.End),
		})
	}
	table.Render()
	fmt.Fprintf(w, "(%d token(s))\n", len(tokens))
}

func writeOutput(w io.Writer, out string) {
	if strings.HasSuffix(out, "\n") {
		fmt.Fprint(w, out)
		return
	}
	fmt.Fprintln(w, out)
}

// reportError prints err and, when it carries a source position, the
// statement with a caret under the offending rune.
func reportError(w io.Writer, sql string, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	pos, ok := errorPos(err)
	if !ok {
		return
	}
	if line := caret(sql, pos); line != "" {
		fmt.Fprint(w, line)
	}
}

func errorPos(err error) (int, bool) {
	var syntaxErr *parser.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Pos(), true
	}
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) && !errors.Is(err, lexer.ErrConsumed) {
		return lexErr.Pos, true
	}
	return 0, false
}

// caret renders the line of sql containing rune offset pos and a marker
// line below it. Columns are measured in terminal cells.
func caret(sql string, pos int) string {
	runes := []rune(sql)
	if pos < 0 || pos > len(runes) {
		return ""
	}
	start := pos
	for start > 0 && runes[start-1] != '\n' {
		start--
	}
	end := pos
	for end < len(runes) && runes[end] != '\n' {
		end++
	}
	line := strings.ReplaceAll(string(runes[start:end]), "\t", " ")
	prefix := strings.ReplaceAll(string(runes[start:pos]), "\t", " ")
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))
	return "  " + line + "\n  " + pad + "^\n"
}
