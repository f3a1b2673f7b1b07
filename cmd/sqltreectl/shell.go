package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/example/sqltree/internal/api"
	"github.com/example/sqltree/internal/sql/ast"
)

const shellHelp = `Enter a SELECT, UPDATE or DELETE statement to see its tree.
End a line with \ to continue the statement on the next line.
  \format tree|json|sql   change the output format
  \tokens <SQL>           show the tokens of a statement
  \insert <SQL>           parse an INSERT statement
  \h                      show this help
  \q                      quit`

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sqltree_history")
}

func startShell() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "sqltree> ",
		HistoryFile:     historyFilePath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete: readline.NewPrefixCompleter(
			readline.PcItem(`\format`, readline.PcItem("tree"), readline.PcItem("json"), readline.PcItem("sql")),
			readline.PcItem(`\tokens`),
			readline.PcItem(`\insert`),
			readline.PcItem(`\h`),
			readline.PcItem(`\q`),
		),
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintln(rl.Stdout(), `sqltree shell. \h for help, \q to quit.`)
	sh := &shell{format: api.FormatTree}
	for {
		if sh.pending() {
			rl.SetPrompt("     ... ")
		} else {
			rl.SetPrompt("sqltree> ")
		}
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			sh.reset()
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if sh.handle(line, rl.Stdout(), rl.Stderr()) {
			return nil
		}
	}
}

// shell holds the state of an interactive session between lines.
type shell struct {
	format api.Format
	buf    strings.Builder
}

func (s *shell) pending() bool {
	return s.buf.Len() > 0
}

func (s *shell) reset() {
	s.buf.Reset()
}

// handle processes one input line and reports whether the session is over.
func (s *shell) handle(line string, out, errOut io.Writer) bool {
	input := strings.TrimSpace(line)
	if strings.HasSuffix(input, `\`) && !strings.HasPrefix(input, `\`) {
		s.buf.WriteString(strings.TrimSuffix(input, `\`))
		s.buf.WriteString(" ")
		return false
	}
	if s.pending() {
		s.buf.WriteString(input)
		input = strings.TrimSpace(s.buf.String())
		s.reset()
	}
	if input == "" {
		return false
	}

	cmd, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)
	switch strings.ToLower(cmd) {
	case `\q`, "exit", "quit":
		return true
	case `\h`, "help":
		fmt.Fprintln(out, shellHelp)
	case `\format`:
		format, err := api.ParseFormat(rest)
		if err != nil || rest == "" {
			fmt.Fprintln(errOut, `error: usage: \format tree|json|sql`)
			return false
		}
		s.format = format
	case `\tokens`:
		tokens, err := api.Tokenize(rest)
		if err != nil {
			reportError(errOut, rest, err)
			return false
		}
		writeTokens(out, tokens, false)
	case `\insert`:
		stmt, err := api.ParseInsert(rest)
		if err != nil {
			reportError(errOut, rest, err)
			return false
		}
		s.render(stmt, out, errOut)
	default:
		stmt, err := api.Parse(input)
		if err != nil {
			reportError(errOut, input, err)
			return false
		}
		s.render(stmt, out, errOut)
	}
	return false
}

func (s *shell) render(node ast.Node, out, errOut io.Writer) {
	text, err := api.Render(node, s.format)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return
	}
	writeOutput(out, text)
}
