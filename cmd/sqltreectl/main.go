package main

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/example/sqltree/internal/api"
	"github.com/example/sqltree/internal/sql/ast"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	switch cmd {
	case "tokens":
		runTokens(os.Args[2:])
	case "parse":
		runParse(os.Args[2:])
	case "shell":
		runShell(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("sqltree control utility")
	fmt.Println("Usage:")
	fmt.Println("  sqltreectl tokens [-raw] [-q <SQL>]")
	fmt.Println("  sqltreectl parse [-json | -format tree|json|sql] [-insert] [-q <SQL>]")
	fmt.Println("  sqltreectl shell")
	fmt.Println("Without -q the statement is read from standard input.")
}

// isTerminal reports whether stdin is attached to a terminal.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func failAt(sql string, err error) {
	reportError(os.Stderr, sql, err)
	os.Exit(1)
}

func runTokens(args []string) {
	opts, err := parseTokensArgs(args)
	if errors.Is(err, errUsage) {
		fmt.Println(tokensUsage)
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}
	sql, err := readSQL(opts.query, os.Stdin, isTerminal())
	if errors.Is(err, errUsage) {
		fmt.Println(tokensUsage)
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}
	tokens, err := api.Tokenize(sql)
	if err != nil {
		failAt(sql, err)
	}
	writeTokens(os.Stdout, tokens, opts.raw)
}

func runParse(args []string) {
	opts, err := parseParseArgs(args)
	if errors.Is(err, errUsage) {
		fmt.Println(parseUsage)
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}
	sql, err := readSQL(opts.query, os.Stdin, isTerminal())
	if errors.Is(err, errUsage) {
		fmt.Println(parseUsage)
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}
	var node ast.Node
	if opts.insert {
		node, err = api.ParseInsert(sql)
	} else {
		node, err = api.Parse(sql)
	}
	if err != nil {
		failAt(sql, err)
	}
	out, err := api.Render(node, opts.format)
	if err != nil {
		fail(err)
	}
	writeOutput(os.Stdout, out)
}

func runShell(args []string) {
	if len(args) != 0 {
		fmt.Println("Usage: sqltreectl shell")
		os.Exit(1)
	}
	if err := startShell(); err != nil {
		fail(err)
	}
}
