package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/example/sqltree/internal/api"
)

var errUsage = errors.New("usage")

const (
	tokensUsage = "Usage: sqltreectl tokens [-raw] [-q <SQL>]"
	parseUsage  = "Usage: sqltreectl parse [-json | -format tree|json|sql] [-insert] [-q <SQL>]"
)

type tokensOptions struct {
	query string
	raw   bool
}

type parseOptions struct {
	query  string
	format api.Format
	insert bool
}

func parseTokensArgs(args []string) (tokensOptions, error) {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	query := fs.String("q", "", "SQL text to tokenize")
	raw := fs.Bool("raw", false, "print lexemes only")
	if err := fs.Parse(args); err != nil {
		return tokensOptions{}, flagError(err)
	}
	if fs.NArg() != 0 {
		return tokensOptions{}, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	return tokensOptions{query: *query, raw: *raw}, nil
}

func parseParseArgs(args []string) (parseOptions, error) {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	query := fs.String("q", "", "SQL statement to parse")
	jsonOut := fs.Bool("json", false, "shorthand for -format json")
	formatName := fs.String("format", "tree", "output format: tree, json or sql")
	insert := fs.Bool("insert", false, "parse an INSERT statement")
	if err := fs.Parse(args); err != nil {
		return parseOptions{}, flagError(err)
	}
	if fs.NArg() != 0 {
		return parseOptions{}, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}
	format, err := api.ParseFormat(*formatName)
	if err != nil {
		return parseOptions{}, err
	}
	if *jsonOut {
		if format != api.FormatTree && format != api.FormatJSON {
			return parseOptions{}, errUsage
		}
		format = api.FormatJSON
	}
	return parseOptions{query: *query, format: format, insert: *insert}, nil
}

func flagError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return errUsage
	}
	return err
}

// readSQL returns the query flag when set, otherwise the whole of stdin.
// An interactive stdin is never read.
func readSQL(query string, stdin io.Reader, terminal bool) (string, error) {
	if query != "" {
		return query, nil
	}
	if terminal {
		return "", errUsage
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	sql := strings.TrimSpace(string(data))
	if sql == "" {
		return "", errUsage
	}
	return sql, nil
}
