package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/strandkit/strand/internal/analysis"
	"github.com/strandkit/strand/internal/api"
	"github.com/strandkit/strand/internal/config"
	"github.com/strandkit/strand/internal/errors"
	"github.com/strandkit/strand/internal/ops"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(db *sql.DB, cfg *config.Config) *cli.App {
	app := &cli.App{
		Name:    "strand",
		Usage:   "Local string analyzer store",
		Version: Version,
		Commands: []*cli.Command{
			analyzeCmd(),
			storeCmd(db, cfg),
			fetchCmd(db),
			listCmd(db),
			queryCmd(db),
			deleteCmd(db),
			serveCmd(db, cfg),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// analyzeCmd creates the analyze command.
func analyzeCmd() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Compute string properties without storing (value as argument or via stdin)",
		ArgsUsage: "[value]",
		Action: func(c *cli.Context) error {
			value, err := readValue(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Analyze(context.Background(), ops.AnalyzeInput{Value: value})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// storeCmd creates the store command.
func storeCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "store",
		Usage:     "Analyze and store a string (value as argument or via stdin)",
		ArgsUsage: "[value]",
		Action: func(c *cli.Context) error {
			value, err := readValue(c)
			if err != nil {
				return outputError(err)
			}

			output, err := ops.Store(context.Background(), db, cfg, ops.StoreInput{Value: value})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// fetchCmd creates the fetch command.
func fetchCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "fetch",
		Usage:     "Fetch a stored string by value or content hash",
		ArgsUsage: "<value-or-hash>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("must specify a value or content hash"))
			}

			output, err := ops.Fetch(context.Background(), db, ops.FetchInput{Key: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// listCmd creates the list command.
func listCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List stored strings with optional structured filters",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "palindrome", Usage: "Filter by palindrome status: true|false"},
			&cli.IntFlag{Name: "min-length", Value: -1, Usage: "Minimum character count"},
			&cli.IntFlag{Name: "max-length", Value: -1, Usage: "Maximum character count"},
			&cli.IntFlag{Name: "word-count", Value: -1, Usage: "Exact word count"},
			&cli.StringFlag{Name: "contains", Aliases: []string{"c"}, Usage: "Character that must be present"},
		},
		Action: func(c *cli.Context) error {
			var filter analysis.FilterSet

			switch c.String("palindrome") {
			case "":
			case "true":
				v := true
				filter.IsPalindrome = &v
			case "false":
				v := false
				filter.IsPalindrome = &v
			default:
				return outputError(errors.NewInvalidRequest("palindrome must be true or false"))
			}
			if v := c.Int("min-length"); v >= 0 {
				filter.MinLength = &v
			}
			if v := c.Int("max-length"); v >= 0 {
				filter.MaxLength = &v
			}
			if v := c.Int("word-count"); v >= 0 {
				filter.WordCount = &v
			}
			if ch := c.String("contains"); ch != "" {
				filter.ContainsCharacter = &ch
			}

			output, err := ops.List(context.Background(), db, filter)
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// queryCmd creates the query command.
func queryCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Filter stored strings with a natural-language query",
		ArgsUsage: "<query>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("query is required"))
			}

			// Join args so quoting the query is optional
			query := strings.Join(c.Args().Slice(), " ")

			output, err := ops.Query(context.Background(), db, ops.QueryInput{Query: query})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// deleteCmd creates the delete command.
func deleteCmd(db *sql.DB) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a stored string by value or content hash",
		ArgsUsage: "<value-or-hash>",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidRequest("must specify a value or content hash"))
			}

			output, err := ops.Delete(context.Background(), db, ops.DeleteInput{Key: c.Args().First()})
			if err != nil {
				return outputError(err)
			}

			return outputJSON(output)
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(db *sql.DB, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the JSON HTTP API server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8330, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			srv := api.NewServer(db, cfg, Version, c.String("bind"), c.Int("port"))
			return api.Run(srv)
		},
	}
}

// Helper functions

// readValue returns the string to operate on: the first positional argument
// if present, otherwise piped stdin with one trailing newline stripped.
func readValue(c *cli.Context) (string, error) {
	if c.NArg() > 0 {
		return c.Args().First(), nil
	}
	if !stdinHasData() {
		return "", errors.NewInvalidRequest("value must be given as an argument or piped via stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.NewInternal(err)
	}
	value := string(data)
	// echo appends a newline; strip exactly one so the stored value is
	// what the user typed, not what the shell produced
	value = strings.TrimSuffix(value, "\n")
	value = strings.TrimSuffix(value, "\r")
	return value, nil
}

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if sErr, ok := err.(*errors.StrandError); ok {
		return cli.Exit(fmt.Sprintf("[%s] %s", sErr.Code, sErr.Message), 1)
	}
	return cli.Exit(err.Error(), 1)
}

// stdinHasData returns true if stdin has piped data (not a terminal).
func stdinHasData() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}
