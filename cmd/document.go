package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/gnoswap-labs/gqlfront/formatter"
	"github.com/gnoswap-labs/gqlfront/gqlerrors"
	"github.com/gnoswap-labs/gqlfront/internal"
	"github.com/gnoswap-labs/gqlfront/language/ast"
	"github.com/gnoswap-labs/gqlfront/language/source"
)

// stdinName names documents read from standard input.
const stdinName = "<stdin>"

// readDocument reads path from the engine's filesystem, or standard input
// when path is empty.
func readDocument(cmd *cobra.Command, engine *internal.Engine, path string) (*source.Source, error) {
	if path == "" {
		body, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("error reading standard input: %w", err)
		}
		return source.New(string(body), stdinName), nil
	}

	body, err := afero.ReadFile(engine.Fs(), path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return source.New(string(body), path), nil
}

// parseDocument parses src and, on a syntax error, prints the formatted
// issue to the command's error stream and returns ErrIssuesFound.
func parseDocument(cmd *cobra.Command, engine *internal.Engine, src *source.Source) (*ast.Document, error) {
	doc, err := engine.Parse(src)
	if err == nil {
		return doc, nil
	}

	var syntaxErr *gqlerrors.SyntaxError
	if !errors.As(err, &syntaxErr) {
		return nil, err
	}
	issues, err := engine.RunSource(src.Name, []byte(src.Body))
	if err != nil {
		return nil, err
	}
	fmt.Fprint(cmd.ErrOrStderr(), formatter.GenerateFormattedIssue(issues, splitLines(src.Body)))
	return nil, ErrIssuesFound
}
