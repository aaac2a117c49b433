package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/gqlfront/language/printer"
)

func newFmtCmd(o *rootOptions) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Print query documents in canonical form",
		Long: `Parses each document and prints it back in canonical form.
With no files, a single document is read from standard input.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && len(args) == 0 {
				return errors.New("--write requires file arguments")
			}

			engine, err := o.newEngine()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = []string{""}
			}

			var failed bool
			for _, path := range args {
				src, err := readDocument(cmd, engine, path)
				if err != nil {
					return err
				}
				doc, err := parseDocument(cmd, engine, src)
				if errors.Is(err, ErrIssuesFound) {
					failed = true
					continue
				}
				if err != nil {
					return err
				}

				out := printer.Print(doc)
				if !write {
					fmt.Fprint(cmd.OutOrStdout(), out)
					continue
				}
				if out == src.Body {
					continue
				}
				if err := afero.WriteFile(engine.Fs(), path, []byte(out), 0o644); err != nil {
					return fmt.Errorf("error writing %s: %w", path, err)
				}
				o.logger.Info("Formatted", zap.String("file", path))
			}

			if failed {
				return ErrIssuesFound
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write the result back to the source file")
	return cmd
}
