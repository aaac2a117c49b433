package cmd

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/gqlfront/language/printer"
)

func newASTCmd(o *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ast [file]",
		Short: "Dump the syntax tree of a query document",
		Long: `Dumps the syntax tree as YAML, or JSON with --json.
With no file, the document is read from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := o.newEngine()
			if err != nil {
				return err
			}

			var path string
			if len(args) == 1 {
				path = args[0]
			}
			src, err := readDocument(cmd, engine, path)
			if err != nil {
				return err
			}
			doc, err := parseDocument(cmd, engine, src)
			if err != nil {
				return err
			}

			tree := printer.Tree(doc)
			if asJSON {
				d, err := json.MarshalIndent(tree, "", "  ")
				if err != nil {
					return fmt.Errorf("error marshalling tree to JSON: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), string(d))
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(tree); err != nil {
				return fmt.Errorf("error encoding tree: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the tree as JSON")
	return cmd
}
