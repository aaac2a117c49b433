package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/gqlfront/check"
	"github.com/gnoswap-labs/gqlfront/formatter"
	tt "github.com/gnoswap-labs/gqlfront/internal/types"
)

type checkOptions struct {
	ignorePaths []string
	json        bool
	outPath     string
}

func addCheckFlags(cmd *cobra.Command, opts *checkOptions) {
	cmd.Flags().StringSliceVar(&opts.ignorePaths, "ignore-paths", nil, "Comma-separated list of paths to ignore")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output issues in JSON format")
	cmd.Flags().StringVarP(&opts.outPath, "output", "o", "", "Output path (when using JSON)")
}

func newCheckCmd(o *rootOptions) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check [paths...]",
		Short: "Report syntax errors in query documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, o, opts, args)
		},
	}
	addCheckFlags(cmd, opts)
	return cmd
}

func runCheck(cmd *cobra.Command, o *rootOptions, opts *checkOptions, paths []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	engine, err := o.newEngine()
	if err != nil {
		return err
	}
	for _, path := range opts.ignorePaths {
		engine.IgnorePath(strings.TrimSpace(path))
	}

	check.ProgressOutput = cmd.ErrOrStderr()
	issues, procErr := check.ProcessFiles(ctx, o.logger, engine, paths, check.ProcessFile)
	if procErr != nil && ctx.Err() != nil {
		return fmt.Errorf("check timed out: %w", procErr)
	}

	if err := printIssues(cmd.OutOrStdout(), o.logger, engine.Fs(), issues, opts); err != nil {
		return err
	}
	if procErr != nil {
		return procErr
	}
	if len(issues) > 0 {
		return ErrIssuesFound
	}
	return nil
}

func printIssues(w io.Writer, logger *zap.Logger, fs afero.Fs, issues []tt.Issue, opts *checkOptions) error {
	issuesByFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}

	if opts.json {
		d, err := json.MarshalIndent(issuesByFile, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshalling issues to JSON: %w", err)
		}
		if opts.outPath == "" {
			_, err = fmt.Fprintln(w, string(d))
			return err
		}
		return os.WriteFile(opts.outPath, d, 0o644)
	}

	sortedFiles := make([]string, 0, len(issuesByFile))
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	for _, filename := range sortedFiles {
		body, err := afero.ReadFile(fs, filename)
		if err != nil {
			logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
			continue
		}
		fmt.Fprint(w, formatter.GenerateFormattedIssue(issuesByFile[filename], splitLines(string(body))))
	}
	return nil
}

func splitLines(body string) []string {
	return strings.Split(strings.ReplaceAll(body, "\r\n", "\n"), "\n")
}
