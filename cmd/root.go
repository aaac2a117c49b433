package cmd

import (
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/gqlfront/check"
	"github.com/gnoswap-labs/gqlfront/internal"
)

const defaultTimeout = 5 * time.Minute

// ErrIssuesFound is returned once issues have been reported, so that the
// process exits non-zero without printing anything further.
var ErrIssuesFound = errors.New("issues found")

type rootOptions struct {
	cfgFile string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	checkOpts := &checkOptions{}

	rootCmd := &cobra.Command{
		Use:              "gqlfront [paths...]",
		Short:            "gqlfront - parse, check and format GraphQL query documents",
		Args:             cobra.ArbitraryArgs,
		TraverseChildren: true, // Prioritize subcommands
		SilenceUsage:     true,
		SilenceErrors:    true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setupLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = o.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// no subcommand
			if len(args) == 0 {
				return cmd.Help()
			}
			// Format: gqlfront [path1 path2 ...] => behaves like the check subcommand
			return runCheck(cmd, o, checkOpts, args)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&o.cfgFile, "config", check.DefaultConfigPath, "Path to the configuration file")
	flags.DurationVar(&o.timeout, "timeout", defaultTimeout, "Set a timeout for the check")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Enable verbose logging")
	addCheckFlags(rootCmd, checkOpts)

	rootCmd.AddCommand(
		newCheckCmd(o),
		newFmtCmd(o),
		newASTCmd(o),
		newInitCmd(o),
		newWatchCmd(o),
		newServeCmd(o),
	)
	return rootCmd
}

func (o *rootOptions) setupLogger() error {
	if o.logger != nil {
		return nil
	}
	var err error
	if o.verbose {
		o.logger, err = zap.NewDevelopment()
	} else {
		o.logger, err = zap.NewProduction()
	}
	return err
}

// newEngine builds an engine from the configuration file, rooted at the
// working directory.
func (o *rootOptions) newEngine() (*internal.Engine, error) {
	engine, err := check.New(".", o.cfgFile, internal.WithLogger(o.logger))
	if err != nil {
		o.logger.Error("Failed to initialize engine", zap.Error(err))
		return nil, err
	}
	return engine, nil
}
