package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/gqlfront/formatter"
	tt "github.com/gnoswap-labs/gqlfront/internal/types"
)

func newWatchCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [dirs...]",
		Short: "Re-check query documents whenever they change",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}

			engine, err := o.newEngine()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := cmd.OutOrStdout()
			err = engine.StartWatching(args, func(filename string, issues []tt.Issue) {
				if len(issues) == 0 {
					fmt.Fprintf(w, "%s: ok\n", filename)
					return
				}
				body, err := afero.ReadFile(engine.Fs(), filename)
				if err != nil {
					o.logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
					return
				}
				fmt.Fprint(w, formatter.GenerateFormattedIssue(issues, splitLines(string(body))))
			})
			if err != nil {
				return err
			}
			o.logger.Info("Watching for changes", zap.Strings("dirs", args))

			<-ctx.Done()
			return engine.StopWatching()
		},
	}
}
