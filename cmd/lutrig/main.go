// Command lutrig generates, inspects and evaluates quarter-wave sine tables.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"
)

func main() {
	level := new(slog.LevelVar)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Warn("sentry disabled", "err", err)
		}
	}

	if err := newRootCmd(log, level).Execute(); err != nil {
		log.Error("lutrig failed", "err", err)
		sentry.CaptureException(err)
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
	sentry.Flush(2 * time.Second)
}

// newRootCmd builds the command tree. level is raised to debug by --verbose.
func newRootCmd(log *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "lutrig",
		Short:         "quarter-wave sine table generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				level.Set(slog.LevelDebug)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newGenCmd(log),
		newVerifyCmd(log),
		newListCmd(),
		newPlotCmd(),
		newEvalCmd(),
	)
	return root
}
