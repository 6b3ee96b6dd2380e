package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/fmjob/internal/fmjob/common"
	"github.com/ehsaniara/fmjob/internal/fmjob/jobs"
)

// commands that run without loading configuration or settings
var skipSetup = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmjob",
		Short: "fmjob - cancellable file manager jobs",
		Long: `fmjob runs file manager jobs (scanning, removing) in the background while an
owner loop on the main goroutine answers their errors and questions.

Quick Examples:
  fmjob scan ~/Downloads /tmp              # Scan two trees in parallel
  fmjob scan --sync --timeout 5s ~/src     # Scan on the calling goroutine, give up after 5s
  fmjob remove --dry-run ./build           # Show what would be removed
  fmjob settings set use-trash false       # Delete instead of trashing

Press Ctrl-C to cancel every running job.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipSetup[cmd.Name()] {
				return nil
			}
			return common.Setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			common.Teardown()
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&common.ConfigPath, "config", "",
		"Path to configuration file (searches common locations if not specified)")
	cmd.PersistentFlags().StringVar(&common.SettingsPath, "settings", "",
		"Path to the settings file (defaults to settings.path from the configuration)")
	cmd.PersistentFlags().StringVar(&common.LogLevel, "log-level", "",
		"Log level: DEBUG, INFO, WARN or ERROR")
	cmd.PersistentFlags().BoolVar(&common.JSONLog, "json-log", false,
		"Write logs as JSON lines")
	cmd.PersistentFlags().BoolVar(&common.JSONOutput, "json", false,
		"Output in JSON format")
	cmd.PersistentFlags().BoolVar(&common.NoColor, "no-color", false,
		"Disable colored output")

	// Add subcommands
	cmd.AddCommand(jobs.NewScanCmd())
	cmd.AddCommand(jobs.NewRemoveCmd())
	cmd.AddCommand(NewSettingsCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

var rootCmd = newRootCmd()

// Execute runs the command tree. SIGINT and SIGTERM cancel running jobs.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}
