package jobs

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/fmjob/internal/fmjob/common"
	"github.com/ehsaniara/fmjob/internal/fmjob/tasks"
	"github.com/ehsaniara/fmjob/pkg/job"
)

// NewScanCmd creates the scan command. Every path gets its own job; all of
// them share one cancellation token, so Ctrl-C or --timeout stops the lot.
func NewScanCmd() *cobra.Command {
	var opts launchOptions

	cmd := &cobra.Command{
		Use:   "scan PATH...",
		Short: "Count files, directories and bytes below each path",
		Long: `Scan walks each PATH without following symlinks and reports how many
files, directories and symlinks it holds and their total size.

Launch strategies:
  --async   run the scans on the worker pool while the main loop waits (default)
  --sync    run the scans one after another on the calling goroutine
  --pump    run each scan on the pool while blocking inside the main loop`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args, &opts)
		},
	}

	addLaunchFlags(cmd, &opts)
	return cmd
}

func runScan(cmd *cobra.Command, args []string, opts *launchOptions) error {
	out := cmd.OutOrStdout()

	l, cleanup, err := newLauncher(cmd.Context(), opts, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer cleanup()

	scanners := make([]*tasks.Scanner, len(args))
	batch := make([]*job.Job, len(args))
	for i, path := range args {
		scanners[i] = tasks.NewScanner(path, nil)
		batch[i] = l.newJob("scan "+path, scanners[i])
	}

	runErr := l.run(batch)

	if common.JSONOutput {
		results := make([]tasks.ScanResult, len(scanners))
		for i, s := range scanners {
			results[i] = s.Result
		}
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return runErr
	}

	sizes := sizeFormatFrom(common.CurrentSettings())
	for i, j := range batch {
		r := scanners[i].Result
		printState(out, j)
		fmt.Fprintf(out, "Files: %d  Dirs: %d  Symlinks: %d  Size: %s", r.Files, r.Dirs, r.Symlinks, sizes.format(r.Bytes))
		if r.Skipped > 0 {
			fmt.Fprintf(out, "  Skipped: %d", r.Skipped)
		}
		fmt.Fprintln(out)
	}
	return runErr
}
