package jobs

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ehsaniara/fmjob/internal/fmjob/common"
	"github.com/ehsaniara/fmjob/internal/fmjob/tasks"
	"github.com/ehsaniara/fmjob/pkg/job"
	"github.com/ehsaniara/fmjob/pkg/settings"
)

// NewRemoveCmd creates the remove command. The use-trash setting decides
// between trashing and deleting; confirm-trash and confirm-deletion decide
// whether each path is confirmed first.
func NewRemoveCmd() *cobra.Command {
	var (
		opts   launchOptions
		dryRun bool
		forceDelete bool
	)

	cmd := &cobra.Command{
		Use:     "remove PATH...",
		Aliases: []string{"rm"},
		Short:   "Delete files and directories, or move them to the trash",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, args, &opts, dryRun, forceDelete)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be removed without touching anything")
	cmd.Flags().BoolVar(&forceDelete, "delete", false, "Delete even when the use-trash setting is on")
	addLaunchFlags(cmd, &opts)
	return cmd
}

func runRemove(cmd *cobra.Command, args []string, opts *launchOptions, dryRun, forceDelete bool) error {
	removeOpts, err := removeOptions(common.CurrentSettings(), dryRun, forceDelete)
	if err != nil {
		return err
	}

	l, cleanup, err := newLauncher(cmd.Context(), opts, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer cleanup()

	remover := tasks.NewRemover(args, nil, removeOpts)
	j := l.newJob("remove", remover)
	runErr := l.run([]*job.Job{j})

	out := cmd.OutOrStdout()
	if common.JSONOutput {
		data, err := json.MarshalIndent(remover.Result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return runErr
	}

	printState(out, j)
	printPaths(out, "Removed", remover.Result.Removed)
	printPaths(out, "Trashed", remover.Result.Trashed)
	printPaths(out, "Kept", remover.Result.Kept)
	printPaths(out, "Failed", remover.Result.Failed)
	return runErr
}

func removeOptions(store *settings.Store, dryRun, forceDelete bool) (tasks.RemoveOptions, error) {
	useTrash, err := store.GetBool(settings.KeyUseTrash)
	if err != nil {
		return tasks.RemoveOptions{}, err
	}
	useTrash = useTrash && !forceDelete

	confirmKey := settings.KeyConfirmDeletion
	if useTrash {
		confirmKey = settings.KeyConfirmTrash
	}
	confirm, err := store.GetBool(confirmKey)
	if err != nil {
		return tasks.RemoveOptions{}, err
	}

	opts := tasks.RemoveOptions{Confirm: confirm, DryRun: dryRun}
	if useTrash {
		opts.TrashDir = trashDir()
	}
	return opts, nil
}

// trashDir follows the freedesktop.org layout: $XDG_DATA_HOME/Trash/files.
func trashDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "Trash", "files")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share", "Trash", "files")
	}
	return filepath.Join(os.TempDir(), "fmjob-trash")
}

func printPaths(w io.Writer, label string, paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Fprintf(w, "%s: %s\n", label, strings.Join(paths, ", "))
}
