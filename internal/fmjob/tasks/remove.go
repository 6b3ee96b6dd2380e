package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/ehsaniara/fmjob/pkg/constants"
	"github.com/ehsaniara/fmjob/pkg/errors"
	"github.com/ehsaniara/fmjob/pkg/job"
	"github.com/ehsaniara/fmjob/pkg/platform"
)

// Answers offered when a removal has to be confirmed
const (
	AnswerYes = iota
	AnswerNo
	AnswerCancel
)

var confirmOptions = []string{"Yes", "No", "Cancel"}

// RemoveOptions control how a Remover treats its paths.
type RemoveOptions struct {
	Confirm  bool   // ask before each top-level path
	TrashDir string // move paths here instead of deleting them
	DryRun   bool   // report what would happen without touching anything
}

// RemoveResult lists what happened to each top-level path.
type RemoveResult struct {
	Removed []string `json:"removed"`
	Trashed []string `json:"trashed"`
	Kept    []string `json:"kept"`
	Failed  []string `json:"failed"`
}

// Remover deletes or trashes a list of paths. Result must only be read after
// the job has reached a terminal state.
type Remover struct {
	paths  []string
	fs     platform.Filesystem
	opts   RemoveOptions
	Result RemoveResult
}

func NewRemover(paths []string, filesystem platform.Filesystem, opts RemoveOptions) *Remover {
	if filesystem == nil {
		filesystem = platform.NewPlatform()
	}
	return &Remover{
		paths: append([]string{}, paths...),
		fs:    filesystem,
		opts:  opts,
	}
}

func (r *Remover) Run(ctx context.Context, j *job.Job) error {
	for _, path := range r.paths {
		if j.IsCancelled() || ctx.Err() != nil {
			return nil
		}

		if r.opts.Confirm {
			switch j.Ask(fmt.Sprintf("Remove %s?", path), confirmOptions...) {
			case AnswerYes:
			case AnswerNo:
				r.Result.Kept = append(r.Result.Kept, path)
				continue
			default:
				// Cancel, or nobody there to answer
				j.RequestCancel()
				return nil
			}
		}

		if r.opts.DryRun {
			r.Result.Removed = append(r.Result.Removed, path)
			continue
		}

		var (
			result outcome
			err    error
		)
		if r.opts.TrashDir != "" {
			result, err = r.trash(j, path)
		} else {
			result, err = r.removeTree(ctx, j, path)
		}

		switch result {
		case aborted:
			r.Result.Failed = append(r.Result.Failed, path)
			return err
		case skipped:
			r.Result.Failed = append(r.Result.Failed, path)
		default:
			if r.opts.TrashDir != "" {
				r.Result.Trashed = append(r.Result.Trashed, path)
			} else {
				r.Result.Removed = append(r.Result.Removed, path)
			}
		}
	}
	return nil
}

func (r *Remover) trash(j *job.Job, path string) (outcome, error) {
	result, err := attempt(j, func() error {
		return errors.WrapFilesystemError(r.opts.TrashDir, "mkdir", r.fs.MkdirAll(r.opts.TrashDir, constants.PrivateDirMode))
	})
	if result != done {
		return result, err
	}

	// a short random suffix keeps repeated trashing of the same name apart
	target := filepath.Join(r.opts.TrashDir, fmt.Sprintf("%s.%s", filepath.Base(path), uuid.NewString()[:8]))
	return attempt(j, func() error {
		return errors.WrapFilesystemError(path, "rename", r.fs.Rename(path, target))
	})
}

// removeTree deletes path depth first. A child that is skipped leaves its
// parent in place and marks the whole path as skipped.
func (r *Remover) removeTree(ctx context.Context, j *job.Job, path string) (outcome, error) {
	if j.IsCancelled() || ctx.Err() != nil {
		return skipped, nil
	}

	var info os.FileInfo
	result, err := attempt(j, func() error {
		var statErr error
		info, statErr = r.fs.Lstat(path)
		return errors.WrapFilesystemError(path, "lstat", statErr)
	})
	if result != done {
		return result, err
	}

	if info.IsDir() {
		var entries []os.DirEntry
		result, err := attempt(j, func() error {
			var readErr error
			entries, readErr = r.fs.ReadDir(path)
			return errors.WrapFilesystemError(path, "readdir", readErr)
		})
		if result != done {
			return result, err
		}

		failed := false
		for _, entry := range entries {
			result, err := r.removeTree(ctx, j, filepath.Join(path, entry.Name()))
			switch result {
			case aborted:
				return aborted, err
			case skipped:
				failed = true
			}
		}
		if failed {
			return skipped, nil
		}
	}

	return attempt(j, func() error {
		return errors.WrapFilesystemError(path, "remove", r.fs.Remove(path))
	})
}
