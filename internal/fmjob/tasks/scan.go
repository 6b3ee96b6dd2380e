package tasks

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ehsaniara/fmjob/pkg/errors"
	"github.com/ehsaniara/fmjob/pkg/job"
	"github.com/ehsaniara/fmjob/pkg/platform"
)

// ScanResult is what a Scanner found under its root.
type ScanResult struct {
	Root     string `json:"root"`
	Files    int64  `json:"files"`
	Dirs     int64  `json:"dirs"`
	Symlinks int64  `json:"symlinks"`
	Bytes    int64  `json:"bytes"`
	Skipped  int64  `json:"skipped"`
}

// Scanner counts the files, directories and bytes below a root directory.
// Result must only be read after the job has reached a terminal state.
type Scanner struct {
	root   string
	fs     platform.Filesystem
	Result ScanResult
}

func NewScanner(root string, filesystem platform.Filesystem) *Scanner {
	if filesystem == nil {
		filesystem = platform.NewPlatform()
	}
	return &Scanner{
		root:   root,
		fs:     filesystem,
		Result: ScanResult{Root: root},
	}
}

// Run walks the tree without following symlinks. Unreadable entries are
// reported with EmitError; an abort stops the walk and is returned.
func (s *Scanner) Run(ctx context.Context, j *job.Job) error {
	var info os.FileInfo
	result, err := attempt(j, func() error {
		var statErr error
		info, statErr = s.fs.Lstat(s.root)
		return errors.WrapFilesystemError(s.root, "lstat", statErr)
	})
	switch result {
	case aborted:
		return err
	case skipped:
		s.Result.Skipped++
		return nil
	}

	s.count(info.Mode(), info.Size())
	if !info.IsDir() {
		return nil
	}

	pending := []string{s.root}
	for len(pending) > 0 {
		if j.IsCancelled() || ctx.Err() != nil {
			return nil
		}

		dir := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		var entries []os.DirEntry
		result, err := attempt(j, func() error {
			var readErr error
			entries, readErr = s.fs.ReadDir(dir)
			return errors.WrapFilesystemError(dir, "readdir", readErr)
		})
		switch result {
		case aborted:
			return err
		case skipped:
			s.Result.Skipped++
			continue
		}

		for _, entry := range entries {
			if j.IsCancelled() {
				return nil
			}

			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				s.Result.Dirs++
				pending = append(pending, path)
				continue
			}

			var size int64
			result, err := attempt(j, func() error {
				entryInfo, infoErr := entry.Info()
				if infoErr == nil {
					size = entryInfo.Size()
				}
				return errors.WrapFilesystemError(path, "stat", infoErr)
			})
			switch result {
			case aborted:
				return err
			case skipped:
				s.Result.Skipped++
				continue
			}
			s.count(entry.Type(), size)
		}
	}

	return nil
}

func (s *Scanner) count(mode fs.FileMode, size int64) {
	switch {
	case mode&fs.ModeSymlink != 0:
		s.Result.Symlinks++
	case mode.IsDir():
		s.Result.Dirs++
	default:
		s.Result.Files++
		s.Result.Bytes += size
	}
}
