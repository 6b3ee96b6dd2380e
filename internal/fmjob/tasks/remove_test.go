package tasks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehsaniara/fmjob/pkg/job"
	"github.com/ehsaniara/fmjob/pkg/platform/platformfakes"
)

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

func TestRemover_DeletesTrees(t *testing.T) {
	root := writeTree(t)
	other := filepath.Join(t.TempDir(), "single")
	require.NoError(t, os.WriteFile(other, nil, 0o644))

	remover := NewRemover([]string{root, other}, nil, RemoveOptions{})
	j := job.New(remover)

	require.NoError(t, j.RunSync())
	assert.Equal(t, job.StateFinished, j.State())
	assert.False(t, exists(root))
	assert.False(t, exists(other))
	assert.Equal(t, []string{root, other}, remover.Result.Removed)
}

func TestRemover_DryRun(t *testing.T) {
	root := writeTree(t)
	remover := NewRemover([]string{root}, nil, RemoveOptions{DryRun: true})

	require.NoError(t, job.New(remover).RunSync())
	assert.True(t, exists(root))
	assert.Equal(t, []string{root}, remover.Result.Removed)
}

func TestRemover_MovesToTrash(t *testing.T) {
	root := writeTree(t)
	trash := filepath.Join(t.TempDir(), "Trash", "files")

	remover := NewRemover([]string{root, root}, nil, RemoveOptions{TrashDir: trash})
	var reported int
	j := job.New(remover, job.WithErrorHandler(func(*job.Job, error, job.Severity) job.Action {
		reported++
		return job.ActionContinue
	}))

	require.NoError(t, j.RunSync())
	assert.False(t, exists(root))
	assert.Equal(t, []string{root}, remover.Result.Trashed)
	// the second rename fails because the path is already gone
	assert.Equal(t, []string{root}, remover.Result.Failed)
	assert.Equal(t, 1, reported)

	entries, err := os.ReadDir(trash)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), filepath.Base(root)+".")
}

func TestRemover_Confirmation(t *testing.T) {
	tests := []struct {
		name      string
		answers   []int
		noHandler bool
		removed   int
		kept      int
		wantState job.State
	}{
		{name: "yes to all", answers: []int{AnswerYes, AnswerYes}, removed: 2, wantState: job.StateFinished},
		{name: "no keeps the path", answers: []int{AnswerNo, AnswerYes}, removed: 1, kept: 1, wantState: job.StateFinished},
		{name: "cancel stops everything", answers: []int{AnswerCancel}, wantState: job.StateCancelled},
		{name: "unanswered cancels", noHandler: true, wantState: job.StateCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			paths := []string{filepath.Join(dir, "x"), filepath.Join(dir, "y")}
			for _, p := range paths {
				require.NoError(t, os.WriteFile(p, nil, 0o644))
			}

			remover := NewRemover(paths, nil, RemoveOptions{Confirm: true})
			var opts []job.Option
			if !tt.noHandler {
				asked := 0
				opts = append(opts, job.WithAskHandler(func(_ *job.Job, q job.Question) int {
					assert.Equal(t, "Remove "+paths[asked]+"?", q.Prompt)
					assert.Equal(t, []string{"Yes", "No", "Cancel"}, q.Options)
					answer := tt.answers[asked]
					asked++
					return answer
				}))
			}
			j := job.New(remover, opts...)

			require.NoError(t, j.RunSync())
			assert.Equal(t, tt.wantState, j.State())
			assert.Len(t, remover.Result.Removed, tt.removed)
			assert.Len(t, remover.Result.Kept, tt.kept)
		})
	}
}

func TestRemover_FailedChildKeepsParent(t *testing.T) {
	root := writeTree(t)

	fake := &platformfakes.FakeFilesystem{}
	fake.LstatCalls(os.Lstat)
	fake.ReadDirCalls(os.ReadDir)
	fake.RemoveCalls(func(name string) error {
		if filepath.Base(name) == "two.txt" {
			return os.ErrPermission
		}
		return os.Remove(name)
	})

	remover := NewRemover([]string{root}, fake, RemoveOptions{})
	j := job.New(remover, job.WithErrorHandler(func(*job.Job, error, job.Severity) job.Action {
		return job.ActionContinue
	}))

	require.NoError(t, j.RunSync())
	assert.Equal(t, []string{root}, remover.Result.Failed)
	assert.True(t, exists(filepath.Join(root, "a", "two.txt")))
	assert.False(t, exists(filepath.Join(root, "one.txt")))
	assert.True(t, exists(root))
}

func TestRemover_AbortReturnsError(t *testing.T) {
	fake := &platformfakes.FakeFilesystem{}
	fake.LstatReturns(nil, os.ErrPermission)

	remover := NewRemover([]string{"/nope", "/other"}, fake, RemoveOptions{})
	j := job.New(remover, job.WithErrorHandler(func(*job.Job, error, job.Severity) job.Action {
		return job.ActionAbort
	}))

	err := j.RunSync()
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Equal(t, job.StateCancelled, j.State())
	assert.Equal(t, []string{"/nope"}, remover.Result.Failed)
	assert.Equal(t, 1, fake.LstatCallCount())
}
