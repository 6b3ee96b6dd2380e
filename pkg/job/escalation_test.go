package job_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ehsaniara/fmjob/pkg/errors"
	"github.com/ehsaniara/fmjob/pkg/job"
)

func TestEmitError_DefaultActions(t *testing.T) {
	tests := []struct {
		severity  job.Severity
		expected  job.Action
		cancelled bool
	}{
		{job.SeverityWarning, job.ActionContinue, false},
		{job.SeverityMild, job.ActionContinue, false},
		{job.SeverityModerate, job.ActionContinue, false},
		{job.SeveritySevere, job.ActionAbort, true},
		{job.SeverityCritical, job.ActionAbort, true},
	}

	for _, tt := range tests {
		t.Run(tt.severity.String(), func(t *testing.T) {
			var action job.Action
			j := job.New(job.RunnerFunc(func(_ context.Context, j *job.Job) error {
				action = j.EmitError(errors.New("oops"), tt.severity)
				return nil
			}))

			require.NoError(t, j.RunSync())
			assert.Equal(t, tt.expected, action)
			assert.Equal(t, tt.cancelled, j.IsCancelled())
		})
	}
}

func TestEmitError_CriticalIgnoresHandler(t *testing.T) {
	handled := 0
	var action job.Action
	j := job.New(job.RunnerFunc(func(_ context.Context, j *job.Job) error {
		action = j.EmitError(errors.New("disk gone"), job.SeverityCritical)
		return nil
	}), job.WithErrorHandler(func(*job.Job, error, job.Severity) job.Action {
		handled++
		return job.ActionContinue
	}))
	log := record(t, j, job.EventError, job.EventCancelled)

	require.NoError(t, j.RunSync())

	assert.Equal(t, 1, handled, "the handler is still consulted")
	assert.Equal(t, job.ActionAbort, action)
	assert.True(t, j.IsCancelled())
	assert.Equal(t, job.StateCancelled, j.State())
	require.Len(t, log.events, 2)
	assert.Equal(t, job.ActionAbort, log.events[0].Action)
	assert.Equal(t, job.SeverityCritical, log.events[0].Severity)
}

func TestEmitError_HandlerAbortOnModerate(t *testing.T) {
	l := newLoop()
	j := job.New(job.RunnerFunc(func(_ context.Context, j *job.Job) error {
		for i := 0; i < 10 && !j.IsCancelled(); i++ {
			j.EmitError(errors.WrapFilesystemError("/tmp/x", "stat", errors.ErrFilesystemFailed), job.SeverityModerate)
		}
		return nil
	}), job.WithOwner(l), job.WithErrorHandler(func(_ *job.Job, err error, sev job.Severity) job.Action {
		path, _ := errors.GetPath(err)
		assert.Equal(t, "/tmp/x", path)
		assert.Equal(t, job.SeverityModerate, sev)
		return job.ActionAbort
	}))
	log := record(t, j)

	require.NoError(t, j.RunAsync())
	runUntilDone(t, l, j)

	assert.Equal(t, 1, log.counts[job.EventError], "the runner stops after the first abort")
	assert.Equal(t, 1, log.counts[job.EventCancelled])
	assert.Equal(t, 0, log.counts[job.EventFinished])
	assert.Equal(t, job.EventCancelled, log.events[len(log.events)-1].Kind)
}

func TestEmitError_RetryIsReturnedNotLooped(t *testing.T) {
	handled := 0
	var actions []job.Action
	j := job.New(job.RunnerFunc(func(_ context.Context, j *job.Job) error {
		for attempt := 0; attempt < 3; attempt++ {
			action := j.EmitError(errors.ErrTimeout, job.SeverityModerate)
			actions = append(actions, action)
			if action != job.ActionRetry {
				break
			}
		}
		return nil
	}), job.WithErrorHandler(func(*job.Job, error, job.Severity) job.Action {
		handled++
		if handled < 3 {
			return job.ActionRetry
		}
		return job.ActionContinue
	}))

	require.NoError(t, j.RunSync())
	assert.Equal(t, []job.Action{job.ActionRetry, job.ActionRetry, job.ActionContinue}, actions)
	assert.Equal(t, 3, handled)
	assert.Equal(t, job.StateFinished, j.State())
}

func TestEmitError_InvalidHandlerActionFallsBack(t *testing.T) {
	var action job.Action
	j := job.New(job.RunnerFunc(func(_ context.Context, j *job.Job) error {
		action = j.EmitError(errors.New("odd"), job.SeverityMild)
		return nil
	}), job.WithErrorHandler(func(*job.Job, error, job.Severity) job.Action {
		return job.Action(42)
	}))

	require.NoError(t, j.RunSync())
	assert.Equal(t, job.ActionContinue, action)
}

func TestEmitError_NotRunning(t *testing.T) {
	handled := false
	j := job.New(job.RunnerFunc(func(context.Context, *job.Job) error { return nil }),
		job.WithErrorHandler(func(*job.Job, error, job.Severity) job.Action {
			handled = true
			return job.ActionContinue
		}))

	assert.Equal(t, job.ActionAbort, j.EmitError(errors.New("early"), job.SeverityWarning))
	assert.False(t, handled)
	assert.False(t, j.IsCancelled())
}

func TestSetErrorHandler(t *testing.T) {
	var action job.Action
	j := job.New(job.RunnerFunc(func(_ context.Context, j *job.Job) error {
		action = j.EmitError(errors.New("x"), job.SeverityWarning)
		return nil
	}))
	j.SetErrorHandler(func(*job.Job, error, job.Severity) job.Action { return job.ActionRetry })

	require.NoError(t, j.RunSync())
	assert.Equal(t, job.ActionRetry, action)
}

func TestAsk_AnsweredByHandler(t *testing.T) {
	l := newLoop()
	var answer int
	j := job.New(job.RunnerFunc(func(_ context.Context, j *job.Job) error {
		answer = j.Ask("Overwrite?", "Yes", "No")
		return nil
	}), job.WithOwner(l), job.WithAskHandler(func(_ *job.Job, q job.Question) int {
		assert.Equal(t, "Overwrite?", q.Prompt)
		assert.Equal(t, []string{"Yes", "No"}, q.Options)
		return 1
	}))
	log := record(t, j, job.EventAsk)

	require.NoError(t, j.RunAsync())
	runUntilDone(t, l, j)

	assert.Equal(t, 1, answer)
	require.Len(t, log.events, 1)
	assert.Equal(t, 1, log.events[0].Answer)
	assert.Equal(t, "Overwrite?", log.events[0].Question.Prompt)
}

func TestAskQuestion_Unanswered(t *testing.T) {
	tests := []struct {
		name        string
		handler     job.AskHandler
		cancelFirst bool
		expectedErr error
	}{
		{name: "no handler"},
		{
			name:        "out of range",
			handler:     func(*job.Job, job.Question) int { return 5 },
			expectedErr: errors.ErrInvalidAnswer,
		},
		{
			name:    "negative",
			handler: func(*job.Job, job.Question) int { return -7 },

			expectedErr: errors.ErrInvalidAnswer,
		},
		{
			name:        "cancelled before asking",
			handler:     func(*job.Job, job.Question) int { return 0 },
			cancelFirst: true,
		},
		{
			name: "cancelled while waiting",
			handler: func(j *job.Job, _ job.Question) int {
				j.RequestCancel()
				return 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				answer int
				err    error
			)
			j := job.New(job.RunnerFunc(func(_ context.Context, j *job.Job) error {
				if tt.cancelFirst {
					j.RequestCancel()
				}
				answer, err = j.AskQuestion(job.Question{Prompt: "Pick", Options: []string{"a", "b"}})
				return nil
			}), job.WithAskHandler(tt.handler))

			require.NoError(t, j.RunSync())
			assert.Equal(t, job.NoAnswer, answer)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAskQuestion_NotRunning(t *testing.T) {
	j := job.New(job.RunnerFunc(func(context.Context, *job.Job) error { return nil }))

	answer, err := j.AskQuestion(job.Question{Prompt: "?", Options: []string{"ok"}})
	assert.Equal(t, job.NoAnswer, answer)
	assert.ErrorIs(t, err, errors.ErrNotRunning)
	assert.Equal(t, job.NoAnswer, j.Ask("?", "ok"))
}
