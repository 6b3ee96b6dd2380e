package tasks

import (
	"github.com/ehsaniara/fmjob/pkg/job"
)

// maxAttempts bounds how often a single operation is retried when the owner
// keeps answering Retry.
const maxAttempts = 3

type outcome int

const (
	done outcome = iota
	skipped
	aborted
)

// attempt runs op and escalates its failures through the job until op
// succeeds, the owner gives up on it, or the job is aborted.
func attempt(j *job.Job, op func() error) (outcome, error) {
	for try := 1; ; try++ {
		err := op()
		if err == nil {
			return done, nil
		}

		switch j.EmitError(err, job.SeverityFor(err)) {
		case job.ActionRetry:
			if try < maxAttempts && !j.IsCancelled() {
				continue
			}
			return skipped, err
		case job.ActionContinue:
			return skipped, err
		default:
			return aborted, err
		}
	}
}
