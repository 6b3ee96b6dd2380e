package job

import (
	"fmt"

	"github.com/ehsaniara/fmjob/pkg/errors"
)

// RunAsync hands the job to its executor and returns at once. The terminal
// event is delivered on the owner, after which the job releases itself.
func (j *Job) RunAsync() error {
	if j.owner == nil {
		return errors.NewProtocolError("run async", errors.ErrNoOwner)
	}
	if err := j.claim("run async"); err != nil {
		return err
	}

	j.mu.Lock()
	j.autoRelease = true
	j.mu.Unlock()

	if err := j.executor.Submit(j.execute); err != nil {
		j.unclaim()
		return fmt.Errorf("submit job %s: %w", j.id, err)
	}
	return nil
}

// RunSync runs the job on the calling goroutine, which also plays the owner:
// owner calls, error reports, questions and events execute inline. It
// returns the runner's error. The caller releases the job.
func (j *Job) RunSync() error {
	if err := j.claim("run sync"); err != nil {
		return err
	}

	j.mu.Lock()
	j.inline = true
	j.mu.Unlock()

	j.execute()
	return j.Err()
}

// RunSyncWithLoop runs the job on another goroutine and pumps the owner
// until the terminal event has been dispatched. It must be called on the
// owner goroutine. The caller releases the job. If the owner closes while
// pumping, it waits for the worker and returns the owner's error.
func (j *Job) RunSyncWithLoop() error {
	pumper, ok := j.owner.(Pumper)
	if !ok {
		return errors.NewProtocolError("run sync with loop", errors.ErrNoOwner)
	}
	if err := j.claim("run sync with loop"); err != nil {
		return err
	}

	terminal := make(chan struct{})
	j.mu.Lock()
	j.onTerminal = func() { close(terminal) }
	j.mu.Unlock()

	if err := j.executor.Submit(j.execute); err != nil {
		j.unclaim()
		return fmt.Errorf("submit job %s: %w", j.id, err)
	}

	if err := pumper.Pump(terminal); err != nil {
		// The owner shut down. Its bridge calls fail from now on, so the
		// worker winds down; wait for it and finish the job here in case the
		// terminal callback was dropped with the queue.
		<-j.exited
		j.complete()
		return err
	}
	return j.Err()
}
