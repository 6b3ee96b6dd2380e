package jobs

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/ehsaniara/fmjob/internal/fmjob/common"
	"github.com/ehsaniara/fmjob/pkg/errors"
	"github.com/ehsaniara/fmjob/pkg/job"
)

// launcher starts a batch of jobs with one strategy and waits for all of
// them. Each job is released once it is terminal.
type launcher struct {
	rt      *common.Runtime
	mode    launchMode
	console *Console
}

func newLauncher(ctx context.Context, opts *launchOptions, in io.Reader, out io.Writer) (*launcher, func(), error) {
	opts.resolve()
	if err := validPolicy(opts.onError); err != nil {
		return nil, nil, err
	}

	rt := common.NewRuntime()
	stopSignal := rt.CancelOn(ctx)
	stopTimer := rt.CancelAfter(opts.timeout)

	cleanup := func() {
		stopSignal()
		stopTimer()
		if err := rt.Close(); err != nil {
			common.Log.Warn("worker pool did not stop cleanly", "error", err)
		}
	}

	return &launcher{
		rt:      rt,
		mode:    opts.mode(),
		console: NewConsole(in, out, opts.onError, opts.yes),
	}, cleanup, nil
}

// newJob wires r to the runtime and the console.
func (l *launcher) newJob(name string, r job.Runner) *job.Job {
	opts := append(l.rt.Options(),
		job.WithName(name),
		job.WithErrorHandler(l.console.HandleError),
		job.WithAskHandler(l.console.HandleAsk),
	)
	return job.New(r, opts...)
}

func (l *launcher) run(jobs []*job.Job) error {
	common.Log.Debug("launching jobs", "count", len(jobs), "mode", l.mode.String())

	switch l.mode {
	case modeSync:
		return l.runSync(jobs)
	case modePump:
		return l.runPump(jobs)
	default:
		return l.runAsync(jobs)
	}
}

func (l *launcher) runAsync(jobs []*job.Job) error {
	var g errgroup.Group
	var launchErr error

	for _, j := range jobs {
		j := j
		if err := j.RunAsync(); err != nil {
			launchErr = err
			l.rt.Token.Set()
			break
		}
		g.Go(func() error {
			<-j.Done()
			return jobError(j, j.Err())
		})
	}

	waitErr := make(chan error, 1)
	go func() {
		waitErr <- g.Wait()
		l.rt.Loop.Quit()
	}()

	// The loop must keep running until every terminal event is delivered,
	// so it is not tied to the signal context.
	if err := l.rt.Loop.Run(context.Background()); err != nil {
		return err
	}
	return errors.JoinErrors(launchErr, <-waitErr)
}

func (l *launcher) runSync(jobs []*job.Job) error {
	var errs []error
	for _, j := range jobs {
		errs = append(errs, jobError(j, j.RunSync()))
		if err := j.Release(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.JoinErrors(errs...)
}

func (l *launcher) runPump(jobs []*job.Job) error {
	var errs []error
	post := l.rt.Loop.Post(func() {
		defer l.rt.Loop.Quit()
		for _, j := range jobs {
			errs = append(errs, jobError(j, j.RunSyncWithLoop()))
			if err := j.Release(); err != nil {
				errs = append(errs, err)
			}
		}
	})
	if post != nil {
		return post
	}

	if err := l.rt.Loop.Run(context.Background()); err != nil {
		return err
	}
	return errors.JoinErrors(errs...)
}

// jobError tags a job's failure with its ID and name.
func jobError(j *job.Job, err error) error {
	return errors.WrapJobError(j.ID(), j.Name(), err)
}

func printState(w io.Writer, j *job.Job) {
	color, reset := getStateColor(j.State())
	fmt.Fprintf(w, "Job: %s\n", j.Name())
	fmt.Fprintf(w, "Status: %s%s%s\n", color, j.State(), reset)
}
