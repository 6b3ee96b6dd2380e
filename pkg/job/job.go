package job

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/ehsaniara/fmjob/pkg/errors"
)

// Job is one cancellable unit of work bound to an owner.
type Job struct {
	id       string
	name     string
	runner   Runner
	owner    Dispatcher
	executor Executor
	token    *Token

	cancelled atomic.Bool

	mu          sync.Mutex
	state       State
	started     bool
	released    bool
	inline      bool
	autoRelease bool
	err         error
	cancelCtx   context.CancelFunc
	onError     ErrorHandler
	onAsk       AskHandler
	onTerminal  func()

	bridgeOnce sync.Once
	bridge     *bridge

	events       registry
	done         chan struct{}
	exited       chan struct{}
	completeOnce sync.Once
}

// New creates a job in the Created state.
func New(r Runner, opts ...Option) *Job {
	j := &Job{
		id:       uuid.New().String(),
		runner:   r,
		executor: GoExecutor{},
		state:    StateCreated,
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(j)
	}
	if j.name == "" {
		j.name = j.id
	}
	return j
}

// ID returns the job's unique identifier.
func (j *Job) ID() string { return j.id }

// Name returns the display name, which defaults to the ID.
func (j *Job) Name() string { return j.name }

// Token returns the shared token the job observes, or nil.
func (j *Job) Token() *Token { return j.token }

func (j *Job) State() State {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.state
}

// IsRunning is true strictly between the start of execution and the
// terminal transition.
func (j *Job) IsRunning() bool {
	return j.State() == StateRunning
}

// IsCancelled reports whether the job was asked to stop, directly or
// through its token. Once true it stays true.
func (j *Job) IsCancelled() bool {
	if j.cancelled.Load() {
		return true
	}
	return j.token != nil && j.token.IsSet()
}

// RequestCancel asks the job to stop at its next safe point. It may be
// called from any goroutine and has no effect on a terminal job.
func (j *Job) RequestCancel() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.state.IsTerminal() {
		return
	}
	j.cancelled.Store(true)
	if j.cancelCtx != nil {
		j.cancelCtx()
	}
}

// Err returns what the runner returned. It is nil until the job is terminal.
func (j *Job) Err() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.err
}

// Done is closed once the terminal event has been delivered.
func (j *Job) Done() <-chan struct{} {
	return j.done
}

// Released reports whether the job has dropped its handlers and subscribers.
func (j *Job) Released() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.released
}

// Release drops the job's handlers and subscribers. Jobs launched with
// RunAsync are released automatically and must not be released by callers.
func (j *Job) Release() error {
	j.mu.Lock()
	if j.started && !j.state.IsTerminal() {
		j.mu.Unlock()
		return errors.NewProtocolError("release", errors.ErrJobRunning)
	}
	j.mu.Unlock()

	j.release()
	return nil
}

func (j *Job) release() {
	j.mu.Lock()
	if j.released {
		j.mu.Unlock()
		return
	}
	j.released = true
	j.runner = nil
	j.onError = nil
	j.onAsk = nil
	j.onTerminal = nil
	j.mu.Unlock()

	j.events.close()
}

// SetErrorHandler replaces the error handler. Call it on the owner.
func (j *Job) SetErrorHandler(h ErrorHandler) {
	j.mu.Lock()
	j.onError = h
	j.mu.Unlock()
}

// SetAskHandler replaces the ask handler. Call it on the owner.
func (j *Job) SetAskHandler(h AskHandler) {
	j.mu.Lock()
	j.onAsk = h
	j.mu.Unlock()
}

func (j *Job) errorHandler() ErrorHandler {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.onError
}

func (j *Job) askHandler() AskHandler {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.onAsk
}

func (j *Job) isInline() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.inline
}

// claim marks the job as started, once.
func (j *Job) claim(op string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.released {
		return errors.NewProtocolError(op, errors.ErrReleased)
	}
	if j.started || j.state != StateCreated {
		return errors.NewProtocolError(op, errors.ErrAlreadyStarted)
	}
	if j.runner == nil {
		return errors.NewProtocolError(op, errors.New("job has no runner"))
	}
	j.started = true
	return nil
}

// unclaim undoes claim when the work could not be handed over.
func (j *Job) unclaim() {
	j.mu.Lock()
	j.started = false
	j.inline = false
	j.autoRelease = false
	j.onTerminal = nil
	j.mu.Unlock()
}

// begin moves the job to Running and prepares the runner's context. It
// reports false when the job was cancelled before it could start.
func (j *Job) begin() (context.Context, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.IsCancelled() {
		return nil, false
	}

	ctx, cancel := context.WithCancel(context.Background())
	j.cancelCtx = cancel
	j.state = StateRunning
	return ctx, true
}

func (j *Job) cancelContext() {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.cancelCtx != nil {
		j.cancelCtx()
	}
}

// execute is the whole worker side of a run.
func (j *Job) execute() {
	defer close(j.exited)

	if ctx, ok := j.begin(); ok {
		var stop func()
		if j.token != nil {
			stop = j.token.onSet(j.cancelContext)
		}

		err := j.runSafely(ctx)

		if stop != nil {
			stop()
		}
		j.mu.Lock()
		j.err = err
		j.mu.Unlock()
	}

	j.deliverTerminal(j.finish())
}

func (j *Job) runSafely(ctx context.Context) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("job %s panicked: %v", j.id, p)
		}
	}()

	j.mu.Lock()
	runner := j.runner
	j.mu.Unlock()

	return runner.Run(ctx, j)
}

// finish marks the terminal state.
func (j *Job) finish() State {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cancelCtx != nil {
		j.cancelCtx()
		j.cancelCtx = nil
	}

	if j.IsCancelled() {
		j.state = StateCancelled
	} else {
		j.state = StateFinished
	}
	return j.state
}

// deliverTerminal publishes the finished or cancelled event on the owner,
// then releases the job if the async path owns it.
func (j *Job) deliverTerminal(state State) {
	kind := EventFinished
	if state == StateCancelled {
		kind = EventCancelled
	}

	j.mu.Lock()
	inline := j.inline
	j.mu.Unlock()

	deliver := func() {
		j.publish(Event{Kind: kind})
		j.complete()
	}

	if inline {
		deliver()
		return
	}
	if err := j.owner.Post(deliver); err != nil {
		// nobody is left to observe the event
		j.complete()
	}
}

// complete runs at most once, even when both the owner and a failed pump
// try to finish the job.
func (j *Job) complete() {
	j.completeOnce.Do(j.finalize)
}

func (j *Job) finalize() {
	j.mu.Lock()
	hook := j.onTerminal
	autoRelease := j.autoRelease
	j.mu.Unlock()

	close(j.done)
	if hook != nil {
		hook()
	}
	if autoRelease {
		j.release()
	}
}

func (j *Job) String() string {
	return fmt.Sprintf("job %s (%s)", j.name, j.State())
}
