// Package pool runs submitted tasks on background goroutines with bounded
// concurrency. A *Pool is a job.Executor.
package pool

import (
	"context"
	"runtime"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/ehsaniara/fmjob/pkg/errors"
	"github.com/ehsaniara/fmjob/pkg/logger"
)

// Pool bounds how many tasks run at once. Submit never blocks: tasks beyond
// the bound wait on the semaphore in their own goroutine.
type Pool struct {
	size   int
	sem    *semaphore.Weighted
	logger *logger.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup

	// Metrics
	active    atomic.Int32
	submitted atomic.Uint64
	completed atomic.Uint64
	panics    atomic.Uint64
}

type Option func(*Pool)

// WithSize sets the maximum number of concurrently running tasks. Values
// below one fall back to the number of CPUs.
func WithSize(n int) Option {
	return func(p *Pool) { p.size = n }
}

func WithLogger(l *logger.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l.WithComponent("pool")
		}
	}
}

func New(opts ...Option) *Pool {
	p := &Pool{
		logger: logger.WithComponent("pool"),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.size <= 0 {
		p.size = runtime.NumCPU()
	}
	p.sem = semaphore.NewWeighted(int64(p.size))

	p.logger.Debug("worker pool created", "size", p.size)
	return p
}

// Submit schedules task. Every accepted task runs exactly once, even if Stop
// is called before it gets a worker.
func (p *Pool) Submit(task func()) error {
	if task == nil {
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.stopped {
		return errors.ErrPoolStopped
	}

	p.wg.Add(1)
	p.submitted.Add(1)
	go p.run(task)
	return nil
}

func (p *Pool) run(task func()) {
	defer p.wg.Done()

	// Acquire only fails with a cancelled context
	_ = p.sem.Acquire(context.Background(), 1)
	defer p.sem.Release(1)

	p.active.Add(1)
	defer p.active.Add(-1)
	defer p.completed.Add(1)

	defer func() {
		if r := recover(); r != nil {
			p.panics.Add(1)
			p.logger.Error("task panicked", "panic", r, "stack", string(debug.Stack()))
		}
	}()

	task()
}

// Stop rejects new tasks and waits for the accepted ones to finish or for
// ctx to be done.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(finished)
	}()

	select {
	case <-finished:
		p.logger.Debug("worker pool stopped", "completed", p.completed.Load())
		return nil
	case <-ctx.Done():
		p.logger.Warn("worker pool stop timed out", "active", p.active.Load())
		return ctx.Err()
	}
}

func (p *Pool) Size() int { return p.size }

// Active returns the number of tasks currently running.
func (p *Pool) Active() int { return int(p.active.Load()) }

func (p *Pool) Submitted() uint64 { return p.submitted.Load() }

func (p *Pool) Completed() uint64 { return p.completed.Load() }

// Panics counts tasks that ended in a recovered panic.
func (p *Pool) Panics() uint64 { return p.panics.Load() }
