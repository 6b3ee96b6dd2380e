// Package loop provides the owner side of fmjob jobs: a single-goroutine
// callback queue that can be run at top level or pumped from inside one of
// its own callbacks.
package loop

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/ehsaniara/fmjob/pkg/errors"
	"github.com/ehsaniara/fmjob/pkg/logger"
)

// Loop is an unbounded FIFO of callbacks executed by whichever goroutine
// calls Run or Pump. Only one goroutine may drive a loop.
type Loop struct {
	mu     sync.Mutex
	queue  []func()
	closed bool

	wake      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
	quit      atomic.Bool

	dispatched  atomic.Uint64
	depth       atomic.Int32
	warnPending int

	logger *logger.Logger
}

type Option func(*Loop)

func WithLogger(l *logger.Logger) Option {
	return func(lp *Loop) {
		if l != nil {
			lp.logger = l.WithComponent("loop")
		}
	}
}

// WithPendingWarning logs a warning each time the queue grows to a multiple
// of n. Zero disables the warning.
func WithPendingWarning(n int) Option {
	return func(lp *Loop) { lp.warnPending = n }
}

func New(opts ...Option) *Loop {
	l := &Loop{
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		logger: logger.WithComponent("loop"),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Post queues fn. It never blocks and fails only after Close.
func (l *Loop) Post(fn func()) error {
	if fn == nil {
		return nil
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return errors.ErrLoopClosed
	}
	l.queue = append(l.queue, fn)
	pending := len(l.queue)
	l.mu.Unlock()

	l.signal()

	if l.warnPending > 0 && pending%l.warnPending == 0 {
		l.logger.Warn("callback queue is growing", "pending", pending)
	}
	return nil
}

// Done is closed by Close.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run dispatches callbacks until ctx is done, Quit is called or the loop
// is closed. Quit makes Run return nil.
func (l *Loop) Run(ctx context.Context) error {
	l.depth.Add(1)
	defer l.depth.Add(-1)

	for {
		if l.quit.CompareAndSwap(true, false) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if fn, ok := l.next(); ok {
			l.dispatch(fn)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return errors.ErrLoopClosed
		case <-l.wake:
		}
	}
}

// Quit makes the innermost Run return after the current callback. Pump
// is not affected.
func (l *Loop) Quit() {
	l.quit.Store(true)
	l.signal()
}

// Pump dispatches callbacks until until is closed. It is meant to be called
// from inside a callback (or before Run) on the goroutine driving the loop.
func (l *Loop) Pump(until <-chan struct{}) error {
	l.depth.Add(1)
	defer l.depth.Add(-1)

	for {
		select {
		case <-until:
			return nil
		default:
		}

		if fn, ok := l.next(); ok {
			l.dispatch(fn)
			continue
		}

		select {
		case <-until:
			return nil
		case <-l.done:
			return errors.ErrLoopClosed
		case <-l.wake:
		}
	}
}

// Close stops accepting callbacks and drops the pending ones. Blocked
// Run and Pump calls return ErrLoopClosed.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		l.mu.Lock()
		l.closed = true
		dropped := len(l.queue)
		l.queue = nil
		l.mu.Unlock()

		close(l.done)
		if dropped > 0 {
			l.logger.Debug("dropped pending callbacks", "count", dropped)
		}
	})
}

// Pending returns the number of queued callbacks.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Dispatched returns the number of callbacks executed so far.
func (l *Loop) Dispatched() uint64 {
	return l.dispatched.Load()
}

// Depth is the number of active Run and Pump frames.
func (l *Loop) Depth() int {
	return int(l.depth.Load())
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.queue) == 0 {
		return nil, false
	}
	fn := l.queue[0]
	l.queue[0] = nil
	l.queue = l.queue[1:]
	return fn, true
}

func (l *Loop) dispatch(fn func()) {
	defer l.dispatched.Add(1)
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("callback panicked", "panic", r, "stack", string(debug.Stack()))
		}
	}()
	fn()
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}
