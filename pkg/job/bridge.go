package job

import (
	"fmt"

	"github.com/ehsaniara/fmjob/pkg/errors"
)

// request is a single call waiting to run on the owner.
type request struct {
	fn     func() any
	result any
	err    error
	done   chan struct{}
}

func (r *request) execute() {
	defer close(r.done)
	defer func() {
		if p := recover(); p != nil {
			r.err = fmt.Errorf("owner call panicked: %v", p)
		}
	}()
	r.result = r.fn()
}

// bridge carries calls from the worker goroutine to the owner and blocks
// until they have run there.
type bridge struct {
	owner Dispatcher
}

func (b *bridge) call(fn func() any) (any, error) {
	req := &request{fn: fn, done: make(chan struct{})}

	if err := b.owner.Post(req.execute); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrOwnerClosed, err)
	}

	select {
	case <-req.done:
		return req.result, req.err
	case <-b.owner.Done():
		// the owner might have run the request on its way out
		select {
		case <-req.done:
			return req.result, req.err
		default:
			return nil, errors.ErrOwnerClosed
		}
	}
}

// CallOnOwner runs fn(j) on the owner goroutine and returns its result. It
// blocks the calling worker until fn has run. In RunSync mode fn runs
// directly. fn must never wait for this job's worker.
func (j *Job) CallOnOwner(fn func(*Job) any) (any, error) {
	if !j.IsRunning() {
		return nil, errors.NewProtocolError("call on owner", errors.ErrNotRunning)
	}
	if j.isInline() {
		return fn(j), nil
	}
	return j.getBridge().call(func() any { return fn(j) })
}

// Call is the typed form of CallOnOwner.
func Call[T any](j *Job, fn func(*Job) T) (T, error) {
	var zero T

	v, err := j.CallOnOwner(func(j *Job) any { return fn(j) })
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, nil
	}
	return t, nil
}

func (j *Job) getBridge() *bridge {
	j.bridgeOnce.Do(func() {
		j.bridge = &bridge{owner: j.owner}
	})
	return j.bridge
}
