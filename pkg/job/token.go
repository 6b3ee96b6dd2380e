package job

import (
	"sync"
	"sync/atomic"
)

// Token is a shared, monotonic stop flag. Any number of jobs may reference
// the same Token; setting it cancels all of them without touching their own
// cancel flags.
type Token struct {
	set atomic.Bool

	mu     sync.Mutex
	hooks  map[uint64]func()
	nextID uint64
}

// NewToken returns an unset token.
func NewToken() *Token {
	return &Token{}
}

// Set marks the token. It is idempotent and irreversible, and safe to call
// from any goroutine.
func (t *Token) Set() {
	if !t.set.CompareAndSwap(false, true) {
		return
	}

	t.mu.Lock()
	hooks := t.hooks
	t.hooks = nil
	t.mu.Unlock()

	for _, hook := range hooks {
		hook()
	}
}

// IsSet reports whether Set has been called.
func (t *Token) IsSet() bool {
	return t.set.Load()
}

// onSet runs fn once the token is set, immediately if it already is.
// The returned function unregisters fn.
func (t *Token) onSet(fn func()) (stop func()) {
	t.mu.Lock()
	if t.set.Load() {
		t.mu.Unlock()
		fn()
		return func() {}
	}
	if t.hooks == nil {
		t.hooks = make(map[uint64]func())
	}
	t.nextID++
	id := t.nextID
	t.hooks[id] = fn
	t.mu.Unlock()

	return func() {
		t.mu.Lock()
		delete(t.hooks, id)
		t.mu.Unlock()
	}
}
