package job

import (
	"sync"
	"time"

	"github.com/ehsaniara/fmjob/pkg/errors"
)

// EventKind identifies what happened to a job
type EventKind string

const (
	EventFinished  EventKind = "job.finished"
	EventCancelled EventKind = "job.cancelled"
	EventError     EventKind = "job.error"
	EventAsk       EventKind = "job.ask"
)

var knownKinds = map[EventKind]bool{
	EventFinished:  true,
	EventCancelled: true,
	EventError:     true,
	EventAsk:       true,
}

// Event is delivered to subscribers on the owner goroutine. Err, Severity
// and Action are set for EventError; Question and Answer for EventAsk.
type Event struct {
	Kind      EventKind
	Job       *Job
	Timestamp time.Time

	Err      error
	Severity Severity
	Action   Action

	Question Question
	Answer   int
}

// EventHandler observes job events. It must not block the owner.
type EventHandler func(Event)

// SubscriptionID identifies a registered handler for Unsubscribe.
type SubscriptionID uint64

type subscription struct {
	id      SubscriptionID
	handler EventHandler
}

// registry keeps handlers per event kind in subscription order
type registry struct {
	mu       sync.RWMutex
	handlers map[EventKind][]subscription
	nextID   SubscriptionID
	closed   bool
}

func (r *registry) subscribe(kind EventKind, h EventHandler) (SubscriptionID, error) {
	if !knownKinds[kind] {
		return 0, errors.NewProtocolError("subscribe", errors.ErrUnknownEvent)
	}
	if h == nil {
		return 0, errors.NewProtocolError("subscribe", errors.New("nil event handler"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, errors.NewProtocolError("subscribe", errors.ErrReleased)
	}
	if r.handlers == nil {
		r.handlers = make(map[EventKind][]subscription)
	}

	r.nextID++
	r.handlers[kind] = append(r.handlers[kind], subscription{id: r.nextID, handler: h})
	return r.nextID, nil
}

func (r *registry) unsubscribe(id SubscriptionID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for kind, subs := range r.handlers {
		for i, sub := range subs {
			if sub.id == id {
				r.handlers[kind] = append(subs[:i:i], subs[i+1:]...)
				return true
			}
		}
	}
	return false
}

func (r *registry) publish(ev Event) {
	r.mu.RLock()
	subs := r.handlers[ev.Kind]
	r.mu.RUnlock()

	for _, sub := range subs {
		sub.handler(ev)
	}
}

func (r *registry) close() {
	r.mu.Lock()
	r.closed = true
	r.handlers = nil
	r.mu.Unlock()
}

// Subscribe registers h for events of the given kind. Handlers should be
// added and removed on the owner goroutine, before the job is launched or
// from inside other callbacks.
func (j *Job) Subscribe(kind EventKind, h EventHandler) (SubscriptionID, error) {
	return j.events.subscribe(kind, h)
}

// Unsubscribe removes a handler. It reports whether the id was registered.
func (j *Job) Unsubscribe(id SubscriptionID) bool {
	return j.events.unsubscribe(id)
}

func (j *Job) publish(ev Event) {
	ev.Job = j
	ev.Timestamp = time.Now()
	j.events.publish(ev)
}
