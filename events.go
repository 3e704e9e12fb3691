package disposable

import (
	"sync"
)

// EventKind identifies a lifecycle step.
type EventKind uint8

const (
	// EventConstructed is emitted once a handle holds both its buffer and OS handle.
	EventConstructed EventKind = iota + 1
	// EventBufferCleared is emitted by Release when it drops the buffer reference.
	EventBufferCleared
	// EventHandleReleased is emitted by Release when the OS handle was closed.
	EventHandleReleased
	// EventReleaseFailed is emitted when closing the OS handle failed, on either path.
	EventReleaseFailed
	// EventFallback is emitted when the runtime cleanup reclaimed an unreachable
	// handle, whether or not closing the OS handle succeeded.
	EventFallback
)

func (k EventKind) String() string {
	switch k {
	case EventConstructed:
		return "constructed"
	case EventBufferCleared:
		return "buffer-cleared"
	case EventHandleReleased:
		return "handle-released"
	case EventReleaseFailed:
		return "release-failed"
	case EventFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Event is a single lifecycle notification. Events are not persisted.
type Event struct {
	Kind  EventKind
	ID    uint64
	Fd    uintptr
	Size  int
	Err   error     // set for EventReleaseFailed, and for EventFallback when the close failed
	Stack []uintptr // acquisition stack for EventFallback, if captured
}

// Observer receives lifecycle events.
//
// Fallback events are delivered from the runtime's cleanup goroutine, which
// runs cleanups one at a time. Implementations must be safe for concurrent
// use and must not block.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Observe implements Observer.
func (f ObserverFunc) Observe(e Event) { f(e) }

// NoopObserver is a no-op implementation of Observer.
type NoopObserver struct{}

// Observe implements Observer.
func (NoopObserver) Observe(Event) {}

// Recorder keeps every event it observes in memory.
// Useful for tests and harnesses asserting release ordering.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	signal chan struct{}
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{signal: make(chan struct{}, 1)}
}

// Observe implements Observer.
func (r *Recorder) Observe(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()

	select {
	case r.signal <- struct{}{}:
	default:
	}
}

// Events returns a copy of the recorded events in observation order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// EventsFor returns the recorded events of handle id.
func (r *Recorder) EventsFor(id uint64) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.ID == id {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events of kind were recorded.
func (r *Recorder) Count(kind EventKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset discards all recorded events.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

// Notify returns a channel that receives after new events were recorded.
// Several events may coalesce into one notification.
func (r *Recorder) Notify() <-chan struct{} {
	return r.signal
}
