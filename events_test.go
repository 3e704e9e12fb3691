package disposable

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "constructed", EventConstructed.String())
	assert.Equal(t, "buffer-cleared", EventBufferCleared.String())
	assert.Equal(t, "handle-released", EventHandleReleased.String())
	assert.Equal(t, "release-failed", EventReleaseFailed.String())
	assert.Equal(t, "fallback", EventFallback.String())
	assert.Equal(t, "unknown", EventKind(0).String())
}

func TestRecorder(t *testing.T) {
	r := NewRecorder()

	r.Observe(Event{Kind: EventConstructed, ID: 1})
	r.Observe(Event{Kind: EventConstructed, ID: 2})
	r.Observe(Event{Kind: EventFallback, ID: 1})

	assert.Len(t, r.Events(), 3)
	assert.Equal(t, 2, r.Count(EventConstructed))
	assert.Equal(t, []EventKind{EventConstructed, EventFallback}, kinds(r.EventsFor(1)))

	select {
	case <-r.Notify():
	default:
		t.Fatal("expected a notification")
	}

	r.Reset()
	assert.Empty(t, r.Events())
}

func TestRecorder_Concurrent(t *testing.T) {
	r := NewRecorder()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Observe(Event{Kind: EventFallback, ID: uint64(i)})
		}()
	}
	wg.Wait()

	assert.Equal(t, 16, r.Count(EventFallback))
}

func TestObserverFunc(t *testing.T) {
	var got []EventKind
	obs := ObserverFunc(func(e Event) { got = append(got, e.Kind) })

	obs.Observe(Event{Kind: EventBufferCleared})
	NoopObserver{}.Observe(Event{Kind: EventFallback})

	assert.Equal(t, []EventKind{EventBufferCleared}, got)
}
