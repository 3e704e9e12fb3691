package disposable

import (
	"context"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/disposable/internal/mem"
	"github.com/hupe1980/disposable/oshandle"
	"github.com/hupe1980/disposable/resource"
)

var nextID atomic.Uint64

// Handle owns a heap buffer and an OS handle.
//
// Call Release when done. A Handle that becomes unreachable without Release
// still has its OS handle closed by a runtime cleanup, at some unspecified
// time after the next garbage collection.
//
// All methods are safe for concurrent use.
type Handle struct {
	mu  sync.Mutex
	buf []byte

	state   *state
	cleanup runtime.Cleanup
}

// state is what the fallback path runs on. It must never reference the
// Handle: a cleanup whose argument reaches its object never runs.
type state struct {
	id       uint64
	size     int
	released atomic.Bool
	desc     oshandle.Descriptor
	ctrl     *resource.Controller
	logger   *Logger
	observer Observer
	stack    []uintptr
}

// New acquires an OS handle and allocates the buffer.
//
// On failure it returns an *AcquisitionError and holds nothing: no buffer is
// allocated and any budget reserved on the controller is returned. Sizes that
// are negative or too large to allocate fail with ErrInvalidSize before any
// budget or OS handle is taken.
func New(opts ...Option) (*Handle, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	ctx := context.Background()

	if o.size < 0 || o.size > math.MaxInt-mem.Alignment {
		err := &AcquisitionError{Size: o.size, cause: ErrInvalidSize}
		o.logger.LogAcquire(ctx, 0, o.size, err)
		return nil, err
	}

	desc, err := acquire(&o)
	if err != nil {
		err = &AcquisitionError{Size: o.size, cause: err}
		o.logger.LogAcquire(ctx, 0, o.size, err)
		return nil, err
	}

	s := &state{
		id:       nextID.Add(1),
		size:     o.size,
		desc:     desc,
		ctrl:     o.controller,
		logger:   o.logger,
		observer: o.observer,
	}
	if o.leakStacks {
		var pcs [32]uintptr
		n := runtime.Callers(2, pcs[:])
		s.stack = append([]uintptr(nil), pcs[:n]...)
	}

	h := &Handle{
		buf:   mem.AllocAligned(o.size),
		state: s,
	}
	h.cleanup = runtime.AddCleanup(h, (*state).fallbackRelease, s)

	s.emit(EventConstructed, nil)
	o.logger.LogAcquire(ctx, s.id, s.size, nil)

	return h, nil
}

// acquire reserves budget and obtains the descriptor, undoing the
// reservations if a later step fails.
func acquire(o *options) (oshandle.Descriptor, error) {
	if err := o.controller.AllowAcquire(); err != nil {
		return nil, err
	}
	if err := o.controller.AcquireHandle(); err != nil {
		return nil, err
	}
	if err := o.controller.AcquireMemory(int64(o.size)); err != nil {
		o.controller.ReleaseHandle()
		return nil, err
	}

	desc, err := o.acquirer.Acquire()
	if err != nil {
		o.controller.ReleaseMemory(int64(o.size))
		o.controller.ReleaseHandle()
		return nil, err
	}
	return desc, nil
}

// Release drops the buffer and closes the OS handle.
//
// Only the first call does anything; later calls return nil. If closing the
// OS handle fails, the *ReleaseError is returned once and the close is not
// retried. After Release the runtime cleanup is cancelled.
//
// A nil or zero-value Handle holds nothing; Release on it returns nil.
func (h *Handle) Release() error {
	if h.empty() {
		return nil
	}

	s := h.state
	if !s.released.CompareAndSwap(false, true) {
		return nil
	}
	h.cleanup.Stop()

	h.mu.Lock()
	cleared := h.buf != nil
	h.buf = nil
	h.mu.Unlock()

	if cleared {
		s.emit(EventBufferCleared, nil)
	}

	err := s.release(false)
	if err == nil {
		s.emit(EventHandleReleased, nil)
	}
	s.logger.LogRelease(context.Background(), s.id, err)

	// h must stay reachable until the state transition is complete.
	runtime.KeepAlive(h)

	return err
}

// Released reports whether the handle was released by either path.
// A nil or zero-value Handle reports true: it holds nothing.
func (h *Handle) Released() bool {
	if h.empty() {
		return true
	}
	return h.state.released.Load()
}

// ID returns the process-unique handle ID used in events and logs.
// It is 0 for a Handle not obtained from New.
func (h *Handle) ID() uint64 {
	if h.empty() {
		return 0
	}
	return h.state.id
}

// Size returns the configured buffer size.
func (h *Handle) Size() int {
	if h.empty() {
		return 0
	}
	return h.state.size
}

// Bytes returns the buffer, or nil once the handle was released.
// The slice must not be used after Release.
func (h *Handle) Bytes() []byte {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.buf
}

// Fd returns the raw OS handle value.
// Returns ErrReleased once the handle was released.
func (h *Handle) Fd() (uintptr, error) {
	if h.Released() {
		return 0, ErrReleased
	}
	return h.state.desc.Fd(), nil
}

// empty reports whether h was not constructed by New.
func (h *Handle) empty() bool {
	return h == nil || h.state == nil
}

// fallbackRelease runs on the runtime's cleanup goroutine once the Handle is
// unreachable. The buffer is not touched: it is garbage too.
//
// EventFallback is emitted whenever this path wins, after any
// EventReleaseFailed, so it is always the last event of the handle.
func (s *state) fallbackRelease() {
	if !s.released.CompareAndSwap(false, true) {
		return
	}

	err := s.release(true)
	s.emit(EventFallback, err)
	s.logger.LogFallback(context.Background(), s.id, s.stack, err)
}

// release closes the descriptor and returns budget. Callers must have won
// the released flag.
func (s *state) release(fallback bool) error {
	fd := s.desc.Fd()
	err := s.desc.Close()

	s.ctrl.ReleaseMemory(int64(s.size))
	s.ctrl.ReleaseHandle()

	if err != nil {
		rerr := &ReleaseError{ID: s.id, Fd: fd, Fallback: fallback, cause: err}
		s.emit(EventReleaseFailed, rerr)
		return rerr
	}
	return nil
}

func (s *state) emit(kind EventKind, err error) {
	e := Event{
		Kind: kind,
		ID:   s.id,
		Fd:   s.desc.Fd(),
		Size: s.size,
		Err:  err,
	}
	if kind == EventFallback {
		e.Stack = s.stack
	}
	s.observer.Observe(e)
}
