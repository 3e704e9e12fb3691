// Package disposable provides a handle that owns a heap buffer and a scarce
// OS handle, with an idempotent explicit release and a runtime-driven fallback.
//
// # Quick Start
//
//	h, err := disposable.New(disposable.WithSize(4 << 20))
//	if err != nil {
//	    return err // *disposable.AcquisitionError
//	}
//	defer h.Release()
//
//	buf := h.Bytes()
//	fd, _ := h.Fd()
//
// # Release Paths
//
// A Handle moves from live to released exactly once, on whichever path runs
// first:
//
//	Release()          explicit, deterministic; drops the buffer, closes the
//	                   OS handle, cancels the runtime cleanup
//	runtime cleanup    registered with runtime.AddCleanup; runs after the
//	                   Handle became unreachable without Release and closes
//	                   the OS handle only (the buffer is garbage already)
//
// Both paths race on a single atomic compare-and-swap, so the OS handle is
// closed at most once no matter how many times Release is called or whether
// the cleanup fires concurrently.
//
// # Errors
//
// New returns *AcquisitionError when budget or the OS handle cannot be
// obtained, or when the size is invalid; nothing stays allocated. Release
// returns *ReleaseError when the OS handle could not be closed. A failed fallback close has no caller, so it is
// logged through the configured Logger and delivered to the Observer as
// EventReleaseFailed, followed by EventFallback carrying the same error.
//
// Releasing twice is not an error.
//
// # Observability
//
// Every step actually performed emits an Event to the configured Observer:
// EventConstructed, EventBufferCleared, EventHandleReleased,
// EventReleaseFailed and EventFallback. Recorder collects them in memory.
//
// # Budgets
//
// WithController charges buffer bytes and one OS handle slot against a
// resource.Controller, which can cap memory, open handles and acquisition
// rate across many handles.
package disposable
