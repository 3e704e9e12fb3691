// Package oshandle acquires and releases scarce operating-system handles.
//
// A Descriptor is an exclusively owned capability to an external resource:
// a file descriptor on unix, an event object on windows. Descriptors returned
// by this package guard their own Close with an atomic flag, so a second
// Close reports ErrClosed instead of closing a handle number the kernel may
// already have handed to someone else.
//
// # Acquirers
//
//   - System: real OS handles (unix: /dev/null opened O_CLOEXEC, windows: CreateEvent)
//   - Memory: in-process fake descriptors that count open/close, for tests
//   - Faulty: wraps another Acquirer and injects acquire/close failures
//
// # Usage
//
//	d, err := oshandle.System.Acquire()
//	if err != nil { ... }
//	defer d.Close()
//
//	fd := d.Fd()
package oshandle
