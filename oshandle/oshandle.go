package oshandle

import (
	"errors"
	"sync/atomic"
)

var (
	// ErrClosed is returned when a descriptor is closed a second time.
	ErrClosed = errors.New("oshandle: descriptor already closed")
	// ErrUnsupported is returned by System on platforms without OS handle support.
	ErrUnsupported = errors.New("oshandle: unsupported platform")
)

// Descriptor is an exclusively owned OS handle.
type Descriptor interface {
	// Fd returns the raw handle value. It is meaningless after Close.
	Fd() uintptr
	// Close returns the handle to the system. Only the first call closes.
	Close() error
}

// Acquirer obtains descriptors.
type Acquirer interface {
	Acquire() (Descriptor, error)
}

// AcquirerFunc adapts a function to the Acquirer interface.
type AcquirerFunc func() (Descriptor, error)

// Acquire implements Acquirer.
func (f AcquirerFunc) Acquire() (Descriptor, error) { return f() }

// System acquires real OS handles.
var System Acquirer = systemAcquirer{}

type systemAcquirer struct{}

func (systemAcquirer) Acquire() (Descriptor, error) {
	fd, err := osOpen()
	if err != nil {
		return nil, err
	}
	return &sysDescriptor{fd: fd}, nil
}

type sysDescriptor struct {
	fd     uintptr
	closed atomic.Bool
}

func (d *sysDescriptor) Fd() uintptr { return d.fd }

func (d *sysDescriptor) Close() error {
	if d.closed.Swap(true) {
		return ErrClosed
	}
	return osClose(d.fd)
}

// Valid reports whether fd currently refers to an open OS handle.
//
// A closed handle number may be reused by the kernel, so a true result after
// Close says nothing about the descriptor that was closed.
func Valid(fd uintptr) bool {
	return osValid(fd)
}
