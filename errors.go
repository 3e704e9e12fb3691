package disposable

import (
	"errors"
	"fmt"
)

var (
	// ErrAcquisition matches every *AcquisitionError via errors.Is.
	ErrAcquisition = errors.New("handle acquisition failed")

	// ErrRelease matches every *ReleaseError via errors.Is.
	ErrRelease = errors.New("handle release failed")

	// ErrReleased is returned when accessing a handle after it was released.
	ErrReleased = errors.New("handle already released")

	// ErrInvalidSize is returned when a negative buffer size is configured.
	ErrInvalidSize = errors.New("invalid buffer size")
)

// AcquisitionError indicates that a handle could not be constructed.
// Nothing the construction acquired is left allocated or reserved.
//
// The original underlying error can be accessed via errors.Unwrap.
type AcquisitionError struct {
	Size  int
	cause error
}

func (e *AcquisitionError) Error() string {
	return fmt.Sprintf("acquire handle (size %d): %v", e.Size, e.cause)
}

func (e *AcquisitionError) Unwrap() error { return e.cause }

// Is reports whether target is ErrAcquisition.
func (e *AcquisitionError) Is(target error) bool { return target == ErrAcquisition }

// ReleaseError indicates that the OS handle could not be returned to the system.
// The handle is still marked released; the close is never retried.
//
// The original underlying error can be accessed via errors.Unwrap.
type ReleaseError struct {
	ID       uint64
	Fd       uintptr
	Fallback bool // true if raised on the cleanup path
	cause    error
}

func (e *ReleaseError) Error() string {
	path := "explicit"
	if e.Fallback {
		path = "fallback"
	}
	return fmt.Sprintf("release handle %d (fd %d, %s): %v", e.ID, e.Fd, path, e.cause)
}

func (e *ReleaseError) Unwrap() error { return e.cause }

// Is reports whether target is ErrRelease.
func (e *ReleaseError) Is(target error) bool { return target == ErrRelease }
