//go:build !unix && !windows

package oshandle

func osOpen() (uintptr, error) { return 0, ErrUnsupported }

func osClose(uintptr) error { return ErrUnsupported }

func osValid(uintptr) bool { return false }
