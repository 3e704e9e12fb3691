//go:build windows

package oshandle

import (
	"os"

	"golang.org/x/sys/windows"
)

// A manual-reset, unsignaled event is the cheapest kernel object to own.
func osOpen() (uintptr, error) {
	h, err := windows.CreateEvent(nil, 1, 0, nil)
	if err != nil {
		return 0, os.NewSyscallError("CreateEvent", err)
	}
	return uintptr(h), nil
}

func osClose(fd uintptr) error {
	if err := windows.CloseHandle(windows.Handle(fd)); err != nil {
		return os.NewSyscallError("CloseHandle", err)
	}
	return nil
}

func osValid(fd uintptr) bool {
	var flags uint32
	return windows.GetHandleInformation(windows.Handle(fd), &flags) == nil
}
