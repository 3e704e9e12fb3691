package oshandle

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrInjected is the default error returned by Faulty.
var ErrInjected = errors.New("oshandle: injected fault")

// Faulty wraps an Acquirer and can inject errors.
//
// A descriptor whose Close fails is left open in the wrapped acquirer,
// the same way a failed close leaks the handle.
type Faulty struct {
	Acquirer Acquirer
	Err      error

	mu          sync.Mutex
	failAcquire bool
	failClose   bool

	acquired     atomic.Int64
	closeCalls   atomic.Int64
	closes       atomic.Int64
	doubleCloses atomic.Int64
}

// NewFaulty creates a Faulty wrapping a (or a new Memory acquirer if nil).
func NewFaulty(a Acquirer) *Faulty {
	if a == nil {
		a = NewMemory()
	}
	return &Faulty{
		Acquirer: a,
		Err:      ErrInjected,
	}
}

// FailAcquire makes subsequent Acquire calls fail.
func (f *Faulty) FailAcquire(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failAcquire = fail
}

// FailClose makes subsequent Close calls on any descriptor from f fail.
func (f *Faulty) FailClose(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failClose = fail
}

func (f *Faulty) fault() (failAcquire, failClose bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failAcquire, f.failClose, f.Err
}

// Acquire implements Acquirer.
func (f *Faulty) Acquire() (Descriptor, error) {
	failAcquire, _, err := f.fault()
	if failAcquire {
		return nil, err
	}
	d, err := f.Acquirer.Acquire()
	if err != nil {
		return nil, err
	}
	f.acquired.Add(1)
	return &faultyDescriptor{Descriptor: d, owner: f}, nil
}

// Acquired returns the number of descriptors handed out.
func (f *Faulty) Acquired() int64 { return f.acquired.Load() }

// CloseCalls returns the number of Close calls, including failed ones.
func (f *Faulty) CloseCalls() int64 { return f.closeCalls.Load() }

// Closes returns the number of descriptors actually closed.
func (f *Faulty) Closes() int64 { return f.closes.Load() }

// DoubleCloses returns the number of Close calls on an already closed descriptor.
func (f *Faulty) DoubleCloses() int64 { return f.doubleCloses.Load() }

type faultyDescriptor struct {
	Descriptor
	owner *Faulty
}

func (d *faultyDescriptor) Close() error {
	d.owner.closeCalls.Add(1)
	if _, failClose, err := d.owner.fault(); failClose {
		return err
	}
	err := d.Descriptor.Close()
	switch {
	case errors.Is(err, ErrClosed):
		d.owner.doubleCloses.Add(1)
	case err == nil:
		d.owner.closes.Add(1)
	}
	return err
}
