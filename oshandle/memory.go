package oshandle

import "sync/atomic"

// memoryFdBase keeps fake descriptors well clear of stdio numbers.
const memoryFdBase = 1 << 20

// Memory hands out in-process descriptors that own no OS resource.
// It counts open and closed descriptors and is safe for concurrent use.
type Memory struct {
	next   atomic.Uintptr
	open   atomic.Int64
	closed atomic.Int64
}

// NewMemory creates a new Memory acquirer.
func NewMemory() *Memory {
	m := &Memory{}
	m.next.Store(memoryFdBase)
	return m
}

// Acquire implements Acquirer.
func (m *Memory) Acquire() (Descriptor, error) {
	m.open.Add(1)
	return &memDescriptor{fd: m.next.Add(1), owner: m}, nil
}

// Open returns the number of descriptors acquired and not yet closed.
func (m *Memory) Open() int64 {
	return m.open.Load()
}

// Closed returns the number of descriptors closed so far.
func (m *Memory) Closed() int64 {
	return m.closed.Load()
}

type memDescriptor struct {
	fd     uintptr
	owner  *Memory
	closed atomic.Bool
}

func (d *memDescriptor) Fd() uintptr { return d.fd }

func (d *memDescriptor) Close() error {
	if d.closed.Swap(true) {
		return ErrClosed
	}
	d.owner.open.Add(-1)
	d.owner.closed.Add(1)
	return nil
}
