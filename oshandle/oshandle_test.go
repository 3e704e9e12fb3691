package oshandle

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipWithoutOSHandles(t *testing.T) {
	t.Helper()
	switch runtime.GOOS {
	case "js", "wasip1", "plan9":
		t.Skipf("no OS handle support on %s", runtime.GOOS)
	}
}

func TestSystem_AcquireClose(t *testing.T) {
	skipWithoutOSHandles(t)

	d, err := System.Acquire()
	require.NoError(t, err)
	assert.True(t, Valid(d.Fd()))

	require.NoError(t, d.Close())

	// Second close must not reach the kernel.
	assert.ErrorIs(t, d.Close(), ErrClosed)
}

func TestSystem_DistinctHandles(t *testing.T) {
	skipWithoutOSHandles(t)

	a, err := System.Acquire()
	require.NoError(t, err)
	defer a.Close()

	b, err := System.Acquire()
	require.NoError(t, err)
	defer b.Close()

	assert.NotEqual(t, a.Fd(), b.Fd())
}

func TestMemory(t *testing.T) {
	m := NewMemory()

	d1, err := m.Acquire()
	require.NoError(t, err)
	d2, err := m.Acquire()
	require.NoError(t, err)

	assert.NotEqual(t, d1.Fd(), d2.Fd())
	assert.Equal(t, int64(2), m.Open())

	require.NoError(t, d1.Close())
	assert.ErrorIs(t, d1.Close(), ErrClosed)
	assert.Equal(t, int64(1), m.Open())
	assert.Equal(t, int64(1), m.Closed())

	require.NoError(t, d2.Close())
	assert.Equal(t, int64(0), m.Open())
	assert.Equal(t, int64(2), m.Closed())
}

func TestAcquirerFunc(t *testing.T) {
	m := NewMemory()
	var calls int
	a := AcquirerFunc(func() (Descriptor, error) {
		calls++
		return m.Acquire()
	})

	d, err := a.Acquire()
	require.NoError(t, err)
	require.NoError(t, d.Close())
	assert.Equal(t, 1, calls)
}
