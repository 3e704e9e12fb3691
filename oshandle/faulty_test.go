package oshandle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaulty_FailAcquire(t *testing.T) {
	m := NewMemory()
	f := NewFaulty(m)
	f.FailAcquire(true)

	d, err := f.Acquire()
	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrInjected)
	assert.Equal(t, int64(0), f.Acquired())
	assert.Equal(t, int64(0), m.Open())

	f.FailAcquire(false)
	d, err = f.Acquire()
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.Acquired())
	require.NoError(t, d.Close())
}

func TestFaulty_FailClose(t *testing.T) {
	m := NewMemory()
	f := NewFaulty(m)
	f.Err = errors.New("EIO")

	d, err := f.Acquire()
	require.NoError(t, err)

	f.FailClose(true)
	err = d.Close()
	assert.EqualError(t, err, "EIO")
	assert.Equal(t, int64(1), f.CloseCalls())
	assert.Equal(t, int64(0), f.Closes())
	// The handle leaked.
	assert.Equal(t, int64(1), m.Open())
}

func TestFaulty_CountsDoubleClose(t *testing.T) {
	f := NewFaulty(nil)

	d, err := f.Acquire()
	require.NoError(t, err)

	require.NoError(t, d.Close())
	assert.ErrorIs(t, d.Close(), ErrClosed)

	assert.Equal(t, int64(2), f.CloseCalls())
	assert.Equal(t, int64(1), f.Closes())
	assert.Equal(t, int64(1), f.DoubleCloses())
}
