package disposable

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcquisitionError(t *testing.T) {
	cause := errors.New("EMFILE")
	err := error(&AcquisitionError{Size: 64, cause: cause})

	assert.EqualError(t, err, "acquire handle (size 64): EMFILE")
	assert.ErrorIs(t, err, ErrAcquisition)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrRelease)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestReleaseError(t *testing.T) {
	cause := errors.New("EIO")

	tests := []struct {
		name string
		err  *ReleaseError
		want string
	}{
		{
			name: "explicit",
			err:  &ReleaseError{ID: 7, Fd: 3, cause: cause},
			want: "release handle 7 (fd 3, explicit): EIO",
		},
		{
			name: "fallback",
			err:  &ReleaseError{ID: 7, Fd: 3, Fallback: true, cause: cause},
			want: "release handle 7 (fd 3, fallback): EIO",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
			assert.ErrorIs(t, tt.err, ErrRelease)
			assert.ErrorIs(t, tt.err, cause)
			assert.NotErrorIs(t, tt.err, ErrAcquisition)
		})
	}
}
