package worker

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var count atomic.Int32
	jobs := make([]func() error, 64)
	for i := range jobs {
		jobs[i] = func() error {
			count.Add(1)
			return nil
		}
	}
	require.NoError(t, Run(jobs...))
	require.EqualValues(t, 64, count.Load())
}

func TestRunFirstError(t *testing.T) {
	first, second := errors.New("first"), errors.New("second")
	err := Run(
		func() error { return nil },
		func() error { return first },
		func() error { return second },
	)
	require.ErrorIs(t, err, first)
}

func TestRunPanic(t *testing.T) {
	err := Run(func() error { panic("bad table") })
	require.ErrorContains(t, err, "bad table")

	// The pool keeps working after a panicking job.
	require.NoError(t, Run(func() error { return nil }))
}

func TestRunEmpty(t *testing.T) {
	require.NoError(t, Run())
}
