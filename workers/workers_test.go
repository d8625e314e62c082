package workers

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/exascience/paralg"
	"github.com/exascience/paralg/metrics"
)

func TestNewInvalid(t *testing.T) {
	_, err := New(0)
	require.ErrorIs(t, err, paralg.ErrInvalidWorkers)
}

func TestRunStartsEveryWorker(t *testing.T) {
	for _, size := range []int{1, 2, 3, 4, 10, 11} {
		g, err := New(size)
		require.NoError(t, err)
		require.Equal(t, size, g.Size())

		seen := make([]int32, size)
		require.NoError(t, g.Run("test", func(worker int) error {
			atomic.AddInt32(&seen[worker], 1)
			return nil
		}))
		for i, n := range seen {
			require.EqualValues(t, 1, n, "worker %d", i)
		}
	}
}

func TestRunIsConcurrent(t *testing.T) {
	const size = 4
	g, err := New(size)
	require.NoError(t, err)

	// Every worker waits for all others, which only terminates if all of
	// them run at the same time.
	var ready sync.WaitGroup
	ready.Add(size)
	done := make(chan error, 1)
	go func() {
		done <- g.Run("test", func(int) error {
			ready.Done()
			ready.Wait()
			return nil
		})
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("workers did not run concurrently")
	}
}

func TestRunWaitsForAllWorkersOnFailure(t *testing.T) {
	g, err := New(4)
	require.NoError(t, err)

	boom := errors.New("boom")
	var finished int32
	err = g.Run("test", func(worker int) error {
		if worker == 0 {
			return boom
		}
		time.Sleep(20 * time.Millisecond)
		atomic.AddInt32(&finished, 1)
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.EqualValues(t, 3, atomic.LoadInt32(&finished))
}

func TestRunFirstFailureWins(t *testing.T) {
	g, err := New(3)
	require.NoError(t, err)

	first := errors.New("first")
	err = g.Run("test", func(worker int) error {
		switch worker {
		case 0:
			return first
		case 1:
			time.Sleep(50 * time.Millisecond)
			return errors.New("second")
		}
		return nil
	})
	require.ErrorIs(t, err, first)
}

func TestRunRecoversPanics(t *testing.T) {
	stats := metrics.NewStats()
	g, err := New(2, WithMetrics(stats), WithLogger(nil))
	require.NoError(t, err)

	boom := errors.New("boom")
	var other int32
	err = g.Run("panicky", func(worker int) error {
		if worker == 1 {
			panic(boom)
		}
		time.Sleep(10 * time.Millisecond)
		atomic.StoreInt32(&other, 1)
		return nil
	})

	var perr *paralg.PanicError
	require.ErrorAs(t, err, &perr)
	require.ErrorIs(t, err, boom)
	require.NotEmpty(t, perr.Stack)
	require.EqualValues(t, 1, atomic.LoadInt32(&other))
	require.EqualValues(t, 1, stats.Failures("panicky"))
}
