package services

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPoolRunsSubmittedTasks(t *testing.T) {
	pool := NewWorkerPool(4)

	var executed int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			atomic.AddInt64(&executed, 1)
		})
		require.NoError(t, err)
	}
	wg.Wait()
	pool.Shutdown()

	assert.Equal(t, int64(100), atomic.LoadInt64(&executed))
}

func TestWorkerPoolShutdownDrainsQueuedTasks(t *testing.T) {
	pool := NewWorkerPool(2)

	var executed int64
	for i := 0; i < 20; i++ {
		err := pool.Submit(func() {
			atomic.AddInt64(&executed, 1)
		})
		require.NoError(t, err)
	}

	pool.Shutdown()
	assert.Equal(t, int64(20), atomic.LoadInt64(&executed))
}

func TestWorkerPoolRejectsSubmitAfterShutdown(t *testing.T) {
	pool := NewWorkerPool(1)
	pool.Shutdown()

	err := pool.Submit(func() {})
	assert.Error(t, err)
}

func TestWorkerPoolShutdownIsIdempotent(t *testing.T) {
	pool := NewWorkerPool(1)
	pool.Shutdown()
	assert.NotPanics(t, func() {
		pool.Shutdown()
	})
}

func TestWorkerPoolDefaultsToSingleWorker(t *testing.T) {
	pool := NewWorkerPool(0)
	defer pool.Shutdown()

	done := make(chan struct{})
	err := pool.Submit(func() { close(done) })
	require.NoError(t, err)
	<-done
}
