package services

import (
	"fmt"
	"sync"
)

// WorkerPool runs submitted tasks on a bounded set of goroutines. Tasks are
// executed in submission order per worker but carry no ordering guarantee
// across workers; callers that need completion signalling layer their own
// sync.WaitGroup over Submit.
type WorkerPool struct {
	tasks  chan func()
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// NewWorkerPool creates a pool with the given number of workers and starts
// them immediately
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	p := &WorkerPool{
		tasks: make(chan func(), workers),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				task()
			}
		}()
	}
	return p
}

// Submit enqueues a task for execution. It blocks while all workers are busy
// and the buffer is full, and returns an error once the pool has been shut
// down.
func (p *WorkerPool) Submit(task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return fmt.Errorf("worker pool is shut down")
	}
	p.tasks <- task
	return nil
}

// Shutdown stops accepting tasks and waits for in-flight and queued tasks to
// finish. It is safe to call more than once.
func (p *WorkerPool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	p.wg.Wait()
}
