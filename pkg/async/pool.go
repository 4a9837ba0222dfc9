package async

import (
	"context"
	"fmt"
	"sync"
)

// Pool runs submitted tasks on a fixed number of worker goroutines fed by a
// bounded queue. Submitters block while the queue is full.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewPool starts workers goroutines with a queue of queueSize pending tasks.
// Non-positive values are raised to 1 and 0 respectively.
func NewPool(workers, queueSize int) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	p := &Pool{tasks: make(chan func(), queueSize)}
	p.wg.Add(workers)
	for range workers {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Close stops accepting tasks and waits until every queued task has run.
// Safe for repeated calls.
func (p *Pool) Close() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// enqueue hands task to the workers, blocking until there is room in the queue
// or ctx is done.
func (p *Pool) enqueue(ctx context.Context, task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Submit schedules fn(ctx, param) on the pool and returns a Future for its
// result. If ctx is done before a worker picks the task up, fn is never called
// and the future resolves with ctx.Err(). A panic in fn resolves the future
// with ErrTaskPanicked instead of killing the worker.
func Submit[T any, U any](ctx context.Context, p *Pool, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := newFuture[U]()

	task := func() {
		var zero U
		defer func() {
			if r := recover(); r != nil {
				f.complete(zero, fmt.Errorf("%w: %v", ErrTaskPanicked, r))
			}
		}()

		if err := ctx.Err(); err != nil {
			f.complete(zero, err)
			return
		}
		f.complete(fn(ctx, param))
	}

	if err := p.enqueue(ctx, task); err != nil {
		var zero U
		return resolved(zero, err)
	}
	return f
}
