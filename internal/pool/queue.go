package pool

import (
	"context"
	"sync"
)

// queue is an unbounded FIFO with a single wake-up token for pushes and a
// broadcast channel for close. push never blocks; pop blocks until an item
// arrives or the queue is closed and empty. Any number of goroutines may pop.
type queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
	ready  chan struct{}
	done   chan struct{}
}

func newQueue[T any]() *queue[T] {
	return &queue[T]{
		ready: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
}

func (q *queue[T]) signal() {
	select {
	case q.ready <- struct{}{}:
	default:
	}
}

// push appends v. It reports false if the queue is closed.
func (q *queue[T]) push(v T) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, v)
	q.mu.Unlock()
	q.signal()
	return true
}

// close rejects further pushes and wakes every waiting pop. Items already
// queued stay poppable.
func (q *queue[T]) close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.done)
}

// tryPop returns the head item if there is one. drained is true once the
// queue is closed and empty.
func (q *queue[T]) tryPop() (v T, ok, drained bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) > 0 {
		var zero T
		v = q.items[0]
		q.items[0] = zero
		q.items = q.items[1:]
		if len(q.items) > 0 {
			q.signal()
		}
		return v, true, false
	}
	return v, false, q.closed
}

func (q *queue[T]) pop(ctx context.Context) (T, error) {
	for {
		v, ok, drained := q.tryPop()
		if ok {
			return v, nil
		}
		if drained {
			return v, ErrDrained
		}
		select {
		case <-q.ready:
		case <-q.done:
		case <-ctx.Done():
			return v, ctx.Err()
		}
	}
}

func (q *queue[T]) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *queue[T]) isClosed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}
