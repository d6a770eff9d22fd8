package pool

import (
	"errors"
	"fmt"

	"raycast-renderer/internal/logging"
)

// DefaultTMax bounds scene hits on the far side.
const DefaultTMax = 9999999.0

var (
	ErrNoWorkers    = errors.New("pool: need at least one worker")
	ErrWorkerClosed = errors.New("pool: worker channel closed")
	ErrPoolClosed   = errors.New("pool: closed")
)

// Pool owns a fixed set of workers and hands jobs out round-robin.
//
// Assignment depends only on the submission count, never on backlog, and
// queues are unbounded: Submit never blocks and applies no backpressure.
// A Pool is driven by a single goroutine; Submit and Close are not safe
// for concurrent use.
type Pool struct {
	workers []*Worker
	next    int
	closed  bool
	log     logging.Logger
}

type options struct {
	log  logging.Logger
	tMax float64
}

// Option configures a Pool.
type Option func(*options)

// WithLogger routes pool diagnostics to l.
func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithTMax sets the far bound passed to Scene.Hit.
func WithTMax(t float64) Option {
	return func(o *options) { o.tMax = t }
}

// New starts exactly n workers, each with its own queue pair.
func New(n int, opts ...Option) (*Pool, error) {
	if n <= 0 {
		return nil, ErrNoWorkers
	}
	o := options{log: logging.Discard(), tMax: DefaultTMax}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pool{
		workers: make([]*Worker, 0, n),
		log:     o.log,
	}
	for i := 0; i < n; i++ {
		w := newWorker(i, o.log, o.tMax)
		p.workers = append(p.workers, w)
		go w.run()
	}
	return p, nil
}

// Len returns the number of workers.
func (p *Pool) Len() int {
	return len(p.workers)
}

// Worker returns worker i.
func (p *Pool) Worker(i int) *Worker {
	return p.workers[i]
}

// Workers returns all workers in dispatch order.
func (p *Pool) Workers() []*Worker {
	return p.workers
}

// Submit delivers job to the worker under the cursor and advances the
// cursor. ErrWorkerClosed means that worker has already exited; the
// caller decides whether to retry, drop or escalate.
func (p *Pool) Submit(job Job) error {
	if p.closed {
		return ErrPoolClosed
	}
	w := p.workers[p.next]
	w.sent.Add(1)
	ok := w.jobs.push(job)

	p.next++
	if p.next >= len(p.workers) {
		p.next = 0
	}

	if !ok {
		return fmt.Errorf("pool: submit to worker %d: %w", w.ID, ErrWorkerClosed)
	}
	return nil
}

// SubmitFields builds a Job from its parts and submits it.
func (p *Pool) SubmitFields(row, col int, u, v float64, cam Camera, scn Scene) error {
	return p.Submit(NewJob(row, col, u, v, cam, scn))
}

// Close sends every worker the stop sentinel and waits for it to exit.
// Sentinels queue behind pending jobs, so all submitted work finishes first.
//
// A worker that already exited cannot take the sentinel; it is still waited
// on and the remaining workers are stopped. Close reports such workers as
// ErrWorkerClosed after teardown has completed. Calling Close again is a no-op.
func (p *Pool) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	var dead []int
	for _, w := range p.workers {
		if !w.jobs.push(StopJob()) {
			dead = append(dead, w.ID)
			p.log.Printf("pool: worker %d already exited, skipping stop signal", w.ID)
		}
		<-w.done
	}

	if len(dead) > 0 {
		return fmt.Errorf("pool: %d of %d workers exited early %v: %w", len(dead), len(p.workers), dead, ErrWorkerClosed)
	}
	return nil
}
