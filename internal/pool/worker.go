package pool

import (
	"context"
	"errors"
	"sync/atomic"

	"raycast-renderer/internal/logging"
)

// State is a worker's position in its lifecycle.
type State int32

const (
	Idle State = iota
	Processing
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Processing:
		return "processing"
	case Terminated:
		return "terminated"
	}
	return "unknown"
}

// Worker is a long-lived goroutine with its own inbound job queue and
// outbound result queue.
type Worker struct {
	ID int

	jobs    *queue[Job]
	results *queue[Result]
	sent    atomic.Int64
	state   atomic.Int32
	done    chan struct{}

	log  logging.Logger
	tMax float64
}

func newWorker(id int, log logging.Logger, tMax float64) *Worker {
	return &Worker{
		ID:      id,
		jobs:    newQueue[Job](),
		results: newQueue[Result](),
		done:    make(chan struct{}),
		log:     log,
		tMax:    tMax,
	}
}

// Sent returns how many jobs were dispatched to this worker, sentinel excluded.
func (w *Worker) Sent() int {
	return int(w.sent.Load())
}

// Pending returns how many jobs are queued and not yet started.
func (w *Worker) Pending() int {
	return w.jobs.len()
}

// State returns the current lifecycle state.
func (w *Worker) State() State {
	return State(w.state.Load())
}

// Results is the worker's outbound queue.
func (w *Worker) Results() *Results {
	return &Results{q: w.results}
}

// Done is closed once the worker goroutine has exited.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

func (w *Worker) setState(s State) {
	w.state.Store(int32(s))
}

// run is the main worker loop.
func (w *Worker) run() {
	defer close(w.done)
	defer w.results.close()
	defer w.jobs.close()
	defer w.setState(Terminated)

	for {
		job, err := w.jobs.pop(context.Background())
		if err != nil || job.Done {
			return
		}

		w.setState(Processing)
		if !w.process(job) {
			return
		}
		w.setState(Idle)
	}
}

// process casts one job. It reports false if the job panicked, in which
// case the worker must stop.
func (w *Worker) process(job Job) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Printf("pool: worker %d aborted on pixel (%d, %d): %v", w.ID, job.Row, job.Col, r)
			ok = false
		}
	}()

	r := job.Camera.Ray(job.U, job.V)
	if rec, hit := job.Scene.Hit(r, 0, w.tMax); hit {
		w.results.push(Result{Row: job.Row, Col: job.Col, Color: r.Color(rec)})
	}
	return true
}

// ErrDrained is returned by Results.Recv once the worker has exited and
// every queued result has been read.
var ErrDrained = errors.New("pool: result queue drained")

// Results reads a worker's outbound queue. Order is the worker's completion
// order, which for one worker is also its submission order.
type Results struct {
	q *queue[Result]
}

// Poll returns the next result without blocking.
func (r *Results) Poll() (Result, bool) {
	res, ok, _ := r.q.tryPop()
	return res, ok
}

// Recv blocks until a result is available, the queue is drained, or ctx ends.
func (r *Results) Recv(ctx context.Context) (Result, error) {
	return r.q.pop(ctx)
}

// Len returns the number of results waiting to be read.
func (r *Results) Len() int {
	return r.q.len()
}

// Closed reports whether the producing worker has exited.
func (r *Results) Closed() bool {
	return r.q.isClosed()
}
