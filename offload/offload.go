// seehuhn.de/go/pixelart - shape rasterisation for pixel-art editors
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Package offload runs geometry computations on a background goroutine.
//
// A [Worker] processes requests one at a time, in the order they arrive.
// Every request carries a random ID, and a table of pending requests maps
// IDs to the waiting callers.  A caller which gives up after a timeout
// removes its entry, so that a late result is recognised and discarded.
// With [Worker.Fallback] set, the caller then computes the result itself.
package offload

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/pixelart"
	"seehuhn.de/go/pixelart/shape"
)

// Default timeouts, as used by [New].
const (
	DefaultBooleanTimeout  = 10 * time.Second
	DefaultSimplifyTimeout = 5 * time.Second
)

var (
	// ErrTimeout is returned if the worker does not answer in time and
	// fallback is disabled.
	ErrTimeout = errors.New("offload: request timed out")

	// ErrClosed is returned for requests to a closed worker when fallback
	// is disabled.
	ErrClosed = errors.New("offload: worker closed")
)

type task int

const (
	taskBoolean task = iota
	taskConvert
	taskSimplify
)

var taskNames = [...]string{
	taskBoolean:  "boolean",
	taskConvert:  "convert",
	taskSimplify: "simplify",
}

func (t task) String() string { return taskNames[t] }

// request is the message sent to the worker goroutine.  All slices are
// owned by the request.
type request struct {
	id   uuid.UUID
	task task

	op          pixelart.Op
	a, b        shape.Shape
	w, h, color int

	pts []vec.Vec2
	tol float64
}

type reply struct {
	id    uuid.UUID
	shape *shape.Shape
	pts   []vec.Vec2
	err   error
}

// Worker runs boolean operations, polygon conversions and polygon
// simplification on a background goroutine.
//
// The methods of Worker are safe for concurrent use.  The exported fields
// must not be changed after the first request.
type Worker struct {
	// BooleanTimeout limits boolean operations and polygon conversions.
	BooleanTimeout time.Duration

	// SimplifyTimeout limits polygon simplification.
	SimplifyTimeout time.Duration

	// Fallback makes callers compute the result on their own goroutine if
	// the worker times out or is closed.
	Fallback bool

	requests chan request
	done     chan struct{}
	stopped  chan struct{}

	mu      sync.Mutex
	pending map[uuid.UUID]chan reply
	closed  bool

	compute func(request) reply
}

// New starts a worker with the default timeouts and fallback enabled.
// Call [Worker.Close] to stop it.
func New() *Worker {
	return start(compute)
}

func start(fn func(request) reply) *Worker {
	w := &Worker{
		BooleanTimeout:  DefaultBooleanTimeout,
		SimplifyTimeout: DefaultSimplifyTimeout,
		Fallback:        true,

		requests: make(chan request, 16),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
		pending:  make(map[uuid.UUID]chan reply),
		compute:  fn,
	}
	go w.run()
	return w
}

func (w *Worker) run() {
	defer close(w.stopped)
	for {
		select {
		case req := <-w.requests:
			w.deliver(w.compute(req))
		case <-w.done:
			return
		}
	}
}

// deliver hands a result to the waiting caller, if there still is one.
func (w *Worker) deliver(r reply) {
	w.mu.Lock()
	ch, ok := w.pending[r.id]
	delete(w.pending, r.id)
	w.mu.Unlock()

	if !ok {
		pixelart.Logger().Debug("discarding late result", "id", r.id)
		return
	}
	ch <- r
}

func (w *Worker) forget(id uuid.UUID) {
	w.mu.Lock()
	delete(w.pending, id)
	w.mu.Unlock()
}

// Close stops the worker and waits for the current computation to
// finish.  Pending requests are answered by fallback or fail with
// [ErrClosed].
func (w *Worker) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.done)
	w.mu.Unlock()

	<-w.stopped
	return nil
}

// Pending returns the number of requests waiting for an answer.
func (w *Worker) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

func (w *Worker) call(ctx context.Context, req request, timeout time.Duration) (reply, error) {
	req.id = uuid.New()
	ch := make(chan reply, 1)

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return w.fallback(req, ErrClosed)
	}
	w.pending[req.id] = ch
	w.mu.Unlock()

	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	select {
	case w.requests <- req:
	case <-tctx.Done():
		w.forget(req.id)
		return w.expired(ctx, req)
	case <-w.done:
		w.forget(req.id)
		return w.fallback(req, ErrClosed)
	}

	select {
	case r := <-ch:
		return r, r.err
	case <-tctx.Done():
		w.forget(req.id)
		return w.expired(ctx, req)
	case <-w.done:
		w.forget(req.id)
		return w.fallback(req, ErrClosed)
	}
}

// expired handles a request whose deadline has passed.  Cancellation by
// the caller is reported as such; only the worker's own timeout leads to
// the fallback.
func (w *Worker) expired(ctx context.Context, req request) (reply, error) {
	if err := ctx.Err(); err != nil {
		return reply{}, err
	}
	return w.fallback(req, ErrTimeout)
}

func (w *Worker) fallback(req request, cause error) (reply, error) {
	if !w.Fallback {
		return reply{}, cause
	}
	pixelart.Logger().Warn("computing without worker", "task", req.task, "cause", cause)
	r := w.compute(req)
	return r, r.err
}

// Boolean computes [pixelart.Boolean] on the worker.
func (w *Worker) Boolean(ctx context.Context, op pixelart.Op, a, b shape.Shape, width, height, color int) (*shape.Shape, error) {
	req := request{
		task:  taskBoolean,
		op:    op,
		a:     a.Clone(),
		b:     b.Clone(),
		w:     width,
		h:     height,
		color: color,
	}
	r, err := w.call(ctx, req, w.BooleanTimeout)
	if err != nil {
		return nil, err
	}
	return r.shape, nil
}

// ConvertToPolygon computes [pixelart.ConvertToPolygon] on the worker.
func (w *Worker) ConvertToPolygon(ctx context.Context, s shape.Shape, width, height int) (*shape.Shape, error) {
	req := request{
		task: taskConvert,
		a:    s.Clone(),
		w:    width,
		h:    height,
	}
	r, err := w.call(ctx, req, w.BooleanTimeout)
	if err != nil {
		return nil, err
	}
	return r.shape, nil
}

// Simplify computes [pixelart.SimplifyPolygon] on the worker.
func (w *Worker) Simplify(ctx context.Context, pts []vec.Vec2, tolerance float64) ([]vec.Vec2, error) {
	req := request{
		task: taskSimplify,
		pts:  slices.Clone(pts),
		tol:  tolerance,
	}
	r, err := w.call(ctx, req, w.SimplifyTimeout)
	if err != nil {
		return nil, err
	}
	return r.pts, nil
}

func compute(req request) reply {
	r := reply{id: req.id}
	switch req.task {
	case taskBoolean:
		r.shape, r.err = pixelart.Boolean(req.op, req.a, req.b, req.w, req.h, req.color)
	case taskConvert:
		r.shape, r.err = pixelart.ConvertToPolygon(req.a, req.w, req.h)
	case taskSimplify:
		r.pts = pixelart.SimplifyPolygon(req.pts, req.tol)
	default:
		panic("unreachable")
	}
	return r
}
