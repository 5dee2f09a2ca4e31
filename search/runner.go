package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// tracerName is the instrumentation scope of search spans.
const tracerName = "github.com/katalvlaran/pathscope/search"

// observerEntry pairs a callback with its registration handle.
type observerEntry[V comparable] struct {
	id ObserverID
	fn Observer[V]
}

// Runner holds the per-instance state every strategy shares. Strategies
// embed *Runner to inherit RegisterObserver, SetDelay and Stop, and call
// Begin at the top of FindPath.
type Runner[V comparable] struct {
	name           string
	logger         *slog.Logger
	tracer         trace.Tracer
	backtrackDelay time.Duration
	delay          atomic.Int64 // time.Duration; SetDelay may race with a running search
	running        atomic.Bool  // single-flight guard; written under mu

	mu        sync.Mutex // guards observers, nextID, cancel
	observers []observerEntry[V]
	nextID    ObserverID
	cancel    context.CancelFunc // non-nil while a search is in flight
}

// NewRunner builds a Runner labelled name, applying opts in order.
// Returns ErrOptionViolation if any option was invalid.
func NewRunner[V comparable](name string, opts ...Option) (*Runner[V], error) {
	o := DefaultOptions()
	o.Name = name
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	r := &Runner[V]{
		name:           o.Name,
		logger:         o.Logger.With(slog.String("algorithm", o.Name)),
		tracer:         o.TracerProvider.Tracer(tracerName),
		backtrackDelay: o.BacktrackDelay,
	}
	r.delay.Store(int64(o.Delay))
	return r, nil
}

// Name returns the label used in logs.
func (r *Runner[V]) Name() string { return r.name }

// RegisterObserver appends fn to the notification list and returns a handle
// for UnregisterObserver. A nil fn is ignored and yields the zero handle.
// Observers registered during a search take effect from the next search.
func (r *Runner[V]) RegisterObserver(fn Observer[V]) ObserverID {
	if fn == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	r.observers = append(r.observers, observerEntry[V]{id: r.nextID, fn: fn})
	return r.nextID
}

// UnregisterObserver removes the observer registered under id.
// It reports whether anything was removed.
func (r *Runner[V]) UnregisterObserver(id ObserverID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, e := range r.observers {
		if e.id == id {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return true
		}
	}
	return false
}

// SetDelay sets the pacing delay applied once per forward step. It may be
// called while a search runs; the next pause picks it up. Negative values
// are clamped to zero.
func (r *Runner[V]) SetDelay(d time.Duration) {
	if d < 0 {
		d = 0
	}
	r.delay.Store(int64(d))
}

// Delay returns the current pacing delay.
func (r *Runner[V]) Delay() time.Duration {
	return time.Duration(r.delay.Load())
}

// Running reports whether a search is in flight on this instance.
func (r *Runner[V]) Running() bool {
	return r.running.Load()
}

// Stop requests cancellation of the in-flight search. It is safe to call
// from any goroutine, and a no-op when nothing is running.
func (r *Runner[V]) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
	}
}

// Begin claims the instance for one search from start to end over g.
//
// Order of checks:
//  1. Another search in flight → ErrBusy.
//  2. start or end absent from g → ErrVertexNotFound (nothing mutated,
//     no observer called, the claim is released).
//
// The claim and the cancel handle are installed together, so a Stop that
// observes Running() == true always reaches this search.
//
// On success the returned Session must be closed with Finish; strategies
// also defer Close so a panicking observer still frees the instance.
func (r *Runner[V]) Begin(ctx context.Context, g Graph[V], start, end V) (*Session[V], error) {
	if ctx == nil {
		ctx = context.Background()
	}

	r.mu.Lock()
	if r.running.Load() {
		r.mu.Unlock()
		return nil, ErrBusy
	}
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.running.Store(true)
	observers := make([]Observer[V], len(r.observers))
	for i, e := range r.observers {
		observers[i] = e.fn
	}
	r.mu.Unlock()

	if !g.Has(start) || !g.Has(end) {
		r.release()
		missing := start
		if g.Has(start) {
			missing = end
		}
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, missing)
	}

	ctx, span := r.tracer.Start(ctx, r.name+".FindPath", trace.WithAttributes(
		attribute.String("search.algorithm", r.name),
		attribute.String("search.start", fmt.Sprint(start)),
		attribute.String("search.end", fmt.Sprint(end)),
	))

	s := &Session[V]{
		ctx:       ctx,
		span:      span,
		runner:    r,
		graph:     g,
		observers: observers,
		start:     start,
		end:       end,
		began:     time.Now(),
	}
	r.logger.Debug("search started",
		slog.Any("start", start),
		slog.Any("end", end),
		slog.Duration("delay", r.Delay()))
	return s, nil
}

// release cancels the search context and frees the instance for the next
// search.
func (r *Runner[V]) release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.running.Store(false)
}
