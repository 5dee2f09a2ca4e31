package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathscope/core"
)

// Sentinel errors returned by every strategy.
var (
	// ErrNilGraph is returned when a strategy is constructed with a nil graph.
	ErrNilGraph = errors.New("search: graph is nil")

	// ErrVertexNotFound is returned when start or end is absent from the graph.
	ErrVertexNotFound = errors.New("search: vertex not present in graph")

	// ErrNoPath is returned when the frontier is exhausted without reaching end.
	ErrNoPath = errors.New("search: no path between vertices")

	// ErrCancelled is returned when Stop or the caller's context ends the search.
	ErrCancelled = errors.New("search: cancelled")

	// ErrBusy is returned when FindPath is called while another search
	// is in flight on the same instance.
	ErrBusy = errors.New("search: search already in progress")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// DefaultBacktrackDelay is the pause after each backtrack step.
const DefaultBacktrackDelay = 10 * time.Millisecond

// Graph is the read-mostly view a strategy needs: membership, adjacency,
// weights and a status sink. *core.Graph and *gridgraph.GridGraph satisfy it.
type Graph[V comparable] interface {
	Has(v V) bool
	Neighbors(v V) ([]V, error)
	Weight(a, b V) (float64, error)
	SetStatus(v V, s core.Status) error
}

// Observer is notified with the identity of each vertex whose status changed.
type Observer[V comparable] func(v V)

// ObserverID identifies a registration so it can be removed later.
type ObserverID uint64

// Algorithm is the capability shared by BFS, DFS, Dijkstra and A*.
type Algorithm[V comparable] interface {
	// FindPath searches from start to end. It returns ErrVertexNotFound,
	// ErrNoPath, ErrCancelled or ErrBusy when no path is produced.
	FindPath(ctx context.Context, start, end V) (*Path[V], error)
	// RegisterObserver adds fn to the notification list.
	RegisterObserver(fn Observer[V]) ObserverID
	// SetDelay sets the pacing delay applied once per step.
	SetDelay(d time.Duration)
	// Stop cancels the in-flight search, if any.
	Stop()
}

// Distancer is a vertex identity that can estimate the straight-line
// distance to another identity; A* requires it.
type Distancer[V any] interface {
	comparable
	Distance(other V) float64
}

// Options holds the per-instance configuration of a strategy.
type Options struct {
	// Name labels the strategy in logs.
	Name string

	// Delay is the pacing delay applied once per forward step.
	Delay time.Duration

	// BacktrackDelay is the pacing delay applied once per backtrack step.
	BacktrackDelay time.Duration

	// Logger receives Debug-level search lifecycle records.
	Logger *slog.Logger

	// TracerProvider creates the span recorded for each search.
	TracerProvider trace.TracerProvider

	// internal error recorded during option parsing
	err error
}

// Option configures a strategy via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation
// by the strategy constructor.
type Option func(*Options)

// DefaultOptions returns Options with:
//   - no pacing delay
//   - DefaultBacktrackDelay for backtracking
//   - a logger that discards everything
//   - the global OpenTelemetry tracer provider.
func DefaultOptions() Options {
	return Options{
		Delay:          0,
		BacktrackDelay: DefaultBacktrackDelay,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		TracerProvider: otel.GetTracerProvider(),
	}
}

// WithName overrides the strategy label used in logs.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}

// WithDelay sets the initial pacing delay. Negative values are rejected.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: delay cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.Delay = d
	}
}

// WithBacktrackDelay sets the pause after each backtrack step.
// Zero disables it; negative values are rejected.
func WithBacktrackDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: backtrack delay cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.BacktrackDelay = d
	}
}

// WithLogger sets the structured logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider sets where search spans go; nil keeps the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}
