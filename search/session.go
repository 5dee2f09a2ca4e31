package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathscope/core"
)

// Session is the state of one FindPath call. It is created by Runner.Begin
// and used only by the goroutine running the search.
type Session[V comparable] struct {
	ctx       context.Context
	span      trace.Span
	runner    *Runner[V]
	graph     Graph[V]
	observers []Observer[V]
	start     V
	end       V
	began     time.Time
	done      bool // Finish or Close ran

	// counters for the final log record
	steps   int
	queued  int
	visited int
}

// Context returns the context that Stop cancels.
func (s *Session[V]) Context() context.Context { return s.ctx }

// Checkpoint counts one step and returns ErrCancelled if the search has
// been stopped. Strategies call it once per dequeue, pop or recursive entry.
func (s *Session[V]) Checkpoint() error {
	s.steps++
	select {
	case <-s.ctx.Done():
		return s.cancelled()
	default:
		return nil
	}
}

// Mark writes status st for v and notifies every observer with v.
func (s *Session[V]) Mark(v V, st core.Status) error {
	if err := s.graph.SetStatus(v, st); err != nil {
		return fmt.Errorf("search: mark %v %s: %w", v, st, err)
	}
	switch st {
	case core.StatusQueued:
		s.queued++
	case core.StatusVisited:
		s.visited++
	}
	for _, fn := range s.observers {
		fn(v)
	}
	return nil
}

// Pause sleeps for the runner's current pacing delay.
// It returns ErrCancelled as soon as the search is stopped.
func (s *Session[V]) Pause() error {
	return s.sleep(s.runner.Delay())
}

// PauseBacktrack sleeps for the backtrack delay.
func (s *Session[V]) PauseBacktrack() error {
	return s.sleep(s.runner.backtrackDelay)
}

func (s *Session[V]) sleep(d time.Duration) error {
	if d <= 0 {
		select {
		case <-s.ctx.Done():
			return s.cancelled()
		default:
			return nil
		}
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-s.ctx.Done():
		return s.cancelled()
	case <-timer.C:
		return nil
	}
}

func (s *Session[V]) cancelled() error {
	return fmt.Errorf("%w: %v", ErrCancelled, context.Cause(s.ctx))
}

// Backtrack walks pred from end back to start, marking each vertex Path,
// notifying observers and pausing for the backtrack delay after each one.
// cost(from, to) supplies the weight added for the edge from→to.
//
// pred must hold an entry for every vertex on the chain except start.
// Returns the path in start→end order.
func (s *Session[V]) Backtrack(pred map[V]V, cost func(from, to V) (float64, error)) (*Path[V], error) {
	p := &Path[V]{}
	cur := s.end
	for {
		p.Vertices = append(p.Vertices, cur)
		if err := s.Mark(cur, core.StatusPath); err != nil {
			return nil, err
		}
		if err := s.PauseBacktrack(); err != nil {
			return nil, err
		}
		if cur == s.start {
			break
		}
		prev, ok := pred[cur]
		if !ok {
			return nil, fmt.Errorf("%w: broken predecessor chain at %v", ErrNoPath, cur)
		}
		w, err := cost(prev, cur)
		if err != nil {
			return nil, err
		}
		p.Distance += w
		cur = prev
	}
	p.Reverse()
	return p, nil
}

// Finish logs the outcome, ends the search span and releases the runner
// for the next search. It passes p and err through so strategies can write
// `return sess.Finish(w.run())`.
func (s *Session[V]) Finish(p *Path[V], err error) (*Path[V], error) {
	if s.done {
		return p, err
	}
	s.done = true
	defer s.runner.release()
	defer s.span.End()

	s.span.SetAttributes(
		attribute.Int("search.steps", s.steps),
		attribute.Int("search.queued", s.queued),
		attribute.Int("search.visited", s.visited),
	)

	attrs := []slog.Attr{
		slog.Int("steps", s.steps),
		slog.Int("queued", s.queued),
		slog.Int("visited", s.visited),
		slog.Duration("elapsed", time.Since(s.began)),
	}
	switch {
	case err == nil:
		attrs = append(attrs,
			slog.Int("hops", p.Hops()),
			slog.Float64("distance", p.Distance))
		s.span.SetAttributes(
			attribute.Int("search.hops", p.Hops()),
			attribute.Float64("search.distance", p.Distance))
		s.span.SetStatus(codes.Ok, "")
		s.runner.logger.LogAttrs(s.ctx, slog.LevelDebug, "search finished", attrs...)
	case errors.Is(err, ErrCancelled):
		s.span.AddEvent("cancelled")
		s.span.SetStatus(codes.Error, err.Error())
		s.runner.logger.LogAttrs(context.Background(), slog.LevelDebug, "search cancelled", attrs...)
	case errors.Is(err, ErrNoPath):
		attrs = append(attrs, slog.String("error", err.Error()))
		s.span.AddEvent("no path")
		s.runner.logger.LogAttrs(s.ctx, slog.LevelDebug, "search failed", attrs...)
	default:
		attrs = append(attrs, slog.String("error", err.Error()))
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
		s.runner.logger.LogAttrs(s.ctx, slog.LevelDebug, "search failed", attrs...)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Close ends a session that never reached Finish, typically because an
// observer panicked: the span is ended with an error status and the runner
// is freed. After Finish it does nothing. Strategies defer it right after
// Begin.
func (s *Session[V]) Close() {
	if s.done {
		return
	}
	s.done = true
	defer s.runner.release()

	s.span.SetStatus(codes.Error, "search aborted")
	s.span.End()
	s.runner.logger.LogAttrs(context.Background(), slog.LevelDebug, "search aborted",
		slog.Int("steps", s.steps),
		slog.Duration("elapsed", time.Since(s.began)))
}

// Start returns the start vertex of this search.
func (s *Session[V]) Start() V { return s.start }

// End returns the end vertex of this search.
func (s *Session[V]) End() V { return s.end }

// Graph returns the graph being searched.
func (s *Session[V]) Graph() Graph[V] { return s.graph }

// UnitCost charges 1 per hop; BFS and DFS report hop counts as distance.
func UnitCost[V comparable](_, _ V) (float64, error) { return 1, nil }
