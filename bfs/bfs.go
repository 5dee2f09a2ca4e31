package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/pathscope/core"
	"github.com/katalvlaran/pathscope/search"
)

// Name is the label BFS uses in logs.
const Name = "bfs"

// BFS is a breadth-first strategy bound to one graph.
type BFS[V comparable] struct {
	*search.Runner[V]
	graph search.Graph[V]
}

var _ search.Algorithm[string] = (*BFS[string])(nil)

// New binds a BFS strategy to g. The graph is not owned and may be shared
// with other strategies, one search at a time.
func New[V comparable](g search.Graph[V], opts ...search.Option) (*BFS[V], error) {
	if g == nil {
		return nil, search.ErrNilGraph
	}
	r, err := search.NewRunner[V](Name, opts...)
	if err != nil {
		return nil, err
	}
	return &BFS[V]{Runner: r, graph: g}, nil
}

// FindPath returns a fewest-hops path from start to end.
func (b *BFS[V]) FindPath(ctx context.Context, start, end V) (*search.Path[V], error) {
	sess, err := b.Begin(ctx, b.graph, start, end)
	if err != nil {
		return nil, err
	}
	defer sess.Close()
	w := &walker[V]{
		sess:  sess,
		graph: b.graph,
		pred:  make(map[V]V),
		seen:  map[V]bool{start: true},
		queue: []V{start},
	}
	return sess.Finish(w.run())
}

// walker encapsulates mutable BFS state for one call.
type walker[V comparable] struct {
	sess  *search.Session[V]
	graph search.Graph[V]
	pred  map[V]V    // discovered vertex → discoverer
	seen  map[V]bool // discovered (queued or visited)
	queue []V
}

// run processes the queue until end is dequeued, the queue empties or
// the search is cancelled, then backtracks.
func (w *walker[V]) run() (*search.Path[V], error) {
	end := w.sess.End()
	found := false
	for len(w.queue) > 0 {
		if err := w.sess.Checkpoint(); err != nil {
			return nil, err
		}

		cur := w.dequeue()
		if err := w.sess.Mark(cur, core.StatusVisited); err != nil {
			return nil, err
		}
		if cur == end {
			found = true
			break
		}
		if err := w.enqueueNeighbors(cur); err != nil {
			return nil, err
		}
		if err := w.sess.Pause(); err != nil {
			return nil, err
		}
	}
	if !found {
		return nil, search.ErrNoPath
	}
	return w.sess.Backtrack(w.pred, search.UnitCost[V])
}

func (w *walker[V]) dequeue() V {
	v := w.queue[0]
	var zero V
	w.queue[0] = zero
	w.queue = w.queue[1:]
	return v
}

// enqueueNeighbors marks each undiscovered neighbor of cur Queued, records
// cur as its predecessor and appends it to the queue.
func (w *walker[V]) enqueueNeighbors(cur V) error {
	nbs, err := w.graph.Neighbors(cur)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %v: %w", cur, err)
	}
	for _, nb := range nbs {
		if w.seen[nb] {
			continue
		}
		w.seen[nb] = true
		if err := w.sess.Mark(nb, core.StatusQueued); err != nil {
			return err
		}
		w.pred[nb] = cur
		w.queue = append(w.queue, nb)
	}
	return nil
}
