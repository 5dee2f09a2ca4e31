package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/pathscope/core"
	"github.com/katalvlaran/pathscope/search"
)

// Name is the label plain Dijkstra uses in logs.
const Name = "dijkstra"

// Dijkstra is a minimum-weight path strategy bound to one graph.
type Dijkstra[V comparable] struct {
	*search.Runner[V]
	graph     search.Graph[V]
	heuristic Heuristic[V]
}

var _ search.Algorithm[string] = (*Dijkstra[string])(nil)

// New binds plain Dijkstra (zero heuristic) to g.
func New[V comparable](g search.Graph[V], opts ...search.Option) (*Dijkstra[V], error) {
	return NewWithHeuristic(g, Zero[V], opts...)
}

// NewWithHeuristic binds Dijkstra with heuristic h to g. A nil h means Zero.
// Use search.WithName to relabel the resulting strategy in logs.
func NewWithHeuristic[V comparable](g search.Graph[V], h Heuristic[V], opts ...search.Option) (*Dijkstra[V], error) {
	if g == nil {
		return nil, search.ErrNilGraph
	}
	if h == nil {
		h = Zero[V]
	}
	r, err := search.NewRunner[V](Name, opts...)
	if err != nil {
		return nil, err
	}
	return &Dijkstra[V]{Runner: r, graph: g, heuristic: h}, nil
}

// FindPath returns a minimum-weight path from start to end.
func (d *Dijkstra[V]) FindPath(ctx context.Context, start, end V) (*search.Path[V], error) {
	sess, err := d.Begin(ctx, d.graph, start, end)
	if err != nil {
		return nil, err
	}
	defer sess.Close()
	r := &runner[V]{
		sess:      sess,
		graph:     d.graph,
		heuristic: d.heuristic,
		end:       end,
		dist:      map[V]float64{start: 0},
		prev:      make(map[V]V),
		visited:   make(map[V]bool),
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[V]{id: start, dist: 0})
	return sess.Finish(r.run())
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable] struct {
	sess      *search.Session[V]
	graph     search.Graph[V] // read-only topology; statuses go through sess
	heuristic Heuristic[V]
	end       V
	dist      map[V]float64 // tentative distance; absent means +Inf
	prev      map[V]V       // predecessor on the best known path
	visited   map[V]bool    // finalized vertices
	pq        nodePQ[V]
}

// distance returns the tentative distance of v, +Inf if never reached.
func (r *runner[V]) distance(v V) float64 {
	if d, ok := r.dist[v]; ok {
		return d
	}
	return math.Inf(1)
}

// run repeatedly extracts the vertex with the minimum tentative distance,
// finalizes it and relaxes its outgoing edges until end is finalized or
// the heap is empty.
func (r *runner[V]) run() (*search.Path[V], error) {
	for r.pq.Len() > 0 {
		if err := r.sess.Checkpoint(); err != nil {
			return nil, err
		}

		// 1) Pop the smallest-distance item; skip stale entries.
		item := heap.Pop(&r.pq).(*nodeItem[V])
		u := item.id
		if r.visited[u] {
			continue
		}

		// 2) Finalize u.
		r.visited[u] = true
		if err := r.sess.Mark(u, core.StatusVisited); err != nil {
			return nil, err
		}
		if u == r.end {
			break
		}

		// 3) Relax all outgoing edges from u.
		if err := r.relax(u, item.dist); err != nil {
			return nil, err
		}
		if err := r.sess.Pause(); err != nil {
			return nil, err
		}
	}

	if math.IsInf(r.distance(r.end), 1) || !r.visited[r.end] {
		return nil, search.ErrNoPath
	}
	return r.sess.Backtrack(r.prev, r.graph.Weight)
}

// relax examines each edge u→v with v not finalized and, when
// d + w + h(v, end) is strictly smaller than dist[v], records the
// improvement and pushes v.
func (r *runner[V]) relax(u V, d float64) error {
	nbs, err := r.graph.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %v: %w", u, err)
	}
	for _, v := range nbs {
		if r.visited[v] {
			continue
		}
		w, err := r.graph.Weight(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: weight %v→%v: %w", u, v, err)
		}
		if w < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, u, v, w)
		}

		candidate := d + w + r.heuristic(v, r.end)
		// Strict “<” so equal candidates do not push duplicates.
		if candidate >= r.distance(v) {
			continue
		}
		r.dist[v] = candidate
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem[V]{id: v, dist: candidate})
		if err := r.sess.Mark(v, core.StatusQueued); err != nil {
			return err
		}
	}
	return nil
}
