package greedy

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/pathscope/core"
	"github.com/katalvlaran/pathscope/search"
)

// Name is the label the greedy walk uses in logs.
const Name = "greedy"

// Greedy is a nearest-neighbor walk bound to one graph.
type Greedy[V comparable] struct {
	*search.Runner[V]
	graph search.Graph[V]
}

var _ search.Algorithm[string] = (*Greedy[string])(nil)

// New binds a greedy walk to g.
func New[V comparable](g search.Graph[V], opts ...search.Option) (*Greedy[V], error) {
	if g == nil {
		return nil, search.ErrNilGraph
	}
	r, err := search.NewRunner[V](Name, opts...)
	if err != nil {
		return nil, err
	}
	return &Greedy[V]{Runner: r, graph: g}, nil
}

// FindPath walks from start toward end along locally cheapest edges.
func (gr *Greedy[V]) FindPath(ctx context.Context, start, end V) (*search.Path[V], error) {
	sess, err := gr.Begin(ctx, gr.graph, start, end)
	if err != nil {
		return nil, err
	}
	defer sess.Close()
	return sess.Finish(gr.walk(sess, start, end))
}

func (gr *Greedy[V]) walk(sess *search.Session[V], start, end V) (*search.Path[V], error) {
	visited := map[V]bool{start: true}
	pred := make(map[V]V)
	cur := start
	for {
		if err := sess.Checkpoint(); err != nil {
			return nil, err
		}
		if err := sess.Mark(cur, core.StatusVisited); err != nil {
			return nil, err
		}
		if cur == end {
			break
		}

		next, ok, err := gr.cheapest(cur, visited)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: walk stuck at %v", search.ErrNoPath, cur)
		}
		visited[next] = true
		pred[next] = cur
		cur = next

		if err := sess.Pause(); err != nil {
			return nil, err
		}
	}
	return sess.Backtrack(pred, gr.graph.Weight)
}

// cheapest picks the unvisited neighbor of u behind the lightest edge.
func (gr *Greedy[V]) cheapest(u V, visited map[V]bool) (best V, ok bool, err error) {
	nbs, err := gr.graph.Neighbors(u)
	if err != nil {
		return best, false, fmt.Errorf("greedy: neighbors of %v: %w", u, err)
	}
	bestW := math.Inf(1)
	for _, v := range nbs {
		if visited[v] {
			continue
		}
		w, err := gr.graph.Weight(u, v)
		if err != nil {
			return best, false, fmt.Errorf("greedy: weight %v→%v: %w", u, v, err)
		}
		if w < bestW {
			best, bestW, ok = v, w, true
		}
	}
	return best, ok, nil
}
