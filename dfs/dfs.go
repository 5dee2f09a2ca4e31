package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/pathscope/core"
	"github.com/katalvlaran/pathscope/search"
)

// Name is the label DFS uses in logs.
const Name = "dfs"

// errDeadEnd signals that a subtree does not contain end.
var errDeadEnd = errors.New("dfs: dead end")

// DFS is a depth-first strategy bound to one graph.
type DFS[V comparable] struct {
	*search.Runner[V]
	graph search.Graph[V]
}

var _ search.Algorithm[string] = (*DFS[string])(nil)

// New binds a DFS strategy to g.
func New[V comparable](g search.Graph[V], opts ...search.Option) (*DFS[V], error) {
	if g == nil {
		return nil, search.ErrNilGraph
	}
	r, err := search.NewRunner[V](Name, opts...)
	if err != nil {
		return nil, err
	}
	return &DFS[V]{Runner: r, graph: g}, nil
}

// FindPath returns a path from start to end found by depth-first search.
func (d *DFS[V]) FindPath(ctx context.Context, start, end V) (*search.Path[V], error) {
	sess, err := d.Begin(ctx, d.graph, start, end)
	if err != nil {
		return nil, err
	}
	defer sess.Close()
	w := &dfsWalker[V]{
		sess:    sess,
		graph:   d.graph,
		end:     end,
		visited: map[V]bool{start: true},
		path:    &search.Path[V]{},
	}
	return sess.Finish(w.run(start))
}

// dfsWalker encapsulates state during one DFS call.
type dfsWalker[V comparable] struct {
	sess    *search.Session[V]
	graph   search.Graph[V]
	end     V
	visited map[V]bool
	path    *search.Path[V] // built end→start while unwinding
}

func (w *dfsWalker[V]) run(start V) (*search.Path[V], error) {
	err := w.traverse(start)
	if errors.Is(err, errDeadEnd) {
		return nil, search.ErrNoPath
	}
	if err != nil {
		return nil, err
	}
	w.path.Reverse()
	return w.path, nil
}

// traverse visits id and recurses into its unvisited neighbors. It returns
// nil once id lies on a path to end, errDeadEnd if it does not, or the
// cancellation / graph error that aborted the search.
func (w *dfsWalker[V]) traverse(id V) error {
	// 1. Cancellation check
	if err := w.sess.Checkpoint(); err != nil {
		return err
	}

	// 2. Visit
	if err := w.sess.Mark(id, core.StatusVisited); err != nil {
		return err
	}
	if id == w.end {
		w.path.Vertices = append(w.path.Vertices, id)
		return w.sess.Mark(id, core.StatusPath)
	}

	// 3. Fetch neighbors once
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %v: %w", id, err)
	}

	// 4. Preview the frontier of this branch point
	for _, nid := range nbs {
		if !w.visited[nid] {
			if err := w.sess.Mark(nid, core.StatusQueued); err != nil {
				return err
			}
		}
	}

	// 5. Explore each neighbor
	for _, nid := range nbs {
		if !w.visited[nid] {
			w.visited[nid] = true
			err := w.traverse(nid)
			if err == nil {
				return w.unwind(id)
			}
			if !errors.Is(err, errDeadEnd) {
				return err
			}
		}
		if err := w.sess.Pause(); err != nil {
			return err
		}
	}
	return errDeadEnd
}

// unwind adds id to the path on the way back up and marks it Path.
func (w *dfsWalker[V]) unwind(id V) error {
	w.path.Vertices = append(w.path.Vertices, id)
	w.path.Distance++
	if err := w.sess.Mark(id, core.StatusPath); err != nil {
		return err
	}
	return w.sess.PauseBacktrack()
}
