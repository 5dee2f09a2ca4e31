// File: methods_edges.go
// Role: Edge lifecycle & queries: Connect*/Disconnect*/Connected/Weight/Neighbors.
//
// Determinism:
//   - Neighbors() returns identities in the order their edge was first created.
//   - Overwriting an existing edge keeps its original position.
//
// Concurrency:
//   - Mutations under g.mu write lock, queries under g.mu read lock.
package core

import (
	"fmt"
	"math"
)

// ConnectUndirected creates or overwrites a→b and b→a with weight w.
// Both endpoints must already be present.
//
// Errors:
//   - ErrVertexNotFound if a or b is absent.
//   - ErrNegativeWeight if w < 0 or w is NaN.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) ConnectUndirected(a, b V, w float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	va, vb, err := g.endpoints(a, b, w)
	if err != nil {
		return err
	}
	va.connect(b, w)
	vb.connect(a, w)
	return nil
}

// ConnectDirected creates or overwrites a→b with weight w only.
//
// Errors:
//   - ErrVertexNotFound if a or b is absent.
//   - ErrNegativeWeight if w < 0 or w is NaN.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) ConnectDirected(a, b V, w float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	va, _, err := g.endpoints(a, b, w)
	if err != nil {
		return err
	}
	va.connect(b, w)
	return nil
}

// Connected reports whether the edge a→b exists. Absent vertices are
// simply not connected.
// Complexity: O(1).
func (g *Graph[V]) Connected(a, b V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	va, ok := g.vertices[a]
	if !ok {
		return false
	}
	_, ok = va.weights[b]
	return ok
}

// Weight returns the weight of a→b.
// Returns ErrEdgeNotFound when the edge (or either vertex) does not exist;
// querying a missing edge is a programming error on the caller's side.
// Complexity: O(1).
func (g *Graph[V]) Weight(a, b V) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if va, ok := g.vertices[a]; ok {
		if w, ok := va.weights[b]; ok {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, a, b)
}

// Neighbors returns a snapshot of the out-neighbors of v in insertion order.
// Returns ErrVertexNotFound if v is absent.
// Complexity: O(deg v).
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, ok := g.vertices[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	out := make([]V, len(rec.order))
	copy(out, rec.order)
	return out, nil
}

// Degree returns the out-degree of v (0 for absent vertices).
func (g *Graph[V]) Degree(v V) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if rec, ok := g.vertices[v]; ok {
		return len(rec.order)
	}
	return 0
}

// Disconnect removes the directed edge a→b.
// Returns ErrEdgeNotFound if it does not exist.
// Complexity: O(deg a).
func (g *Graph[V]) Disconnect(a, b V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	va, ok := g.vertices[a]
	if !ok || !va.disconnect(b) {
		return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, a, b)
	}
	return nil
}

// DisconnectAll removes every edge out of v and every edge into v, turning
// v into an isolated vertex. The vertex itself and its status remain.
// Returns ErrVertexNotFound if v is absent.
// Complexity: O(V) map probes plus O(deg u) for each former neighbor u.
func (g *Graph[V]) DisconnectAll(v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.vertices[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	// Scan every vertex: directed edges u→v are not visible from rec.order.
	for _, u := range g.order {
		if u != v {
			g.vertices[u].disconnect(v)
		}
	}
	rec.weights = make(map[V]float64)
	rec.order = nil
	return nil
}

// endpoints validates a connect request and returns both records.
// Caller must hold g.mu for writing.
func (g *Graph[V]) endpoints(a, b V, w float64) (*vertex[V], *vertex[V], error) {
	if w < 0 || math.IsNaN(w) {
		return nil, nil, fmt.Errorf("%w: %v→%v weight=%v", ErrNegativeWeight, a, b, w)
	}
	va, ok := g.vertices[a]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, a)
	}
	vb, ok := g.vertices[b]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, b)
	}
	return va, vb, nil
}

func (x *vertex[V]) connect(to V, w float64) {
	if _, exists := x.weights[to]; !exists {
		x.order = append(x.order, to)
	}
	x.weights[to] = w
}

func (x *vertex[V]) disconnect(to V) bool {
	if _, exists := x.weights[to]; !exists {
		return false
	}
	delete(x.weights, to)
	for i, u := range x.order {
		if u == to {
			x.order = append(x.order[:i], x.order[i+1:]...)
			break
		}
	}
	return true
}
