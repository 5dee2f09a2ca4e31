// File: methods_vertices.go
// Role: Vertex lifecycle, queries and per-vertex status.
//
// Determinism:
//   - Vertices() returns identities in insertion order.
//
// Concurrency:
//   - Every method takes g.mu (read lock for queries, write lock for mutation).
package core

import "fmt"

// Add inserts v with no edges. Adding an existing vertex is a no-op, so
// its edges and status are left untouched.
// Complexity: O(1) amortized.
func (g *Graph[V]) Add(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.vertices[v]; exists {
		return
	}
	g.vertices[v] = newVertex[V]()
	g.order = append(g.order, v)
}

// Has reports whether v was added to the graph.
// Complexity: O(1).
func (g *Graph[V]) Has(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[v]
	return ok
}

// Len returns the number of vertices.
func (g *Graph[V]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Vertices returns a snapshot of every vertex identity in insertion order.
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, len(g.order))
	copy(out, g.order)
	return out
}

// Status returns the current visualization status of v.
// Returns ErrVertexNotFound if v is absent.
func (g *Graph[V]) Status(v V) (Status, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rec, ok := g.vertices[v]
	if !ok {
		return StatusDefault, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	return rec.status, nil
}

// SetStatus overwrites the status of v.
// Returns ErrVertexNotFound if v is absent.
func (g *Graph[V]) SetStatus(v V, s Status) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	rec, ok := g.vertices[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	rec.status = s
	return nil
}

// SetDefault resets the status of v to StatusDefault.
func (g *Graph[V]) SetDefault(v V) error {
	return g.SetStatus(v, StatusDefault)
}

// ResetStatuses moves every vertex back to StatusDefault. Call it between
// independent search runs; searches never reset statuses themselves.
// Complexity: O(V).
func (g *Graph[V]) ResetStatuses() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, rec := range g.vertices {
		rec.status = StatusDefault
	}
}

// CountStatus returns how many vertices currently hold status s.
// Complexity: O(V).
func (g *Graph[V]) CountStatus(s Status) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, rec := range g.vertices {
		if rec.status == s {
			n++
		}
	}
	return n
}
