package search

import (
	"fmt"
	"strings"
)

// Path is an ordered walk from start to end (inclusive) and its total distance.
//
// Distance is the sum of the true weights of the traversed edges for
// Dijkstra and A*, and the hop count for BFS and DFS, which ignore weights.
// A Path is created fresh by every FindPath call and owned by the caller.
type Path[V comparable] struct {
	Vertices []V
	Distance float64
}

// Len returns the number of vertices on the path.
func (p *Path[V]) Len() int { return len(p.Vertices) }

// Hops returns the number of edges on the path.
func (p *Path[V]) Hops() int {
	if len(p.Vertices) == 0 {
		return 0
	}
	return len(p.Vertices) - 1
}

// Start returns the first vertex. ok is false for an empty path.
func (p *Path[V]) Start() (v V, ok bool) {
	if len(p.Vertices) == 0 {
		return v, false
	}
	return p.Vertices[0], true
}

// End returns the last vertex. ok is false for an empty path.
func (p *Path[V]) End() (v V, ok bool) {
	if len(p.Vertices) == 0 {
		return v, false
	}
	return p.Vertices[len(p.Vertices)-1], true
}

// Contains reports whether v lies on the path.
func (p *Path[V]) Contains(v V) bool {
	for _, u := range p.Vertices {
		if u == v {
			return true
		}
	}
	return false
}

// Valid reports whether every consecutive pair is connected in g and no
// vertex repeats. An empty path is not valid.
func (p *Path[V]) Valid(g interface{ Connected(a, b V) bool }) bool {
	if len(p.Vertices) == 0 {
		return false
	}
	seen := make(map[V]struct{}, len(p.Vertices))
	for i, v := range p.Vertices {
		if _, dup := seen[v]; dup {
			return false
		}
		seen[v] = struct{}{}
		if i > 0 && !g.Connected(p.Vertices[i-1], v) {
			return false
		}
	}
	return true
}

// String renders the path as "a -> b -> c (distance d)".
func (p *Path[V]) String() string {
	parts := make([]string, len(p.Vertices))
	for i, v := range p.Vertices {
		parts[i] = fmt.Sprint(v)
	}
	return fmt.Sprintf("%s (distance %g)", strings.Join(parts, " -> "), p.Distance)
}

// Reverse flips the vertex order in place. Backtracking builds paths
// end→start and reverses once at the end.
func (p *Path[V]) Reverse() {
	vs := p.Vertices
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}
