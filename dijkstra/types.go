package dijkstra

import "errors"

// ErrNegativeWeight indicates a negative edge weight was met during relaxation.
var ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

// Heuristic estimates the remaining cost from v to end. It must not
// overestimate the true remaining cost (admissible) for the returned path
// to be optimal.
type Heuristic[V comparable] func(v, end V) float64

// Zero is the heuristic of plain Dijkstra.
func Zero[V comparable](_, _ V) float64 { return 0 }

// nodeItem represents a vertex and its tentative distance from the source.
// It is stored in the priority queue to order vertices by increasing distance.
type nodeItem[V comparable] struct {
	id   V       // vertex identity
	dist float64 // tentative distance (heuristic-inflated under A*)
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// When a shorter distance to an existing vertex v is found, a new *nodeItem
// is pushed; the outdated entry remains and is ignored when popped
// (checked via visited[v]).
type nodePQ[V comparable] []*nodeItem[V]

// Len returns the number of items in the heap.
func (pq nodePQ[V]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[V]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[V]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ[V]) Push(x any) { *pq = append(*pq, x.(*nodeItem[V])) }

// Pop removes and returns the last element; heap.Pop has already swapped
// the minimum there.
func (pq *nodePQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
