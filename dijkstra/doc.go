// Package dijkstra implements an observable Dijkstra search on graphs with
// non-negative edge weights, with an optional heuristic hook that the astar
// package plugs into.
//
// It processes vertices in order of increasing tentative distance using a
// min-heap priority queue, relaxing edges and updating distances. Each pop
// marks the vertex Visited; each successful relaxation pushes the neighbor
// and marks it Queued; the final path is marked Path while backtracking.
//
// Relaxation:
//
//	candidate = dist[u] + w(u,v) + h(v, end)
//
// h is zero for plain Dijkstra. When a heuristic is supplied it is folded
// into the stored tentative distance (not kept as a separate priority), so
// tentative distances of later vertices carry heuristic terms of their
// predecessors. Path.Distance is always recomputed from the true edge
// weights during backtrack and never taken from the tentative values.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once: V extractions from the heap.
//   - Each edge relaxation may push a new entry into the heap: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for distance and predecessor maps.
//   - O(E) worst-case for entries in the heap under “lazy-decrease-key”.
//
// Notes on implementation choices:
//
//   - Distances default to +Inf lazily: a vertex missing from the map has
//     never been reached.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries when popped.
//   - One pacing delay per non-stale pop; stale pops are skipped silently.
package dijkstra
