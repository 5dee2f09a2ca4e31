// Package bfs provides an observable breadth-first path search over any
// search.Graph, returning a path with the fewest hops.
//
// What
//
//   - Explore vertices in non-decreasing hop count from start.
//   - Edge weights are ignored: the returned Path.Distance is the hop count.
//   - Status transitions reported to observers:
//   - Visited  when a vertex is dequeued
//   - Queued   when a neighbor is discovered for the first time
//   - Path     for every vertex while backtracking end→start
//
// Pacing
//
//	One pacing delay (SetDelay) after every dequeue step that does not hit
//	end; the shorter backtrack delay after every backtrack step.
//
// Determinism
//
//	Neighbors are expanded in the graph's insertion order, so the visit
//	sequence and the chosen shortest path are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) plus pacing.
//   - Memory: O(V) for the queue and predecessor map.
//
// Usage
//
//	b, err := bfs.New[gridgraph.Location](grid, search.WithDelay(5*time.Millisecond))
//	b.RegisterObserver(func(loc gridgraph.Location) { redraw(loc) })
//	go func() { path, err := b.FindPath(ctx, from, to) /* ... */ }()
//	// later, from the UI goroutine:
//	b.Stop()
//
// Errors
//
//   - search.ErrNilGraph, search.ErrOptionViolation from New.
//   - search.ErrVertexNotFound, search.ErrNoPath, search.ErrCancelled,
//     search.ErrBusy from FindPath.
package bfs
