// Package pathscope finds paths in weighted graphs while letting you watch
// the search happen: every vertex a strategy queues, visits or puts on the
// final path is reported to observers as it happens, at a pace you choose,
// and any search can be stopped mid-flight from another goroutine.
//
// 🚀 What's inside?
//
//	• Weighted graph with per-vertex search status, safe under locks
//	• Grid graphs: full 4-neighbor rectangles, random nearest-neighbor
//	  point clouds, ASCII mazes, walls that can be toggled
//	• Strategies behind one interface: BFS, DFS, Dijkstra, A*, greedy walk
//	• Observers, pacing delay, Stop / context cancellation, single-flight
//
// Packages:
//
//	core/      - Graph[V], edges, Status and its lifecycle
//	gridgraph/ - Location, NewFull, NewRandom (R-tree k-nearest), FromRows, walls, Render
//	search/    - Algorithm contract, Path, Runner/Session plumbing, options, errors
//	bfs/       - breadth-first search (fewest hops)
//	dfs/       - recursive depth-first search
//	dijkstra/  - minimum-weight search with an optional heuristic hook
//	astar/     - Dijkstra plus straight-line distance to the goal
//	greedy/    - cheapest-edge walk, no backtracking
//	cmd/pathbench - times every strategy over random start/end pairs
//
// Quick ASCII example, gridgraph Render of a finished search:
//
//	**#..      '*' path, '+' visited, 'o' queued,
//	+*#..      '#' wall, '.' untouched
//	o***o
//
//	go get github.com/katalvlaran/pathscope
package pathscope
