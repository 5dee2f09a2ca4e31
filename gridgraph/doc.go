// Package gridgraph builds weighted graphs whose vertices are 2D grid
// locations, the concrete setting the search strategies are animated on.
//
// What:
//
//   - Location{X, Y}: immutable coordinate (X = column, Y = row) with a
//     Euclidean Distance, usable as an A* heuristic.
//   - NewFull(rows, cols): every cell, undirected unit edges to its
//     in-bounds left/right/up/down neighbors.
//   - NewRandom(size): exactly size distinct random cells inside a
//     size×size square, each joined to its 3 nearest other cells with
//     weight = Euclidean distance. Nearest neighbors come from an R-tree.
//   - FromRows(lines): a full grid from ASCII art, '#' cells become walls.
//   - Walls: SetWall isolates a cell; ClearWall restores its construction
//     edges to neighbors that are not walls themselves. Vertices are
//     never removed.
//   - Render: ASCII snapshot of walls and per-vertex search status.
//
// GridGraph embeds *core.Graph[Location], so it can be handed directly to
// bfs, dfs, dijkstra and astar.
//
// Complexity:
//
//   - NewFull:   O(R×C), Memory O(R×C).
//   - NewRandom: O(n log n) index build + O(n·k log n) queries.
//   - SetWall / ClearWall: O(V) / O(deg).
//
// Errors:
//
//   - ErrEmptyGrid: rows, cols or size is not positive.
//   - ErrNonRectangular: FromRows lines have differing lengths.
//   - ErrOutOfBounds: a wall operation names a location outside the grid.
//   - ErrOptionViolation: invalid RandomOption.
package gridgraph
