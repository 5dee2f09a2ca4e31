// Package greedy provides a nearest-neighbor walk: from start it always
// steps along the cheapest edge to a vertex it has not stood on yet.
//
// The walk never backs up, so it can miss a path that exists; a walk that
// runs out of fresh neighbors before reaching end returns search.ErrNoPath.
// It is useful as a baseline against the exhaustive strategies.
//
// Observation:
//
//   - Each vertex the walk stands on is marked Visited.
//   - Once end is reached the whole walk is marked Path, end first.
//
// Ties between equal edge weights go to the neighbor connected first.
//
// Complexity: O(V + E) time, O(V) memory.
package greedy
