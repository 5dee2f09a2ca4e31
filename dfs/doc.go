// Package dfs implements an observable, recursive depth-first path search
// over any search.Graph. It returns some path from start to end, not
// necessarily the shortest.
//
// Behavior:
//   - On entering a vertex it is marked Visited.
//   - Before descending, every not-yet-visited neighbor is marked Queued
//     (a preview of the frontier at this branch point); then each is
//     explored in turn.
//   - When end is reached it is marked Path; ancestors are marked Path as
//     the recursion unwinds, each followed by the short backtrack delay.
//   - One pacing delay after every sibling considered at each level.
//   - Cancellation is checked on every recursive entry and inside every
//     pause; once seen, all pending branches unwind with
//     search.ErrCancelled without touching another vertex.
//
// Path.Distance is the hop count; edge weights are ignored.
//
// Complexity:
//
//   - Time:   O(V + E) plus pacing.
//   - Memory: O(V) for the visited set and the recursion stack.
package dfs
