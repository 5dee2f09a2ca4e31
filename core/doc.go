// Package core provides a thread-safe, in-memory weighted graph over
// generic vertex identities, plus the per-vertex visualization status
// that search algorithms update while they run.
//
// The Graph G = (V,E) is an adjacency map:
//
//   - vertices[v] → vertex record
//   - vertex record → neighbors[u] = weight (non-negative float64)
//
// Edges are added either undirected (both a→b and b→a) or directed (a→b
// only). Repeating a connect call overwrites the stored weight. Vertices
// are never removed; a "wall" is a vertex with no edges in or out, which
// DisconnectAll produces.
//
// Determinism:
//
//	Vertices() and Neighbors() return identities in insertion order, so
//	every traversal built on top of them is reproducible run to run.
//
// Status:
//
//	Every vertex carries a Status (Default, Queued, Visited, Path). It is
//	auxiliary state for observers, not topology. Searches only ever move
//	it forward; callers reset it with ResetStatuses between runs.
//
// Concurrency:
//
//	A single sync.RWMutex guards vertices, adjacency and statuses, so each
//	call is safe on its own. Mutating topology while a search is reading
//	it is still a logic error: the search may see a half-built frontier.
//
// Core Methods:
//
//	Add(v)                        // O(1), idempotent
//	Has(v) bool                   // O(1)
//	ConnectUndirected(a, b, w)    // O(1)
//	ConnectDirected(a, b, w)      // O(1)
//	Connected(a, b) bool          // O(1)
//	Weight(a, b) (float64, error) // O(1), ErrEdgeNotFound
//	Neighbors(v) ([]V, error)     // O(deg v)
//	Disconnect(a, b)              // O(deg a)
//	DisconnectAll(v)              // O(Σ deg)
//	Status / SetStatus / SetDefault / ResetStatuses
//
// Errors:
//
//	ErrVertexNotFound - a referenced vertex was never added.
//	ErrEdgeNotFound   - Weight/Disconnect on a missing edge.
//	ErrNegativeWeight - negative or NaN weight passed to Connect*.
package core
