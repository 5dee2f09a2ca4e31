// Package search defines the contract shared by every path-finding strategy
// in this module (bfs, dfs, dijkstra, astar, greedy) and the plumbing they reuse.
//
// What
//
//   - Algorithm[V]: FindPath, RegisterObserver, SetDelay, Stop.
//   - Path[V]: ordered vertices start→end plus the accumulated distance.
//   - Runner[V]: per-instance state embedded by each strategy (observers,
//     pacing delays, logger, single-flight guard, cancel handle).
//   - Session[V]: per-call state returned by Runner.Begin; strategies use
//     it to mark vertex statuses, pace, check for cancellation and
//     backtrack predecessors into a Path.
//
// Observation
//
//	Each status change on a vertex (Queued, Visited, Path) is written to the
//	graph and then reported to every registered Observer, synchronously, on
//	the goroutine running FindPath. Marshaling to a UI goroutine is the
//	observer's job. Observers are snapshotted when a search begins.
//
// Pacing
//
//	SetDelay(d) inserts a sleep of d after every forward step (dequeue, pop,
//	sibling). The backtrack phase uses a separate, shorter delay
//	(WithBacktrackDelay, default 10ms). A zero delay disables pacing. Every
//	sleep is interruptible by Stop or by the caller's context.
//
// Cancellation
//
//	Stop() cancels the in-flight search of that instance. Strategies check
//	for cancellation once per step, so FindPath returns ErrCancelled within
//	one step (and never later than the current pacing sleep). Statuses and
//	notifications already emitted are not rolled back.
//
// Single flight
//
//	One instance runs one search at a time. A concurrent FindPath on the
//	same instance fails fast with ErrBusy instead of corrupting state.
//
// Tracing
//
//	Each search that passes the vertex check becomes one OpenTelemetry span
//	named "<algorithm>.FindPath", taken from WithTracerProvider or the global
//	provider. Finish sets its counters and status.
//
// Errors
//
//   - ErrNilGraph        strategy constructed without a graph.
//   - ErrVertexNotFound  start or end is not in the graph; nothing mutated.
//   - ErrNoPath          frontier exhausted, end unreachable.
//   - ErrCancelled       Stop() or context cancellation observed mid-search.
//   - ErrBusy            another FindPath is in flight on this instance.
//   - ErrOptionViolation invalid Option (e.g. negative delay).
package search
