package search_test

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathscope/core"
	"github.com/katalvlaran/pathscope/search"
)

// chain builds a→b→c→d with weights 1, 2, 3.
func chain(t *testing.T) *core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	for _, v := range []string{"a", "b", "c", "d"} {
		g.Add(v)
	}
	require.NoError(t, g.ConnectUndirected("a", "b", 1))
	require.NoError(t, g.ConnectUndirected("b", "c", 2))
	require.NoError(t, g.ConnectUndirected("c", "d", 3))
	return g
}

func newRunner(t *testing.T, opts ...search.Option) *search.Runner[string] {
	t.Helper()
	r, err := search.NewRunner[string]("test", append([]search.Option{search.WithBacktrackDelay(0)}, opts...)...)
	require.NoError(t, err)
	return r
}

// TestNewRunner_Options surfaces invalid options and applies valid ones.
func TestNewRunner_Options(t *testing.T) {
	_, err := search.NewRunner[string]("x", search.WithDelay(-time.Second))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
	_, err = search.NewRunner[string]("x", search.WithBacktrackDelay(-1))
	assert.ErrorIs(t, err, search.ErrOptionViolation)

	r, err := search.NewRunner[string]("x", search.WithDelay(5*time.Millisecond), search.WithName("renamed"))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Millisecond, r.Delay())
	assert.Equal(t, "renamed", r.Name())
	assert.False(t, r.Running())
}

// TestSetDelay_Clamps negative delays to zero.
func TestSetDelay_Clamps(t *testing.T) {
	r := newRunner(t)
	r.SetDelay(3 * time.Millisecond)
	assert.Equal(t, 3*time.Millisecond, r.Delay())
	r.SetDelay(-time.Millisecond)
	assert.Zero(t, r.Delay())
}

// TestObservers_RegisterUnregister checks ordering and handle removal.
func TestObservers_RegisterUnregister(t *testing.T) {
	g := chain(t)
	r := newRunner(t)

	var got []string
	assert.Zero(t, r.RegisterObserver(nil))
	id1 := r.RegisterObserver(func(v string) { got = append(got, "1:"+v) })
	id2 := r.RegisterObserver(func(v string) { got = append(got, "2:"+v) })
	assert.NotEqual(t, id1, id2)

	sess, err := r.Begin(context.Background(), g, "a", "d")
	require.NoError(t, err)
	require.NoError(t, sess.Mark("b", core.StatusQueued))
	_, _ = sess.Finish(nil, search.ErrNoPath)
	assert.Equal(t, []string{"1:b", "2:b"}, got)

	st, err := g.Status("b")
	require.NoError(t, err)
	assert.Equal(t, core.StatusQueued, st)

	assert.True(t, r.UnregisterObserver(id1))
	assert.False(t, r.UnregisterObserver(id1))

	got = nil
	sess, err = r.Begin(context.Background(), g, "a", "d")
	require.NoError(t, err)
	require.NoError(t, sess.Mark("c", core.StatusVisited))
	_, _ = sess.Finish(nil, search.ErrNoPath)
	assert.Equal(t, []string{"2:c"}, got)
}

// TestBegin_MissingVertex fails before any mutation and frees the instance.
func TestBegin_MissingVertex(t *testing.T) {
	g := chain(t)
	r := newRunner(t)
	called := false
	r.RegisterObserver(func(string) { called = true })

	_, err := r.Begin(context.Background(), g, "a", "zzz")
	assert.ErrorIs(t, err, search.ErrVertexNotFound)
	assert.Contains(t, err.Error(), "zzz")
	_, err = r.Begin(context.Background(), g, "nope", "a")
	assert.ErrorIs(t, err, search.ErrVertexNotFound)
	assert.False(t, r.Running())
	assert.False(t, called)
	assert.Zero(t, g.CountStatus(core.StatusQueued)+g.CountStatus(core.StatusVisited)+g.CountStatus(core.StatusPath))
}

// TestBegin_SingleFlight rejects a second concurrent claim.
func TestBegin_SingleFlight(t *testing.T) {
	g := chain(t)
	r := newRunner(t)

	sess, err := r.Begin(context.Background(), g, "a", "d")
	require.NoError(t, err)
	assert.True(t, r.Running())

	_, err = r.Begin(context.Background(), g, "a", "d")
	assert.ErrorIs(t, err, search.ErrBusy)

	_, _ = sess.Finish(nil, search.ErrNoPath)
	assert.False(t, r.Running())

	sess, err = r.Begin(nil, g, "a", "d") //nolint:staticcheck // nil ctx is tolerated
	require.NoError(t, err)
	_, _ = sess.Finish(nil, search.ErrNoPath)
}

// TestPause_StopInterrupts ends a long pause within a few milliseconds.
func TestPause_StopInterrupts(t *testing.T) {
	g := chain(t)
	r := newRunner(t, search.WithDelay(time.Hour))

	sess, err := r.Begin(context.Background(), g, "a", "d")
	require.NoError(t, err)

	go func() {
		time.Sleep(time.Millisecond)
		r.Stop()
	}()
	began := time.Now()
	err = sess.Pause()
	assert.ErrorIs(t, err, search.ErrCancelled)
	assert.Less(t, time.Since(began), time.Second)
	assert.ErrorIs(t, sess.Checkpoint(), search.ErrCancelled)

	_, err = sess.Finish(nil, err)
	assert.ErrorIs(t, err, search.ErrCancelled)
	assert.False(t, r.Running())

	// idle Stop is harmless
	r.Stop()
}

// TestCheckpoint_ParentContext honors cancellation from the caller's context.
func TestCheckpoint_ParentContext(t *testing.T) {
	g := chain(t)
	r := newRunner(t)
	ctx, cancel := context.WithCancel(context.Background())

	sess, err := r.Begin(ctx, g, "a", "d")
	require.NoError(t, err)
	require.NoError(t, sess.Checkpoint())
	cancel()
	assert.ErrorIs(t, sess.Checkpoint(), search.ErrCancelled)
	assert.ErrorIs(t, sess.Pause(), search.ErrCancelled, "zero delay still observes cancellation")
	_, _ = sess.Finish(nil, search.ErrCancelled)
}

// TestBacktrack_WeightsAndStatus walks predecessors and sums true weights.
func TestBacktrack_WeightsAndStatus(t *testing.T) {
	g := chain(t)
	r := newRunner(t)
	var order []string
	r.RegisterObserver(func(v string) { order = append(order, v) })

	sess, err := r.Begin(context.Background(), g, "a", "d")
	require.NoError(t, err)
	p, err := sess.Finish(sess.Backtrack(map[string]string{"b": "a", "c": "b", "d": "c"}, g.Weight))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d"}, p.Vertices)
	assert.Equal(t, 6.0, p.Distance)
	assert.Equal(t, []string{"d", "c", "b", "a"}, order, "path is marked from end back to start")
	assert.Equal(t, 4, g.CountStatus(core.StatusPath))
}

// TestBacktrack_BrokenChain reports ErrNoPath when a predecessor is missing.
func TestBacktrack_BrokenChain(t *testing.T) {
	g := chain(t)
	r := newRunner(t)
	sess, err := r.Begin(context.Background(), g, "a", "d")
	require.NoError(t, err)
	p, err := sess.Finish(sess.Backtrack(map[string]string{"d": "c"}, search.UnitCost[string]))
	assert.Nil(t, p)
	assert.ErrorIs(t, err, search.ErrNoPath)
}

// TestLogger_Lifecycle emits Debug records for start and finish.
func TestLogger_Lifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := chain(t)
	r := newRunner(t, search.WithLogger(logger))

	sess, err := r.Begin(context.Background(), g, "a", "b")
	require.NoError(t, err)
	_, err = sess.Finish(sess.Backtrack(map[string]string{"b": "a"}, g.Weight))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "search started")
	assert.Contains(t, out, "search finished")
	assert.Contains(t, out, "algorithm=test")
	assert.Contains(t, out, "hops=1")
}

// TestObservers_ConcurrentRegister is race-free alongside a running search.
func TestObservers_ConcurrentRegister(t *testing.T) {
	g := chain(t)
	r := newRunner(t)
	sess, err := r.Begin(context.Background(), g, "a", "d")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := r.RegisterObserver(func(string) {})
			r.SetDelay(0)
			r.UnregisterObserver(id)
		}()
	}
	require.NoError(t, sess.Mark("a", core.StatusVisited))
	wg.Wait()
	_, _ = sess.Finish(nil, search.ErrNoPath)
}
