package astar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathscope/astar"
	"github.com/katalvlaran/pathscope/core"
	"github.com/katalvlaran/pathscope/dijkstra"
	"github.com/katalvlaran/pathscope/gridgraph"
	"github.com/katalvlaran/pathscope/search"
)

type loc = gridgraph.Location

var quiet = search.WithBacktrackDelay(0)

// explored counts vertices that were finalized, whether or not they ended on the path.
func explored(gg *gridgraph.GridGraph) int {
	return gg.CountStatus(core.StatusVisited) + gg.CountStatus(core.StatusPath)
}

// TestStraight is the Euclidean distance to the goal.
func TestStraight(t *testing.T) {
	assert.InDelta(t, 5.0, astar.Straight(gridgraph.Loc(0, 0), gridgraph.Loc(3, 4)), 1e-12)
	assert.Zero(t, astar.Straight(gridgraph.Loc(2, 2), gridgraph.Loc(2, 2)))
}

// TestNew_NilGraph rejects a missing graph.
func TestNew_NilGraph(t *testing.T) {
	_, err := astar.New[loc](nil)
	assert.ErrorIs(t, err, search.ErrNilGraph)
}

// TestFindPath_Grid3x3 matches the optimal corner-to-corner distance.
func TestFindPath_Grid3x3(t *testing.T) {
	gg, err := gridgraph.NewFull(3, 3)
	require.NoError(t, err)
	a, err := astar.New[loc](gg, quiet)
	require.NoError(t, err)

	p, err := a.FindPath(context.Background(), gridgraph.Loc(0, 0), gridgraph.Loc(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 5, p.Len())
	assert.Equal(t, 4.0, p.Distance, "distance uses true weights, not heuristic keys")
	assert.True(t, p.Valid(gg))
}

// TestFindPath_EqualsDijkstraOnOpenGrids compares costs over every pair of open grids.
func TestFindPath_EqualsDijkstraOnOpenGrids(t *testing.T) {
	for _, dims := range [][2]int{{3, 3}, {5, 7}, {8, 8}} {
		gg, err := gridgraph.NewFull(dims[0], dims[1])
		require.NoError(t, err)
		a, err := astar.New[loc](gg, quiet)
		require.NoError(t, err)
		d, err := dijkstra.New[loc](gg, quiet)
		require.NoError(t, err)

		vs := gg.Vertices()
		for _, s := range vs {
			for _, e := range vs {
				gg.ResetStatuses()
				pa, err := a.FindPath(context.Background(), s, e)
				require.NoError(t, err)
				gg.ResetStatuses()
				pd, err := d.FindPath(context.Background(), s, e)
				require.NoError(t, err)
				assert.Equal(t, pd.Distance, pa.Distance, "%v grid %v→%v", dims, s, e)
			}
		}
	}
}

var maze = []string{
	"......",
	".####.",
	".#....",
	".#.##.",
	"...#..",
}

// TestFindPath_MazeNeverBeatsDijkstra checks validity and the cost bound on a walled grid.
func TestFindPath_MazeNeverBeatsDijkstra(t *testing.T) {
	gg, err := gridgraph.FromRows(maze)
	require.NoError(t, err)
	a, err := astar.New[loc](gg, quiet)
	require.NoError(t, err)
	d, err := dijkstra.New[loc](gg, quiet)
	require.NoError(t, err)

	for _, s := range gg.Vertices() {
		for _, e := range gg.Vertices() {
			if gg.IsWall(s) || gg.IsWall(e) {
				continue
			}
			gg.ResetStatuses()
			pa, errA := a.FindPath(context.Background(), s, e)
			gg.ResetStatuses()
			pd, errD := d.FindPath(context.Background(), s, e)
			require.NoError(t, errD, "%v→%v", s, e)
			require.NoError(t, errA, "%v→%v", s, e)
			assert.True(t, pa.Valid(gg))
			assert.GreaterOrEqual(t, pa.Distance, pd.Distance, "%v→%v", s, e)
		}
	}
}

// TestFindPath_FoldedKeysDetour pins a case where folded heuristic keys
// settle the goal through a longer corridor.
func TestFindPath_FoldedKeysDetour(t *testing.T) {
	gg, err := gridgraph.FromRows(maze)
	require.NoError(t, err)
	a, err := astar.New[loc](gg, quiet)
	require.NoError(t, err)
	d, err := dijkstra.New[loc](gg, quiet)
	require.NoError(t, err)
	s, e := gridgraph.Loc(0, 1), gridgraph.Loc(4, 4)

	pd, err := d.FindPath(context.Background(), s, e)
	require.NoError(t, err)
	gg.ResetStatuses()
	pa, err := a.FindPath(context.Background(), s, e)
	require.NoError(t, err)

	assert.Equal(t, 11.0, pd.Distance)
	assert.Equal(t, 13.0, pa.Distance)
	assert.Equal(t, float64(pa.Hops()), pa.Distance, "true unit weights, not folded keys")
}

// TestFindPath_ExploresLess visits fewer vertices than Dijkstra on an open grid.
func TestFindPath_ExploresLess(t *testing.T) {
	gg, err := gridgraph.NewFull(20, 20)
	require.NoError(t, err)
	a, err := astar.New[loc](gg, quiet)
	require.NoError(t, err)
	d, err := dijkstra.New[loc](gg, quiet)
	require.NoError(t, err)
	start, end := gridgraph.Loc(0, 0), gridgraph.Loc(19, 0)

	pd, err := d.FindPath(context.Background(), start, end)
	require.NoError(t, err)
	byDijkstra := explored(gg)

	gg.ResetStatuses()
	pa, err := a.FindPath(context.Background(), start, end)
	require.NoError(t, err)
	byAStar := explored(gg)

	assert.Equal(t, 19.0, pd.Distance)
	assert.Equal(t, pd.Distance, pa.Distance)
	assert.Less(t, byAStar, byDijkstra)
}

// TestFindPath_RandomGrid returns valid paths whose distance is the true weight sum.
func TestFindPath_RandomGrid(t *testing.T) {
	gg, err := gridgraph.NewRandom(100, gridgraph.WithSeed(4))
	require.NoError(t, err)
	a, err := astar.New[loc](gg, quiet)
	require.NoError(t, err)
	d, err := dijkstra.New[loc](gg, quiet)
	require.NoError(t, err)

	vs := gg.Vertices()
	for i := 0; i+1 < len(vs); i += 9 {
		gg.ResetStatuses()
		pd, errD := d.FindPath(context.Background(), vs[i], vs[i+1])
		gg.ResetStatuses()
		pa, errA := a.FindPath(context.Background(), vs[i], vs[i+1])
		if errD != nil {
			assert.ErrorIs(t, errA, search.ErrNoPath)
			continue
		}
		require.NoError(t, errA)
		require.True(t, pa.Valid(gg))

		sum := 0.0
		for j := 1; j < len(pa.Vertices); j++ {
			w, err := gg.Weight(pa.Vertices[j-1], pa.Vertices[j])
			require.NoError(t, err)
			sum += w
		}
		assert.InDelta(t, sum, pa.Distance, 1e-9)
		assert.GreaterOrEqual(t, pa.Distance+1e-9, pd.Distance, "never beats the optimum")
	}
}

// TestObserver_Registered receives notifications through the embedded runner.
func TestObserver_Registered(t *testing.T) {
	gg, _ := gridgraph.NewFull(2, 2)
	a, err := astar.New[loc](gg, quiet)
	require.NoError(t, err)
	n := 0
	a.RegisterObserver(func(loc) { n++ })

	_, err = a.FindPath(context.Background(), gridgraph.Loc(0, 0), gridgraph.Loc(1, 1))
	require.NoError(t, err)
	assert.Positive(t, n)
	assert.Equal(t, astar.Name, a.Name())
}
