package gridgraph

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/katalvlaran/pathscope/core"
)

// GridGraph is a weighted graph over the Locations of a Rows×Cols rectangle.
//
// The embedded *core.Graph is the live topology searched by algorithms.
// base keeps the construction-time edges so ClearWall can restore them.
type GridGraph struct {
	*core.Graph[Location]

	Rows, Cols int
	Kind       Kind

	base *core.Graph[Location]

	mu    sync.RWMutex
	walls map[Location]struct{}
}

func newGridGraph(rows, cols int, kind Kind) *GridGraph {
	return &GridGraph{
		Graph: core.NewGraph[Location](),
		Rows:  rows,
		Cols:  cols,
		Kind:  kind,
		base:  core.NewGraph[Location](),
		walls: make(map[Location]struct{}),
	}
}

// NewFull builds the rows×cols grid with undirected unit edges between
// axis neighbors. Vertices are added row by row, left to right.
//
// Complexity: O(R×C) time and memory.
func NewFull(rows, cols int) (*GridGraph, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, rows, cols)
	}
	gg := newGridGraph(rows, cols, KindFull)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			here := Loc(x, y)
			gg.add(here)
			if x > 0 {
				if err := gg.connect(here, Loc(x-1, y), 1); err != nil {
					return nil, err
				}
			}
			if y > 0 {
				if err := gg.connect(here, Loc(x, y-1), 1); err != nil {
					return nil, err
				}
			}
		}
	}
	return gg, nil
}

// NewRandom places exactly size distinct random locations inside the
// size×size square and connects each, undirected, to its Nearest (default 3)
// closest other locations with weight equal to their Euclidean distance.
// A point may end up with more than Nearest neighbors because it can be
// among the nearest of other points.
//
// With size-1 < Nearest every point connects to all others.
//
// Complexity: O(n log n) expected.
func NewRandom(size int, opts ...RandomOption) (*GridGraph, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrEmptyGrid, size)
	}
	o := DefaultRandomOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	rng := o.Rand
	if rng == nil {
		seed := o.Seed
		if seed == 0 {
			seed = DefaultSeed
		}
		rng = rand.New(rand.NewSource(seed))
	}

	// rejection sampling over the size² cells; size ≤ size² so it terminates
	seen := make(map[Location]struct{}, size)
	points := make([]Location, 0, size)
	for len(points) < size {
		p := Loc(rng.Intn(size), rng.Intn(size))
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		points = append(points, p)
	}

	gg := newGridGraph(size, size, KindRandom)
	for _, p := range points {
		gg.add(p)
	}

	k := o.Nearest
	if k > size-1 {
		k = size - 1
	}
	if k == 0 {
		return gg, nil
	}

	idx := newPointIndex(points)
	for _, p := range points {
		for _, q := range idx.nearest(p, k) {
			if err := gg.connect(p, q, p.Distance(q)); err != nil {
				return nil, err
			}
		}
	}
	return gg, nil
}

// FromRows builds a full grid from ASCII rows; every '#' becomes a wall.
// All other runes are open cells. Row i maps to Y=i, column j to X=j.
func FromRows(lines []string) (*GridGraph, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len([]rune(lines[0]))
	for i, line := range lines {
		if n := len([]rune(line)); n != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, n, cols)
		}
	}
	gg, err := NewFull(len(lines), cols)
	if err != nil {
		return nil, err
	}
	for y, line := range lines {
		for x, r := range []rune(line) {
			if r != '#' {
				continue
			}
			if err = gg.SetWall(Loc(x, y)); err != nil {
				return nil, err
			}
		}
	}
	return gg, nil
}

// InBounds reports whether l lies inside the Rows×Cols rectangle.
func (gg *GridGraph) InBounds(l Location) bool {
	return l.X >= 0 && l.X < gg.Cols && l.Y >= 0 && l.Y < gg.Rows
}

// add registers v in both the live and the base topology.
func (gg *GridGraph) add(v Location) {
	gg.Graph.Add(v)
	gg.base.Add(v)
}

// connect records an undirected construction edge in both topologies.
func (gg *GridGraph) connect(a, b Location, w float64) error {
	if err := gg.base.ConnectUndirected(a, b, w); err != nil {
		return err
	}
	return gg.Graph.ConnectUndirected(a, b, w)
}
