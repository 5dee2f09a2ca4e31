package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/pathscope/core"
)

// checkCell validates that l is in bounds and is a vertex of the grid.
func (gg *GridGraph) checkCell(l Location) error {
	if !gg.InBounds(l) {
		return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, l, gg.Rows, gg.Cols)
	}
	if !gg.Has(l) {
		return fmt.Errorf("%w: %v", core.ErrVertexNotFound, l)
	}
	return nil
}

// SetWall turns l into a wall: every edge into or out of l is removed.
// The vertex itself stays in the graph. Setting an existing wall is a no-op.
//
// Must not be called while a search over this graph is running.
//
// Complexity: O(V).
func (gg *GridGraph) SetWall(l Location) error {
	if err := gg.checkCell(l); err != nil {
		return err
	}
	gg.mu.Lock()
	defer gg.mu.Unlock()
	if _, ok := gg.walls[l]; ok {
		return nil
	}
	gg.walls[l] = struct{}{}
	return gg.DisconnectAll(l)
}

// ClearWall removes the wall at l and restores its construction edges,
// with their original weights, to every neighbor that is not itself a wall.
// Clearing a cell that is not a wall is a no-op.
//
// Complexity: O(deg) over construction-time neighbors.
func (gg *GridGraph) ClearWall(l Location) error {
	if err := gg.checkCell(l); err != nil {
		return err
	}
	gg.mu.Lock()
	defer gg.mu.Unlock()
	if _, ok := gg.walls[l]; !ok {
		return nil
	}
	delete(gg.walls, l)

	nbs, err := gg.base.Neighbors(l)
	if err != nil {
		return err
	}
	for _, nb := range nbs {
		if _, walled := gg.walls[nb]; walled {
			continue
		}
		w, err := gg.base.Weight(l, nb)
		if err != nil {
			return err
		}
		if err = gg.Graph.ConnectUndirected(l, nb, w); err != nil {
			return err
		}
	}
	return nil
}

// ToggleWall flips the wall state of l and reports whether l is now a wall.
func (gg *GridGraph) ToggleWall(l Location) (bool, error) {
	if gg.IsWall(l) {
		return false, gg.ClearWall(l)
	}
	return true, gg.SetWall(l)
}

// IsWall reports whether l is currently a wall.
func (gg *GridGraph) IsWall(l Location) bool {
	gg.mu.RLock()
	defer gg.mu.RUnlock()
	_, ok := gg.walls[l]
	return ok
}

// Walls returns the current walls in vertex insertion order.
func (gg *GridGraph) Walls() []Location {
	gg.mu.RLock()
	defer gg.mu.RUnlock()
	out := make([]Location, 0, len(gg.walls))
	for _, v := range gg.Vertices() {
		if _, ok := gg.walls[v]; ok {
			out = append(out, v)
		}
	}
	return out
}

// ClearWalls removes every wall, restoring the construction topology.
func (gg *GridGraph) ClearWalls() error {
	for _, l := range gg.Walls() {
		if err := gg.ClearWall(l); err != nil {
			return err
		}
	}
	return nil
}
