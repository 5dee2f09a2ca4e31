package gridgraph

import (
	"github.com/dhconnelly/rtreego"
)

// R-tree fan-out: 2D, min 25, max 50 entries per node.
const (
	treeDim         = 2
	treeMinChildren = 25
	treeMaxChildren = 50
)

// pointEntry wraps a location for R-tree storage.
type pointEntry struct {
	loc  Location
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (p *pointEntry) Bounds() rtreego.Rect {
	return p.bbox
}

// pointIndex answers k-nearest queries over a fixed set of locations.
type pointIndex struct {
	tree    *rtreego.Rtree
	entries map[Location]*pointEntry
}

// newPointIndex bulk-loads locs into an R-tree. Each point is stored as a
// zero-extent rectangle so R-tree distances are exact.
func newPointIndex(locs []Location) *pointIndex {
	entries := make(map[Location]*pointEntry, len(locs))
	objs := make([]rtreego.Spatial, 0, len(locs))
	for _, l := range locs {
		e := &pointEntry{
			loc:  l,
			bbox: rtreego.Point{float64(l.X), float64(l.Y)}.ToRect(0),
		}
		entries[l] = e
		objs = append(objs, e)
	}
	return &pointIndex{
		tree:    rtreego.NewTree(treeDim, treeMinChildren, treeMaxChildren, objs...),
		entries: entries,
	}
}

// nearest returns up to k indexed locations closest to l, excluding l
// itself, in order of increasing distance.
func (pi *pointIndex) nearest(l Location, k int) []Location {
	self := pi.entries[l]
	skipSelf := func(_ []rtreego.Spatial, obj rtreego.Spatial) (refuse, abort bool) {
		return obj == rtreego.Spatial(self), false
	}
	found := pi.tree.NearestNeighbors(k, rtreego.Point{float64(l.X), float64(l.Y)}, skipSelf)

	out := make([]Location, 0, len(found))
	for _, obj := range found {
		if obj == nil {
			continue
		}
		out = append(out, obj.(*pointEntry).loc)
	}
	return out
}
