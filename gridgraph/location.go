package gridgraph

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Location is a cell coordinate: X is the column, Y is the row.
// It is a comparable value type and serves as the vertex identity.
type Location struct {
	X, Y int
}

// Loc is shorthand for Location{X: x, Y: y}.
func Loc(x, y int) Location { return Location{X: x, Y: y} }

// Point returns the location as a planar orb.Point.
func (l Location) Point() orb.Point {
	return orb.Point{float64(l.X), float64(l.Y)}
}

// Distance returns the Euclidean distance to other.
func (l Location) Distance(other Location) float64 {
	return planar.Distance(l.Point(), other.Point())
}

// String renders the location as "(x, y)".
func (l Location) String() string {
	return fmt.Sprintf("(%d, %d)", l.X, l.Y)
}
