package gridgraph

import (
	"errors"
	"fmt"
	"math/rand"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates non-positive rows, cols or size.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates FromRows lines of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a location outside the grid rectangle.
	ErrOutOfBounds = errors.New("gridgraph: location out of bounds")
	// ErrOptionViolation indicates an invalid RandomOption.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
)

// Kind records how a GridGraph was constructed.
type Kind int

const (
	// KindFull is a rectangle with unit edges between axis neighbors.
	KindFull Kind = iota
	// KindRandom is a random point cloud joined to its nearest neighbors.
	KindRandom
)

// String returns "full" or "random".
func (k Kind) String() string {
	if k == KindRandom {
		return "random"
	}
	return "full"
}

const (
	// DefaultNearest is the number of nearest neighbors each random point joins.
	DefaultNearest = 3

	// DefaultSeed seeds NewRandom when neither a seed nor an RNG is given,
	// so the zero configuration still yields one fixed layout.
	DefaultSeed int64 = 1
)

// RandomOptions holds parameters for NewRandom.
type RandomOptions struct {
	// Seed feeds the RNG when Rand is nil. Zero selects DefaultSeed.
	Seed int64

	// Rand overrides the RNG entirely. Not goroutine-safe; do not share.
	Rand *rand.Rand

	// Nearest is how many nearest other points each point connects to.
	Nearest int

	// internal error recorded during option parsing
	err error
}

// RandomOption configures NewRandom.
type RandomOption func(*RandomOptions)

// DefaultRandomOptions returns Seed=0 (fixed default seed), no custom RNG
// and Nearest=DefaultNearest.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{Nearest: DefaultNearest}
}

// WithSeed sets a deterministic seed.
func WithSeed(seed int64) RandomOption {
	return func(o *RandomOptions) { o.Seed = seed }
}

// WithRand supplies the RNG directly; nil keeps the seeded default.
func WithRand(r *rand.Rand) RandomOption {
	return func(o *RandomOptions) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithNearest sets how many nearest neighbors each point joins (k ≥ 1).
func WithNearest(k int) RandomOption {
	return func(o *RandomOptions) {
		if k < 1 {
			o.err = fmt.Errorf("%w: nearest must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.Nearest = k
	}
}
