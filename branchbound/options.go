package branchbound

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/volkyrik/flowbatch/dual"
)

// Options configures a branch-and-bound search.
type Options struct {
	// Volume is V, the batch size; must be positive.
	Volume int64
	// MaxDepth caps recursion depth as a watchdog independent of the
	// natural O(m) bound from §5 of the design notes. Zero means
	// unbounded (recursion still terminates in at most m levels,
	// since each level fixes one more arc to a multiple of Volume).
	MaxDepth int
	// Rand breaks ties in the dual pivot invoked at every node.
	Rand   *rand.Rand
	Logger zerolog.Logger
	// MaxDualPivots caps each node's dual simplex call; zero means
	// unbounded.
	MaxDualPivots int
}

func (o Options) dualOptions() dual.Options {
	return dual.Options{MaxPivots: o.MaxDualPivots, Rand: o.Rand, Logger: o.Logger}
}
