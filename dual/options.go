package dual

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// Options configures a dual pivot run.
type Options struct {
	// MaxPivots caps the number of pivots before giving up with
	// ErrMaxPivotsExceeded. Zero means unbounded.
	MaxPivots int
	// Rand breaks ties among equally-good leaving-arc candidates.
	// Nil falls back to a fixed seed, which keeps Run deterministic
	// by default — callers wanting real randomization supply their
	// own source, the same way builder.WithSeed/WithRand split the
	// concern in the reference package.
	Rand   *rand.Rand
	Logger zerolog.Logger
}

func (o Options) rng() *rand.Rand {
	if o.Rand != nil {
		return o.Rand
	}

	return rand.New(rand.NewSource(1))
}
