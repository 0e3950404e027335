package solver

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/volkyrik/flowbatch/branchbound"
	"github.com/volkyrik/flowbatch/config"
	"github.com/volkyrik/flowbatch/core"
	"github.com/volkyrik/flowbatch/primal"
)

// Options configures a single Solve call, mirroring config.Config but
// with a resolved zerolog.Logger in place of a level name — the same
// split flow/types.go draws between its on-disk DefaultOptions() and
// the FlowOptions a call actually consumes.
type Options struct {
	Volume          int64
	MaxPrimalPivots int
	MaxDualPivots   int
	MaxDepth        int
	RandSeed        int64
	Logger          zerolog.Logger
}

// FromConfig builds Options from a resolved config.Config and a
// logger already set to the config's LogLevel.
func FromConfig(c config.Config, logger zerolog.Logger) Options {
	return Options{
		Volume:          c.Volume,
		MaxPrimalPivots: c.MaxPrimalPivots,
		MaxDualPivots:   c.MaxDualPivots,
		MaxDepth:        c.MaxDepth,
		RandSeed:        c.RandSeed,
		Logger:          logger,
	}
}

// Result is the final answer: the integer flow, its batched objective,
// and pivot/node counts useful for diagnostics.
type Result struct {
	Flow         []int64
	Objective    int64
	PrimalPivots int
	BranchBNodes int
}

// Solve runs primal simplex for the LP relaxation, then
// branch-and-bound (backed by dual simplex) to reach an
// integer-batch-optimal flow.
func Solve(g *core.Graph, opts Options) (Result, error) {
	primalRes, err := primal.Solve(g, primal.Options{MaxPivots: opts.MaxPrimalPivots, Logger: opts.Logger})
	if err != nil {
		return Result{}, err
	}

	bbOpts := branchbound.Options{
		Volume:        opts.Volume,
		MaxDepth:      opts.MaxDepth,
		Rand:          rand.New(rand.NewSource(opts.RandSeed)),
		Logger:        opts.Logger,
		MaxDualPivots: opts.MaxDualPivots,
	}
	bbRes, err := branchbound.Solve(g, primalRes.Flow, primalRes.Basis, bbOpts)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Flow:         bbRes.Flow,
		Objective:    bbRes.Objective,
		PrimalPivots: primalRes.Pivots,
		BranchBNodes: bbRes.Nodes,
	}, nil
}
