package primal

import (
	"github.com/volkyrik/flowbatch/basis"
	"github.com/volkyrik/flowbatch/core"
)

// Result is the outcome of a full primal solve: an optimal flow vector
// indexed like g.Arcs(), the basis it rests on, and the total pivot
// count across both phases (useful for diagnostics and tests).
type Result struct {
	Flow   []int64
	Basis  basis.Set
	Pivots int
}

// Solve finds a minimum-cost flow on g: Phase1 builds an initial basic
// feasible flow, then Run pivots it to optimality under g's real
// costs. Returns ErrInfeasible if g (despite passing core.NewGraph's
// checks) has no flow satisfying every arc's [LowLimit, Limit] window.
func Solve(g *core.Graph, opts Options) (Result, error) {
	flow, b, err := Phase1(g, opts)
	if err != nil {
		return Result{}, err
	}

	pivots, err := Run(g, flow, b, opts)
	if err != nil {
		return Result{}, err
	}

	return Result{Flow: flow, Basis: b, Pivots: pivots}, nil
}
