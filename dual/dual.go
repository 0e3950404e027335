package dual

import (
	"github.com/volkyrik/flowbatch/basis"
	"github.com/volkyrik/flowbatch/core"
)

// Result is the outcome of a dual solve: a feasible flow vector and the
// pivot count. The basis the flow rests on is the b passed to Solve,
// updated in place.
type Result struct {
	Flow   []int64
	Pivots int
}

// Solve repairs b against g's bounds starting from a dual-feasible
// basis, returning a feasible flow. b is mutated in place; callers
// that need the original basis preserved should pass b.Clone().
func Solve(g *core.Graph, b basis.Set, opts Options) (Result, error) {
	flow := make([]int64, g.NumArcs())
	pivots, err := Run(g, flow, b, opts)
	if err != nil {
		return Result{}, err
	}

	return Result{Flow: flow, Pivots: pivots}, nil
}
