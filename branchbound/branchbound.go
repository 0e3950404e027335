package branchbound

import (
	"errors"
	"math"

	"github.com/volkyrik/flowbatch/basis"
	"github.com/volkyrik/flowbatch/core"
	"github.com/volkyrik/flowbatch/dual"
)

// infeasible stands in for a child's objective when that child doesn't
// exist (empty bound window) or the dual reports it infeasible: it can
// never be the strict minimum of the three-way comparison.
const infeasible = int64(math.MaxInt64)

// Result is the outcome of a search: the best flow found, its batched
// objective value, and how many tree nodes were visited.
type Result struct {
	Flow      []int64
	Objective int64
	Nodes     int
}

// Solve runs branch-and-bound starting from the continuous-optimal
// flow and basis (as produced by primal.Solve), searching for an
// integer-batch-optimal flow under opts.Volume.
func Solve(g *core.Graph, flow []int64, b basis.Set, opts Options) (Result, error) {
	if opts.Volume <= 0 {
		return Result{}, ErrInvalidVolume
	}

	visited := 0
	bestFlow, err := search(g, flow, b, opts, 0, &visited)
	if err != nil {
		return Result{}, err
	}

	return Result{Flow: bestFlow, Objective: Objective(g, bestFlow, opts.Volume), Nodes: visited}, nil
}

// child is one of the two tightened variants of the current node,
// pre-solved by the dual simplex; ok is false when the window is
// empty or the dual reports primal infeasibility.
type child struct {
	ok    bool
	graph *core.Graph
	flow  []int64
	basis basis.Set
	obj   int64
}

// search implements §4.E's strict three-way descent: for each arc
// whose flow is not a multiple of Volume, it solves both the
// low-limit-raised and the limit-lowered children by dual simplex from
// the current basis and recurses into whichever of {left, center,
// right} is the unique strict minimum. Ties and infeasible children
// are left unexplored — see DESIGN.md's open-question note.
func search(g *core.Graph, flow []int64, b basis.Set, opts Options, depth int, visited *int) ([]int64, error) {
	*visited++
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return flow, nil
	}

	best := flow
	centerObj := Objective(g, flow, opts.Volume)
	bestObj := centerObj

	for i, f := range flow {
		if f%opts.Volume == 0 {
			continue
		}
		idx := core.ArcIndex(i)
		a := g.Arc(idx)

		left, err := branchLow(g, b, opts, idx, (f/opts.Volume+1)*opts.Volume, a.Limit)
		if err != nil {
			return nil, err
		}
		right, err := branchLimit(g, b, opts, idx, (f/opts.Volume)*opts.Volume)
		if err != nil {
			return nil, err
		}

		switch {
		case left.ok && left.obj < centerObj && left.obj < right.obj:
			opts.Logger.Debug().Int("arc", i).Int64("low_limit", left.graph.Arc(idx).LowLimit).Msg("branchbound: descend left")
			sub, err := search(left.graph, left.flow, left.basis, opts, depth+1, visited)
			if err != nil {
				return nil, err
			}
			if subObj := Objective(g, sub, opts.Volume); subObj < bestObj {
				best, bestObj = sub, subObj
			}
		case centerObj < left.obj && centerObj < right.obj:
			// the un-branched flow wins at this arc; best already
			// holds it or a strictly better flow found earlier
		case right.ok && right.obj < left.obj && right.obj < centerObj:
			opts.Logger.Debug().Int("arc", i).Int64("limit", right.graph.Arc(idx).Limit).Msg("branchbound: descend right")
			sub, err := search(right.graph, right.flow, right.basis, opts, depth+1, visited)
			if err != nil {
				return nil, err
			}
			if subObj := Objective(g, sub, opts.Volume); subObj < bestObj {
				best, bestObj = sub, subObj
			}
		}
	}

	return best, nil
}

// branchLow raises arc idx's LowLimit to newLow (the left/up branch).
// Reports ok=false if newLow exceeds the arc's own Limit.
func branchLow(g *core.Graph, b basis.Set, opts Options, idx core.ArcIndex, newLow, limit int64) (child, error) {
	if newLow > limit {
		return child{obj: infeasible}, nil
	}

	return solveChild(g.WithTightenedLow(idx, newLow), b, opts)
}

// branchLimit lowers arc idx's Limit to newLimit (the right/down
// branch). Reports ok=false if newLimit falls below the arc's own
// LowLimit, which happens when LowLimit is not a multiple of V.
func branchLimit(g *core.Graph, b basis.Set, opts Options, idx core.ArcIndex, newLimit int64) (child, error) {
	if newLimit < g.Arc(idx).LowLimit {
		return child{obj: infeasible}, nil
	}

	return solveChild(g.WithTightenedLimit(idx, newLimit), b, opts)
}

func solveChild(g *core.Graph, b basis.Set, opts Options) (child, error) {
	childBasis := b.Clone()
	res, err := dual.Solve(g, childBasis, opts.dualOptions())
	if err != nil {
		if errors.Is(err, dual.ErrPrimalInfeasible) {
			return child{obj: infeasible}, nil
		}

		return child{}, err
	}

	return child{ok: true, graph: g, flow: res.Flow, basis: childBasis, obj: Objective(g, res.Flow, opts.Volume)}, nil
}
