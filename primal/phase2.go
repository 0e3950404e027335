package primal

import (
	"github.com/volkyrik/flowbatch/basis"
	"github.com/volkyrik/flowbatch/core"
)

// Run pivots flow and b toward optimality on g, mutating both in place,
// until no entering arc remains or Options.MaxPivots is reached. It
// makes no assumption about the sign of arc costs, so the same loop
// drives both Phase I (real arcs zeroed, artificial arcs costed) and
// Phase II (real costs throughout) — see Phase1 and Solve.
//
// Complexity: O(m) per pivot to select the entering arc plus O(n) to
// trace its cycle, times the number of pivots.
func Run(g *core.Graph, flow []int64, b basis.Set, opts Options) (int, error) {
	pivots := 0
	for {
		if opts.MaxPivots > 0 && pivots >= opts.MaxPivots {
			return pivots, ErrMaxPivotsExceeded
		}

		moved, err := pivot(g, flow, b, opts)
		if err != nil {
			return pivots, err
		}
		if !moved {
			return pivots, nil
		}
		pivots++
	}
}

// pivot performs a single entering-arc pivot, reporting whether one was
// found and applied.
func pivot(g *core.Graph, flow []int64, b basis.Set, opts Options) (bool, error) {
	pi, err := basis.ComputePotentials(g, b)
	if err != nil {
		return false, err
	}

	eStar, reduced, found := findEnteringArc(g, b, flow, pi)
	if !found {
		return false, nil
	}

	cycle, err := buildCycle(g, b, flow, eStar)
	if err != nil {
		return false, err
	}

	theta, leaveStep := computeTheta(g, flow, cycle)
	for _, step := range cycle {
		if step.Forward {
			flow[step.Arc] += theta
		} else {
			flow[step.Arc] -= theta
		}
	}

	leaveArc := cycle[leaveStep].Arc
	if leaveArc != eStar {
		b.Remove(leaveArc)
		b.Insert(eStar)
	}

	opts.Logger.Debug().
		Int("entering", int(eStar)).
		Int("leaving", int(leaveArc)).
		Int64("reduced_cost", reduced).
		Int64("theta", theta).
		Msg("primal: pivot")

	return true, nil
}

// findEnteringArc scans non-basis arcs for the one with the largest
// |reduced cost| among those not already optimal at their current
// bound. Reduced cost follows basis.ComputePotentials' convention:
// an arc u->v is basis-consistent when pi[v] = pi[u] + cost, so its
// reduced cost is cost - (pi[v] - pi[u]).
func findEnteringArc(g *core.Graph, b basis.Set, flow []int64, pi basis.Potentials) (core.ArcIndex, int64, bool) {
	var best core.ArcIndex
	var bestAbs int64
	found := false

	for i := 0; i < g.NumArcs(); i++ {
		idx := core.ArcIndex(i)
		if b.Contains(idx) {
			continue
		}

		a := g.Arc(idx)
		reduced := a.Cost - (pi[a.To] - pi[a.From])

		atLow := flow[idx] == a.LowLimit
		atHigh := flow[idx] == a.Limit
		if (atLow && reduced >= 0) || (atHigh && reduced <= 0) {
			continue // already optimal at its current bound
		}

		abs := reduced
		if abs < 0 {
			abs = -abs
		}
		if !found || abs > bestAbs {
			found = true
			bestAbs = abs
			best = idx
		}
	}

	return best, bestAbs, found
}

// buildCycle traces the fundamental cycle the entering arc closes,
// oriented so the first step is the entering arc itself, crossed in
// the direction flow must move: forward (From->To) if it sits at its
// lower bound, backward if at its upper bound.
func buildCycle(g *core.Graph, b basis.Set, flow []int64, eStar core.ArcIndex) ([]basis.CycleStep, error) {
	a := g.Arc(eStar)

	var steps []basis.CycleStep
	var err error
	var entering basis.CycleStep

	if flow[eStar] == a.LowLimit {
		steps, err = basis.FindCycle(g, b, a.To, a.From, a.From)
		entering = basis.CycleStep{Arc: eStar, Forward: true}
	} else {
		steps, err = basis.FindCycle(g, b, a.From, a.To, a.To)
		entering = basis.CycleStep{Arc: eStar, Forward: false}
	}
	if err != nil {
		return nil, err
	}

	steps = append(steps, entering)
	reverse(steps)

	return steps, nil
}

func reverse(steps []basis.CycleStep) {
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
}

// computeTheta returns the bottleneck flow increment around cycle and
// the index, within cycle, of the step that realizes it — the leaving
// arc. A forward step's slack is its room below Limit; a backward
// step's slack is its room above LowLimit.
func computeTheta(g *core.Graph, flow []int64, cycle []basis.CycleStep) (int64, int) {
	theta := int64(-1)
	leaveStep := 0

	for i, step := range cycle {
		a := g.Arc(step.Arc)

		var avail int64
		if step.Forward {
			avail = a.Limit - flow[step.Arc]
		} else {
			avail = flow[step.Arc] - a.LowLimit
		}

		if theta == -1 || avail < theta {
			theta = avail
			leaveStep = i
		}
	}

	return theta, leaveStep
}
