package dual

import (
	"github.com/volkyrik/flowbatch/basis"
	"github.com/volkyrik/flowbatch/core"
)

// Run repairs b, pivot by pivot, until the pseudo-flow it induces is a
// true feasible flow, writing that flow into flow (which must have
// length g.NumArcs()). b is mutated in place.
func Run(g *core.Graph, flow []int64, b basis.Set, opts Options) (int, error) {
	pivots := 0
	for {
		if opts.MaxPivots > 0 && pivots >= opts.MaxPivots {
			return pivots, ErrMaxPivotsExceeded
		}

		pf, err := BuildPseudoFlow(g, b, opts)
		if err != nil {
			return pivots, err
		}

		violatingIdx, below, found := mostViolatingArc(g, pf, b)
		if !found {
			copy(flow, pf)

			return pivots, nil
		}

		if _, err := pivot(g, b, violatingIdx, below, opts); err != nil {
			return pivots, err
		}

		pivots++
	}
}

// mostViolatingArc finds the basis arc whose pseudo-flow strays
// furthest outside its [LowLimit, Limit] window.
func mostViolatingArc(g *core.Graph, pf []int64, b basis.Set) (core.ArcIndex, bool, bool) {
	var best core.ArcIndex
	var bestMag int64 = -1
	var bestBelow bool
	found := false

	for i := 0; i < g.NumArcs(); i++ {
		idx := core.ArcIndex(i)
		if !b.Contains(idx) {
			continue
		}

		a := g.Arc(idx)

		var mag int64
		var below bool
		switch {
		case pf[idx] < a.LowLimit:
			mag, below = a.LowLimit-pf[idx], true
		case pf[idx] > a.Limit:
			mag, below = pf[idx]-a.Limit, false
		default:
			continue
		}

		if !found || mag > bestMag {
			found, bestMag, best, bestBelow = true, mag, idx, below
		}
	}

	return best, bestBelow, found
}

// pivot derives the direction vector ℓ from a cost-altered copy of the
// basis, selects a leaving arc among non-basis candidates, and repairs
// the basis by swapping violatingIdx out for one that keeps it
// spanning.
func pivot(g *core.Graph, b basis.Set, violatingIdx core.ArcIndex, below bool, opts Options) (bool, error) {
	violatingCost := int64(1)
	if below {
		violatingCost = -1
	}

	ell, err := computeEll(g, b, violatingIdx, violatingCost)
	if err != nil {
		return false, err
	}

	pi, err := basis.ComputePotentials(g, b)
	if err != nil {
		return false, err
	}

	var candidates []core.ArcIndex
	bestStep := int64(-1)
	for i := 0; i < g.NumArcs(); i++ {
		idx := core.ArcIndex(i)
		if idx == violatingIdx || b.Contains(idx) {
			continue
		}

		a := g.Arc(idx)
		p := -(ell[a.From] - ell[a.To])
		if p == 0 {
			continue
		}
		evalArc := (pi[a.To] - pi[a.From]) - a.Cost
		if evalArc*p >= 0 {
			continue
		}

		step := -evalArc / p
		switch {
		case bestStep == -1 || step < bestStep:
			bestStep = step
			candidates = append(candidates[:0], idx)
		case step == bestStep:
			candidates = append(candidates, idx)
		}
	}

	if len(candidates) == 0 {
		return false, ErrPrimalInfeasible
	}

	rng := opts.rng()
	rng.Shuffle(len(candidates), func(i, j int) { candidates[i], candidates[j] = candidates[j], candidates[i] })

	for _, cand := range candidates {
		b.Remove(violatingIdx)
		b.Insert(cand)
		if _, err := basis.ComputePotentials(g, b); err == nil {
			opts.Logger.Debug().Int("leaving", int(violatingIdx)).Int("entering", int(cand)).Msg("dual: pivot")

			return true, nil
		}
		b.Remove(cand)
		b.Insert(violatingIdx)
	}

	return false, ErrNonSpanningBasis
}

// computeEll computes potentials under a basis-restricted cost vector
// that is zero everywhere except violatingIdx, mirroring
// basis.ComputePotentials' single-pass BFS but with a per-call cost
// override instead of reading Arc.Cost directly.
func computeEll(g *core.Graph, b basis.Set, violatingIdx core.ArcIndex, violatingCost int64) (basis.Potentials, error) {
	n := g.NumNodes()
	ell := make(basis.Potentials, n)
	known := make([]bool, n)
	known[0] = true

	queue := make([]core.NodeID, 1, n)
	queue[0] = 0

	reached := 1
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, ref := range g.Incident(u) {
			if !b.Contains(ref.Arc) || known[ref.Other] {
				continue
			}

			var cost int64
			if ref.Arc == violatingIdx {
				cost = violatingCost
			}

			a := g.Arc(ref.Arc)
			if a.From == u {
				ell[ref.Other] = ell[u] + cost
			} else {
				ell[ref.Other] = ell[u] - cost
			}

			known[ref.Other] = true
			reached++
			queue = append(queue, ref.Other)
		}
	}

	if reached != n {
		return nil, basis.ErrNotSpanning
	}

	return ell, nil
}
