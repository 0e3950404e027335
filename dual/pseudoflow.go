package dual

import (
	"sort"

	"github.com/volkyrik/flowbatch/basis"
	"github.com/volkyrik/flowbatch/core"
)

// BuildPseudoFlow derives a conservation-satisfying pseudo-flow from a
// dual-feasible basis b: every non-basis arc is pinned to whichever
// bound its reduced cost favors, and every basis arc is then solved
// from conservation in a single bottom-up pass ordered by
// basis.DFSLevels, so each node has at most one undetermined incident
// basis arc when it is visited.
//
// A non-basis arc with reduced cost exactly 0 is dually degenerate:
// per §7 this is a non-fatal condition, logged and resolved toward
// LowLimit (the reference source's choice, see DESIGN.md's
// open-question resolutions).
func BuildPseudoFlow(g *core.Graph, b basis.Set, opts Options) ([]int64, error) {
	pi, err := basis.ComputePotentials(g, b)
	if err != nil {
		return nil, err
	}

	m := g.NumArcs()
	flow := make([]int64, m)
	determined := make([]bool, m)

	for i := 0; i < m; i++ {
		idx := core.ArcIndex(i)
		if b.Contains(idx) {
			continue
		}

		a := g.Arc(idx)
		eval := (pi[a.To] - pi[a.From]) - a.Cost

		switch {
		case eval < 0:
			flow[idx] = a.LowLimit
		case eval > 0:
			flow[idx] = a.Limit
		default:
			flow[idx] = a.LowLimit
			opts.Logger.Warn().Err(ErrDuallyDegenerate).Int("arc", i).Msg("dual: resolving to low_limit")
		}
		determined[idx] = true
	}

	levels := basis.DFSLevels(g, b, 0)
	order := make([]core.NodeID, g.NumNodes())
	for i := range order {
		order[i] = core.NodeID(i)
	}
	sort.Slice(order, func(i, j int) bool { return levels[order[i]] < levels[order[j]] })

	for _, v := range order {
		for _, ref := range g.Incident(v) {
			if !b.Contains(ref.Arc) || determined[ref.Arc] {
				continue
			}

			val := g.Node(v).Production
			for _, other := range g.Incident(v) {
				if other.Arc == ref.Arc {
					continue
				}
				a := g.Arc(other.Arc)
				if a.From == v {
					val -= flow[other.Arc]
				}
				if a.To == v {
					val += flow[other.Arc]
				}
			}

			if g.Arc(ref.Arc).To == v {
				val = -val
			}

			flow[ref.Arc] = val
			determined[ref.Arc] = true
		}
	}

	return flow, nil
}
