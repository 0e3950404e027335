package branchbound

import "github.com/volkyrik/flowbatch/core"

// Objective computes Σ cost_e * ceil(flow_e / volume), the batched
// cost functional that branch-and-bound minimizes.
func Objective(g *core.Graph, flow []int64, volume int64) int64 {
	var total int64
	for i, f := range flow {
		cost := g.Arc(core.ArcIndex(i)).Cost
		cars := (f + volume - 1) / volume
		total += cost * cars
	}

	return total
}
