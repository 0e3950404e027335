package basis

import "github.com/volkyrik/flowbatch/core"

// CycleStep is one arc of a fundamental cycle, with the direction it
// was traversed: Forward means the walk crossed the arc from its
// native From endpoint to its To endpoint.
type CycleStep struct {
	Arc     core.ArcIndex
	Forward bool
}

// FindCycle traces the unique basis-tree path from start to stop,
// refusing to step back through forbiddenParent. Given that
// b ∪ {entering arc} contains exactly one cycle, this is that cycle
// minus the entering arc itself; the caller prepends or appends the
// entering arc and reverses as needed (see primal.buildCycle).
//
// The returned steps run from the node nearest stop back to the node
// nearest start — i.e. in the order a recursive unwind naturally
// produces them, not start-to-stop order. Reversing the full list
// (entering arc included) yields a directed traversal of the
// fundamental cycle starting at the entering arc.
//
// Returns ErrCycleNotFound if no such path exists in b, which signals
// that b is not in fact a spanning tree.
func FindCycle(g *core.Graph, b Set, start, forbiddenParent, stop core.NodeID) ([]CycleStep, error) {
	var path []CycleStep
	if !walkToStop(g, b, start, forbiddenParent, stop, &path) {
		return nil, ErrCycleNotFound
	}

	return path, nil
}

func walkToStop(g *core.Graph, b Set, vertex, parent, stop core.NodeID, path *[]CycleStep) bool {
	for _, ref := range g.Incident(vertex) {
		if !b.Contains(ref.Arc) || ref.Other == parent {
			continue
		}

		a := g.Arc(ref.Arc)
		forward := a.From == vertex

		if ref.Other == stop {
			*path = append(*path, CycleStep{Arc: ref.Arc, Forward: forward})

			return true
		}

		if walkToStop(g, b, ref.Other, vertex, stop, path) {
			*path = append(*path, CycleStep{Arc: ref.Arc, Forward: forward})

			return true
		}
	}

	return false
}
