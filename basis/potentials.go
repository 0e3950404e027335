package basis

import "github.com/volkyrik/flowbatch/core"

// ComputePotentials derives node potentials π from a spanning-tree
// basis: π_0 = 0, and π_v = π_u + cost for every basis arc u→v.
//
// The reference algorithm repeatedly scans the whole basis set until a
// fixed point is reached (at most n-1 scans). Since a spanning-tree
// basis has a unique path from node 0 to every other node, a single
// breadth-first walk over the incidence lists — restricted to basis
// arcs — reaches the same fixed point in one pass; this is the
// explicit-queue traversal §9 of the design notes recommends in place
// of repeated rescans.
//
// Returns ErrNotSpanning if some node is unreachable from node 0 via
// basis arcs, i.e. the caller handed in a basis that is not spanning.
//
// Complexity: O(n + m) — every node is enqueued once and its incidence
// list scanned once.
func ComputePotentials(g *core.Graph, b Set) (Potentials, error) {
	n := g.NumNodes()
	pi := make(Potentials, n)
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
			a := g.Arc(ref.Arc)
			if a.From == u {
				pi[ref.Other] = pi[u] + a.Cost
			} else {
				pi[ref.Other] = pi[u] - a.Cost
			}
			known[ref.Other] = true
			reached++
			queue = append(queue, ref.Other)
		}
	}

	if reached != n {
		return nil, ErrNotSpanning
	}

	return pi, nil
}
