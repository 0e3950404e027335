package primal

import (
	"github.com/volkyrik/flowbatch/basis"
	"github.com/volkyrik/flowbatch/core"
)

// Phase1 builds an initial basic feasible flow for g via an auxiliary
// network: one artificial hub node connected to every real node by an
// artificial arc carrying that node's (lower-bound-adjusted) production
// imbalance, real arcs temporarily costed at 0. Running Run on this
// augmented graph drives artificial flow to zero whenever g admits a
// feasible flow at all; a cleanup sweep then swaps every remaining
// artificial basis arc out for a real one, leaving a spanning-tree
// basis over g's own arcs.
//
// Real arcs with LowLimit > 0 are handled by the standard bounded-
// variable substitution: f = LowLimit + f', f' in [0, Limit-LowLimit],
// which shifts each node's production by the LowLimit flow its
// incident arcs are forced to carry. This keeps Phase I and Phase II
// working in terms of a single pair of bounds (0 and Limit-LowLimit
// internally, LowLimit and Limit in the flow Run returns).
//
// Returns ErrInfeasible if any artificial arc still carries flow once
// Run reports no further entering arc.
func Phase1(g *core.Graph, opts Options) ([]int64, basis.Set, error) {
	n := g.NumNodes()
	m := g.NumArcs()

	adjProd := make([]int64, n)
	for i, nd := range g.Nodes() {
		adjProd[i] = nd.Production
	}
	for _, a := range g.Arcs() {
		adjProd[a.To] += a.LowLimit
		adjProd[a.From] -= a.LowLimit
	}

	hub := core.NodeID(n)
	auxNodes := make([]core.Node, n+1)
	for i := 0; i < n; i++ {
		auxNodes[i] = core.Node{Vertex: core.NodeID(i), Production: adjProd[i]}
	}
	auxNodes[n] = core.Node{Vertex: hub, Production: 0}

	auxArcs := make([]core.Arc, 0, m+n)
	for _, a := range g.Arcs() {
		auxArcs = append(auxArcs, core.Arc{From: a.From, To: a.To, Cost: 0, LowLimit: 0, Limit: a.Limit - a.LowLimit})
	}

	flow := make([]int64, m+n)
	b := basis.New()
	for v := 0; v < n; v++ {
		p := adjProd[v]
		idx := core.ArcIndex(len(auxArcs))
		if p >= 0 {
			auxArcs = append(auxArcs, core.Arc{From: core.NodeID(v), To: hub, Cost: 1, Limit: p})
		} else {
			auxArcs = append(auxArcs, core.Arc{From: hub, To: core.NodeID(v), Cost: 1, Limit: -p})
		}
		flow[idx] = abs64(p)
		b.Insert(idx)
	}

	auxGraph, err := core.NewGraph(auxNodes, auxArcs)
	if err != nil {
		return nil, nil, err
	}

	if _, err := Run(auxGraph, flow, b, opts); err != nil {
		return nil, nil, err
	}

	for i := m; i < m+n; i++ {
		if flow[i] != 0 {
			return nil, nil, ErrInfeasible
		}
	}

	if err := cleanupArtificialBasis(g, auxGraph, b, m); err != nil {
		return nil, nil, err
	}

	realFlow := make([]int64, m)
	for i := 0; i < m; i++ {
		realFlow[i] = g.Arc(core.ArcIndex(i)).LowLimit + flow[i]
	}

	return realFlow, b, nil
}

// cleanupArtificialBasis replaces every artificial arc still in b with
// a real one, by finding each non-basis real arc's fundamental cycle
// and, if it still runs through at least two artificial arcs, swapping
// one of them out for that real arc. Any artificial arc still in b
// once every real arc has been tried carries zero flow on a
// degenerate cycle and is simply dropped.
func cleanupArtificialBasis(g, auxGraph *core.Graph, b basis.Set, m int) error {
	for i := 0; i < m; i++ {
		idx := core.ArcIndex(i)
		if b.Contains(idx) {
			continue
		}

		a := g.Arc(idx)
		cycle, err := basis.FindCycle(auxGraph, b, a.To, a.From, a.From)
		if err != nil {
			return err
		}

		artificial := 0
		for _, step := range cycle {
			if int(step.Arc) < m {
				continue
			}
			artificial++
			if artificial == 2 {
				b.Remove(step.Arc)
				b.Insert(idx)
				break
			}
		}
	}

	for i := m; i < m+len(g.Nodes()); i++ {
		b.Remove(core.ArcIndex(i))
	}

	return nil
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
