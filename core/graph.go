package core

import "fmt"

// NewGraph validates nodes and arcs and builds a Graph.
//
// Validation, in order:
//  1. nodes is non-empty (ErrEmptyGraph).
//  2. node ids are dense: nodes[i].Vertex == NodeID(i) for every i
//     (ErrSparseNodeIDs).
//  3. Σ Production == 0 (ErrUnbalancedProduction).
//  4. every arc has LowLimit <= Limit (ErrBadCapacityWindow).
//  5. the undirected incidence graph is connected (ErrDisconnected) —
//     required for a spanning-tree basis to exist at all.
//
// Complexity: O(n + m).
func NewGraph(nodes []Node, arcs []Arc) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	for i, n := range nodes {
		if n.Vertex != NodeID(i) {
			return nil, fmt.Errorf("core: node at index %d has id %d: %w", i, n.Vertex, ErrSparseNodeIDs)
		}
	}

	var totalProduction int64
	for _, n := range nodes {
		totalProduction += n.Production
	}
	if totalProduction != 0 {
		return nil, fmt.Errorf("core: total production %d: %w", totalProduction, ErrUnbalancedProduction)
	}

	incidence := make([][]ArcRef, len(nodes))
	for i, a := range arcs {
		if a.LowLimit > a.Limit {
			return nil, fmt.Errorf("core: arc %d has low_limit=%d limit=%d: %w", i, a.LowLimit, a.Limit, ErrBadCapacityWindow)
		}
		idx := ArcIndex(i)
		incidence[a.From] = append(incidence[a.From], ArcRef{Arc: idx, Other: a.To})
		incidence[a.To] = append(incidence[a.To], ArcRef{Arc: idx, Other: a.From})
	}

	g := &Graph{nodes: nodes, arcs: arcs, incidence: incidence}
	if !g.connected() {
		return nil, ErrDisconnected
	}

	return g, nil
}

// connected reports whether the undirected incidence graph has exactly
// one component, via an iterative BFS from node 0. An explicit queue is
// used rather than recursion, per the scale this graph is expected to
// reach (§9 of the design notes: prefer explicit stacks/queues over deep
// recursion).
func (g *Graph) connected() bool {
	visited := make([]bool, len(g.nodes))
	visited[0] = true
	queue := make([]NodeID, 1, len(g.nodes))
	queue[0] = 0

	count := 1
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, ref := range g.incidence[u] {
			if !visited[ref.Other] {
				visited[ref.Other] = true
				count++
				queue = append(queue, ref.Other)
			}
		}
	}

	return count == len(g.nodes)
}
