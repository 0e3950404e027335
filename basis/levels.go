package basis

import "github.com/volkyrik/flowbatch/core"

// DFSLevels ranks every node by the height of its subtree in the basis
// tree rooted at root: a leaf gets level 0, and an internal node gets
// one more than the maximum level among its children. Sorting nodes by
// increasing level (dual.BuildPseudoFlow's "optimal order") guarantees
// that when a node is visited, at most one of its incident basis arcs
// still has an undetermined pseudo-flow — the arc toward its parent.
//
// Complexity: O(n + m), recursion depth bounded by the tree's height.
func DFSLevels(g *core.Graph, b Set, root core.NodeID) []int {
	levels := make([]int, g.NumNodes())
	visitLevel(g, b, root, -1, levels)

	return levels
}

func visitLevel(g *core.Graph, b Set, vertex, parent core.NodeID, levels []int) int {
	level := 0
	for _, ref := range g.Incident(vertex) {
		if !b.Contains(ref.Arc) || ref.Other == parent {
			continue
		}
		if childLevel := visitLevel(g, b, ref.Other, vertex, levels); childLevel+1 > level {
			level = childLevel + 1
		}
	}
	levels[vertex] = level

	return level
}
