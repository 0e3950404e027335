// Package basis implements the spanning-tree bookkeeping shared by the
// primal and dual simplex methods: potentials, fundamental-cycle
// tracing, and the post-order levels used to linearize pseudo-flow
// construction.
//
// A Basis is a set of arc indices forming a spanning tree of the
// underlying core.Graph (n-1 arcs for n nodes), represented as a Go
// map for O(1) membership tests rather than a sorted set — ordering is
// never required inside the pivot loops.
//
// # Potentials
//
// ComputePotentials walks the basis tree from node 0, assigning
// π_v = π_u + cost for every basis arc u→v. A spanning-tree basis
// guarantees every node is reached exactly once along a unique path,
// so the result is well-defined regardless of traversal order.
//
// # Cycle tracing
//
// FindCycle traces the unique path between two nodes that lies
// entirely within the basis tree — the fundamental cycle induced by
// adding one more arc between them.
//
// # Levels
//
// DFSLevels assigns each node the height of its subtree in the basis
// tree, so every child ranks below its parent and a single bottom-up pass (as used by dual.BuildPseudoFlow) visits
// at most one undetermined incident arc per node.
package basis
