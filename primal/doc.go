// Package primal implements the primal network-simplex method: Phase I
// builds an initial basic feasible flow via an auxiliary network with
// one artificial hub node, and Phase II improves it by pivoting along
// fundamental cycles until no entering arc remains.
//
// Steps (Phase II, repeated until optimal):
//  1. Compute potentials via basis.ComputePotentials.
//  2. Select the entering arc: among non-basis arcs that are not
//     already optimal, the one with the largest |reduced cost|.
//  3. Trace its fundamental cycle via basis.FindCycle.
//  4. Compute the bottleneck θ and the leaving arc.
//  5. Augment flow by θ around the cycle.
//  6. Swap the leaving arc out, the entering arc in (unless the entering
//     arc is itself the bottleneck: it then only moves to its other
//     bound and the basis is unchanged).
//
// Time complexity per pivot: O(m) to scan for the entering arc plus
// O(n) to trace the cycle; Phase I adds n artificial arcs and one hub
// node, so its cost is the same shape on a graph with n more arcs and
// one more node.
package primal
