// Package dual implements the dual network-simplex method: given a
// dual-feasible basis (every non-basis arc already optimal), it builds
// a pseudo-flow that may violate capacity bounds on basis arcs and
// repairs the basis, pivot by pivot, until the pseudo-flow is a true
// feasible flow.
//
// This is the tool branch-and-bound reaches for whenever it tightens
// an arc's LowLimit or Limit: the LP-optimal basis from before the
// tightening is still dual-feasible, so restarting from scratch with
// primal simplex would waste the work already done.
//
// Steps (pivot loop, repeated until feasible):
//  1. Build the pseudo-flow and find the basis arc that violates its
//     bound window the most.
//  2. Derive a direction vector ℓ from a cost-altered copy of the
//     basis (every cost zero except the violating arc's).
//  3. Among non-basis arcs, select the one(s) achieving the smallest
//     non-negative step toward restoring feasibility.
//  4. Repair the basis: swap the violating arc out, a candidate in,
//     re-validating that the basis still spans; tied candidates are
//     tried in random order.
//
// Complexity per pivot: O(n+m) to rebuild the pseudo-flow and scan for
// candidates, plus O(n) per spanning-tree re-validation attempt.
package dual
