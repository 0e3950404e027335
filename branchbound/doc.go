// Package branchbound searches for an integer-batch-optimal flow atop
// the continuous optimum that primal simplex produces. The batched
// objective cost_e * ceil(flow_e / V) is piecewise-constant in flow_e,
// so any arc whose flow is not a multiple of V is a branching point:
// one child forces its flow up to the next multiple of V (by raising
// LowLimit), the other forces it down (by lowering Limit), and each
// child is re-solved from the parent's basis via the dual simplex
// rather than from scratch.
//
// The search is depth-first and descends into whichever child is
// strictly better than both its sibling and the un-branched flow at
// this arc; ties and non-improving branches are left unexplored. This
// trades a global optimality guarantee for speed — see DESIGN.md for
// the tradeoff this implementation deliberately keeps.
package branchbound
