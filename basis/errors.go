package basis

import "errors"

var (
	// ErrNotSpanning indicates the basis does not reach every node from
	// node 0 — the caller has violated the spanning-tree invariant.
	ErrNotSpanning = errors.New("basis: arc set does not span the graph")

	// ErrCycleNotFound indicates FindCycle could not trace a path from
	// start to stop over the basis tree, which should be impossible
	// when the basis is in fact spanning and acyclic.
	ErrCycleNotFound = errors.New("basis: no basis path between the requested nodes")
)
