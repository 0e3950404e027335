package core

import "errors"

// Sentinel errors for graph construction and validation. Callers should
// branch with errors.Is; no error value here is ever wrapped with a
// formatted string at the point of definition.
var (
	// ErrEmptyGraph indicates a graph with zero nodes.
	ErrEmptyGraph = errors.New("core: empty graph")

	// ErrSparseNodeIDs indicates node ids are not dense in [0,n).
	ErrSparseNodeIDs = errors.New("core: node ids are not dense in [0,n)")

	// ErrBadCapacityWindow indicates LowLimit > Limit on some arc.
	ErrBadCapacityWindow = errors.New("core: low limit exceeds upper limit")

	// ErrUnbalancedProduction indicates the sum of node productions is non-zero.
	ErrUnbalancedProduction = errors.New("core: total production is not zero")

	// ErrDisconnected indicates the graph has no spanning tree candidate.
	ErrDisconnected = errors.New("core: graph is not connected")

	// ErrArcIndexRange indicates an ArcIndex outside [0, len(arcs)).
	ErrArcIndexRange = errors.New("core: arc index out of range")
)
