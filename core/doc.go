// Package core defines the graph model shared by every stage of the
// solver: Arc, Node, and Graph.
//
// Unlike a general-purpose graph library, this Graph is built for one
// narrow shape: a connected directed network where every node carries a
// signed production (source/sink/transshipment) and every arc carries
// an integer cost and a capacity window [LowLimit, Limit]. Arcs are
// identified by a dense index 0..m, nodes by a dense id 0..n, matching
// the wire format read by the ioformat package.
//
// The adjacency is undirected (each arc is listed at both endpoints),
// but arcs themselves remember their own From/To, so direction is
// always recoverable. See ArcRef for how a node looks up "the other
// end" of an incident arc without the XOR trick used by the reference
// implementation.
//
// A Graph, once built, is read-only for the remainder of a solve:
// arcs, nodes and adjacency are never mutated in place. Branch-and-bound
// produces new Graphs with a single arc's bound tightened instead of
// mutating the original (see Graph.WithTightenedLow / WithTightenedLimit).
package core
