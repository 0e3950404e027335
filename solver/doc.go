// Package solver is the facade that wires the graph model, primal and
// dual network-simplex, and branch-and-bound into a single call: give
// it a graph and a config, get back an integer flow that minimizes the
// batched cost functional.
package solver
