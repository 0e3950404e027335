package basis

import "github.com/volkyrik/flowbatch/core"

// Set is a spanning-tree basis: the arc indices currently basic,
// stored as a map for O(1) membership tests inside pivot loops.
type Set map[core.ArcIndex]struct{}

// New builds a Set from the given arc indices.
func New(indices ...core.ArcIndex) Set {
	s := make(Set, len(indices))
	for _, idx := range indices {
		s[idx] = struct{}{}
	}

	return s
}

// Contains reports whether idx is in the basis.
func (s Set) Contains(idx core.ArcIndex) bool {
	_, ok := s[idx]

	return ok
}

// Insert adds idx to the basis.
func (s Set) Insert(idx core.ArcIndex) { s[idx] = struct{}{} }

// Remove drops idx from the basis.
func (s Set) Remove(idx core.ArcIndex) { delete(s, idx) }

// Len returns the number of basic arcs.
func (s Set) Len() int { return len(s) }

// Clone returns an independent copy, so callers (e.g. branch-and-bound
// children) can mutate their copy without disturbing the parent's.
func (s Set) Clone() Set {
	c := make(Set, len(s))
	for idx := range s {
		c[idx] = struct{}{}
	}

	return c
}

// Potentials is a node-indexed vector of simplex potentials.
type Potentials []int64
