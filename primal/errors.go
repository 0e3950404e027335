package primal

import "errors"

// ErrInfeasible indicates Phase I could not drive every artificial arc
// to zero flow: the original problem has no feasible flow at all.
var ErrInfeasible = errors.New("primal: no feasible flow exists for this graph")

// ErrMaxPivotsExceeded is returned when Options.MaxPivots is positive
// and the pivot count reaches it without finding an optimal basis —
// the Bland's-rule-style cycling safety net suggested by §9 of the
// design notes.
var ErrMaxPivotsExceeded = errors.New("primal: pivot limit exceeded")
