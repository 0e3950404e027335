package dual

import "errors"

// ErrPrimalInfeasible is returned when no non-basis arc can take a
// finite step toward feasibility: the tightened bounds admit no
// feasible flow at all. Branch-and-bound catches this specifically to
// skip the offending child rather than aborting the whole search.
var ErrPrimalInfeasible = errors.New("dual: no feasible flow under the current bounds")

// ErrNonSpanningBasis is returned when basis repair cannot find any
// candidate swap that keeps the basis spanning. Per §7 this is fatal:
// it signals the problem is unbounded or the basis was already
// corrupt on entry.
var ErrNonSpanningBasis = errors.New("dual: no basis repair keeps the tree spanning")

// ErrMaxPivotsExceeded is returned when Options.MaxPivots is positive
// and the pivot count reaches it without reaching feasibility.
var ErrMaxPivotsExceeded = errors.New("dual: pivot limit exceeded")

// ErrDuallyDegenerate marks a non-basis arc whose reduced cost is
// exactly 0 during pseudo-flow construction. Per §7 this is non-fatal:
// it is logged, not returned, and resolved toward LowLimit.
var ErrDuallyDegenerate = errors.New("dual: dually degenerate non-basis arc")
