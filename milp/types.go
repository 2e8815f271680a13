package milp

import "errors"

// Tolerances of the integer search. They are looser than lp.Epsilon by
// design: each one absorbs drift at the magnitude where it is applied,
// and unifying them would either reject honest integers or accept junk.
const (
	// IntegralityTolerance is the maximum deviation from the nearest
	// integer below which a relaxed value counts as integral.
	IntegralityTolerance = 1e-3

	// PruningTolerance pads the incumbent comparison so that a relaxation
	// equal to the incumbent up to rounding noise is still pruned.
	PruningTolerance = 1e-5

	// BoundFeasTolerance is the slack allowed below zero when a node's
	// upper bound minus lower bound goes slightly negative through float
	// error; anything below −BoundFeasTolerance is a genuinely
	// contradictory node.
	BoundFeasTolerance = 1e-3

	// VerifyTolerance is the absolute per-row tolerance of the strict
	// A·round(x) = original_b check. Deliberately generous (0.5): with
	// right-hand sides near 1e13 a correct integer point can still miss
	// by a large absolute margin, while a wrong one misses by ≥ 1.
	VerifyTolerance = 0.5
)

// ErrNoIntegerSolution is returned when the whole branch tree holds no
// integer-feasible point. Callers aggregating many instances typically
// treat it as a zero contribution rather than a failure.
var ErrNoIntegerSolution = errors.New("milp: no integer-feasible solution")

// Result is the best integer point found: X holds one non-negative
// integer per decision variable, Cost is their plain sum — the package
// minimizes total presses, i.e. an all-ones cost vector.
type Result struct {
	X    []int
	Cost int
}

// Options configures the Branch-and-Bound search.
//
// Fields:
//   - OnIncumbent — optional hook invoked with the new best cost every
//     time the incumbent improves. The sequence of reported costs is
//     strictly decreasing; useful for progress reporting and for testing
//     the pruning invariant.
type Options struct {
	OnIncumbent func(cost int)
}

// DefaultOptions returns the zero configuration: no hooks.
func DefaultOptions() Options {
	return Options{}
}
