package lp

import (
	"errors"

	"github.com/katalvlaran/lvlopt/matrix"
)

// Numerical tolerances. These are distinct on purpose: zero detection and
// feasibility operate at very different magnitudes once right-hand sides
// reach ~1e13, and unifying them breaks one use or the other.
const (
	// Epsilon is the pivot / zero-detection tolerance inside the tableau.
	Epsilon = 1e-9

	// Phase1Tolerance bounds the residual artificial mass accepted as
	// "feasible" after Phase 1. Relaxed relative to Epsilon to absorb
	// floating-point drift on large-magnitude inputs.
	Phase1Tolerance = 1e-4

	// MaxPivotIterations caps a single pivot loop. Bland's rule already
	// prevents cycling; the cap guards against the unforeseen and converts
	// a runaway loop into ErrIterationLimit.
	MaxPivotIterations = 5000
)

// ErrDimensionMismatch is returned when A, b, c shapes are inconsistent.
var ErrDimensionMismatch = errors.New("lp: system dimensions are inconsistent")

// ErrInfeasible is returned when no x ≥ 0 satisfies A·x = b.
var ErrInfeasible = errors.New("lp: system is infeasible")

// ErrUnbounded is returned when the objective can decrease without limit.
// On well-formed non-negative-cost inputs this signals invalid input rather
// than a solver defect.
var ErrUnbounded = errors.New("lp: objective is unbounded")

// ErrIterationLimit is returned when a pivot loop exceeds MaxPivotIterations.
var ErrIterationLimit = errors.New("lp: pivot iteration limit exceeded")

// System is one equality-constrained LP instance: minimize C·x subject to
// A·x = B, x ≥ 0.
//
// OriginalB retains the right-hand side as it was at construction. The
// Branch-and-Bound layer shifts B when applying lower bounds and appends
// slack rows for upper bounds; OriginalB is what strict post-integer
// verification checks against, immune to those edits.
//
// Dimensions only ever grow through the Branch-and-Bound relaxation
// builder, which assembles fresh System values; the Simplex engine never
// mutates a System.
type System struct {
	A         *matrix.Dense
	B         []float64
	C         []float64
	OriginalB []float64
}

// NewSystem validates shapes and snapshots OriginalB.
//
// Contracts:
//   - a non-nil, a.Rows() == len(b), a.Cols() == len(c).
//
// Complexity: O(m) for the right-hand-side snapshot.
func NewSystem(a *matrix.Dense, b, c []float64) (*System, error) {
	if a == nil || a.Rows() != len(b) || a.Cols() != len(c) {
		return nil, ErrDimensionMismatch
	}

	return &System{
		A:         a,
		B:         matrix.CloneVector(b),
		C:         matrix.CloneVector(c),
		OriginalB: matrix.CloneVector(b),
	}, nil
}

// NumConstraints returns m, the number of equality rows.
func (s *System) NumConstraints() int { return s.A.Rows() }

// NumVars returns n, the number of decision variables.
func (s *System) NumVars() int { return s.A.Cols() }

// Clone deep-copies the system; branch nodes never share buffers.
// Complexity: O(m·n).
func (s *System) Clone() *System {
	return &System{
		A:         s.A.Clone(),
		B:         matrix.CloneVector(s.B),
		C:         matrix.CloneVector(s.C),
		OriginalB: matrix.CloneVector(s.OriginalB),
	}
}

// Solution is the optimal point of a relaxation: X has one non-negative
// real entry per decision variable, Cost is C·X. Produced only by Solve;
// callers treat it as read-only.
type Solution struct {
	X    []float64
	Cost float64
}
