package lp

// Solve optimizes the LP relaxation of sys with the two-phase Simplex
// method.
//
// Contracts:
//   - sys must be well-formed (NewSystem shapes); Solve never mutates it.
//
// Errors:
//   - ErrInfeasible      — Phase-1 residual above Phase1Tolerance.
//   - ErrUnbounded       — an entering column had no valid leaving row.
//   - ErrIterationLimit  — a pivot loop exceeded MaxPivotIterations.
//   - ErrDimensionMismatch — malformed shapes.
//
// Complexity: O(iterations · m·n) time, O(m·(n+m)) transient memory.
func Solve(sys *System) (Solution, error) {
	if sys == nil || sys.A == nil ||
		sys.A.Rows() != len(sys.B) || sys.A.Cols() != len(sys.C) {
		return Solution{}, ErrDimensionMismatch
	}

	// Phase 1: feasibility and an initial basic feasible solution.
	t, err := setupPhaseOne(sys)
	if err != nil {
		return Solution{}, err
	}
	switch t.pivotLoop() {
	case pivotUnbounded:
		// The Phase-1 objective is bounded below by zero; reaching this
		// branch means the tableau degenerated numerically.
		return Solution{}, ErrUnbounded
	case pivotIterLimit:
		return Solution{}, ErrIterationLimit
	}

	// Residual artificial mass decides feasibility.
	if abs(t.at(t.rows, t.cols)) > Phase1Tolerance {
		return Solution{}, ErrInfeasible
	}

	// Basis repair + row filtering, then Phase 2 on the real columns.
	n := sys.NumVars()
	p2 := preparePhaseTwo(t, n)
	installObjective(p2, sys.C)

	switch p2.pivotLoop() {
	case pivotUnbounded:
		return Solution{}, ErrUnbounded
	case pivotIterLimit:
		return Solution{}, ErrIterationLimit
	}

	return extract(p2), nil
}

// setupPhaseOne builds the augmented tableau [A | I_artificial | b] with the
// auxiliary objective already in canonical form.
//
// Rows with a negative right-hand side are flipped (row and RHS multiplied
// by −1) so every artificial variable starts non-negative. The Phase-1
// objective row is assembled algebraically as the negated column sums of
// all constraint rows — equivalent to minimizing the artificial total
// expressed in non-basic variables — after which the artificial columns are
// zeroed to keep the row reduced against the initial basis.
func setupPhaseOne(sys *System) (*tableau, error) {
	var (
		m       = sys.NumConstraints()
		n       = sys.NumVars()
		t       = newTableau(m, n+m)
		r, c    int
		v, sign float64
		err     error
	)

	for r = 0; r < m; r++ {
		sign = 1.0
		if sys.B[r] < 0 {
			sign = -1.0
		}
		for c = 0; c < n; c++ {
			if v, err = sys.A.At(r, c); err != nil {
				return nil, ErrDimensionMismatch
			}
			t.set(r, c, v*sign)
		}
		t.set(r, n+r, 1.0) // artificial identity entry
		t.set(r, t.cols, sys.B[r]*sign)
	}

	// Auxiliary objective: negated column sums, RHS included.
	var sum float64
	for c = 0; c <= t.cols; c++ {
		sum = 0
		for r = 0; r < m; r++ {
			sum += t.at(r, c)
		}
		t.set(m, c, -sum)
	}
	// Canonical form: basic (artificial) columns read zero in the objective.
	for r = 0; r < m; r++ {
		t.set(m, n+r, 0)
	}

	return t, nil
}

// preparePhaseTwo repairs the basis and rebuilds a tableau restricted to
// the n real columns and the surviving rows.
//
// A row can exit Phase 1 with an artificial still basic (artificials may
// tie during pivoting). Each such row is pivoted onto any real column with
// a non-negligible entry; if none exists the row is 0 = 0 — algebraically
// redundant — and is dropped from the problem.
func preparePhaseTwo(t *tableau, n int) *tableau {
	var (
		m      = t.rows
		active = make([]int, 0, m)
		r, c   int
	)

	for r = 0; r < m; r++ {
		bc, ok := t.basisCol(r, t.cols)
		if !ok {
			continue // no basic column at all: nothing to carry forward
		}
		if bc >= n {
			// Artificial is basic; try to pivot in a real column.
			repaired := false
			for c = 0; c < n; c++ {
				if abs(t.at(r, c)) > Epsilon {
					t.pivot(r, c)
					repaired = true
					break
				}
			}
			if !repaired {
				continue // redundant row, drop it
			}
		}
		active = append(active, r)
	}

	p2 := newTableau(len(active), n)
	for newR, oldR := range active {
		for c = 0; c < n; c++ {
			p2.set(newR, c, t.at(oldR, c))
		}
		p2.set(newR, n, t.at(oldR, t.cols))
	}

	return p2
}

// installObjective writes the true cost row and canonicalizes it: each
// basic row is subtracted scaled by its objective coefficient so that
// basic columns read zero in the objective row.
func installObjective(t *tableau, costs []float64) {
	var (
		r, c   int
		factor float64
	)
	for c = 0; c < t.cols; c++ {
		t.set(t.rows, c, costs[c])
	}

	for r = 0; r < t.rows; r++ {
		bc, ok := t.basisCol(r, t.cols)
		if !ok {
			continue
		}
		factor = t.at(t.rows, bc)
		if abs(factor) <= Epsilon {
			continue
		}
		for c = 0; c <= t.cols; c++ {
			t.set(t.rows, c, t.at(t.rows, c)-factor*t.at(r, c))
		}
	}
}

// extract reads the optimal point out of the final tableau. Each row
// contributes its RHS to its own basis column — the unique column holding
// a 1 in that row and zeros elsewhere, within Epsilon — and every column
// not claimed by a row is zero. Claiming per row (rather than scanning
// columns independently) keeps a non-basic duplicate of a unit column
// from shadow-copying a basic value in degenerate tableaus. The reported
// cost is the negated objective-row RHS (sign convention of the internal
// maximize-negated-cost formulation).
func extract(t *tableau) Solution {
	var (
		x = make([]float64, t.cols)
		r int
	)
	for r = 0; r < t.rows; r++ {
		if bc, ok := t.basisCol(r, t.cols); ok {
			x[bc] = t.at(r, t.cols)
		}
	}

	return Solution{X: x, Cost: -t.at(t.rows, t.cols)}
}
