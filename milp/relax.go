package milp

import (
	"math"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/matrix"
)

// buildRelaxed assembles the LP relaxation of sys under nd's bounds as a
// brand-new system value, plus the constant cost shift induced by lower
// bounds. ok is false when the node's bounds are self-contradictory
// (some ub − lb below −BoundFeasTolerance) and the node must be skipped.
//
// Lower bounds are substituted away: with x = x′ + lb the constraints
// become A·x′ = b − A·lb and the objective gains the constant lb·c.
// Each finite upper bound turns into one appended slack-equality row
// x′_i + s = ub_i − lb_i, growing A, b, c accordingly. The original
// system is never mutated; every node gets an isolated copy.
//
// Complexity: O((m+k)·(n+k)) for k bounded variables.
func buildRelaxed(sys *lp.System, nd branchNode) (relaxed *lp.System, shiftCost float64, ok bool) {
	var (
		m    = sys.NumConstraints()
		n    = sys.NumVars()
		work = sys.Clone()
		r, c int
		v    float64
		err  error
	)

	// Apply lower bounds: b ← b − A·lb, accumulate the constant shift.
	for c = 0; c < n; c++ {
		lb := nd.lower[c]
		if lb <= 0 {
			continue
		}
		for r = 0; r < m; r++ {
			if v, err = work.A.At(r, c); err != nil {
				return nil, 0, false
			}
			work.B[r] -= v * lb
		}
		shiftCost += lb * sys.C[c]
	}

	// Collect finite upper bounds as slack constraints on shifted space.
	type slack struct {
		varIdx int
		limit  float64
	}
	var slacks []slack
	for c = 0; c < n; c++ {
		if math.IsInf(nd.upper[c], 1) {
			continue
		}
		limit := nd.upper[c] - nd.lower[c]
		if limit < -BoundFeasTolerance {
			return nil, 0, false // contradictory bounds, dead node
		}
		slacks = append(slacks, slack{varIdx: c, limit: math.Max(limit, 0)})
	}

	if len(slacks) > 0 {
		k := len(slacks)
		if work.A, err = work.A.Grow(k, k); err != nil {
			return nil, 0, false
		}
		if work.B, err = matrix.GrowVector(work.B, k); err != nil {
			return nil, 0, false
		}
		if work.C, err = matrix.GrowVector(work.C, k); err != nil {
			return nil, 0, false
		}
		for i, s := range slacks {
			// x′_varIdx + slack_i = limit
			if err = work.A.Set(m+i, s.varIdx, 1); err != nil {
				return nil, 0, false
			}
			if err = work.A.Set(m+i, n+i, 1); err != nil {
				return nil, 0, false
			}
			work.B[m+i] = s.limit
		}
	}

	return work, shiftCost, true
}
