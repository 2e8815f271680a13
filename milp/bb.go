package milp

import (
	"math"

	"github.com/katalvlaran/lvlopt/lp"
)

// Solve runs the Branch-and-Bound search with DefaultOptions.
// See SolveWithOptions for the full contract.
func Solve(sys *lp.System) (Result, error) {
	return SolveWithOptions(sys, DefaultOptions())
}

// SolveWithOptions finds the minimum-cost non-negative integer solution
// of sys, or ErrNoIntegerSolution when the tree holds none.
//
// Contracts:
//   - sys must be well-formed (lp.NewSystem shapes) and is never mutated;
//     every node works on its own relaxed copy.
//   - The reported Cost is exact up to PruningTolerance; which optimal
//     point is reported may depend on exploration order when ties exist.
//
// Errors:
//   - ErrNoIntegerSolution — exhaustive search found no integer point.
//   - lp.ErrDimensionMismatch — malformed root system.
//
// Complexity: worst case exponential in n (exact search); per node one
// Simplex solve on an (m+k)×(n+k) relaxation.
func SolveWithOptions(sys *lp.System, opts Options) (Result, error) {
	if sys == nil || sys.A == nil ||
		sys.A.Rows() != len(sys.B) || sys.A.Cols() != len(sys.C) {
		return Result{}, lp.ErrDimensionMismatch
	}

	var (
		n        = sys.NumVars()
		bestCost = math.Inf(1)
		bestX    []int
		stack    = []branchNode{rootNode(n)}
		node     branchNode
	)

	for len(stack) > 0 {
		node, stack = stack[len(stack)-1], stack[:len(stack)-1]

		relaxed, shiftCost, ok := buildRelaxed(sys, node)
		if !ok {
			continue // contradictory bounds
		}

		sol, err := lp.Solve(relaxed)
		if err != nil {
			continue // infeasible / unbounded / iteration limit: prune
		}

		// Bound pruning: nothing under this subtree can beat the incumbent.
		total := sol.Cost + shiftCost
		if total >= bestCost-PruningTolerance {
			continue
		}

		fullX, fracIdx, fracVal := mapToOriginal(sol, node)
		if fracIdx >= 0 {
			// Left child explored after right: push order matches the
			// depth-first drain of the stack.
			left, right := node.branch(fracIdx, fracVal)
			stack = append(stack, left, right)
			continue
		}

		// Integer candidate; accept only if it survives strict
		// verification against the unshifted right-hand side.
		if !verifyStrict(sys, fullX) {
			continue
		}
		rounded, cost := roundCandidate(fullX)
		if float64(cost) < bestCost {
			bestCost = float64(cost)
			bestX = rounded
			if opts.OnIncumbent != nil {
				opts.OnIncumbent(cost)
			}
		}
	}

	if bestX == nil {
		return Result{}, ErrNoIntegerSolution
	}

	return Result{X: bestX, Cost: int(bestCost)}, nil
}

// mapToOriginal translates a relaxed solution back into original variable
// space (x = x′ + lb, slack columns ignored) and locates the first entry
// further than IntegralityTolerance from an integer. fracIdx is −1 when
// the whole point is integral.
func mapToOriginal(sol lp.Solution, nd branchNode) (fullX []float64, fracIdx int, fracVal float64) {
	n := len(nd.lower)
	fullX = make([]float64, n)
	fracIdx = -1

	for c := 0; c < n; c++ {
		v := sol.X[c] + nd.lower[c]
		fullX[c] = v
		if fracIdx < 0 && math.Abs(v-math.Round(v)) > IntegralityTolerance {
			fracIdx = c
			fracVal = v
		}
	}

	return fullX, fracIdx, fracVal
}

// verifyStrict re-checks A·round(x) = original_b on the original,
// unshifted system. A candidate that satisfies only the relaxed system is
// numerical noise and must not become the incumbent.
func verifyStrict(sys *lp.System, x []float64) bool {
	rounded := make([]float64, len(x))
	for i, v := range x {
		rounded[i] = math.Round(v)
	}
	lhs, err := sys.A.MulVec(rounded)
	if err != nil {
		return false
	}
	for r, want := range sys.OriginalB {
		if math.Abs(lhs[r]-want) > VerifyTolerance {
			return false
		}
	}

	return true
}

// roundCandidate converts a verified integral point to ints and totals it.
func roundCandidate(x []float64) ([]int, int) {
	var (
		out  = make([]int, len(x))
		cost int
	)
	for i, v := range x {
		out[i] = int(math.Round(v))
		cost += out[i]
	}

	return out, cost
}
