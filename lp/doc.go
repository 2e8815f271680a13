// Package lp solves the linear-programming relaxation of small equality
// systems with a two-phase dense-tableau Simplex method.
//
// The engine targets one specific shape of problem:
//
//	minimize   c·x
//	subject to A·x = b,  x ≥ 0
//
// Algorithm Outline:
//  1. Phase 1 — append one artificial variable per row (flipping rows with
//     negative right-hand side), build the auxiliary objective as negated
//     column sums, and pivot until the artificial mass is driven to zero.
//     A residual above Phase1Tolerance means the system is infeasible.
//  2. Basis repair — rows still carrying a basic artificial are pivoted
//     onto a real column when possible; rows that cannot be repaired are
//     algebraically redundant (0 = 0) and are dropped.
//  3. Phase 2 — rebuild the tableau on the surviving rows and real columns,
//     install the true cost row, canonicalize it against the current basis,
//     and pivot to optimality.
//
// Pivoting uses Bland's rule (first negative reduced cost) with a
// first-wins minimum-ratio test, so the search is deterministic and free
// of degenerate cycling; MaxPivotIterations is a hard safety valve on top.
//
// Outcomes are explicit sentinels, never panics: ErrInfeasible,
// ErrUnbounded, ErrIterationLimit. Callers that only care about
// "no usable relaxation" (such as package milp) can treat all three alike.
//
// Complexity: O(iterations · m·n) time, O(m·n) memory for the tableau.
//
// Tolerances are deliberately split per concern (Epsilon for pivot/zero
// detection, Phase1Tolerance for feasibility) because right-hand sides in
// the target workload reach ~1e13 and accumulate visible float drift.
package lp
