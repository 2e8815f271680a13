// Package milp finds minimum-cost non-negative integer solutions of small
// equality systems by Branch-and-Bound over LP relaxations.
//
// The target problem is:
//
//	minimize   c·x          (c is all-ones in the primary workload)
//	subject to A·x = b,  x ≥ 0,  x integer
//
// Algorithm Outline:
//  1. Start from one root node with zero lower bounds and no upper bounds,
//     kept on an explicit LIFO work stack (bounded depth, deterministic
//     drain order — no language-level recursion).
//  2. Per node, build a fresh relaxed system: lower bounds are substituted
//     away (b ← b − A·lb, constant cost shift lb·c), finite upper bounds
//     become appended slack-equality rows (x′ + s = ub − lb). Self-
//     contradictory bounds kill the node immediately.
//  3. Solve the relaxation with lp.Solve. Any LP failure — infeasible,
//     unbounded, iteration limit — prunes the node.
//  4. Prune by bound: a relaxation no better than the incumbent (within
//     PruningTolerance) cannot contain an improvement.
//  5. Branch on the first variable whose value is further than
//     IntegralityTolerance from an integer: the left child caps it at
//     floor, the right child raises it to ceil. Children tighten bounds,
//     never loosen, so their feasible integer regions partition the
//     parent's.
//  6. Integer candidates must pass strict verification against the
//     original, unshifted right-hand side: A·round(x) must match within
//     VerifyTolerance. Inputs reach ~1e13, and a relaxation can satisfy
//     the shifted system purely on accumulated drift; such candidates are
//     silently discarded as numerical noise.
//
// The search is single-threaded and allocation-isolated: every node owns
// full copies of its bounds and its relaxed system, so independent
// instances can be solved concurrently by the caller (see package batch)
// with no coordination.
package milp
