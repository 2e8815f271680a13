// Package lvlopt is a small, exact optimization toolkit for linear systems
// with integer decision variables — from dense primitives to a full
// Branch-and-Bound MILP search.
//
// 🚀 What is lvlopt?
//
//	A deterministic, dependency-light library that brings together:
//		• matrix/  — dense row-major matrices & vector helpers
//		• lp/      — two-phase Simplex engine for LP relaxations
//		• milp/    — Branch-and-Bound over variable-bound restrictions
//		• machine/ — parsing of button/target machine descriptions
//		• batch/   — bounded parallel fan-out over independent instances
//
// ✨ Why choose lvlopt?
//
//   - Exact answers – Branch-and-Bound with strict post-hoc verification,
//     not heuristics
//   - Deterministic – Bland's rule pivoting, first-fractional branching,
//     reproducible search order
//   - Numerically honest – named tolerances per concern, tuned for inputs
//     reaching ~1e13 in magnitude
//   - Pure Go core – no cgo, no hidden deps in the solver packages
//
// Typical flow: parse instances with machine.Parse, solve each with
// milp.Solve (or all at once with batch.Sum), and read back the minimal
// integer cost.
//
//	go get github.com/katalvlaran/lvlopt
package lvlopt
