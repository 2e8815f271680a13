// Package machine parses textual machine descriptions into lp systems.
//
// One machine per line:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
//   - [...]   — the indicator diagram; carried by the input format but
//     irrelevant to the counters, so it is validated and skipped.
//   - (r,...) — one group per button, listing the counter rows that button
//     increments by one per press. Row indices outside the target range
//     are ignored.
//   - {t,...} — the target counter values (the right-hand side b).
//
// Each line becomes one lp.System with A[r][c] = 1 iff button c lists
// row r, b the targets, and an all-ones cost vector: the minimal c·x is
// the minimal total number of button presses reaching the targets.
//
// Malformed lines surface as ErrBadMachine wrapped with line context;
// blank lines are skipped.
package machine
