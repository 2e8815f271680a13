package lp

// tableau is the dense pivot buffer shared by both Simplex phases.
//
// Layout mirrors the classical textbook arrangement in one flat row-major
// slice (same trick as a prefetched weight buffer: no interface calls, no
// bounds churn in hot loops):
//
//	row 0..rows-1 — constraint rows
//	row rows      — objective row (reduced costs)
//	col 0..cols-1 — structural columns
//	col cols      — right-hand side
//
// The buffer is fully owned by the engine invocation that allocated it;
// pivot and elimination mutate it in place with no aliasing across
// concurrent solves.
type tableau struct {
	rows int       // constraint rows; objective row lives at index rows
	cols int       // structural columns; RHS lives at index cols
	data []float64 // (rows+1) * (cols+1) entries, row-major
}

// pivotStatus reports how a pivot loop terminated.
type pivotStatus int

const (
	pivotOptimal   pivotStatus = iota // no negative reduced cost remains
	pivotUnbounded                    // entering column had no valid leaving row
	pivotIterLimit                    // MaxPivotIterations exhausted
)

// newTableau allocates a zeroed (rows+1)×(cols+1) buffer.
func newTableau(rows, cols int) *tableau {
	return &tableau{
		rows: rows,
		cols: cols,
		data: make([]float64, (rows+1)*(cols+1)),
	}
}

// at is the unchecked hot-path accessor; callers stay inside
// [0, rows] × [0, cols] by construction.
func (t *tableau) at(r, c int) float64 { return t.data[r*(t.cols+1)+c] }

// set is the unchecked hot-path mutator.
func (t *tableau) set(r, c int, v float64) { t.data[r*(t.cols+1)+c] = v }

// abs avoids a math.Abs call in the innermost loops.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}

// pivot performs one full Gauss-Jordan step at (pr, pc): normalize the
// pivot row by the pivot value, then eliminate column pc from every other
// row including the objective row (full tableau, not just below).
// Complexity: O(rows·cols).
func (t *tableau) pivot(pr, pc int) {
	var (
		inv  = 1.0 / t.at(pr, pc)
		r, c int
		f    float64
	)

	// Normalize pivot row.
	for c = 0; c <= t.cols; c++ {
		t.set(pr, c, t.at(pr, c)*inv)
	}

	// Eliminate the pivot column everywhere else.
	for r = 0; r <= t.rows; r++ {
		if r == pr {
			continue
		}
		f = t.at(r, pc)
		if abs(f) <= Epsilon {
			continue
		}
		for c = 0; c <= t.cols; c++ {
			t.set(r, c, t.at(r, c)-f*t.at(pr, c))
		}
	}
}

// pivotLoop runs Simplex iterations until optimality, unboundedness, or
// the iteration cap.
//
// Entering column: Bland's rule — the first structural column with a
// reduced cost below −Epsilon. Leaving row: minimum-ratio test over rows
// with a strictly positive pivot-column entry; the first row achieving the
// minimum wins ties, which together with Bland's rule makes the whole
// search deterministic and cycle-free.
func (t *tableau) pivotLoop() pivotStatus {
	var (
		iter, r, pc, pr int
		val, ratio, min float64
	)
	for iter = 0; iter < MaxPivotIterations; iter++ {
		// Entering column by Bland's rule.
		pc = -1
		for c := 0; c < t.cols; c++ {
			if t.at(t.rows, c) < -Epsilon {
				pc = c
				break
			}
		}
		if pc < 0 {
			return pivotOptimal
		}

		// Leaving row by minimum ratio; strict < keeps the first minimum.
		pr = -1
		min = 0
		for r = 0; r < t.rows; r++ {
			val = t.at(r, pc)
			if val <= Epsilon {
				continue
			}
			ratio = t.at(r, t.cols) / val
			if pr < 0 || ratio < min {
				pr = r
				min = ratio
			}
		}
		if pr < 0 {
			return pivotUnbounded
		}

		t.pivot(pr, pc)
	}

	return pivotIterLimit
}

// basisCol identifies the basic column of row r, scanning the first limit
// structural columns: the column must hold a 1 in row r and zeros in every
// other constraint row. Returns (-1, false) when the row has no such column.
// Complexity: O(limit·rows).
func (t *tableau) basisCol(r, limit int) (int, bool) {
	var c, other int
	for c = 0; c < limit; c++ {
		if abs(t.at(r, c)-1.0) >= Epsilon {
			continue
		}
		unit := true
		for other = 0; other < t.rows; other++ {
			if other != r && abs(t.at(other, c)) >= Epsilon {
				unit = false
				break
			}
		}
		if unit {
			return c, true
		}
	}

	return -1, false
}
