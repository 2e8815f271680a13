package lp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fill loads literal rows (each of length cols+1, RHS last) into t.
func fill(tb *tableau, rows [][]float64) {
	for r, row := range rows {
		for c, v := range row {
			tb.set(r, c, v)
		}
	}
}

func TestTableau_Pivot_NormalizesAndEliminates(t *testing.T) {
	tb := newTableau(2, 2)
	fill(tb, [][]float64{
		{2, 1, 4}, // constraint rows
		{1, 3, 6},
		{-3, -4, 0}, // objective row
	})

	tb.pivot(0, 0)

	// Pivot row normalized by the pivot value.
	assert.InDelta(t, 1.0, tb.at(0, 0), 1e-12)
	assert.InDelta(t, 0.5, tb.at(0, 1), 1e-12)
	assert.InDelta(t, 2.0, tb.at(0, 2), 1e-12)

	// Column 0 eliminated from the other constraint row and the objective.
	assert.InDelta(t, 0.0, tb.at(1, 0), 1e-12)
	assert.InDelta(t, 2.5, tb.at(1, 1), 1e-12)
	assert.InDelta(t, 4.0, tb.at(1, 2), 1e-12)
	assert.InDelta(t, 0.0, tb.at(2, 0), 1e-12)
	assert.InDelta(t, -2.5, tb.at(2, 1), 1e-12)
	assert.InDelta(t, 6.0, tb.at(2, 2), 1e-12)
}

func TestTableau_PivotLoop_Optimal(t *testing.T) {
	// Already-canonical tableau with no negative reduced cost.
	tb := newTableau(1, 2)
	fill(tb, [][]float64{
		{1, 1, 2},
		{0, 2, -2},
	})

	require.Equal(t, pivotOptimal, tb.pivotLoop())
}

func TestTableau_PivotLoop_Unbounded(t *testing.T) {
	// Entering column 0 has a negative reduced cost but no positive
	// constraint entry: no leaving row exists.
	tb := newTableau(1, 2)
	fill(tb, [][]float64{
		{0, 1, 1},
		{-1, 0, 0},
	})

	require.Equal(t, pivotUnbounded, tb.pivotLoop())
}

func TestTableau_BasisCol(t *testing.T) {
	tb := newTableau(2, 3)
	fill(tb, [][]float64{
		{1, 0.5, 0, 2},
		{0, 2.5, 1, 4},
		{0, -1, 0, 0},
	})

	bc, ok := tb.basisCol(0, tb.cols)
	require.True(t, ok)
	assert.Equal(t, 0, bc)

	bc, ok = tb.basisCol(1, tb.cols)
	require.True(t, ok)
	assert.Equal(t, 2, bc)

	// A row whose candidate columns are all shared has no basic column.
	tb2 := newTableau(2, 1)
	fill(tb2, [][]float64{
		{1, 1},
		{1, 1},
		{0, 0},
	})
	_, ok = tb2.basisCol(0, tb2.cols)
	assert.False(t, ok)
}

func TestTableau_PivotLoop_RespectsIterationCap(t *testing.T) {
	// Not a cycling instance (Bland's rule forbids those), but the loop
	// must report the cap instead of spinning if one ever appeared; here
	// we just assert a normal solve stays far under it by finishing.
	tb := newTableau(2, 4)
	fill(tb, [][]float64{
		{2, 1, 1, 0, 4},
		{1, 3, 0, 1, 6},
		{-3, -4, 0, 0, 0},
	})

	require.Equal(t, pivotOptimal, tb.pivotLoop())
}
