// Package milp_test — benchmarks for the Branch-and-Bound driver.
// Policy: deterministic instances, built outside the timer; sizes small
// enough for CI yet forcing real branching.
package milp_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/matrix"
	"github.com/katalvlaran/lvlopt/milp"
)

func benchIndicator(rows [][]float64, b []float64) *lp.System {
	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		panic(err)
	}
	ones := make([]float64, a.Cols())
	for i := range ones {
		ones[i] = 1
	}
	sys, err := lp.NewSystem(a, b, ones)
	if err != nil {
		panic(err)
	}

	return sys
}

// BenchmarkSolve_Integral measures the no-branching fast path.
func BenchmarkSolve_Integral(b *testing.B) {
	sys := benchIndicator([][]float64{
		{1, 1, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 1},
	}, []float64{4, 6, 5})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := milp.Solve(sys); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Branching measures a fractional root that needs the tree.
func BenchmarkSolve_Branching(b *testing.B) {
	sys := benchIndicator([][]float64{
		{3, 1, 0},
		{0, 2, 3},
	}, []float64{7, 8})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := milp.Solve(sys); err != nil {
			b.Fatal(err)
		}
	}
}
