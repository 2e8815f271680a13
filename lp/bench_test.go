// Package lp_test — benchmarks for the Simplex engine.
// Policy: deterministic instances built outside the timer; sizes chosen
// to finish fast on CI while exercising both phases and basis repair.
package lp_test

import (
	"testing"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/matrix"
)

// benchSystem builds a deterministic m×n system with a known feasible
// point (x_j = j%3+1), so Phase 1 always succeeds.
func benchSystem(m, n int) *lp.System {
	rows := make([][]float64, m)
	feas := make([]float64, n)
	var i, j int
	for j = 0; j < n; j++ {
		feas[j] = float64(j%3 + 1)
	}
	for i = 0; i < m; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			rows[i][j] = float64((i*7+j*3)%5 + 1)
		}
	}
	a, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		panic(err)
	}
	b, err := a.MulVec(feas)
	if err != nil {
		panic(err)
	}
	c := make([]float64, n)
	for j = 0; j < n; j++ {
		c[j] = 1
	}
	sys, err := lp.NewSystem(a, b, c)
	if err != nil {
		panic(err)
	}

	return sys
}

func BenchmarkSolve_4x6(b *testing.B) {
	sys := benchSystem(4, 6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lp.Solve(sys); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_8x12(b *testing.B) {
	sys := benchSystem(8, 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lp.Solve(sys); err != nil {
			b.Fatal(err)
		}
	}
}
