// Package batch_test validates the parallel fan-out and the end-to-end
// three-machine scenario.
package batch_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/batch"
	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/machine"
	"github.com/katalvlaran/lvlopt/matrix"
)

// threeMachines is the reference workload: minimal presses are 10, 12
// and 11 per machine, 33 in total.
const threeMachines = `[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
[...#.] (0,2,3,4) (2,3) (0,4) (0,1,2) (1,2,3,4) {7,5,12,7,2}
[.###.#] (0,1,2,3,4) (0,3,4) (0,1,2,4,5) (1,2) {10,11,11,5,10,5}`

func mkOnes(t *testing.T, rows [][]float64, b []float64) *lp.System {
	t.Helper()
	a, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)
	ones := make([]float64, a.Cols())
	for i := range ones {
		ones[i] = 1
	}
	sys, err := lp.NewSystem(a, b, ones)
	require.NoError(t, err)

	return sys
}

func TestSum_EndToEndThreeMachines(t *testing.T) {
	systems, err := machine.Parse(strings.NewReader(threeMachines))
	require.NoError(t, err)
	require.Len(t, systems, 3)

	total, err := batch.Sum(context.Background(), systems, batch.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 33, total)
}

func TestSum_SingleWorkerMatchesParallel(t *testing.T) {
	systems, err := machine.Parse(strings.NewReader(threeMachines))
	require.NoError(t, err)

	serial, err := batch.Sum(context.Background(), systems, batch.Options{Workers: 1})
	require.NoError(t, err)
	parallel, err := batch.Sum(context.Background(), systems, batch.Options{Workers: 8})
	require.NoError(t, err)

	assert.Equal(t, serial, parallel, "total must not depend on scheduling")
	assert.Equal(t, 33, serial)
}

func TestSum_NoSolutionContributesZero(t *testing.T) {
	systems := []*lp.System{
		mkOnes(t, [][]float64{{2}}, []float64{4}), // cost 2
		mkOnes(t, [][]float64{{2}}, []float64{3}), // no integer solution
		mkOnes(t, [][]float64{{1, 0}, {0, 1}}, []float64{2, 3}), // cost 5
	}

	total, err := batch.Sum(context.Background(), systems, batch.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 7, total)
}

func TestSum_Empty(t *testing.T) {
	total, err := batch.Sum(context.Background(), nil, batch.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestSum_MalformedSystemSurfaces(t *testing.T) {
	bad := mkOnes(t, [][]float64{{1}}, []float64{1})
	bad.B = []float64{1, 2} // corrupt the shape

	_, err := batch.Sum(context.Background(), []*lp.System{bad}, batch.DefaultOptions())
	assert.ErrorIs(t, err, lp.ErrDimensionMismatch)
}

func TestSum_ZeroWorkersFallsBack(t *testing.T) {
	systems := []*lp.System{mkOnes(t, [][]float64{{2}}, []float64{4})}

	total, err := batch.Sum(context.Background(), systems, batch.Options{Workers: 0})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
}

func TestSum_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	systems, err := machine.Parse(strings.NewReader(threeMachines))
	require.NoError(t, err)

	_, err = batch.Sum(ctx, systems, batch.Options{Workers: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
