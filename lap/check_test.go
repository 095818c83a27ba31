// SPDX-License-Identifier: MIT
package lap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalign/lap"
	"github.com/katalvlaran/graphalign/matrix"
)

func cloneResult(r lap.Result) lap.Result {
	return lap.Result{
		RowSol: append([]int(nil), r.RowSol...),
		ColSol: append([]int(nil), r.ColSol...),
		U:      append([]int(nil), r.U...),
		V:      append([]int(nil), r.V...),
		Cost:   r.Cost,
	}
}

func TestCheckDetectsCorruption(t *testing.T) {
	cost, err := matrix.NewIntDenseFrom([][]int{{1, 2, 3}, {2, 4, 6}, {3, 6, 9}})
	require.NoError(t, err)
	good, err := lap.Solve(cost)
	require.NoError(t, err)
	require.NoError(t, lap.Check(cost, good))

	cases := []struct {
		name    string
		corrupt func(r *lap.Result)
		want    error
	}{
		{"short rowsol", func(r *lap.Result) { r.RowSol = r.RowSol[:2] }, lap.ErrInvalidSolution},
		{"index out of range", func(r *lap.Result) { r.ColSol[0] = 3 }, lap.ErrInvalidSolution},
		{"dual infeasible", func(r *lap.Result) { r.U[0]++ }, lap.ErrNegativeReducedCost},
		{"slack", func(r *lap.Result) { r.U[0]-- }, lap.ErrNonZeroSlack},
		{"cost", func(r *lap.Result) { r.Cost++ }, lap.ErrCostMismatch},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := cloneResult(good)
			tc.corrupt(&r)
			require.ErrorIs(t, lap.Check(cost, r), tc.want)
		})
	}
}

func TestCheckAssignmentConsistency(t *testing.T) {
	zero, err := matrix.NewIntDense(2, 2)
	require.NoError(t, err)
	base := lap.Result{U: []int{0, 0}, V: []int{0, 0}}

	reused := cloneResult(base)
	reused.RowSol, reused.ColSol = []int{0, 0}, []int{0, 1}
	require.ErrorIs(t, lap.Check(zero, reused), lap.ErrColumnReused)

	crossed := cloneResult(base)
	crossed.RowSol, crossed.ColSol = []int{0, 1}, []int{1, 0}
	require.ErrorIs(t, lap.Check(zero, crossed), lap.ErrRowSolution)

	ok := cloneResult(base)
	ok.RowSol, ok.ColSol = []int{1, 0}, []int{1, 0}
	require.NoError(t, lap.Check(zero, ok))
}

func TestEvaluate(t *testing.T) {
	cost, err := matrix.NewIntDenseFrom([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	total, err := lap.Evaluate(cost, []int{1, 0})
	require.NoError(t, err)
	require.Equal(t, 5, total)

	_, err = lap.Evaluate(cost, []int{0})
	require.ErrorIs(t, err, lap.ErrInvalidSolution)
	_, err = lap.Evaluate(cost, []int{0, 2})
	require.ErrorIs(t, err, lap.ErrInvalidSolution)
}
