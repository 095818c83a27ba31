// SPDX-License-Identifier: MIT
package align_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalign/align"
	"github.com/katalvlaran/graphalign/diag"
	"github.com/katalvlaran/graphalign/lap"
	"github.com/katalvlaran/graphalign/matrix"
	"github.com/katalvlaran/graphalign/permutation"
	"github.com/katalvlaran/graphalign/scratch"
	"github.com/katalvlaran/graphalign/score"
)

func dense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// pathProblem aligns a three-node path with itself. Node similarity is the
// identity, and a matching pair is worth far more than any link agreement.
func pathProblem(t testing.TB, p []int) score.Input {
	path := dense(t, [][]float64{{0, 1, 0}, {1, 0, 1}, {0, 1, 0}})

	return score.Input{
		A:             path,
		B:             path,
		R:             dense(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}),
		P:             p,
		LinkScore:     dense(t, [][]float64{{0, 0}, {0, 1}}),
		SelfLinkScore: dense(t, [][]float64{{0, 0}, {0, 0}}),
		NodeScore1:    []float64{0, 10},
		NodeScore2:    []float64{0, 0},
		LookupLink:    []float64{0, 0.5, 1},
		LookupNode:    []float64{0, 0.5, 1},
	}
}

func TestAlignOneRound(t *testing.T) {
	res, err := align.Align(pathProblem(t, permutation.Identity(3)))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, res.Permutation)
	assert.Equal(t, [][]float64{{11, 0, 1}, {0, 12, 0}, {1, 0, 11}}, res.M.ToRows())
	assert.Equal(t, 34.0, res.Score)
	assert.Equal(t, -34000, res.LAP.Cost)
	assert.Equal(t, 1, res.Iterations)
	assert.True(t, res.Converged)
	assert.Equal(t, res.LAP.ColSol, res.Permutation)
}

func TestAlignMinimize(t *testing.T) {
	res, err := align.Align(pathProblem(t, permutation.Identity(3)), align.WithMinimize(), align.WithScale(1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.Score)
	assert.Equal(t, 1, res.LAP.Cost)
	assert.NotEqual(t, []int{0, 1, 2}, res.Permutation)
}

func TestIterateConvergesToIdentity(t *testing.T) {
	in := pathProblem(t, []int{1, 0, 2})
	rec := &diag.Recorder{}

	res, err := align.Iterate(in, align.WithReporter(rec), align.WithVerify(true))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Permutation)
	assert.True(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)
	assert.Equal(t, 34.0, res.Score)
	assert.Equal(t, []int{1, 0, 2}, in.P) // caller's permutation untouched

	assert.Equal(t, 2, rec.Count(diag.LevelInfo))
	assert.Zero(t, rec.Count(diag.LevelWarning))
}

func TestIterateRoundLimit(t *testing.T) {
	rec := &diag.Recorder{}
	res, err := align.Iterate(pathProblem(t, []int{1, 0, 2}),
		align.WithMaxIterations(1),
		align.WithReporter(rec),
	)
	require.NoError(t, err)
	assert.False(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
	assert.Equal(t, []int{0, 1, 2}, res.Permutation)
	assert.Equal(t, 1, rec.Count(diag.LevelWarning))

	assert.Panics(t, func() { align.WithMaxIterations(0) })
}

func TestIterateUnequalSizes(t *testing.T) {
	in := pathProblem(t, permutation.Identity(3))
	in.B = dense(t, [][]float64{{0, 1}, {1, 0}})
	in.R = dense(t, [][]float64{{1, 0}, {0, 1}, {0, 0}})

	res, err := align.Iterate(in)
	require.NoError(t, err)
	require.True(t, permutation.IsPermutation(res.Permutation))
	assert.Equal(t, []int{0, 1, 2}, res.Permutation) // A-node 2 keeps the dummy
	assert.True(t, res.Converged)
}

func TestAlignErrors(t *testing.T) {
	in := pathProblem(t, permutation.Identity(3))

	_, err := align.Align(in, align.WithScale(0))
	require.ErrorIs(t, err, align.ErrInvalidScale)

	_, err = align.Align(in, align.WithScale(math.Inf(1)))
	require.ErrorIs(t, err, align.ErrInvalidScale)

	short := pathProblem(t, []int{0, 1})
	_, err = align.Iterate(short)
	require.ErrorIs(t, err, score.ErrPermutationTooShort)

	_, err = align.Align(in, align.WithAllocator(scratch.NewLimited(0)))
	require.ErrorIs(t, err, scratch.ErrAllocationFailure)

	_, err = align.Align(in, align.WithScale(1e9)) // 12e9 does not fit below BIG
	require.ErrorIs(t, err, lap.ErrCostOutOfRange)
}

func TestCostFromScore(t *testing.T) {
	m := dense(t, [][]float64{{1.5, -0.25}, {0, 2}})

	cost, err := align.CostFromScore(m, align.CostOptions{Scale: 10})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{-15, 3}, {0, -20}}, cost.ToRows()) // round half away from zero

	cost, err = align.CostFromScore(m, align.CostOptions{Scale: 10, Minimize: true})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{15, -3}, {0, 20}}, cost.ToRows())

	_, err = align.CostFromScore(m, align.CostOptions{Scale: -1})
	require.ErrorIs(t, err, align.ErrInvalidScale)

	_, err = align.CostFromScore(m, align.CostOptions{Scale: math.NaN()})
	require.ErrorIs(t, err, align.ErrInvalidScale)

	_, err = align.CostFromScore(nil, align.CostOptions{Scale: 1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = align.CostFromScore(m, align.CostOptions{Scale: float64(lap.BIG)})
	require.ErrorIs(t, err, lap.ErrCostOutOfRange)
	require.ErrorIs(t, err, matrix.ErrOverflow)
}
