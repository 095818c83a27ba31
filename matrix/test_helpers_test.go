// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the matrix tests and benchmarks.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalign/matrix"
)

// mustDense builds a Dense from a literal or fails the test.
func mustDense(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// mustIntDense builds an IntDense from a literal or fails the test.
func mustIntDense(tb testing.TB, rows [][]int) *matrix.IntDense {
	tb.Helper()
	m, err := matrix.NewIntDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// randDense returns an n×n Dense with values in [-1, 1) from a seeded source.
func randDense(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewSquare(n)
	require.NoError(tb, err)
	require.NoError(tb, m.Apply(func(_, _ int, _ float64) float64 { return 2*rng.Float64() - 1 }))

	return m
}
