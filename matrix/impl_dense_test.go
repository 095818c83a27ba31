// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphalign/matrix"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects negative dimensions
// and accepts zero-sized shapes.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(-1, 5)                     // negative rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	m, err := matrix.NewDense(0, 0) // empty shape is legal
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows())
	assert.Equal(t, 0, m.Cols())
	assert.True(t, m.IsSquare())
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4                    // expected row and column counts
	m, err := matrix.NewDense(rows, cols) // create a 3x4 Dense matrix
	require.NoError(t, err)

	r, c := m.Shape()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
	require.False(t, m.IsSquare())
}

// TestAtSetOutOfRange ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)                          // negative row
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                       // row past the end
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates Set() followed by At() and the NaN/Inf policy.
func TestSetGet(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 7.89)) // set element at (1,2)
	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestNewDenseFrom(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, m.ToRows())

	_, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	empty, err := matrix.NewDenseFrom(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Rows())
}

func TestRowCopiesRawRowShares(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.Row(1)
	require.NoError(t, err)
	row[0] = 100
	v, _ := m.At(1, 0)
	assert.Equal(t, 3.0, v) // Row is a copy

	raw := m.RawRow(1)
	raw[0] = 100
	v, _ = m.At(1, 0)
	assert.Equal(t, 100.0, v) // RawRow is a view
}

func TestCloneIsDeep(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.CloneDense()
	require.NoError(t, cp.Set(0, 0, 9))

	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)

	var asIface matrix.Matrix = m
	c2 := asIface.Clone()
	assert.Equal(t, m.String(), c2.(*matrix.Dense).String())
}

func TestString(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4.5}})
	assert.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}

func TestDoEarlyExitAndApply(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	var seen int
	m.Do(func(i, j int, v float64) bool {
		seen++
		return v < 2 // stop after the second element
	})
	assert.Equal(t, 2, seen)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v * 10 }))
	assert.Equal(t, [][]float64{{10, 20}, {30, 40}}, m.ToRows())

	err := m.Apply(func(i, j int, v float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
