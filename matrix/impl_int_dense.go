// SPDX-License-Identifier: MIT

// Package matrix - IntDense: row-major integer storage.
//
// Purpose:
//   - Hold bin indices (binning.BinMatrix) and integer LAP cost matrices.
//   - Mirror the Dense surface (At/Set/Row/RawRow/Clone/String) over []int so both
//     containers behave identically at the public boundary.
//
// AI-Hints:
//   - The LAP solver reads rows via RawRow after one upfront validation pass.

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

func intDenseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("IntDense.%s(%d,%d): %w", method, row, col, err)
}

// IntDense is a concrete row-major integer matrix.
type IntDense struct {
	r, c int   // row and column counts (>=0)
	data []int // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*IntDense)(nil)

// NewIntDense creates an r×c zero integer matrix.
// Errors: ErrInvalidDimensions when rows<0 or cols<0.
// Complexity: O(r*c).
func NewIntDense(rows, cols int) (*IntDense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewIntDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &IntDense{r: rows, c: cols, data: make([]int, rows*cols)}, nil
}

// NewIntDenseFrom copies a row-of-rows literal into a fresh IntDense.
// Errors: ErrDimensionMismatch on ragged rows.
// Complexity: O(r*c).
func NewIntDenseFrom(rows [][]int) (*IntDense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, err := NewIntDense(r, c)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("IntDense.%s: row %d has %d columns, want %d: %w",
				ctxFrom, i, len(rows[i]), c, ErrDimensionMismatch)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// Rows returns the row count.
func (m *IntDense) Rows() int { return m.r }

// Cols returns the column count.
func (m *IntDense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *IntDense) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *IntDense) IsSquare() bool { return m.r == m.c }

func (m *IntDense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *IntDense) At(row, col int) (int, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, intDenseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns a wrapped ErrOutOfRange.
// Complexity: O(1).
func (m *IntDense) Set(row, col int, v int) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return intDenseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Errors: ErrOutOfRange when i is outside [0, Rows()).
func (m *IntDense) Row(i int) ([]int, error) {
	if i < 0 || i >= m.r {
		return nil, intDenseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]int, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawRow returns row i as a slice sharing storage with m (no copy).
// Intended for validated hot loops.
func (m *IntDense) RawRow(i int) []int {
	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// ToRows copies m into a freshly allocated row-of-rows literal.
func (m *IntDense) ToRows() [][]int {
	out := make([][]int, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]int, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy.
// Complexity: O(r*c).
func (m *IntDense) Clone() *IntDense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &IntDense{r: m.r, c: m.c, data: cp}
}

// String dumps rows for diagnostics, same layout as Dense.String.
func (m *IntDense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			b.WriteString(strconv.Itoa(m.data[i*m.c+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
