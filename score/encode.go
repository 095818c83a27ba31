// SPDX-License-Identifier: MIT

package score

import (
	"fmt"

	"github.com/katalvlaran/graphalign/diag"
	"github.com/katalvlaran/graphalign/matrix"
)

// EncodeDirected turns a directed 0/1 adjacency matrix into a symmetric ±1
// matrix so that direction survives in an undirected score model.
//
// For every m[i][j] == 1 the pair (i, j) and (j, i) is set to +1 when i comes
// no later than j in the reference order, else to −1. The reference order is
// the node index when p is nil, and p[i] ≤ p[j] otherwise. Cells are written
// in row-major order; for reciprocal edges the later write wins.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrPermutationTooShort.
// Complexity: O(n²).
func EncodeDirected(m *matrix.Dense, p []int, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts)
	if err := matrix.ValidateSquare(m); err != nil {
		return nil, diag.Fail(o.report, fmt.Errorf("score.EncodeDirected: %w", err))
	}
	n := m.Rows()
	if p != nil && len(p) < n {
		return nil, diag.Fail(o.report, fmt.Errorf("score.EncodeDirected: length(p) = %d, matrix has %d rows: %w",
			len(p), n, ErrPermutationTooShort))
	}

	out, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	var sign float64
	for i = 0; i < n; i++ {
		row := m.RawRow(i)
		for j = 0; j < n; j++ {
			if row[j] != 1 {
				continue
			}
			if (p == nil && i <= j) || (p != nil && p[i] <= p[j]) {
				sign = 1
			} else {
				sign = -1
			}
			out.RawRow(i)[j] = sign
			out.RawRow(j)[i] = sign
		}
	}

	return out, nil
}
