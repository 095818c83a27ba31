// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum/mat.
//
// Callers that already hold networks as gonum matrices (spectral preprocessing,
// similarity kernels) can hand them to the score builder without manual copies,
// and take M back into gonum for further linear algebra.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies any gonum matrix into a new Dense.
//
// Errors: ErrNilMatrix for nil input, ErrNaNInf for non-finite elements.
// Complexity: O(r*c).
func FromGonum(a mat.Matrix) (*Dense, error) {
	if a == nil {
		return nil, validatorErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := a.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err = out.Set(i, j, a.At(i, j)); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return out, nil
}

// Gonum copies m into a new *mat.Dense.
// gonum rejects zero-length shapes in mat.NewDense, so an empty m maps to an
// empty (zero-value) *mat.Dense.
// Complexity: O(r*c).
func (m *Dense) Gonum() *mat.Dense {
	if m.r == 0 || m.c == 0 {
		return &mat.Dense{}
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}
