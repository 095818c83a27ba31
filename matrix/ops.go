// SPDX-License-Identifier: MIT

// Package matrix - element-wise helpers over Dense.
//
// These are the few whole-matrix operations the alignment pipeline needs
// when inspecting score terms: sums of components, transposition of encoded
// adjacencies and tolerance-based comparison.
package matrix

import (
	"fmt"
	"math"
)

const (
	opAdd       = "Add"
	opTranspose = "Transpose"
	opAllClose  = "AllClose"
)

func opErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Add returns the element-wise sum of all terms, accumulated left to right.
// Stage 1 (Validate): at least one term, no nils, identical shapes.
// Stage 2 (Execute): flat-slice accumulation.
// Complexity: O(k·r·c) for k terms.
func Add(terms ...*Dense) (*Dense, error) {
	if len(terms) == 0 {
		return nil, opErrorf(opAdd, ErrNilMatrix)
	}
	for _, t := range terms {
		if t == nil {
			return nil, opErrorf(opAdd, ErrNilMatrix)
		}
		if err := ValidateShape(t, terms[0].r, terms[0].c); err != nil {
			return nil, opErrorf(opAdd, err)
		}
	}

	res := terms[0].clone()
	for _, t := range terms[1:] {
		for idx, v := range t.data {
			res.data[idx] += v
		}
	}

	return res, nil
}

// Transpose returns mᵀ.
// Complexity: O(r·c).
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, opErrorf(opTranspose, ErrNilMatrix)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, opErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// AllClose reports whether |a-b| ≤ atol + rtol·|b| holds element-wise.
//
// Policy:
//   - a and b must be non-nil with identical shapes.
//   - negative tolerances are normalized to their absolute value; NaN/Inf
//     tolerances are rejected with ErrNaNInf.
//
// Complexity: O(r·c), early exit on the first violation.
func AllClose(a, b *Dense, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, opErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if a == nil || b == nil {
		return false, opErrorf(opAllClose, ErrNilMatrix)
	}
	if err := ValidateShape(a, b.r, b.c); err != nil {
		return false, opErrorf(opAllClose, err)
	}

	for idx, bv := range b.data {
		if math.Abs(a.data[idx]-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}
