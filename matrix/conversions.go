// SPDX-License-Identifier: MIT

// Package matrix - real ↔ integer conversions.
//
// The LAP solver works on integer costs while score matrices are real; the
// conversion rounds scale*v half away from zero and enforces a caller-given
// magnitude limit so that sentinel "infinite" costs stay out of reach.
package matrix

import (
	"fmt"
	"math"
)

// ToIntDense converts m into an integer matrix with out[i][j] = round(scale*m[i][j]).
//
// Contract:
//   - scale must be finite and non-zero; a negative scale flips the sign (used to
//     turn a maximization score into a minimization cost).
//   - limit > 0: every rounded value must satisfy |value| < limit.
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite scale, element or product),
//     ErrOverflow (|value| >= limit), with coordinates.
//
// Complexity: O(r*c).
func ToIntDense(m *Dense, scale float64, limit int) (*IntDense, error) {
	if m == nil {
		return nil, validatorErrorf("ToIntDense", ErrNilMatrix)
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale == 0 {
		return nil, fmt.Errorf("ToIntDense: scale %v: %w", scale, ErrNaNInf)
	}
	out, err := NewIntDense(m.r, m.c)
	if err != nil {
		return nil, err
	}

	lim := float64(limit)
	var x float64
	for off, v := range m.data {
		x = math.Round(scale * v)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("ToIntDense: element (%d, %d): %w", off/m.c, off%m.c, ErrNaNInf)
		}
		if math.Abs(x) >= lim {
			return nil, fmt.Errorf("ToIntDense: element (%d, %d) = %v scaled to %v, limit %d: %w",
				off/m.c, off%m.c, v, x, limit, ErrOverflow)
		}
		out.data[off] = int(x)
	}

	return out, nil
}

// ToDense converts an integer matrix to a real one (exact for |v| < 2^53).
// Complexity: O(r*c).
func ToDense(m *IntDense) (*Dense, error) {
	if m == nil {
		return nil, validatorErrorf("ToDense", ErrNilMatrix)
	}
	out, err := NewDense(m.r, m.c)
	if err != nil {
		return nil, err
	}
	for off, v := range m.data {
		out.data[off] = float64(v)
	}

	return out, nil
}
