// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels (binning, score, lap) minimal by delegating nil/shape checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil catches both untyped nil and typed nil pointers stored in a Shaper.
func isNil(m Shaper) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *Dense:
		return v == nil
	case *IntDense:
		return v == nil
	}

	return false
}

// ValidateNotNil ensures the matrix reference is non-nil (typed nils included).
//
// Returns ErrNilMatrix if m is nil.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Shaper) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare (with the shape) otherwise.
// Complexity: O(1).
func ValidateSquare(m Shaper) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return fmt.Errorf("ValidateSquare: shape (%d, %d): %w", m.Rows(), m.Cols(), ErrNonSquare)
	}

	return nil
}

// ValidateShape ensures m is non-nil and exactly rows×cols.
// Errors: ErrNilMatrix, ErrDimensionMismatch (reporting actual vs expected).
// Complexity: O(1).
func ValidateShape(m Shaper, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != rows || m.Cols() != cols {
		return fmt.Errorf("ValidateShape: shape (%d, %d), expected (%d, %d): %w",
			m.Rows(), m.Cols(), rows, cols, ErrDimensionMismatch)
	}

	return nil
}

// ValidateMinShape ensures m is non-nil with at least rows rows and cols cols.
// Used for lookup tables indexed by bin numbers.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMinShape(m Shaper, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() < rows || m.Cols() < cols {
		return fmt.Errorf("ValidateMinShape: shape (%d, %d), need at least (%d, %d): %w",
			m.Rows(), m.Cols(), rows, cols, ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length is at least n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) < n {
		return fmt.Errorf("ValidateVecLen: length %d, need at least %d: %w", len(x), n, ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite ensures every element of m is finite.
// Errors: ErrNilMatrix, ErrNaNInf with the first offending coordinates.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateFinite", ErrNilMatrix)
	}
	var bad error
	m.Do(func(i, j int, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = fmt.Errorf("ValidateFinite: element (%d, %d): %w", i, j, ErrNaNInf)
			return false
		}
		return true
	})

	return bad
}
