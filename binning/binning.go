// SPDX-License-Identifier: MIT

// Package binning quantizes continuous weights into discrete bin indices.
//
// A lookup vector v of length n (non-decreasing, supplied by the caller and
// never sorted here) defines n-1 half-open bins [v[k], v[k+1]); the top
// boundary v[n-1] belongs to the last bin n-2. Values outside [v[0], v[n-1]]
// are rejected or saturated depending on the ClampMode.
//
// Example, lookup = [0, 1, 2]:
//
//	x:    0    0.999  1    1.999  2    2.001
//	bin:  0    0      1    1      1    ErrOutOfRange (clamp disabled) / 1 (enabled)
//
// The functions are pure and safe for concurrent use.
package binning

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/graphalign/matrix"
)

var (
	// ErrEmptyLookup is returned when the lookup vector has no elements.
	ErrEmptyLookup = errors.New("binning: lookup vector is empty")

	// ErrOutOfRange is returned when clamping is disabled and a value lies
	// outside the lookup range (or differs from a single lookup point).
	ErrOutOfRange = errors.New("binning: value outside lookup range")

	// ErrUnsortedLookup is returned by ValidateLookup for a decreasing lookup vector.
	ErrUnsortedLookup = errors.New("binning: lookup vector is not non-decreasing")

	// ErrUnknownClampMode is returned by ParseClampMode for unrecognized input.
	ErrUnknownClampMode = errors.New("binning: unknown clamp mode")
)

// ClampMode governs the handling of out-of-range values.
type ClampMode int

const (
	// ClampDisabled rejects out-of-range values with ErrOutOfRange.
	ClampDisabled ClampMode = iota
	// ClampEnabled saturates out-of-range values to the first or last bin.
	ClampEnabled
)

// String returns "disabled" or "enabled".
func (c ClampMode) String() string {
	if c == ClampEnabled {
		return "enabled"
	}

	return "disabled"
}

// ParseClampMode maps host-layer spellings onto a ClampMode.
// Accepted (case-insensitive): enabled/disabled, true/false, on/off, yes/no, 1/0.
func ParseClampMode(s string) (ClampMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enabled", "enable", "true", "on", "yes", "1":
		return ClampEnabled, nil
	case "disabled", "disable", "false", "off", "no", "0", "":
		return ClampDisabled, nil
	}

	return ClampDisabled, fmt.Errorf("ParseClampMode(%q): %w", s, ErrUnknownClampMode)
}

// BinNumber returns the index of the bin containing x.
//
// Contract:
//   - len(lookup) == 0 → ErrEmptyLookup.
//   - len(lookup) == 1 → 0 if x == lookup[0] or clamp is enabled; else ErrOutOfRange.
//   - x outside [lookup[0], lookup[n-1]] → ErrOutOfRange (disabled), or 0 below /
//     n-2 above (enabled).
//   - otherwise the largest k ≤ n-2 with lookup[k] ≤ x, found by scanning from
//     bin 0 upward; boundary ties go to the bin starting at that boundary.
//   - NaN is never inside a bin and cannot be clamped: ErrOutOfRange.
//
// Complexity: O(n) worst case.
func BinNumber(x float64, lookup []float64, clamp ClampMode) (int, error) {
	n := len(lookup)
	if n == 0 {
		return 0, ErrEmptyLookup
	}
	if math.IsNaN(x) {
		return 0, fmt.Errorf("BinNumber(NaN): %w", ErrOutOfRange)
	}
	if n == 1 {
		// No real range, only a single point.
		if clamp == ClampDisabled && x != lookup[0] {
			return 0, fmt.Errorf("BinNumber(%g): single lookup value %g and clamping disabled: %w",
				x, lookup[0], ErrOutOfRange)
		}
		return 0, nil
	}

	lo, hi := lookup[0], lookup[n-1]
	if x < lo || x > hi {
		if clamp == ClampDisabled {
			return 0, fmt.Errorf("BinNumber(%g): outside [%g, %g] and clamping disabled: %w",
				x, lo, hi, ErrOutOfRange)
		}
		if x < lo {
			return 0, nil
		}
		return n - 2, nil
	}

	// Walk up while the next bin still starts at or below x; never past n-2.
	k := 0
	for k+1 < n-1 && x >= lookup[k+1] {
		k++
	}

	return k, nil
}

// BinVector bins every element of vec. The first failure aborts the whole
// operation; no partial result is returned.
// Complexity: O(len(vec) * len(lookup)).
func BinVector(vec, lookup []float64, clamp ClampMode) ([]int, error) {
	out := make([]int, len(vec))
	var err error
	for i, x := range vec {
		if out[i], err = BinNumber(x, lookup, clamp); err != nil {
			return nil, fmt.Errorf("BinVector: element %d: %w", i, err)
		}
	}

	return out, nil
}

// BinMatrix bins every element of m into a same-shaped IntDense.
// The first failure aborts the whole operation; no partial result is returned.
//
// Errors: matrix.ErrNilMatrix, ErrEmptyLookup, ErrOutOfRange (with coordinates).
// Complexity: O(r * c * len(lookup)).
func BinMatrix(m *matrix.Dense, lookup []float64, clamp ClampMode) (*matrix.IntDense, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("BinMatrix: %w", err)
	}
	if len(lookup) == 0 {
		return nil, fmt.Errorf("BinMatrix: %w", ErrEmptyLookup)
	}
	r, c := m.Shape()
	out, err := matrix.NewIntDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	var src []float64
	var dst []int
	for i = 0; i < r; i++ {
		src, dst = m.RawRow(i), out.RawRow(i)
		for j = 0; j < c; j++ {
			if dst[j], err = BinNumber(src[j], lookup, clamp); err != nil {
				return nil, fmt.Errorf("BinMatrix: element (%d, %d): %w", i, j, err)
			}
		}
	}

	return out, nil
}

// Bins returns the number of bins defined by lookup: len(lookup)-1, or 1 for a
// single-point lookup (which still yields bin 0), or 0 for an empty one.
func Bins(lookup []float64) int {
	switch len(lookup) {
	case 0:
		return 0
	case 1:
		return 1
	}

	return len(lookup) - 1
}

// ValidateLookup checks that lookup is non-empty and non-decreasing (NaN fails).
// The binning functions do not call it; it is offered to hosts that accept
// lookup tables from users.
func ValidateLookup(lookup []float64) error {
	if len(lookup) == 0 {
		return ErrEmptyLookup
	}
	for k := 1; k < len(lookup); k++ {
		if !(lookup[k] >= lookup[k-1]) {
			return fmt.Errorf("ValidateLookup: lookup[%d]=%g < lookup[%d]=%g: %w",
				k, lookup[k], k-1, lookup[k-1], ErrUnsortedLookup)
		}
	}
	if math.IsNaN(lookup[0]) {
		return fmt.Errorf("ValidateLookup: lookup[0] is NaN: %w", ErrUnsortedLookup)
	}

	return nil
}
