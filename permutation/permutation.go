// SPDX-License-Identifier: MIT

// Package permutation provides helpers over partial node mappings.
//
// A permutation vector p maps the nodes of one network onto the nodes of
// another: p[k] is the counterpart of node k, and any value >= the other
// network's size means "no counterpart". p need not be a bijection.
package permutation

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPermutation is returned by Validate when p is not a bijection on {0..n-1}.
	ErrNotPermutation = errors.New("permutation: not a permutation")

	// ErrDimensionMismatch is returned by Compose for incompatible operands.
	ErrDimensionMismatch = errors.New("permutation: dimension mismatch")
)

// Invert returns inv with len(inv) == len(p) and inv[p[k]] = k for every k
// where 0 <= p[k] < len(p).
//
// Behavior highlights:
//   - Out-of-range entries (negative or >= len(p)) are skipped.
//   - Positions not reached by any in-range entry hold len(p), the
//     "no counterpart" sentinel.
//   - With duplicate in-range values the last k wins.
//
// Complexity: O(n).
func Invert(p []int) []int {
	n := len(p)
	inv := make([]int, n)
	for i := range inv {
		inv[i] = n
	}
	for k, v := range p {
		if v >= 0 && v < n {
			inv[v] = k
		}
	}

	return inv
}

// Identity returns [0, 1, ..., n-1].
func Identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}

// IsPermutation reports whether p is a bijection on {0..len(p)-1}.
func IsPermutation(p []int) bool { return Validate(p) == nil }

// Validate returns nil when p is a bijection on {0..len(p)-1}, otherwise
// ErrNotPermutation naming the first offending index.
// Complexity: O(n) time, O(n) space.
func Validate(p []int) error {
	seen := make([]bool, len(p))
	for k, v := range p {
		if v < 0 || v >= len(p) {
			return fmt.Errorf("Validate: p[%d]=%d outside [0, %d): %w", k, v, len(p), ErrNotPermutation)
		}
		if seen[v] {
			return fmt.Errorf("Validate: p[%d]=%d repeated: %w", k, v, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Compose returns r with r[i] = p[q[i]].
// Errors: ErrDimensionMismatch when some q[i] is not a valid index into p.
func Compose(p, q []int) ([]int, error) {
	r := make([]int, len(q))
	for i, v := range q {
		if v < 0 || v >= len(p) {
			return nil, fmt.Errorf("Compose: q[%d]=%d outside [0, %d): %w", i, v, len(p), ErrDimensionMismatch)
		}
		r[i] = p[v]
	}

	return r, nil
}

// Changed counts the positions where p and q differ (the shorter length bounds
// the comparison; extra positions count as changed).
func Changed(p, q []int) int {
	n, m := len(p), len(q)
	if n > m {
		n, m = m, n
	}
	d := m - n
	for i := 0; i < n; i++ {
		if p[i] != q[i] {
			d++
		}
	}

	return d
}
