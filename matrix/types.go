// SPDX-License-Identifier: MIT

package matrix

// Shaper reports dimensions. The validators accept it so that real and
// integer matrices share one set of shape checks.
type Shaper interface {
	Rows() int
	Cols() int
}

// Matrix is the real-valued container contract. *Dense is the only
// implementation; gonum matrices are bridged through FromGonum.
type Matrix interface {
	Shaper

	// At returns element (i, j) or ErrOutOfRange.
	At(i, j int) (float64, error)

	// Set writes element (i, j); ErrOutOfRange outside the shape.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
