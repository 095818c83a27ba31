// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinels shared by the containers and by every package that consumes them.
// Messages carry the "matrix: " prefix; the detection site adds method,
// coordinates or shapes with %w and callers match with errors.Is.
// When several checks fail the first reported is, in order:
// nil, shape, index, numeric policy.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero-sized shapes are legal: an empty cost matrix is a valid degenerate problem.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrOutOfRange: row or column index outside the shape (At, Set, Row).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible or ragged dimensions, e.g.
	// rows of different lengths, or a shape that differs from the required one.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare: adjacency and cost matrices must be square.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, conversion).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix: a nil *Dense or *IntDense was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOverflow indicates that a converted value does not fit below the
	// integer limit requested by the caller (see ToIntDense).
	ErrOverflow = errors.New("matrix: value exceeds integer limit")
)
