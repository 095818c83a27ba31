// SPDX-License-Identifier: MIT

package align

import "errors"

var (
	// ErrInvalidScale is returned when the cost scale is not finite and strictly positive.
	ErrInvalidScale = errors.New("align: scale must be finite and > 0")

	// ErrInvalidIterations is returned when the round limit is < 1.
	ErrInvalidIterations = errors.New("align: max iterations must be >= 1")
)
