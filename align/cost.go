// SPDX-License-Identifier: MIT

package align

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphalign/lap"
	"github.com/katalvlaran/graphalign/matrix"
)

// CostOptions parameterizes CostFromScore.
type CostOptions struct {
	// Scale multiplies every score before rounding; must be finite and > 0.
	Scale float64

	// Minimize keeps the sign of the scores. When false (maximize) the
	// scores are negated so the solver's minimum is the best alignment.
	Minimize bool
}

// CostFromScore converts a real score matrix into an integer LAP cost matrix:
//
//	cost[i][j] = round(sign * Scale * m[i][j]),  sign = -1 unless Minimize
//
// Errors: ErrInvalidScale, matrix.ErrNilMatrix, matrix.ErrNaNInf, and
// lap.ErrCostOutOfRange (joined with matrix.ErrOverflow) once a rounded
// value reaches ±lap.BIG.
func CostFromScore(m *matrix.Dense, opts CostOptions) (*matrix.IntDense, error) {
	if math.IsNaN(opts.Scale) || math.IsInf(opts.Scale, 0) || opts.Scale <= 0 {
		return nil, fmt.Errorf("align.CostFromScore: scale %v: %w", opts.Scale, ErrInvalidScale)
	}
	sign := -1.0
	if opts.Minimize {
		sign = 1.0
	}

	cost, err := matrix.ToIntDense(m, sign*opts.Scale, lap.BIG)
	if errors.Is(err, matrix.ErrOverflow) {
		return nil, fmt.Errorf("align.CostFromScore: %w: %w", lap.ErrCostOutOfRange, err)
	}
	if err != nil {
		return nil, fmt.Errorf("align.CostFromScore: %w", err)
	}

	return cost, nil
}
