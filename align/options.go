// SPDX-License-Identifier: MIT

package align

import (
	"github.com/katalvlaran/graphalign/diag"
	"github.com/katalvlaran/graphalign/scratch"
)

const (
	// DefaultScale multiplies scores before rounding to integer costs.
	DefaultScale = 1000.0

	// DefaultMaxIterations bounds Iterate.
	DefaultMaxIterations = 20
)

// Option configures Align and Iterate.
type Option func(*options)

type options struct {
	scale    float64
	minimize bool
	maxIter  int
	report   diag.Reporter
	alloc    scratch.Allocator
	verify   bool
}

// WithScale sets the score→cost scale factor. Validity is checked when the
// pipeline runs (ErrInvalidScale).
func WithScale(s float64) Option {
	return func(o *options) { o.scale = s }
}

// WithMinimize treats M as a cost matrix (lower is better).
func WithMinimize() Option {
	return func(o *options) { o.minimize = true }
}

// WithMaxIterations bounds the number of rounds run by Iterate.
// Panics if n < 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(ErrInvalidIterations)
	}

	return func(o *options) { o.maxIter = n }
}

// WithReporter sets the diagnostic sink, shared with the builder and solver.
func WithReporter(r diag.Reporter) Option {
	return func(o *options) { o.report = diag.OrDiscard(r) }
}

// WithAllocator sets the allocator handed to lap.Solve.
func WithAllocator(a scratch.Allocator) Option {
	return func(o *options) { o.alloc = scratch.OrHeap(a) }
}

// WithVerify makes every solve check its own optimality certificate.
func WithVerify(on bool) Option {
	return func(o *options) { o.verify = on }
}

func gatherOptions(opts []Option) options {
	o := options{
		scale:   DefaultScale,
		maxIter: DefaultMaxIterations,
		report:  diag.Discard,
		alloc:   scratch.Heap,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
