// SPDX-License-Identifier: MIT

package lap

import (
	"errors"
	"math"

	"github.com/katalvlaran/graphalign/diag"
	"github.com/katalvlaran/graphalign/scratch"
)

// BIG is the solver's "infinite" cost. Genuine costs must satisfy |c| < BIG;
// Solve rejects anything else with ErrCostOutOfRange.
const BIG = math.MaxInt32

var (
	// ErrCostOutOfRange is returned when a cost entry reaches ±BIG.
	ErrCostOutOfRange = errors.New("lap: cost outside (-BIG, BIG)")

	// ErrInvalidSolution is returned by Check when the solution vectors have the
	// wrong length or hold indices outside [0, dim).
	ErrInvalidSolution = errors.New("lap: malformed solution")

	// ErrNegativeReducedCost: some c[i][j] - u[i] - v[j] < 0 (dual infeasible).
	ErrNegativeReducedCost = errors.New("lap: negative reduced cost")

	// ErrNonZeroSlack: some assigned c[i][rowsol[i]] - u[i] - v[rowsol[i]] != 0.
	ErrNonZeroSlack = errors.New("lap: non-zero reduced cost on assignment")

	// ErrColumnReused: two rows are assigned the same column.
	ErrColumnReused = errors.New("lap: column matched more than once")

	// ErrRowSolution: colsol[rowsol[i]] != i.
	ErrRowSolution = errors.New("lap: row solution inconsistent with column solution")

	// ErrColSolution: rowsol[colsol[j]] != j.
	ErrColSolution = errors.New("lap: column solution inconsistent with row solution")

	// ErrCostMismatch: Result.Cost differs from the sum over the assignment.
	ErrCostMismatch = errors.New("lap: total cost mismatch")
)

// Result holds the outcome of Solve.
type Result struct {
	// RowSol[i] is the column assigned to row i.
	RowSol []int

	// ColSol[j] is the row assigned to column j.
	ColSol []int

	// U are the row duals, V the column duals:
	// c[i][j] - U[i] - V[j] >= 0 everywhere, == 0 on the assignment.
	U []int
	V []int

	// Cost is Σ c[i][RowSol[i]].
	Cost int
}

// Dim returns the problem size.
func (r Result) Dim() int { return len(r.RowSol) }

// Option configures Solve.
type Option func(*options)

type options struct {
	alloc  scratch.Allocator
	report diag.Reporter
	verify bool
}

// WithAllocator sets the allocator for the five dim-sized scratch buffers.
// nil restores the default (scratch.Heap).
func WithAllocator(a scratch.Allocator) Option {
	return func(o *options) { o.alloc = scratch.OrHeap(a) }
}

// WithReporter sets the diagnostic sink for validation failures.
func WithReporter(r diag.Reporter) Option {
	return func(o *options) { o.report = diag.OrDiscard(r) }
}

// WithVerify makes Solve run Check on its own result and fail on a violation.
func WithVerify(on bool) Option {
	return func(o *options) { o.verify = on }
}

func gatherOptions(opts []Option) options {
	o := options{alloc: scratch.Heap, report: diag.Discard}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
