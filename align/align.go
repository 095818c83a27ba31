// SPDX-License-Identifier: MIT

package align

import (
	"fmt"

	"github.com/katalvlaran/graphalign/diag"
	"github.com/katalvlaran/graphalign/lap"
	"github.com/katalvlaran/graphalign/matrix"
	"github.com/katalvlaran/graphalign/permutation"
	"github.com/katalvlaran/graphalign/score"
)

// Result is the outcome of Align or Iterate (values of the last round).
type Result struct {
	// Permutation maps A-node j to B-node Permutation[j]; entries >= B.Rows()
	// leave j without counterpart. Always a bijection on [0, len(P)).
	Permutation []int

	// M is the score matrix the round was solved on.
	M *matrix.Dense

	// Cost is the integer cost matrix handed to the solver.
	Cost *matrix.IntDense

	// LAP is the raw solver output.
	LAP lap.Result

	// Score is Σ_j M[Permutation[j]][j], the total evidence of the alignment.
	Score float64

	// Iterations is the number of rounds run (1 for Align).
	Iterations int

	// Converged reports that the last round reproduced its input permutation.
	Converged bool
}

// Align runs one round: build M from in, convert it to costs, solve, and read
// the new permutation off the column solution.
//
// The first error of any stage is returned unchanged in kind (score, matrix,
// lap or scratch sentinels), wrapped with "align.Align".
func Align(in score.Input, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	res, err := round(in, o)
	if err != nil {
		return Result{}, fmt.Errorf("align.Align: %w", err)
	}
	res.Iterations = 1
	res.Converged = permutation.Changed(in.P, res.Permutation) == 0

	return res, nil
}

// Iterate repeats Align, substituting the new permutation for in.P, until it
// stops changing or the round limit (WithMaxIterations) is reached.
// in itself is not modified.
//
// Reports one LevelInfo entry per round and a LevelWarning when the limit is
// hit without convergence.
func Iterate(in score.Input, opts ...Option) (Result, error) {
	o := gatherOptions(opts)
	cur := in
	cur.P = append([]int(nil), in.P...)

	var (
		res     Result
		err     error
		changed int
	)
	for it := 1; it <= o.maxIter; it++ {
		if res, err = round(cur, o); err != nil {
			return Result{}, fmt.Errorf("align.Iterate(round %d): %w", it, err)
		}
		changed = permutation.Changed(cur.P, res.Permutation)
		res.Iterations = it
		diag.Reportf(o.report, diag.LevelInfo, "align: iteration=%d score=%g changed=%d", it, res.Score, changed)
		if changed == 0 {
			res.Converged = true
			return res, nil
		}
		cur.P = res.Permutation
	}
	diag.Reportf(o.report, diag.LevelWarning, "align: no fixed point after %d iterations (last round changed %d entries)",
		o.maxIter, changed)

	return res, nil
}

// round is one M → cost → LAP pass.
func round(in score.Input, o options) (Result, error) {
	m, err := score.ComputeM(in, score.WithReporter(o.report))
	if err != nil {
		return Result{}, err
	}
	cost, err := CostFromScore(m, CostOptions{Scale: o.scale, Minimize: o.minimize})
	if err != nil {
		return Result{}, diag.Fail(o.report, err)
	}
	sol, err := lap.Solve(cost,
		lap.WithAllocator(o.alloc),
		lap.WithReporter(o.report),
		lap.WithVerify(o.verify),
	)
	if err != nil {
		return Result{}, err
	}

	p := append([]int(nil), sol.ColSol...)
	var total float64
	for j, i := range p {
		total += m.RawRow(i)[j]
	}

	return Result{Permutation: p, M: m, Cost: cost, LAP: sol, Score: total}, nil
}
