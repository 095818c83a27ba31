// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphalign/align"
	"github.com/katalvlaran/graphalign/diag"
	"github.com/katalvlaran/graphalign/internal/problem"
	"github.com/katalvlaran/graphalign/scratch"
)

type alignInput struct {
	scale    float64
	minimize bool
	maxIter  int
	verify   bool
	alloc    scratch.Allocator
}

func newAlignCommand(a *app) *cobra.Command {
	ai := &alignInput{alloc: a.pool}
	cmd := &cobra.Command{
		Use:   "align FILE...",
		Short: "Iteratively align the two networks of each problem file",
		Long: "Repeatedly builds the score matrix under the current permutation and solves it, " +
			"until the permutation stops changing. --max-iter 1 runs a single round.",
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if ai.maxIter < 1 {
				return fmt.Errorf("--max-iter %d: %w", ai.maxIter, align.ErrInvalidIterations)
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFiles(cmd.Context(), args, ai.align)
		},
	}
	cmd.Flags().Float64Var(&ai.scale, "scale", align.DefaultScale, "score to integer cost scale factor")
	cmd.Flags().BoolVar(&ai.minimize, "minimize", false, "treat the score matrix as a cost (lower is better)")
	cmd.Flags().IntVar(&ai.maxIter, "max-iter", align.DefaultMaxIterations, "maximum number of rounds")
	cmd.Flags().AddFlagSet(verifyFlags(&ai.verify))

	return cmd
}

func (ai *alignInput) align(_ context.Context, path string, report diag.Reporter) (any, error) {
	in, err := problem.LoadProblem(path)
	if err != nil {
		return nil, err
	}
	opts := []align.Option{
		align.WithScale(ai.scale),
		align.WithMaxIterations(ai.maxIter),
		align.WithReporter(report),
		align.WithVerify(ai.verify),
		align.WithAllocator(ai.alloc),
	}
	if ai.minimize {
		opts = append(opts, align.WithMinimize())
	}

	res, err := align.Iterate(in, opts...)
	if err != nil {
		return nil, err
	}

	return problem.Alignment{
		File:        path,
		Permutation: res.Permutation,
		Score:       res.Score,
		Cost:        res.LAP.Cost,
		Iterations:  res.Iterations,
		Converged:   res.Converged,
	}, nil
}
