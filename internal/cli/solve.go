// SPDX-License-Identifier: MIT

package cli

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/graphalign/diag"
	"github.com/katalvlaran/graphalign/internal/problem"
	"github.com/katalvlaran/graphalign/lap"
	"github.com/katalvlaran/graphalign/scratch"
)

type solveInput struct {
	verify bool
	alloc  scratch.Allocator
}

func verifyFlags(verify *bool) *pflag.FlagSet {
	fs := pflag.NewFlagSet("verify", pflag.ContinueOnError)
	fs.BoolVar(verify, "verify", false, "check the optimality certificate of every solution")

	return fs
}

func newSolveCommand(a *app) *cobra.Command {
	si := &solveInput{alloc: a.pool}
	cmd := &cobra.Command{
		Use:   "solve FILE...",
		Short: "Solve the linear assignment problem in each cost file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFiles(cmd.Context(), args, si.solve)
		},
	}
	cmd.Flags().AddFlagSet(verifyFlags(&si.verify))

	return cmd
}

func (si *solveInput) solve(_ context.Context, path string, report diag.Reporter) (any, error) {
	cost, err := problem.LoadCost(path)
	if err != nil {
		return nil, err
	}
	res, err := lap.Solve(cost,
		lap.WithAllocator(si.alloc),
		lap.WithReporter(report),
		lap.WithVerify(si.verify),
	)
	if err != nil {
		return nil, err
	}
	diag.Reportf(report, diag.LevelDebug, "solved dim=%d cost=%d", res.Dim(), res.Cost)

	return problem.Solution{
		File:   path,
		Cost:   res.Cost,
		RowSol: res.RowSol,
		ColSol: res.ColSol,
		U:      res.U,
		V:      res.V,
	}, nil
}
