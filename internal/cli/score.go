// SPDX-License-Identifier: MIT

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphalign/diag"
	"github.com/katalvlaran/graphalign/internal/problem"
	"github.com/katalvlaran/graphalign/score"
)

type scoreInput struct {
	components bool
}

func newScoreCommand(a *app) *cobra.Command {
	si := &scoreInput{}
	cmd := &cobra.Command{
		Use:   "score FILE...",
		Short: "Compute the alignment score matrix of each problem file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFiles(cmd.Context(), args, si.score)
		},
	}
	cmd.Flags().BoolVar(&si.components, "components", false, "also print the link, self-link and node terms")

	return cmd
}

func (si *scoreInput) score(_ context.Context, path string, report diag.Reporter) (any, error) {
	in, err := problem.LoadProblem(path)
	if err != nil {
		return nil, err
	}
	if !si.components {
		m, err := score.ComputeM(in, score.WithReporter(report))
		if err != nil {
			return nil, err
		}

		return problem.ScoreMatrix{File: path, M: m.ToRows()}, nil
	}

	c, err := score.ComputeComponents(in, score.WithReporter(report))
	if err != nil {
		return nil, err
	}

	return problem.ScoreMatrix{
		File:     path,
		M:        c.Total.ToRows(),
		Link:     c.Link.ToRows(),
		SelfLink: c.SelfLink.ToRows(),
		Node:     c.Node.ToRows(),
	}, nil
}
