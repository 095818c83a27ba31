// SPDX-License-Identifier: MIT

package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/graphalign/diag"
	"github.com/katalvlaran/graphalign/internal/problem"
	"github.com/katalvlaran/graphalign/score"
)

func newEncodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode FILE...",
		Short: "Encode directed 0/1 adjacency matrices as symmetric ±1 matrices",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFiles(cmd.Context(), args, encode)
		},
	}
}

func encode(_ context.Context, path string, report diag.Reporter) (any, error) {
	m, p, err := problem.LoadEncode(path)
	if err != nil {
		return nil, err
	}
	out, err := score.EncodeDirected(m, p, score.WithReporter(report))
	if err != nil {
		return nil, err
	}

	return problem.Encoded{File: path, Matrix: out.ToRows()}, nil
}
