// SPDX-License-Identifier: MIT

// Package align drives a network alignment end to end:
//
//	P --score.ComputeM--> M --CostFromScore--> cost --lap.Solve--> ColSol = P'
//
// In the score matrix, row i is a B-node and column j an A-node, so the LAP
// column solution maps every A-node j onto the B-node ColSol[j]: it is the
// next permutation directly.
//
// Align runs a single round. Iterate repeats rounds, feeding each new
// permutation back into the builder, until the permutation no longer changes
// or the round limit is hit. Every round is a full solve.
//
// Scores are real and the solver is integral, so costs are obtained by
// scaling and rounding (WithScale, default 1000). By default the pipeline
// maximizes the total score; WithMinimize treats M as a cost instead.
package align
