// SPDX-License-Identifier: MIT

// Package score builds the score matrix of a network alignment.
//
// Given two weighted networks A and B, a node similarity matrix R and a
// current mapping P of A-nodes onto B-nodes, ComputeM sums, for every
// candidate pair (B-node i, A-node j), three kinds of evidence looked up in
// user-supplied tables after binning the continuous weights:
//
//   - link score: agreement of the edges around j with the edges around i,
//     following P for the other endpoint;
//   - self-link score: agreement of the two diagonal (self-loop) weights;
//   - node score: similarity of the pair, plus the similarity of the pair's
//     members to nodes that P leaves without a counterpart.
//
// Networks of different sizes are aligned by padding P with values >= the size
// of B ("no counterpart"); the score matrix is always len(P)×len(P) so that it
// can be handed straight to the lap solver.
//
// EncodeDirected prepares directed networks for the same model by encoding
// edge direction as ±1 weights.
//
// Usage:
//
//	m, err := score.ComputeM(score.Input{
//	  A: a, B: b, R: r, P: p,
//	  LinkScore: ls, SelfLinkScore: sls,
//	  NodeScore1: s1, NodeScore2: s2,
//	  LookupLink: []float64{-0.5, 0.5, 1.5}, LookupNode: []float64{0, 0.5, 1},
//	  Clamp: binning.ClampEnabled,
//	})
package score
