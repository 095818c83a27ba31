// SPDX-License-Identifier: MIT

package score

import (
	"github.com/katalvlaran/graphalign/binning"
	"github.com/katalvlaran/graphalign/diag"
	"github.com/katalvlaran/graphalign/matrix"
)

// Input bundles the arguments of ComputeM. All fields are read-only to the
// builder; the same Input may be shared by concurrent calls.
type Input struct {
	// A and B are the square weighted adjacency matrices of the two networks.
	A, B *matrix.Dense

	// R is the node similarity matrix, shape (A.Rows(), B.Rows()).
	R *matrix.Dense

	// P maps A-nodes to B-nodes; P[k] >= B.Rows() means "no counterpart".
	// len(P) is the size of the resulting score matrix and must cover both networks.
	P []int

	// LinkScore and SelfLinkScore are indexed [A-bin][B-bin] of link weights.
	LinkScore, SelfLinkScore *matrix.Dense

	// NodeScore1 scores the similarity of a candidate pair, NodeScore2 the
	// similarity against nodes left without counterpart. Indexed by node bin.
	NodeScore1, NodeScore2 []float64

	// LookupLink bins adjacency weights, LookupNode bins similarities.
	LookupLink, LookupNode []float64

	// Clamp applies to both lookups.
	Clamp binning.ClampMode
}

// Components is the per-term breakdown of the score matrix.
// Total[i][j] == Link[i][j] + SelfLink[i][j] + Node[i][j].
type Components struct {
	Link, SelfLink, Node, Total *matrix.Dense
}

// Option configures ComputeM / ComputeComponents / EncodeDirected.
type Option func(*options)

type options struct {
	report diag.Reporter
}

// WithReporter sets the diagnostic sink for validation failures.
func WithReporter(r diag.Reporter) Option {
	return func(o *options) { o.report = diag.OrDiscard(r) }
}

func gatherOptions(opts []Option) options {
	o := options{report: diag.Discard}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
