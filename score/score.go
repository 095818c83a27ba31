// SPDX-License-Identifier: MIT

package score

import (
	"fmt"

	"github.com/katalvlaran/graphalign/binning"
	"github.com/katalvlaran/graphalign/diag"
	"github.com/katalvlaran/graphalign/matrix"
	"github.com/katalvlaran/graphalign/permutation"
)

const opComputeM = "score.ComputeM"

// ComputeM builds the len(P)×len(P) score matrix M.
//
// M[i][j] is the evidence for aligning A-node j with B-node i under the
// current mapping P. Cells with i >= B.Rows() or j >= A.Rows() pair a node
// with a dummy and stay 0. Otherwise M[i][j] = link + self-link + node:
//
//	link      = Σ_k LinkScore[aBin[j][k]][bBin[i][P[k]]]
//	            over A-nodes k != j whose counterpart P[k] is a real B-node other than i
//	self-link = SelfLinkScore[aBin[j][j]][bBin[i][i]]
//	node      = NodeScore1[rBin[j][i]]
//	            + Σ NodeScore2[rBin[k][i]] over unmatched A-nodes k != j
//	            + Σ NodeScore2[rBin[j][k]] over unmatched B-nodes k != i
//
// Validation happens before any heavy work; each violation is a distinct
// sentinel (see errors.go) and is also sent to the configured Reporter.
//
// Complexity: O(n² · (A.Rows() + B.Rows())) time with n = len(P);
// O(A.Rows()² + B.Rows()² + A.Rows()·B.Rows()) for the binned intermediates.
func ComputeM(in Input, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts)
	total, _, _, _, err := compute(in, false)
	if err != nil {
		return nil, diag.Fail(o.report, fmt.Errorf("%s: %w", opComputeM, err))
	}

	return total, nil
}

// ComputeComponents is ComputeM returning the three terms separately.
func ComputeComponents(in Input, opts ...Option) (Components, error) {
	o := gatherOptions(opts)
	total, link, self, node, err := compute(in, true)
	if err != nil {
		return Components{}, diag.Fail(o.report, fmt.Errorf("score.ComputeComponents: %w", err))
	}

	return Components{Link: link, SelfLink: self, Node: node, Total: total}, nil
}

// Validate runs the ComputeM precondition checks without computing anything.
func Validate(in Input) error {
	if err := validate(in); err != nil {
		return fmt.Errorf("score.Validate: %w", err)
	}

	return nil
}

// validate checks, in order: nil inputs, square adjacencies, R shape, score
// table sizes, permutation coverage and sign.
func validate(in Input) error {
	named := []struct {
		name string
		m    *matrix.Dense
	}{
		{"A", in.A}, {"B", in.B}, {"R", in.R},
		{"linkScore", in.LinkScore}, {"selfLinkScore", in.SelfLinkScore},
	}
	for _, nm := range named {
		if nm.m == nil {
			return fmt.Errorf("%s: %w", nm.name, matrix.ErrNilMatrix)
		}
	}

	if !in.A.IsSquare() {
		return fmt.Errorf("shape (%d, %d): %w", in.A.Rows(), in.A.Cols(), ErrNonSquareA)
	}
	if !in.B.IsSquare() {
		return fmt.Errorf("shape (%d, %d): %w", in.B.Rows(), in.B.Cols(), ErrNonSquareB)
	}
	nA, nB := in.A.Rows(), in.B.Rows()

	if in.R.Rows() != nA || in.R.Cols() != nB {
		return fmt.Errorf("dimensions (%d, %d), expected (%d, %d): %w",
			in.R.Rows(), in.R.Cols(), nA, nB, ErrNodeSimilarityShape)
	}

	// Single-point lookups still produce bin 0, hence Bins() rather than len-1.
	linkBins, nodeBins := binning.Bins(in.LookupLink), binning.Bins(in.LookupNode)
	if err := matrix.ValidateMinShape(in.LinkScore, linkBins, linkBins); err != nil {
		return fmt.Errorf("length(lookupLink) = %d: %w: %w", len(in.LookupLink), ErrLinkScoreShape, err)
	}
	if err := matrix.ValidateMinShape(in.SelfLinkScore, linkBins, linkBins); err != nil {
		return fmt.Errorf("length(lookupLink) = %d: %w: %w", len(in.LookupLink), ErrSelfLinkScoreShape, err)
	}
	if err := matrix.ValidateVecLen(in.NodeScore1, nodeBins); err != nil {
		return fmt.Errorf("length(lookupNode) = %d: %w: %w", len(in.LookupNode), ErrNodeScore1Length, err)
	}
	if err := matrix.ValidateVecLen(in.NodeScore2, nodeBins); err != nil {
		return fmt.Errorf("length(lookupNode) = %d: %w: %w", len(in.LookupNode), ErrNodeScore2Length, err)
	}

	if len(in.P) < nA || len(in.P) < nB {
		return fmt.Errorf("length(p) = %d, networks have %d and %d nodes: %w",
			len(in.P), nA, nB, ErrPermutationTooShort)
	}
	for k, v := range in.P {
		if v < 0 {
			return fmt.Errorf("p[%d] = %d: %w", k, v, ErrPermutationEntry)
		}
	}

	return nil
}

// compute is the shared kernel. When parts is false only total is allocated.
func compute(in Input, parts bool) (total, link, self, node *matrix.Dense, err error) {
	if err = validate(in); err != nil {
		return nil, nil, nil, nil, err
	}

	// Stage 1: inverse mapping and quantization.
	pInv := permutation.Invert(in.P)
	aBin, err := binning.BinMatrix(in.A, in.LookupLink, in.Clamp)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("binning A: %w", err)
	}
	bBin, err := binning.BinMatrix(in.B, in.LookupLink, in.Clamp)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("binning B: %w", err)
	}
	rBin, err := binning.BinMatrix(in.R, in.LookupNode, in.Clamp)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("binning R: %w", err)
	}

	// Stage 2: allocate outputs (n×n zeros).
	n := len(in.P)
	if total, err = matrix.NewSquare(n); err != nil {
		return nil, nil, nil, nil, err
	}
	if parts {
		link, _ = matrix.NewSquare(n)
		self, _ = matrix.NewSquare(n)
		node, _ = matrix.NewSquare(n)
	}

	// Stage 3: aggregate. Dummy rows/columns stay zero.
	var (
		nA, nB         = in.A.Rows(), in.B.Rows()
		p              = in.P
		s1, s2         = in.NodeScore1, in.NodeScore2
		i, j, k, pk    int
		aj, bi, rj     []int
		linkSum, selfS float64
		nodeSum        float64
	)
	for i = 0; i < n && i < nB; i++ {
		bi = bBin.RawRow(i)
		for j = 0; j < n && j < nA; j++ {
			aj = aBin.RawRow(j)
			rj = rBin.RawRow(j)

			// Link score: A-edges at j whose B-endpoint under p is a real node ≠ i.
			linkSum = 0
			for k = 0; k < nA; k++ {
				pk = p[k]
				if k != j && pk != i && pk < nB {
					linkSum += in.LinkScore.RawRow(aj[k])[bi[pk]]
				}
			}

			// Self-link score: diagonal weights of the candidate pair.
			selfS = in.SelfLinkScore.RawRow(aj[j])[bi[i]]

			// Node score: the pair itself, then nodes left without counterpart.
			nodeSum = s1[rj[i]]
			for k = 0; k < nA; k++ {
				if p[k] >= nB && k != j {
					nodeSum += s2[rBin.RawRow(k)[i]]
				}
			}
			for k = 0; k < nB; k++ {
				if pInv[k] >= nA && k != i {
					nodeSum += s2[rj[k]]
				}
			}

			total.RawRow(i)[j] = linkSum + selfS + nodeSum
			if parts {
				link.RawRow(i)[j] = linkSum
				self.RawRow(i)[j] = selfS
				node.RawRow(i)[j] = nodeSum
			}
		}
	}

	return total, link, self, node, nil
}
