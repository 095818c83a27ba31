// SPDX-License-Identifier: MIT

package score

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphalign/matrix"
)

// Each shape sentinel wraps the matching matrix sentinel, so callers may test
// for either the precise cause (ErrLinkScoreShape) or the family
// (matrix.ErrDimensionMismatch).
var (
	// ErrNonSquareA: adjacency matrix of network A is not square.
	ErrNonSquareA = fmt.Errorf("score: adjacency A: %w", matrix.ErrNonSquare)

	// ErrNonSquareB: adjacency matrix of network B is not square.
	ErrNonSquareB = fmt.Errorf("score: adjacency B: %w", matrix.ErrNonSquare)

	// ErrNodeSimilarityShape: R is not (A.rows × B.rows).
	ErrNodeSimilarityShape = fmt.Errorf("score: node similarity R: %w", matrix.ErrDimensionMismatch)

	// ErrLinkScoreShape: link score table smaller than the number of link bins.
	ErrLinkScoreShape = fmt.Errorf("score: link score table: %w", matrix.ErrDimensionMismatch)

	// ErrSelfLinkScoreShape: self-link score table smaller than the number of link bins.
	ErrSelfLinkScoreShape = fmt.Errorf("score: self-link score table: %w", matrix.ErrDimensionMismatch)

	// ErrNodeScore1Length: node score vector s1 shorter than the number of node bins.
	ErrNodeScore1Length = fmt.Errorf("score: node score s1: %w", matrix.ErrDimensionMismatch)

	// ErrNodeScore2Length: node score vector s2 shorter than the number of node bins.
	ErrNodeScore2Length = fmt.Errorf("score: node score s2: %w", matrix.ErrDimensionMismatch)

	// ErrPermutationTooShort: the permutation does not cover every node of A and B.
	ErrPermutationTooShort = errors.New("score: permutation vector too short")

	// ErrPermutationEntry: the permutation holds a negative entry.
	ErrPermutationEntry = errors.New("score: negative permutation entry")
)
