// SPDX-License-Identifier: MIT

package lap

import (
	"fmt"

	"github.com/katalvlaran/graphalign/diag"
	"github.com/katalvlaran/graphalign/matrix"
	"github.com/katalvlaran/graphalign/scratch"
)

// unassigned marks a column without a row in colsol.
const unassigned = -1

// Solve computes a minimum-cost assignment for the square cost matrix.
//
// Contract:
//   - cost must be non-nil and square; every |c[i][j]| < BIG.
//   - dim == 0 yields empty vectors and zero cost.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrCostOutOfRange (validation),
//   - scratch.ErrAllocationFailure (allocator could not supply a buffer),
//   - any Check sentinel when WithVerify(true) is set.
//
// Validation failures are also sent to the configured diag.Reporter.
//
// Complexity: O(dim³) time, O(dim) scratch space.
func Solve(cost *matrix.IntDense, opts ...Option) (Result, error) {
	o := gatherOptions(opts)

	// Stage 0: validate before touching any buffer.
	if err := validateCost(cost); err != nil {
		return Result{}, diag.Fail(o.report, fmt.Errorf("lap.Solve: %w", err))
	}
	dim := cost.Rows()

	res := Result{
		RowSol: make([]int, dim),
		ColSol: make([]int, dim),
		U:      make([]int, dim),
		V:      make([]int, dim),
	}
	if dim == 0 {
		return res, nil
	}

	// Scratch buffers: free rows, column list, match counts, distances, predecessors.
	bufs, release, err := scratch.Take(o.alloc, dim, dim, dim, dim, dim)
	if err != nil {
		return Result{}, diag.Fail(o.report, fmt.Errorf("lap.Solve(dim=%d): %w", dim, err))
	}
	defer release()

	s := &solver{
		dim:     dim,
		c:       make([][]int, dim),
		rowsol:  res.RowSol,
		colsol:  res.ColSol,
		v:       res.V,
		free:    bufs[0],
		collist: bufs[1],
		matches: bufs[2],
		d:       bufs[3],
		pred:    bufs[4],
	}
	for i := 0; i < dim; i++ {
		s.c[i] = cost.RawRow(i) // row views; no copy
	}

	s.columnReduction()
	numFree := s.reductionTransfer()
	for pass := 0; pass < 2; pass++ {
		numFree = s.augmentingRowReduction(numFree)
	}
	for f := 0; f < numFree; f++ {
		s.augment(s.free[f])
	}

	// Finalization: row duals from complementary slackness, total cost.
	for i := 0; i < dim; i++ {
		j := res.RowSol[i]
		res.U[i] = s.c[i][j] - res.V[j]
		res.Cost += s.c[i][j]
	}

	if o.verify {
		if err = Check(cost, res); err != nil {
			return Result{}, diag.Fail(o.report, fmt.Errorf("lap.Solve: verify: %w", err))
		}
	}

	return res, nil
}

// SolveRows is Solve over a row-of-rows literal.
func SolveRows(rows [][]int, opts ...Option) (Result, error) {
	cost, err := matrix.NewIntDenseFrom(rows)
	if err != nil {
		return Result{}, fmt.Errorf("lap.SolveRows: %w", err)
	}

	return Solve(cost, opts...)
}

// validateCost enforces the square shape and the (-BIG, BIG) cost range.
func validateCost(cost *matrix.IntDense) error {
	if err := matrix.ValidateSquare(cost); err != nil {
		return err
	}
	var i, j int
	var row []int
	for i = 0; i < cost.Rows(); i++ {
		row = cost.RawRow(i)
		for j = 0; j < len(row); j++ {
			if row[j] >= BIG || row[j] <= -BIG {
				return fmt.Errorf("cost (%d, %d) = %d: %w", i, j, row[j], ErrCostOutOfRange)
			}
		}
	}

	return nil
}

// solver carries the state shared by the four stages of one Solve call.
type solver struct {
	dim int
	c   [][]int // cost rows (views into the caller's matrix)

	rowsol []int // column assigned to each row
	colsol []int // row assigned to each column, or unassigned
	v      []int // column duals

	free    []int // list of unassigned rows
	collist []int // columns to be scanned in various ways
	matches []int // how many times a row was picked in column reduction
	d       []int // shortest path distances from the current free row
	pred    []int // row predecessor of each column on the alternating path
}

// columnReduction sets v[j] to the column minimum, assigning each minimum row
// to the first (highest-index) column that picks it.
// Processing columns last to first is the published ordering and tends to
// leave fewer free rows for the later stages.
func (s *solver) columnReduction() {
	var i, j, imin, min int
	for j = s.dim - 1; j >= 0; j-- {
		min, imin = s.c[0][j], 0
		for i = 1; i < s.dim; i++ {
			if s.c[i][j] < min {
				min, imin = s.c[i][j], i
			}
		}
		s.v[j] = min

		s.matches[imin]++
		if s.matches[imin] == 1 {
			// First time this row is a column minimum: provisional assignment.
			s.rowsol[imin] = j
			s.colsol[j] = imin
		} else {
			s.colsol[j] = unassigned
		}
	}
}

// reductionTransfer collects never-picked rows into the free list and, for
// rows picked exactly once, lowers v on their column by the smallest reduced
// cost over the other columns. Returns the number of free rows.
func (s *solver) reductionTransfer() int {
	numFree := 0
	var i, j, j1, h, min int
	var seen bool
	for i = 0; i < s.dim; i++ {
		switch s.matches[i] {
		case 0:
			s.free[numFree] = i
			numFree++
		case 1:
			j1 = s.rowsol[i]
			seen = false
			for j = 0; j < s.dim; j++ {
				if j == j1 {
					continue
				}
				h = s.c[i][j] - s.v[j]
				if !seen || h < min {
					min, seen = h, true
				}
			}
			if seen { // dim == 1 has no other column to transfer from
				s.v[j1] -= min
			}
		}
	}

	return numFree
}

// augmentingRowReduction makes one pass over the first numFree rows of the
// free list. Each free row takes its cheapest column; when that column's
// minimum is strictly below the second minimum the column price is lowered
// and the displaced row is processed next in the same pass, otherwise the
// displaced row is kept for the next pass/stage. Returns the new free count.
func (s *solver) augmentingRowReduction(numFree int) int {
	var (
		k, prvNumFree     int
		i, i0, j, j1, j2  int
		h, umin, usubmin  int
		haveSub, strictly bool
	)
	prvNumFree, numFree = numFree, 0
	for k < prvNumFree {
		i = s.free[k]
		k++

		// Minimum and second minimum reduced cost over the columns.
		umin, j1 = s.c[i][0]-s.v[0], 0
		j2, usubmin, haveSub = 0, 0, false
		for j = 1; j < s.dim; j++ {
			h = s.c[i][j] - s.v[j]
			if !haveSub || h < usubmin {
				if h >= umin {
					usubmin, j2 = h, j
				} else {
					usubmin, umin = umin, h
					j2, j1 = j1, j
				}
				haveSub = true
			}
		}

		i0 = s.colsol[j1]
		strictly = !haveSub || umin < usubmin
		if strictly {
			// Raise the row's minimum reduced cost to the second minimum.
			if haveSub {
				s.v[j1] -= usubmin - umin
			}
		} else if i0 >= 0 {
			// Tie on an assigned column: j2 may be free, take it instead.
			j1 = j2
			i0 = s.colsol[j2]
		}

		// (Re-)assign i to j1, possibly displacing i0.
		s.rowsol[i] = j1
		s.colsol[j1] = i

		if i0 >= 0 {
			if strictly {
				// Continue the augmenting path i - j1 with i0 right away.
				k--
				s.free[k] = i0
			} else {
				// No further reduction possible; keep i0 for later.
				s.free[numFree] = i0
				numFree++
			}
		}
	}

	return numFree
}

// augment finds a shortest alternating path from freeRow to an unassigned
// column (Dijkstra over reduced costs), updates column prices and flips the
// assignments along the path.
//
// collist is partitioned as [0, low) ready | [low, up) scanning at the current
// minimum | [up, dim) still to be considered.
func (s *solver) augment(freeRow int) {
	var (
		j, j1, i, k     int
		low, up, last   int
		min, h, v2      int
		endOfPath       int
		unassignedFound bool
	)
	for j = 0; j < s.dim; j++ {
		s.d[j] = s.c[freeRow][j] - s.v[j]
		s.pred[j] = freeRow
		s.collist[j] = j
	}

	for !unassignedFound {
		if up == low {
			// No columns left at the current minimum: find the next minimum
			// among [up, dim) and move every column achieving it to [low, up).
			last = low - 1
			min = s.d[s.collist[up]]
			up++
			for k = up; k < s.dim; k++ {
				j = s.collist[k]
				h = s.d[j]
				if h <= min {
					if h < min {
						up = low // new minimum: restart the scan list
						min = h
					}
					s.collist[k] = s.collist[up]
					s.collist[up] = j
					up++
				}
			}
			// Any unassigned column at the minimum ends the path immediately.
			for k = low; k < up; k++ {
				if s.colsol[s.collist[k]] < 0 {
					endOfPath = s.collist[k]
					unassignedFound = true
					break
				}
			}
		}

		if !unassignedFound {
			// Settle the next scanning column and relax through its row.
			j1 = s.collist[low]
			low++
			i = s.colsol[j1]
			h = s.c[i][j1] - s.v[j1] - min

			for k = up; k < s.dim; k++ {
				j = s.collist[k]
				v2 = s.c[i][j] - s.v[j] - h
				if v2 < s.d[j] {
					s.pred[j] = i
					if v2 == min {
						if s.colsol[j] < 0 {
							endOfPath = j
							unassignedFound = true
							break
						}
						// Same minimum: scan it in this round.
						s.collist[k] = s.collist[up]
						s.collist[up] = j
						up++
					}
					s.d[j] = v2
				}
			}
		}
	}

	// Price update for the ready columns.
	for k = 0; k <= last; k++ {
		j1 = s.collist[k]
		s.v[j1] += s.d[j1] - min
	}

	// Flip assignments along the alternating path back to freeRow.
	for {
		i = s.pred[endOfPath]
		s.colsol[endOfPath] = i
		j1 = endOfPath
		endOfPath = s.rowsol[i]
		s.rowsol[i] = j1
		if i == freeRow {
			break
		}
	}
}
