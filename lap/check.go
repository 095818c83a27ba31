// SPDX-License-Identifier: MIT

package lap

import (
	"fmt"

	"github.com/katalvlaran/graphalign/matrix"
)

// Check independently verifies a solution against its cost matrix.
//
// Stages (first violation wins, reported with coordinates):
//  1. shapes: cost square, all four vectors of length dim, indices in range → ErrInvalidSolution;
//  2. dual feasibility: c[i][j] - u[i] - v[j] >= 0 → ErrNegativeReducedCost;
//  3. complementary slackness on the assignment → ErrNonZeroSlack;
//  4. every column used once → ErrColumnReused;
//  5. colsol[rowsol[i]] == i → ErrRowSolution; rowsol[colsol[j]] == j → ErrColSolution;
//  6. res.Cost == Σ c[i][rowsol[i]] → ErrCostMismatch.
//
// Check is pure and never mutates its inputs.
// Complexity: O(dim²).
func Check(cost *matrix.IntDense, res Result) error {
	if err := matrix.ValidateSquare(cost); err != nil {
		return fmt.Errorf("lap.Check: %w", err)
	}
	dim := cost.Rows()
	if len(res.RowSol) != dim || len(res.ColSol) != dim || len(res.U) != dim || len(res.V) != dim {
		return fmt.Errorf("lap.Check: vector lengths (%d, %d, %d, %d), want %d: %w",
			len(res.RowSol), len(res.ColSol), len(res.U), len(res.V), dim, ErrInvalidSolution)
	}
	var i, j int
	for i = 0; i < dim; i++ {
		if res.RowSol[i] < 0 || res.RowSol[i] >= dim {
			return fmt.Errorf("lap.Check: rowsol[%d]=%d: %w", i, res.RowSol[i], ErrInvalidSolution)
		}
		if res.ColSol[i] < 0 || res.ColSol[i] >= dim {
			return fmt.Errorf("lap.Check: colsol[%d]=%d: %w", i, res.ColSol[i], ErrInvalidSolution)
		}
	}

	var row []int
	var redcost int
	for i = 0; i < dim; i++ {
		row = cost.RawRow(i)
		for j = 0; j < dim; j++ {
			if redcost = row[j] - res.U[i] - res.V[j]; redcost < 0 {
				return fmt.Errorf("lap.Check: reduced cost (%d, %d) = %d: %w", i, j, redcost, ErrNegativeReducedCost)
			}
		}
	}

	for i = 0; i < dim; i++ {
		j = res.RowSol[i]
		if redcost = cost.RawRow(i)[j] - res.U[i] - res.V[j]; redcost != 0 {
			return fmt.Errorf("lap.Check: row %d assigned %d has reduced cost %d: %w", i, j, redcost, ErrNonZeroSlack)
		}
	}

	matched := make([]bool, dim)
	for i = 0; i < dim; i++ {
		j = res.RowSol[i]
		if matched[j] {
			return fmt.Errorf("lap.Check: row %d reuses column %d: %w", i, j, ErrColumnReused)
		}
		matched[j] = true
	}

	for i = 0; i < dim; i++ {
		if res.ColSol[res.RowSol[i]] != i {
			return fmt.Errorf("lap.Check: row %d, rowsol %d, colsol[rowsol] %d: %w",
				i, res.RowSol[i], res.ColSol[res.RowSol[i]], ErrRowSolution)
		}
	}
	for j = 0; j < dim; j++ {
		if res.RowSol[res.ColSol[j]] != j {
			return fmt.Errorf("lap.Check: column %d, colsol %d, rowsol[colsol] %d: %w",
				j, res.ColSol[j], res.RowSol[res.ColSol[j]], ErrColSolution)
		}
	}

	total, err := Evaluate(cost, res.RowSol)
	if err != nil {
		return err
	}
	if total != res.Cost {
		return fmt.Errorf("lap.Check: cost %d, assignment sums to %d: %w", res.Cost, total, ErrCostMismatch)
	}

	return nil
}

// Evaluate returns Σ c[i][rowsol[i]] for any row→column mapping.
// Errors: matrix.ErrNonSquare, ErrInvalidSolution (wrong length or index).
func Evaluate(cost *matrix.IntDense, rowsol []int) (int, error) {
	if err := matrix.ValidateSquare(cost); err != nil {
		return 0, fmt.Errorf("lap.Evaluate: %w", err)
	}
	if len(rowsol) != cost.Rows() {
		return 0, fmt.Errorf("lap.Evaluate: %d rows, rowsol length %d: %w", cost.Rows(), len(rowsol), ErrInvalidSolution)
	}
	total := 0
	for i, j := range rowsol {
		if j < 0 || j >= cost.Cols() {
			return 0, fmt.Errorf("lap.Evaluate: rowsol[%d]=%d: %w", i, j, ErrInvalidSolution)
		}
		total += cost.RawRow(i)[j]
	}

	return total, nil
}
