// SPDX-License-Identifier: MIT

// Package lap solves the balanced linear assignment problem.
//
// Given a square integer cost matrix c (dim×dim), Solve finds the bijection
// rowsol: rows → columns minimizing Σ c[i][rowsol[i]], together with dual
// variables u, v certifying optimality:
//
//	c[i][j] - u[i] - v[j] >= 0          for all i, j      (dual feasibility)
//	c[i][rowsol[i]] - u[i] - v[rowsol[i]] == 0  for all i  (complementary slackness)
//
// The algorithm is the shortest augmenting path method of R. Jonker and
// A. Volgenant ("A Shortest Augmenting Path Algorithm for Dense and Sparse
// Linear Assignment Problems", Computing 38, 325-340, 1987), in four stages:
//
//  1. column reduction (last column first),
//  2. reduction transfer from singly matched rows,
//  3. augmenting row reduction, applied twice,
//  4. shortest path augmentation for every row still free.
//
// Complexity: O(dim³) worst case, O(dim) scratch memory in five buffers
// obtained from a scratch.Allocator.
//
// Check recomputes every optimality condition for a given solution and is
// meant as a test oracle.
//
// Usage:
//
//	res, err := lap.SolveRows([][]int{
//	  {1, 2, 3},
//	  {2, 4, 6},
//	  {3, 6, 9},
//	})
//	// res.RowSol == [2 1 0], res.Cost == 10
package lap
