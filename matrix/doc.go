// SPDX-License-Identifier: MIT

// Package matrix offers the dense numeric containers consumed by the
// alignment engines.
//
// The matrix package provides:
//
//   - Dense: row-major float64 storage for adjacency, similarity and score
//     matrices, with bounds-checked At/Set and a finite-only numeric policy.
//   - IntDense: row-major int storage for bin indices and LAP cost matrices.
//   - Validators (ValidateSquare, ValidateShape, ValidateMinShape, ...) shared
//     by binning, score and lap so every package reports shape violations the
//     same way.
//   - ToIntDense / ToDense conversions and gonum/mat interop.
//
// Zero-sized shapes are legal everywhere. All errors are sentinels from
// errors.go wrapped with call-site context; match them with errors.Is.
package matrix
