// SPDX-License-Identifier: MIT

// Package matrix provides small dense complex linear algebra for the
// coupled-channel K-matrix engine.
//
// What & Why:
//
//	The K-matrix pipeline builds, per event, a handful of C×C and C×R complex
//	matrices (C, R ≤ a few) and inverts (I + K·ρ). Matrices are tiny and the
//	work is repeated for every event of a dataset, so the package favours a
//	flat row-major buffer, fixed loop orders and zero hidden allocation over
//	generality.
//
// The package provides:
//
//   - Dense: row-major complex128 storage with bounds-checked At/Set.
//   - Identity, Diagonal, NewDenseFrom constructors.
//   - Add, Mul, MatVec, Transpose, Scale kernels with fail-fast validation.
//   - LU with partial pivoting, Inverse and InverseRow.
//   - FromReal / RealEmbedding bridges to gonum's real mat.Dense.
//
// Determinism:
//
//	Every kernel iterates in a fixed order, so the same inputs give bit-identical
//	outputs regardless of which goroutine runs them.
//
// Complexity:
//
//	At/Set O(1); Add/Scale O(r·c); Mul O(r·k·c); LU/Inverse O(n³).
package matrix
