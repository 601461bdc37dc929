// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation,
// including element-wise addition, matrix multiplication, matrix-vector
// products, transpose, scalar scaling, LU factorisation and inversion. All
// functions perform strict fail-fast validation and return clear errors on
// dimension mismatches.
//
// Notes:
//   - Inputs that are not *Dense are materialised once via asDense, so every
//     kernel runs a single flat-slice implementation.
//   - Kernels never mutate their operands and always return a fresh *Dense.

package matrix

import (
	"fmt"
	"math/cmplx"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum complex128 = 0

// ZeroPivot is the magnitude that marks a pivot as unusable in LU/Inverse.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opScale      = "Scale"
	opInverse    = "Inverse"
	opInverseRow = "InverseRow"
	opLU         = "LU"
	opMatVec     = "MatVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m itself when it is a *Dense, otherwise a flat copy of it.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    complex128
	)
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out, err := NewDense(ad.r, ad.c)
	if err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	for k := range out.data {
		out.data[k] = ad.data[k] + bd.data[k]
	}

	return out, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
//
// Determinism:
//   - Fixed i→k→j accumulation order.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, k, j int
		aik     complex128
		baseA   int
		baseB   int
		baseO   int
	)
	for i = 0; i < ad.r; i++ {
		baseA = i * ad.c
		baseO = i * out.c
		for k = 0; k < ad.c; k++ {
			aik = ad.data[baseA+k]
			if aik == 0 {
				continue // skip structural zeros (diagonal phase-space matrices)
			}
			baseB = k * bd.c
			for j = 0; j < bd.c; j++ {
				out.data[baseO+j] += aik * bd.data[baseB+j]
			}
		}
	}

	return out, nil
}

// MatVec computes y = M·x for a column vector x of length M.Cols().
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch.
func MatVec(m Matrix, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]complex128, md.r)
	var (
		i, j int
		sum  complex128
	)
	for i = 0; i < md.r; i++ {
		sum = ZeroSum
		for j = 0; j < md.c; j++ {
			sum += md.data[i*md.c+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// No conjugation is applied.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(md.c, md.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < md.r; i++ {
		for j := 0; j < md.c; j++ {
			out.data[j*out.c+i] = md.data[i*md.c+j]
		}
	}

	return out, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
func Scale(m Matrix, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out, err := NewDense(md.r, md.c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for k, v := range md.data {
		out.data[k] = alpha * v
	}

	return out, nil
}

// LU computes the factorization P·A = L·U with partial (row) pivoting.
// L is unit lower triangular, U is upper triangular, and perm records the
// row permutation: row i of P·A is row perm[i] of A.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy it into a work buffer.
//   - Stage 2: For each column k pick the row with the largest |a[i,k]|
//     (first one wins on ties), swap it up, eliminate below.
//   - Stage 3: Split the work buffer into L and U.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrSingular (every candidate pivot is zero).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (L, U *Dense, perm []int, err error) {
	if err = ValidateNotNil(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	if err = ValidateSquare(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}

	n := md.r
	a := make([]complex128, n*n)
	copy(a, md.data)
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p int
		best, mag  float64
		pivot, lik complex128
	)
	for k = 0; k < n; k++ {
		// Stage 2a: pivot search
		p, best = k, cmplx.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if mag = cmplx.Abs(a[i*n+k]); mag > best {
				p, best = i, mag
			}
		}
		if best == ZeroPivot {
			return nil, nil, nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
		}

		// Stage 2b: elimination below the pivot
		pivot = a[k*n+k]
		for i = k + 1; i < n; i++ {
			lik = a[i*n+k] / pivot
			a[i*n+k] = lik
			for j = k + 1; j < n; j++ {
				a[i*n+j] -= lik * a[k*n+j]
			}
		}
	}

	// Stage 3: split
	if L, err = Identity(n); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	if U, err = NewDense(n, n); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = a[i*n+j]
			} else {
				U.data[i*n+j] = a[i*n+j]
			}
		}
	}

	return L, U, perm, nil
}

// Inverse returns the inverse of the square matrix m, or an error if m is not square or singular.
// Blueprint:
//
//	Stage 1 (Validate): ensure m is non-nil and square.
//	Stage 2 (Decompose): P·A = L·U with partial pivoting.
//	Stage 3 (Execute): for each basis vector e_col, solve L·y = P·e_col then U·x = y.
//	Stage 4 (Write): store x as column col of the inverse.
//
// Time Complexity: O(n³); Space Complexity: O(n²).
func Inverse(m Matrix) (*Dense, error) {
	L, U, perm, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := L.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	var (
		col, i, k int
		sum       complex128
		y         = make([]complex128, n) // forward substitution workspace
		x         = make([]complex128, n) // backward substitution workspace
	)
	for col = 0; col < n; col++ {
		// Forward substitution: L*y = P*e_col
		for i = 0; i < n; i++ {
			sum = ZeroSum
			for k = 0; k < i; k++ {
				sum += L.data[i*n+k] * y[k]
			}
			if perm[i] == col {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U*x = y
		for i = n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k < n; k++ {
				sum += U.data[i*n+k] * x[k]
			}
			x[i] = (y[i] - sum) / U.data[i*n+i]
		}
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// InverseRow returns row `row` of m⁻¹.
//
// Errors:
//   - everything Inverse returns, plus ErrOutOfRange for a bad row index.
func InverseRow(m Matrix, row int) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverseRow, err)
	}
	if row < 0 || row >= m.Rows() {
		return nil, matrixErrorf(opInverseRow, fmt.Errorf("row %d: %w", row, ErrOutOfRange))
	}
	inv, err := Inverse(m)
	if err != nil {
		return nil, matrixErrorf(opInverseRow, err)
	}

	return inv.Row(row)
}
