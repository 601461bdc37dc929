// SPDX-License-Identifier: MIT

// Package matrix: bridges between the complex Dense and gonum's real matrices.
// Real coupling tables are authored as gonum mat.Dense; the complex pipeline
// lifts them with FromReal. RealEmbedding maps A = X + iY onto the real block
// matrix [[X, -Y], [Y, X]], which lets gonum's pivoted real solvers check
// complex results independently.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const opFromReal = "FromReal"

// FromReal lifts a real gonum matrix into a complex Dense (imaginary parts zero).
func FromReal(m mat.Matrix) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opFromReal, ErrNilMatrix)
	}
	r, c := m.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromReal, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = complex(m.At(i, j), 0)
		}
	}

	return out, nil
}

// RealEmbedding returns the 2r×2c real matrix [[Re, -Im], [Im, Re]] of m.
// Products and inverses commute with the embedding, so the inverse of the
// embedding is the embedding of the inverse.
func RealEmbedding(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	md, err := asDense(m)
	if err != nil {
		return nil, err
	}
	r, c := md.r, md.c
	out := mat.NewDense(2*r, 2*c, nil)
	var v complex128
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = md.data[i*c+j]
			out.Set(i, j, real(v))
			out.Set(i, j+c, -imag(v))
			out.Set(i+r, j, imag(v))
			out.Set(i+r, j+c, real(v))
		}
	}

	return out, nil
}
