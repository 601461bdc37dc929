// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures for kernels.
//   • Keep all data finite and well-formed.

package matrix_test

import (
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/katalvlaran/kmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the asDense materialisation path in code under test.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// NewFilledDense builds an r×c Dense from row-major data.
func NewFilledDense(t *testing.T, r, c int, data []complex128) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// RandFilledDense fills an r×c Dense with deterministic pseudo-random
// complex entries in [-1,1)×[-1,1).
func RandFilledDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]complex128, r*c)
	for k := range data {
		data[k] = complex(2*rng.Float64()-1, 2*rng.Float64()-1)
	}

	return NewFilledDense(t, r, c, data)
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireIdentity asserts that m is the n×n identity within tol.
func RequireIdentity(t *testing.T, m matrix.Matrix, tol float64) {
	t.Helper()
	n := m.Rows()
	require.Equal(t, n, m.Cols())
	var want complex128
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			got := MustAt(t, m, i, j)
			require.LessOrEqualf(t, cmplx.Abs(got-want), tol, "(%d,%d): got %v want %v", i, j, got, want)
		}
	}
}
