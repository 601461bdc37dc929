// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/kmatrix/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_ShapeMismatch(t *testing.T) {
	t.Parallel()

	_, err := matrix.Add(MustDense(t, 2, 2), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Add(nil, MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.Add(typedNil, MustDense(t, 2, 2))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAdd_Values(t *testing.T) {
	t.Parallel()

	a := NewFilledDense(t, 2, 2, []complex128{1, 2i, 3, 4})
	b := NewFilledDense(t, 2, 2, []complex128{1i, 1, -3, 0})
	c, err := matrix.Add(a, hide{b})
	require.NoError(t, err)
	assert.Equal(t, complex(1, 1), MustAt(t, c, 0, 0))
	assert.Equal(t, complex(1, 2), MustAt(t, c, 0, 1))
	assert.Equal(t, complex128(0), MustAt(t, c, 1, 0))
	assert.Equal(t, complex128(4), MustAt(t, c, 1, 1))
}

func TestMul_Values(t *testing.T) {
	t.Parallel()

	// [[1, i], [0, 2]] · [[2], [i]] = [[2 - 1], [2i]]
	a := NewFilledDense(t, 2, 2, []complex128{1, 1i, 0, 2})
	b := NewFilledDense(t, 2, 1, []complex128{2, 1i})
	c, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rows())
	require.Equal(t, 1, c.Cols())
	assert.Equal(t, complex128(1), MustAt(t, c, 0, 0))
	assert.Equal(t, 2i, MustAt(t, c, 1, 0))

	_, err = matrix.Mul(a, MustDense(t, 3, 1))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 2, []complex128{1, 2, 3, 4i})
	y, err := matrix.MatVec(m, []complex128{1, 1i})
	require.NoError(t, err)
	assert.Equal(t, []complex128{complex(1, 2), complex(-1, 0)}, y)

	_, err = matrix.MatVec(m, []complex128{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTransposeScale(t *testing.T) {
	t.Parallel()

	m := NewFilledDense(t, 2, 3, []complex128{1, 2, 3, 4, 5, 6i})
	tr, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	require.Equal(t, 3, tr.Rows())
	assert.Equal(t, 6i, MustAt(t, tr, 2, 1)) // no conjugation

	s, err := matrix.Scale(m, 1i)
	require.NoError(t, err)
	assert.Equal(t, complex128(-6), MustAt(t, s, 1, 2))
}

func TestLU_Errors(t *testing.T) {
	t.Parallel()

	_, _, _, err := matrix.LU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, _, err = matrix.LU(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, _, _, err = matrix.LU(MustDense(t, 3, 3))
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// A zero leading entry is fine with pivoting; Doolittle without pivoting would fail here.
func TestLU_PivotsZeroLeadingEntry(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []complex128{0, 1, 1i, 2})
	L, U, perm, err := matrix.LU(A)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, perm)

	LU, err := matrix.Mul(L, U)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			assert.Equal(t, MustAt(t, A, perm[i], j), MustAt(t, LU, i, j))
		}
	}
}

func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Inverse(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Inverse(MustDense(t, 3, 4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// two equal rows
	sing := NewFilledDense(t, 3, 3, []complex128{1, 2i, 3, 1, 2i, 3, 0, 1, 4})
	_, err = matrix.Inverse(sing)
	require.ErrorIs(t, err, matrix.ErrSingular)
}

// 2×2 closed form: inv([[a,b],[c,d]]) = [[d,-b],[-c,a]] / (ad - bc).
func TestInverse_Known2x2(t *testing.T) {
	t.Parallel()

	a, b, c, d := complex(1, 1), complex(2, 0), complex(0, -1), complex(3, 2)
	A := NewFilledDense(t, 2, 2, []complex128{a, b, c, d})
	inv, err := matrix.Inverse(A)
	require.NoError(t, err)

	det := a*d - b*c
	want := []complex128{d / det, -b / det, -c / det, a / det}
	for k, w := range want {
		got := MustAt(t, inv, k/2, k%2)
		assert.LessOrEqualf(t, cmplx.Abs(got-w), 1e-14, "entry %d: got %v want %v", k, got, w)
	}
}

func TestInverse_IdentityProduct(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 5, 8} {
		A := RandFilledDense(t, n, n, int64(100+n))
		inv, err := matrix.Inverse(A)
		require.NoError(t, err)

		AI, err := matrix.Mul(A, inv)
		require.NoError(t, err)
		RequireIdentity(t, AI, 1e-10)

		IA, err := matrix.Mul(inv, hide{A})
		require.NoError(t, err)
		RequireIdentity(t, IA, 1e-10)
	}
}

func TestInverseRow(t *testing.T) {
	t.Parallel()

	A := RandFilledDense(t, 4, 4, 7)
	inv, err := matrix.Inverse(A)
	require.NoError(t, err)

	for r := 0; r < 4; r++ {
		row, err := matrix.InverseRow(A, r)
		require.NoError(t, err)
		want, err := inv.Row(r)
		require.NoError(t, err)
		require.Equal(t, want, row)
	}

	_, err = matrix.InverseRow(A, 4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.InverseRow(A, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
