package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ctgcn/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewCSR_Validation(t *testing.T) {
	_, err := matrix.NewCSR(-1, 2, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	_, err = matrix.NewCSR(2, 2, []matrix.Triplet{{Row: 2, Col: 0, Value: 1}})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewCSR(2, 2, []matrix.Triplet{{Row: 0, Col: 1, Value: math.Inf(-1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	m, err := matrix.NewCSR(0, 0, nil)
	require.NoError(t, err)
	require.Equal(t, 0, m.NNZ())
	require.Nil(t, m.Dense())
}

// TestNewCSR_SortSumDropZeros: duplicates are summed, zeros dropped, order normalized.
func TestNewCSR_SortSumDropZeros(t *testing.T) {
	m, err := matrix.NewCSR(3, 4, []matrix.Triplet{
		{Row: 2, Col: 3, Value: 5},
		{Row: 0, Col: 2, Value: 1},
		{Row: 0, Col: 1, Value: 2},
		{Row: 0, Col: 2, Value: 1.5},
		{Row: 1, Col: 0, Value: 0},
	})
	require.NoError(t, err)

	r, c := m.Shape()
	require.Equal(t, 3, r)
	require.Equal(t, 4, c)
	require.Equal(t, 3, m.NNZ())
	require.Equal(t, []matrix.Triplet{
		{Row: 0, Col: 1, Value: 2},
		{Row: 0, Col: 2, Value: 2.5},
		{Row: 2, Col: 3, Value: 5},
	}, m.Triplets())

	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)
	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Zero(t, v)
	_, err = m.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	nnz, err := m.RowNNZ(0)
	require.NoError(t, err)
	require.Equal(t, 2, nnz)
	nnz, err = m.RowNNZ(1)
	require.NoError(t, err)
	require.Zero(t, nnz)
	_, err = m.RowNNZ(-1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	d := m.Dense()
	require.Equal(t, 2.5, d.At(0, 2))
	require.Equal(t, 5.0, d.At(2, 3))
	require.Zero(t, d.At(1, 1))
}

func TestEqualAndSubset(t *testing.T) {
	a, err := matrix.NewCSR(2, 2, []matrix.Triplet{{Row: 0, Col: 1, Value: 1}})
	require.NoError(t, err)
	b, err := matrix.NewCSR(2, 2, []matrix.Triplet{{Row: 0, Col: 1, Value: 1}, {Row: 1, Col: 0, Value: 1}})
	require.NoError(t, err)

	require.True(t, matrix.Equal(a, a))
	require.False(t, matrix.Equal(a, b))
	require.True(t, matrix.Equal(nil, nil))
	require.False(t, matrix.Equal(a, nil))

	ok, err := a.IsSubsetOf(b)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = b.IsSubsetOf(a)
	require.NoError(t, err)
	require.False(t, ok)

	c, err := matrix.NewCSR(3, 3, nil)
	require.NoError(t, err)
	_, err = a.IsSubsetOf(c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = a.IsSubsetOf(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValidateSymmetric(t *testing.T) {
	a, err := matrix.NewCSR(2, 2, []matrix.Triplet{{Row: 0, Col: 1, Value: 1}})
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(a), matrix.ErrAsymmetry)

	r, err := matrix.NewCSR(2, 3, nil)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSymmetric(r), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil), matrix.ErrNilMatrix)
}
