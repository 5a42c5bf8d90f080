package loss_test

import (
	"testing"

	"github.com/katalvlaran/ctgcn/loss"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestEmbeddings_Variants(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	b := mat.NewDense(2, 2, []float64{5, 6, 7, 8})

	list, err := loss.FromList([]*mat.Dense{a, b})
	require.NoError(t, err)
	require.Equal(t, loss.PerTimestamp, list.Kind())
	require.Equal(t, 2, list.Len())
	require.Same(t, b, list.At(1))

	data := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	st, err := loss.FromStacked(data, 2, 2, 2)
	require.NoError(t, err)
	require.Equal(t, loss.Stacked, st.Kind())
	require.Equal(t, 2, st.Len())
	require.Equal(t, 7.0, st.At(1).At(1, 0))
	data[4] = 50 // views share the buffer
	require.Equal(t, 50.0, st.At(1).At(0, 0))

	single, err := loss.FromSingle(a)
	require.NoError(t, err)
	require.Equal(t, loss.Single, single.Kind())
	require.Equal(t, 1, single.Len())
	require.Same(t, a, single.At(0))

	require.Equal(t, "stacked", loss.Stacked.String())
	require.Equal(t, "Kind(9)", loss.Kind(9).String())
}

func TestEmbeddings_Errors(t *testing.T) {
	_, err := loss.FromList(nil)
	require.ErrorIs(t, err, loss.ErrEmptyEmbeddings)
	_, err = loss.FromList([]*mat.Dense{nil})
	require.ErrorIs(t, err, loss.ErrEmptyEmbeddings)
	_, err = loss.FromSingle(nil)
	require.ErrorIs(t, err, loss.ErrEmptyEmbeddings)
	_, err = loss.FromStacked(make([]float64, 7), 2, 2, 2)
	require.ErrorIs(t, err, loss.ErrShapeMismatch)
	_, err = loss.FromStacked(nil, 0, 2, 2)
	require.ErrorIs(t, err, loss.ErrShapeMismatch)
}
