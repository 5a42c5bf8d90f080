package loss_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ctgcn/loss"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func confident() *mat.Dense {
	return mat.NewDense(2, 2, []float64{
		0, 10,
		10, 0,
	})
}

// TestSupervised_AccuracySummed: a perfect match over T timestamps yields T.
func TestSupervised_AccuracySummed(t *testing.T) {
	out, err := loss.FromList([]*mat.Dense{confident(), confident(), confident()})
	require.NoError(t, err)

	s := loss.NewSupervised()
	l, acc, err := s.Compute(out, []int{0, 1}, []int{1, 0}, loss.Connection, nil, nil)
	require.NoError(t, err)
	require.InDelta(t, 3.0, acc, 1e-12)
	require.InDelta(t, 3*math.Log1p(math.Exp(-10)), l, 1e-12)

	// half right on a single timestamp
	single, err := loss.FromSingle(confident())
	require.NoError(t, err)
	_, acc, err = s.Compute(single, []int{0, 1}, []int{1, 1}, loss.Connection, nil, nil)
	require.NoError(t, err)
	require.InDelta(t, 0.5, acc, 1e-12)
}

// TestSupervised_StructureAddsMSE: the structure term is added per timestamp.
func TestSupervised_StructureAddsMSE(t *testing.T) {
	out, err := loss.FromList([]*mat.Dense{confident(), confident()})
	require.NoError(t, err)
	embs, err := loss.FromStacked([]float64{1, 1, 0, 0, 1, 1, 0, 0}, 2, 2, 2)
	require.NoError(t, err)
	structs, err := loss.FromList([]*mat.Dense{mat.NewDense(2, 2, nil), mat.NewDense(2, 2, nil)})
	require.NoError(t, err)

	s := loss.NewSupervised()
	base, _, err := s.Compute(out, []int{0, 1}, []int{1, 0}, loss.Connection, nil, nil)
	require.NoError(t, err)

	res, err := s.Evaluate(out, []int{0, 1}, []int{1, 0}, loss.Structure, &structs, &embs)
	require.NoError(t, err)
	require.Len(t, res.PerTimestamp, 2)
	for _, st := range res.PerTimestamp {
		require.InDelta(t, 0.5, st.MSE, 1e-12)
		require.InDelta(t, 1.0, st.Accuracy, 1e-12)
	}
	require.InDelta(t, base+1.0, res.Loss, 1e-12)
	require.InDelta(t, 2.0, res.Accuracy, 1e-12)
}

func TestSupervised_Errors(t *testing.T) {
	out, err := loss.FromSingle(confident())
	require.NoError(t, err)
	s := loss.NewSupervised()

	_, _, err = s.Compute(out, []int{0}, []int{0}, loss.Type("bogus"), nil, nil)
	require.ErrorIs(t, err, loss.ErrUnsupportedLossType)
	_, _, err = s.Compute(out, nil, nil, loss.Connection, nil, nil)
	require.ErrorIs(t, err, loss.ErrEmptyBatch)
	_, _, err = s.Compute(out, []int{0, 1}, []int{0}, loss.Connection, nil, nil)
	require.ErrorIs(t, err, loss.ErrLabelMismatch)
	_, _, err = s.Compute(out, []int{0}, []int{2}, loss.Connection, nil, nil)
	require.ErrorIs(t, err, loss.ErrLabelOutOfRange)
	_, _, err = s.Compute(out, []int{4}, []int{0}, loss.Connection, nil, nil)
	require.ErrorIs(t, err, loss.ErrNodeOutOfRange)
	_, _, err = s.Compute(out, []int{0}, []int{0}, loss.Structure, nil, nil)
	require.ErrorIs(t, err, loss.ErrMissingStructures)

	two, err := loss.FromList([]*mat.Dense{confident(), confident()})
	require.NoError(t, err)
	_, _, err = s.Compute(out, []int{0}, []int{0}, loss.Structure, &two, &out)
	require.ErrorIs(t, err, loss.ErrTimestampMismatch)
	_, _, err = s.Compute(loss.Embeddings{}, []int{0}, []int{0}, loss.Connection, nil, nil)
	require.ErrorIs(t, err, loss.ErrEmptyEmbeddings)
}
