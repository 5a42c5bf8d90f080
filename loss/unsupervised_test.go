package loss_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/ctgcn/loss"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// randomFixture builds T timestamps of n×d embeddings with ring neighbours
// and a full-range negative pool.
func randomFixture(tb testing.TB, T, n, d int, seed int64) (loss.Embeddings, []loss.NodePairs, [][]int) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, T*n*d)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	emb, err := loss.FromStacked(data, T, n, d)
	require.NoError(tb, err)

	pairs := make([]loss.NodePairs, T)
	pools := make([][]int, T)
	for ts := 0; ts < T; ts++ {
		pairs[ts] = loss.NodePairs{}
		for v := 0; v < n; v++ {
			pairs[ts][v] = []int{(v + 1) % n, (v + n - 1) % n}
			pools[ts] = append(pools[ts], v)
		}
	}

	return emb, pairs, pools
}

// TestUnsupervised_ConnectionHandComputed checks the exact formula on a tiny case.
func TestUnsupervised_ConnectionHandComputed(t *testing.T) {
	E := mat.NewDense(3, 2, []float64{
		1, 0,
		1, 0,
		0, 1,
	})
	emb, err := loss.FromSingle(E)
	require.NoError(t, err)

	u := loss.NewUnsupervised(
		loss.WithNegativeSamples(1),
		loss.WithQ(10),
		loss.WithNodePairs([]loss.NodePairs{{0: {1}}}),
		loss.WithNegativePools([][]int{{2}}),
	)
	got, err := u.Compute(emb, []int{0}, loss.Connection, nil)
	require.NoError(t, err)

	// pos = ⟨e0,e1⟩ = 1, neg = −⟨e0,e2⟩ = 0
	want := math.Log1p(math.Exp(-1)) + 10*math.Ln2
	require.InDelta(t, want, got, 1e-12)
}

// TestUnsupervised_NegativeScoreUsesSum: several negatives are summed before the dot.
func TestUnsupervised_NegativeScoreUsesSum(t *testing.T) {
	E := mat.NewDense(2, 1, []float64{1, -0.5})
	emb, err := loss.FromSingle(E)
	require.NoError(t, err)

	u := loss.NewUnsupervised(
		loss.WithNegativeSamples(4),
		loss.WithQ(1),
		loss.WithNodePairs([]loss.NodePairs{{0: {1}}}),
		loss.WithNegativePools([][]int{{1}}),
	)
	got, err := u.Compute(emb, []int{0}, loss.Connection, nil)
	require.NoError(t, err)

	pos := 1 * -0.5
	neg := -(1 * (4 * -0.5))
	bce := func(x float64) float64 { return math.Log1p(math.Exp(-x)) }
	require.InDelta(t, bce(pos)+bce(neg), got, 1e-12)
}

// TestUnsupervised_ConnectionNonNegative: the loss is a sum of cross-entropies.
func TestUnsupervised_ConnectionNonNegative(t *testing.T) {
	emb, pairs, pools := randomFixture(t, 4, 30, 8, 11)
	u := loss.NewUnsupervised(
		loss.WithNegativeSamples(5),
		loss.WithNodePairs(pairs),
		loss.WithNegativePools(pools),
		loss.WithSeed(5),
	)

	res, err := u.Evaluate(emb, []int{0, 3, 7, 29}, loss.Connection, nil)
	require.NoError(t, err)
	require.Empty(t, res.Skipped)
	require.Len(t, res.PerTimestamp, 4)
	var sum float64
	for _, v := range res.PerTimestamp {
		require.Greater(t, v, 0.0)
		sum += v
	}
	require.InDelta(t, sum, res.Total, 1e-9)
}

// TestUnsupervised_EmptySampleSetsSkip: zero loss exactly when every timestamp is skipped.
func TestUnsupervised_EmptySampleSetsSkip(t *testing.T) {
	emb, _, pools := randomFixture(t, 3, 6, 4, 1)
	empty := []loss.NodePairs{{}, {}, {}}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	u := loss.NewUnsupervised(
		loss.WithNodePairs(empty),
		loss.WithNegativePools(pools),
		loss.WithLogger(logger),
	)
	res, err := u.Evaluate(emb, []int{0, 1}, loss.Connection, nil)
	require.NoError(t, err)
	require.Zero(t, res.Total)
	require.Equal(t, []int{0, 1, 2}, res.Skipped)
	require.Contains(t, buf.String(), "empty sample set")

	// empty pools skip as well
	_, pairs, _ := randomFixture(t, 3, 6, 4, 1)
	u = loss.NewUnsupervised(loss.WithNodePairs(pairs), loss.WithNegativePools([][]int{nil, nil, {1}}))
	res, err = u.Evaluate(emb, []int{0}, loss.Connection, nil)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1}, res.Skipped)
	require.Greater(t, res.Total, 0.0)

	// an empty batch skips everything
	got, err := u.Compute(emb, nil, loss.Connection, nil)
	require.NoError(t, err)
	require.Zero(t, got)
}

// TestUnsupervised_Deterministic: equal seeds give equal losses.
func TestUnsupervised_Deterministic(t *testing.T) {
	emb, pairs, pools := randomFixture(t, 2, 40, 6, 2)
	run := func() float64 {
		u := loss.NewUnsupervised(loss.WithNodePairs(pairs), loss.WithNegativePools(pools), loss.WithSeed(99), loss.WithNegativeSamples(1))
		v, err := u.Compute(emb, []int{1, 2, 3}, loss.Connection, nil)
		require.NoError(t, err)
		return v
	}
	require.Equal(t, run(), run())
}

// countingDevice records kernel calls before delegating to CPU.
type countingDevice struct {
	loss.CPU
	dots, adds int
}

func (c *countingDevice) Dot(a, b []float64) float64 { c.dots++; return c.CPU.Dot(a, b) }
func (c *countingDevice) AddInPlace(dst, src []float64) {
	c.adds++
	c.CPU.AddInPlace(dst, src)
}

func TestUnsupervised_InjectedDevice(t *testing.T) {
	emb, pairs, pools := randomFixture(t, 1, 10, 3, 4)
	dev := &countingDevice{}
	u := loss.NewUnsupervised(
		loss.WithNegativeSamples(3),
		loss.WithNodePairs(pairs),
		loss.WithNegativePools(pools),
		loss.WithDevice(dev),
	)
	_, err := u.Compute(emb, []int{0, 5}, loss.Connection, nil)
	require.NoError(t, err)
	require.Equal(t, 3, dev.adds)     // one per negative
	require.Equal(t, 2*2*2, dev.dots) // (pos + neg) per aligned pair
	require.Equal(t, "cpu", dev.Name())
}

func TestUnsupervised_Structure(t *testing.T) {
	E := []float64{1, 2, 3, 4, 1, 2, 3, 4}
	emb, err := loss.FromStacked(E, 2, 2, 2)
	require.NoError(t, err)
	S, err := loss.FromList([]*mat.Dense{mat.NewDense(2, 2, nil), mat.NewDense(2, 2, nil)})
	require.NoError(t, err)

	u := loss.NewUnsupervised()
	got, err := u.Compute(emb, []int{1}, loss.Structure, &S)
	require.NoError(t, err)
	require.InDelta(t, 25.0, got, 1e-12)

	// single pairs with single
	single, err := loss.FromSingle(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	require.NoError(t, err)
	sS, err := loss.FromSingle(mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	require.NoError(t, err)
	got, err = u.Compute(single, []int{0, 1}, loss.Structure, &sS)
	require.NoError(t, err)
	require.Zero(t, got)
}

func TestUnsupervised_Errors(t *testing.T) {
	emb, pairs, pools := randomFixture(t, 2, 5, 2, 1)

	u := loss.NewUnsupervised()
	_, err := u.Compute(emb, []int{0}, loss.Type("bogus"), nil)
	require.ErrorIs(t, err, loss.ErrUnsupportedLossType)
	_, err = u.Compute(emb, []int{0}, loss.Connection, nil)
	require.ErrorIs(t, err, loss.ErrMissingSamplingData)
	_, err = u.Compute(emb, []int{0}, loss.Structure, nil)
	require.ErrorIs(t, err, loss.ErrMissingStructures)
	_, err = u.Compute(loss.Embeddings{}, []int{0}, loss.Connection, nil)
	require.ErrorIs(t, err, loss.ErrEmptyEmbeddings)

	short := loss.NewUnsupervised(loss.WithNodePairs(pairs[:1]), loss.WithNegativePools(pools))
	_, err = short.Compute(emb, []int{0}, loss.Connection, nil)
	require.ErrorIs(t, err, loss.ErrTimestampMismatch)

	u = loss.NewUnsupervised(loss.WithNodePairs(pairs), loss.WithNegativePools(pools))
	_, err = u.Compute(emb, []int{5}, loss.Connection, nil)
	require.ErrorIs(t, err, loss.ErrNodeOutOfRange)

	bad := loss.NewUnsupervised(loss.WithNodePairs([]loss.NodePairs{{0: {9}}, {}}), loss.WithNegativePools(pools))
	_, err = bad.Compute(emb, []int{0}, loss.Connection, nil)
	require.ErrorIs(t, err, loss.ErrNodeOutOfRange)

	S, err := loss.FromSingle(mat.NewDense(5, 2, nil))
	require.NoError(t, err)
	_, err = u.Compute(emb, []int{0}, loss.Structure, &S)
	require.ErrorIs(t, err, loss.ErrTimestampMismatch)

	S3, err := loss.FromList([]*mat.Dense{mat.NewDense(5, 3, nil), mat.NewDense(5, 3, nil)})
	require.NoError(t, err)
	_, err = u.Compute(emb, []int{0}, loss.Structure, &S3)
	require.ErrorIs(t, err, loss.ErrShapeMismatch)

	S2, err := loss.FromList([]*mat.Dense{mat.NewDense(5, 2, nil), mat.NewDense(5, 2, nil)})
	require.NoError(t, err)
	_, err = u.Compute(emb, nil, loss.Structure, &S2)
	require.ErrorIs(t, err, loss.ErrEmptyBatch)
}

func TestParseType(t *testing.T) {
	lt, err := loss.ParseType(" Connection ")
	require.NoError(t, err)
	require.Equal(t, loss.Connection, lt)
	lt, err = loss.ParseType("structure")
	require.NoError(t, err)
	require.Equal(t, loss.Structure, lt)
	_, err = loss.ParseType("bogus")
	require.ErrorIs(t, err, loss.ErrUnsupportedLossType)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { loss.WithNegativeSamples(0) })
	require.Panics(t, func() { loss.WithQ(-1) })
	require.Panics(t, func() { loss.WithQ(math.NaN()) })
	require.Panics(t, func() { loss.WithRand(nil) })
	require.Panics(t, func() { loss.WithDevice(nil) })
	require.Panics(t, func() { loss.WithLogger(nil) })

	u := loss.NewUnsupervised()
	require.Equal(t, loss.DefaultNegativeSamples, u.NegativeSamples())
	require.Equal(t, loss.DefaultQ, u.Q())
}
