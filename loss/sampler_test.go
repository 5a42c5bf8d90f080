package loss_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/ctgcn/loss"
	"github.com/stretchr/testify/require"
)

// TestSamplePositives_AllWhenFew: every neighbour is kept when there are at most n.
func TestSamplePositives_AllWhenFew(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, nb := range [][]int{nil, {4}, {3, 1, 2}, {9, 8, 7, 6, 5}} {
		got := loss.SamplePositives(rng, nb, 5)
		require.Len(t, got, len(nb))
		if len(nb) > 0 {
			require.Equal(t, nb, got)
		}
	}

	// the result does not alias the input
	nb := []int{1, 2}
	got := loss.SamplePositives(rng, nb, 5)
	got[0] = 99
	require.Equal(t, 1, nb[0])
}

// TestSamplePositives_CappedDistinct: exactly n distinct members when there are more.
func TestSamplePositives_CappedDistinct(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	nb := make([]int, 50)
	for i := range nb {
		nb[i] = i * 3
	}
	member := make(map[int]bool, len(nb))
	for _, v := range nb {
		member[v] = true
	}

	for trial := 0; trial < 100; trial++ {
		got := loss.SamplePositives(rng, nb, 20)
		require.Len(t, got, 20)
		seen := make(map[int]bool, 20)
		for _, v := range got {
			require.True(t, member[v])
			require.False(t, seen[v], "duplicate %d", v)
			seen[v] = true
		}
	}
	// input untouched
	require.True(t, sort.IntsAreSorted(nb))
}

// TestSampleNegatives_WithReplacement: exactly n draws, repeats allowed.
func TestSampleNegatives_WithReplacement(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	pool := []int{10, 11}

	got := loss.SampleNegatives(rng, pool, 20)
	require.Len(t, got, 20)
	counts := map[int]int{}
	for _, v := range got {
		require.Contains(t, pool, v)
		counts[v]++
	}
	repeated := false
	for _, c := range counts {
		if c > 1 {
			repeated = true
		}
	}
	require.True(t, repeated)

	// a pool smaller than n still yields n draws
	require.Len(t, loss.SampleNegatives(rng, []int{5}, 3), 3)
	require.Nil(t, loss.SampleNegatives(rng, nil, 3))
}
