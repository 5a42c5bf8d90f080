// SPDX-License-Identifier: MIT
//
// File: sampler.go
// Role: positive/negative sampling and the engine RNG policy.
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; engines serialize access to it.

package loss

import "math/rand"

// defaultSeed is used when no RNG is configured, keeping runs reproducible.
const defaultSeed int64 = 1

func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// SamplePositives returns the positive neighbours used for one node.
//   - len(neighbours) ≤ n: a copy of all of them, in order.
//   - otherwise: exactly n distinct entries drawn uniformly without
//     replacement (partial Fisher–Yates on a copy).
//
// Complexity: O(len(neighbours)).
func SamplePositives(rng *rand.Rand, neighbours []int, n int) []int {
	if len(neighbours) <= n {
		out := make([]int, len(neighbours))
		copy(out, neighbours)
		return out
	}
	buf := make([]int, len(neighbours))
	copy(buf, neighbours)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(buf)-i)
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf[:n]
}

// SampleNegatives draws exactly n entries uniformly WITH replacement from
// pool. An empty pool yields nil.
//
// Complexity: O(n).
func SampleNegatives(rng *rand.Rand, pool []int, n int) []int {
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = pool[rng.Intn(len(pool))]
	}

	return out
}
