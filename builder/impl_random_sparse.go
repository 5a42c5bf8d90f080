// SPDX-License-Identifier: MIT
// Package: ctgcn/builder
//
// impl_random_sparse.go — Erdős–Rényi G(n, p) over the whole node range.
//
// Determinism:
//   - Trial order is i asc, j asc with j > i; outcomes are fixed for a fixed seed.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ctgcn/core"
)

const (
	methodRandomSparse = "RandomSparse"
	probMin            = 0.0
	probMax            = 1.0
)

// RandomSparse returns a Constructor that adds each pair {i,j} of the graph's
// nodes independently with probability p. The offset option is ignored.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		// RNG is only required for a true Bernoulli trial.
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		n := g.NodeCount()
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if p == probMin {
					continue
				}
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
