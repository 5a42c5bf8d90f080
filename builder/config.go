// SPDX-License-Identifier: MIT
// Package: ctgcn/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil (pure unless seeded)
//   • weightFn = constant core.DefaultWeight
//   • offset   = 0

package builder

import (
	"math/rand"

	"github.com/katalvlaran/ctgcn/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng      *rand.Rand               // nil means no randomness
	weightFn func(*rand.Rand) float64 // per-edge weight
	offset   int                      // first node touched by a topology
}

// newBuilderConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: func(*rand.Rand) float64 { return core.DefaultWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() float64 { return c.weightFn(c.rng) }

// span validates that k nodes starting at c.offset fit in g.
func (c builderConfig) span(method string, g *core.Graph, k int) error {
	if c.offset+k > g.NodeCount() {
		return wrapf(method, "span", ErrGraphTooSmall, "offset=%d k=%d n=%d", c.offset, k, g.NodeCount())
	}

	return nil
}
