// SPDX-License-Identifier: MIT
//
// options.go - functional options shared by Unsupervised and Supervised.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//   - Sampling options only affect Unsupervised.

package loss

import (
	"log/slog"
	"math"
	"math/rand"
)

// Defaults.
const (
	DefaultNegativeSamples = 20
	DefaultQ               = 10.0
)

// Option customizes an engine.
type Option func(*engineConfig)

type engineConfig struct {
	negNum int
	q      float64
	pairs  []NodePairs
	pools  [][]int
	rng    *rand.Rand
	dev    Device
	logger *slog.Logger
}

func newEngineConfig(opts ...Option) engineConfig {
	cfg := engineConfig{
		negNum: DefaultNegativeSamples,
		q:      DefaultQ,
		dev:    CPU{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(0)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}

// WithNegativeSamples sets how many negatives are drawn per timestamp, which
// is also the cap on positives per node. Panics on n ≤ 0.
func WithNegativeSamples(n int) Option {
	if n <= 0 {
		panic("loss: WithNegativeSamples(n<=0)")
	}
	return func(c *engineConfig) { c.negNum = n }
}

// WithQ sets the weight of the negative term. Panics on negative or non-finite q.
func WithQ(q float64) Option {
	if q < 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		panic("loss: WithQ(q<0 or non-finite)")
	}
	return func(c *engineConfig) { c.q = q }
}

// WithNodePairs supplies the positive neighbour mapping of every timestamp.
func WithNodePairs(pairs []NodePairs) Option {
	return func(c *engineConfig) { c.pairs = pairs }
}

// WithNegativePools supplies the negative sampling pool of every timestamp.
func WithNegativePools(pools [][]int) Option {
	return func(c *engineConfig) { c.pools = pools }
}

// WithRand sets the sampling RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("loss: WithRand(nil)")
	}
	return func(c *engineConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG (seed 0 maps to a fixed default).
func WithSeed(seed int64) Option {
	return func(c *engineConfig) { c.rng = rngFromSeed(seed) }
}

// WithDevice sets the kernel device. Panics on nil.
func WithDevice(d Device) Option {
	if d == nil {
		panic("loss: WithDevice(nil)")
	}
	return func(c *engineConfig) { c.dev = d }
}

// WithLogger sets the logger used for skipped-timestamp diagnostics. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("loss: WithLogger(nil)")
	}
	return func(c *engineConfig) { c.logger = l }
}
