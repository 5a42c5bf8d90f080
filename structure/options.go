// SPDX-License-Identifier: MIT

package structure

import (
	"log/slog"

	"github.com/katalvlaran/ctgcn/graphio"
)

// Option customizes a Generator.
type Option func(*Generator)

// WithLogger sets the progress logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("structure: WithLogger(nil)")
	}
	return func(g *Generator) { g.logger = l }
}

// WithSeparator sets the edge-file field delimiter (default tab).
func WithSeparator(sep string) Option {
	opt := graphio.WithSeparator(sep)
	return func(g *Generator) { g.readOpts = append(g.readOpts, opt) }
}

// WithHeader controls whether edge files start with a header row (default true).
func WithHeader(skip bool) Option {
	opt := graphio.WithHeader(skip)
	return func(g *Generator) { g.readOpts = append(g.readOpts, opt) }
}

// WithCPUCount overrides the CPU limit used to size the worker pool. Panics on nil.
func WithCPUCount(fn func() int) Option {
	if fn == nil {
		panic("structure: WithCPUCount(nil)")
	}
	return func(g *Generator) { g.cpuCount = fn }
}
