// SPDX-License-Identifier: MIT
// Package: ctgcn/builder
//
// api.go - thin public entry-points for the builder package.

package builder

import (
	"fmt"

	"github.com/katalvlaran/ctgcn/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors must not panic and must only touch nodes
// inside the range they validated.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a core.Graph with n nodes, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately.
//
// Complexity: O(n) plus the cost of each constructor.
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if err = Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs constructors against an existing graph (e.g. one allocated from
// a core.NodeIndex) using a single resolved configuration.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// wrapf attaches method and step context to a sentinel.
func wrapf(method, step string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s(%s): %w", method, step, fmt.Sprintf(format, args...), err)
}

// addEdge adds {u,v} with the next configured weight, wrapping failures.
func addEdge(method string, g *core.Graph, cfg builderConfig, u, v int) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return wrapf(method, "AddEdge", err, "%d-%d, w=%g", u, v, w)
	}

	return nil
}
