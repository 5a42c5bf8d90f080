// SPDX-License-Identifier: MIT
// Package: ctgcn/builder
//
// impl_wheel.go — implementation of Wheel(k) constructor.
//
// Contract:
//   • k ≥ 4 because the rim C_{k-1} needs at least 3 nodes.
//   • Hub is the first node of the span; the rim occupies the next k-1 nodes.
//
// Complexity: O(k).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ctgcn/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_k = C_{k-1} + hub.
func Wheel(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minWheelNodes {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodWheel, k, minWheelNodes, ErrTooFewVertices)
		}
		if err := cfg.span(methodWheel, g, k); err != nil {
			return err
		}

		hub := cfg.offset
		rim := cfg
		rim.offset = hub + 1
		if err := Cycle(k-1)(g, rim); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", methodWheel, k-1, err)
		}
		for i := 1; i < k; i++ {
			if err := addEdge(methodWheel, g, cfg, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}
