// SPDX-License-Identifier: MIT
// Package: ctgcn/builder
//
// impl_star.go — implementation of Star(k) constructor.
//
// Contract:
//   • k ≥ 2; hub is the first node of the span, leaves follow in order.
//
// Complexity: O(k).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ctgcn/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that connects a hub to k-1 leaves.
func Star(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minStarNodes {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodStar, k, minStarNodes, ErrTooFewVertices)
		}
		if err := cfg.span(methodStar, g, k); err != nil {
			return err
		}

		hub := cfg.offset
		for i := 1; i < k; i++ {
			if err := addEdge(methodStar, g, cfg, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}
