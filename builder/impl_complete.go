// SPDX-License-Identifier: MIT
// Package: ctgcn/builder
//
// impl_complete.go — implementation of Complete(k) constructor.
//
// Contract:
//   • k ≥ 1; K_1 adds no edges.
//   • Emits {i,j} for i<j in lexicographic order.
//
// Complexity: O(k²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ctgcn/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_k.
func Complete(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minCompleteNodes {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodComplete, k, minCompleteNodes, ErrTooFewVertices)
		}
		if err := cfg.span(methodComplete, g, k); err != nil {
			return err
		}

		off := cfg.offset
		var i, j int
		for i = 0; i < k; i++ {
			for j = i + 1; j < k; j++ {
				if err := addEdge(methodComplete, g, cfg, off+i, off+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
