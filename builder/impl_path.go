// SPDX-License-Identifier: MIT
// Package: ctgcn/builder
//
// impl_path.go - implementation of Path(k) constructor.
//
// Contract:
//   - k ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (off+i-1, off+i) for i=1..k-1 in increasing order.
//
// Complexity: O(k).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ctgcn/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_k.
func Path(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minPathNodes {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodPath, k, minPathNodes, ErrTooFewVertices)
		}
		if err := cfg.span(methodPath, g, k); err != nil {
			return err
		}

		for i := 1; i < k; i++ {
			if err := addEdge(methodPath, g, cfg, cfg.offset+i-1, cfg.offset+i); err != nil {
				return err
			}
		}

		return nil
	}
}
