// SPDX-License-Identifier: MIT
// Package: ctgcn/builder
//
// impl_cycle.go — implementation of Cycle(k) constructor.
//
// Contract:
//   • k ≥ 3 (else ErrTooFewVertices).
//   • Emits edges i -> (i+1)%k for i=0..k-1, shifted by the offset.
//
// Complexity: O(k).

package builder

import (
	"fmt"

	"github.com/katalvlaran/ctgcn/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a k-node simple cycle C_k.
func Cycle(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minCycleNodes {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodCycle, k, minCycleNodes, ErrTooFewVertices)
		}
		if err := cfg.span(methodCycle, g, k); err != nil {
			return err
		}

		off := cfg.offset
		for i := 0; i < k; i++ {
			if err := addEdge(methodCycle, g, cfg, off+i, off+(i+1)%k); err != nil {
				return err
			}
		}

		return nil
	}
}
