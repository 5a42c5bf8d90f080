// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/ctgcn/core"

// FromGraph returns the symmetric n×n adjacency of g, n = g.NodeCount().
// Entry (u,v) = (v,u) = edge weight; isolated nodes yield empty rows.
//
// Complexity: O(V + E log E).
func FromGraph(g *core.Graph) (*CSR, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	edges := g.Edges()
	ts := make([]Triplet, 0, 2*len(edges))
	for _, e := range edges {
		ts = append(ts, Triplet{Row: e.U, Col: e.V, Value: e.Weight})
		if e.U != e.V {
			ts = append(ts, Triplet{Row: e.V, Col: e.U, Value: e.Weight})
		}
	}
	n := g.NodeCount()

	return NewCSR(n, n, ts)
}

// EdgeCount returns the number of undirected edges stored in a symmetric
// adjacency: off-diagonal entries counted once plus diagonal entries.
func EdgeCount(m *CSR) int {
	c := 0
	for _, t := range m.Triplets() {
		if t.Row <= t.Col {
			c++
		}
	}

	return c
}
