// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and induced subgraphs.
// Determinism:
//   - Both operations keep NodeCount() unchanged, so node indices remain canonical.
// Concurrency:
//   - Read lock on the source for the whole snapshot; the result is unshared.

package core

// Clone returns a deep copy of the Graph (flags, node count, edges, weights).
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.Induced(func(int) bool { return true })
}

// Induced returns the subgraph induced by the nodes for which keep reports true.
//
// Implementation:
//   - Stage 1: evaluate keep once per node into a mask.
//   - Stage 2: copy every edge whose endpoints are both kept.
//
// Behavior highlights:
//   - The result has the same NodeCount() as g; dropped nodes become isolated
//     rather than renumbered, so adjacency exports stay n×n.
//   - keep == nil keeps every node.
//
// Complexity: O(V + E).
func (g *Graph) Induced(keep func(int) bool) *Graph {
	mask := make([]bool, g.n)
	for u := 0; u < g.n; u++ {
		mask[u] = keep == nil || keep(u)
	}

	out := &Graph{
		n:          g.n,
		allowLoops: g.allowLoops,
		adj:        make([]map[int]float64, g.n),
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	var u, v int
	var w float64
	for u = 0; u < g.n; u++ {
		if !mask[u] || len(g.adj[u]) == 0 {
			continue
		}
		for v, w = range g.adj[u] {
			if !mask[v] {
				continue
			}
			if out.adj[u] == nil {
				out.adj[u] = make(map[int]float64, len(g.adj[u]))
			}
			out.adj[u][v] = w
			if u <= v {
				out.edgeCount++
			}
		}
	}

	return out
}
