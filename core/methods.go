// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Edge lifecycle and queries: AddEdge/RemoveEdge/HasEdge/Weight/Neighbors/Degree/Edges.
// Determinism:
//   - Neighbors() is sorted ascending; Edges() is sorted by (U, V) with U <= V.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"math"
	"sort"
)

// NodeCount returns the fixed number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return g.n }

// AllowsLoops reports the construction-time loop policy. Complexity: O(1).
func (g *Graph) AllowsLoops() bool { return g.allowLoops }

// EdgeCount returns the number of undirected edges. Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// AddEdge inserts the undirected edge {u, v} with weight w.
//
// Steps:
//  1. Validate indices, weight and loop policy.
//  2. Lock, lazily allocate neighbour buckets, store both mirror entries.
//  3. Count the edge only when it was not present before (parallel edges collapse).
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w float64) error {
	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrBadWeight
	}
	if u == v && !g.allowLoops {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.adj[u] == nil {
		g.adj[u] = make(map[int]float64)
	}
	if g.adj[v] == nil {
		g.adj[v] = make(map[int]float64)
	}
	if _, exists := g.adj[u][v]; !exists {
		g.edgeCount++
	}
	g.adj[u][v] = w
	g.adj[v][u] = w // mirror; a no-op rewrite for loops

	return nil
}

// RemoveEdge deletes {u, v}. Missing edges are a no-op.
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adj[u][v]; !exists {
		return nil
	}
	delete(g.adj[u], v)
	delete(g.adj[v], u)
	g.edgeCount--

	return nil
}

// HasEdge reports whether {u, v} exists. Out-of-range indices report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	_, ok := g.Weight(u, v)

	return ok
}

// Weight returns the weight of {u, v} and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Weight(u, v int) (float64, bool) {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return 0, false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.adj[u][v]

	return w, ok
}

// Neighbors returns the neighbours of u sorted ascending.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(u int) ([]int, error) {
	if err := g.checkNode(u); err != nil {
		return nil, err
	}

	g.mu.RLock()
	out := make([]int, 0, len(g.adj[u]))
	for v := range g.adj[u] {
		out = append(out, v)
	}
	g.mu.RUnlock()
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of distinct neighbours of u (a loop counts once).
// Complexity: O(1).
func (g *Graph) Degree(u int) (int, error) {
	if err := g.checkNode(u); err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[u]), nil
}

// Edges returns every undirected edge exactly once, sorted by (U, V), U <= V.
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u := 0; u < g.n; u++ {
		for v, w := range g.adj[u] {
			if u <= v {
				out = append(out, Edge{U: u, V: v, Weight: w})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// Stats produces a read-only snapshot of sizes and flags.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		NodeCount:   g.n,
		EdgeCount:   g.edgeCount,
		AllowsLoops: g.allowLoops,
	}
	for u := 0; u < g.n; u++ {
		d := len(g.adj[u])
		if d == 0 {
			s.IsolatedCount++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}

	return s
}
