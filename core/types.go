// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards adj and edgeCount; flags and n are immutable after NewGraph.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadNodeCount indicates a negative node count passed to NewGraph.
	ErrBadNodeCount = errors.New("core: node count must be >= 0")

	// ErrNodeOutOfRange indicates an operation referenced an index outside [0, n).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: edge weight must be finite")

	// ErrEmptyLabel indicates a blank node label in a canonical node list.
	ErrEmptyLabel = errors.New("core: node label is empty")

	// ErrDuplicateLabel indicates a node label listed more than once.
	ErrDuplicateLabel = errors.New("core: duplicate node label")
)

// DefaultWeight is the weight used by loaders when an edge row carries none.
const DefaultWeight = 1.0

// Edge is an undirected edge {U, V} reported with U < V (U == V for loops).
type Edge struct {
	U, V   int
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (u == v).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// GraphStats is a read-only snapshot of a Graph's size and flags.
type GraphStats struct {
	NodeCount     int
	EdgeCount     int
	IsolatedCount int
	MaxDegree     int
	AllowsLoops   bool
}

// Graph is an undirected weighted graph over the nodes 0..n-1.
//
// adj[u][v] holds the weight of {u,v}; undirected edges are mirrored so
// adj[v][u] is always present alongside adj[u][v].
type Graph struct {
	mu sync.RWMutex // guards adj and edgeCount

	n          int  // fixed node count
	allowLoops bool // allow u == v

	adj       []map[int]float64 // node → neighbour → weight
	edgeCount int               // number of undirected edges
}

// NewGraph creates an empty Graph with n nodes and no edges.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrBadNodeCount)
	}
	g := &Graph{
		n:   n,
		adj: make([]map[int]float64, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// checkNode validates a node index against the fixed node count.
func (g *Graph) checkNode(u int) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("node %d not in [0,%d): %w", u, g.n, ErrNodeOutOfRange)
	}

	return nil
}
