// Package kcore computes k-core decompositions of core.Graph snapshots.
//
// What
//
//   - CoreNumbers: the core number of every node, i.e. the largest k such that
//     the node belongs to the k-core (maximal subgraph with minimum degree ≥ k).
//   - KCore: the subgraph induced by nodes with core number ≥ k.
//   - Hierarchy: the nested sequence of k-cores for k = 1..max core.
//
// Why
//
//	The k-core hierarchy of a snapshot is the structural input of CTGCN-style
//	models: each level is exported as an n×n adjacency matrix and later
//	reconstructed by the embedding (see package structure and package loss).
//
// Algorithm
//
//	Batagelj–Zaversnik bucket peeling: nodes are kept in an array sorted by
//	current degree with bin boundaries; repeatedly take the node with the
//	smallest remaining degree, fix its core number, and decrement the degree of
//	its higher-degree neighbours by swapping them to the front of their bin.
//
// Invariants
//
//   - Every level has NodeCount() == g.NodeCount(); nodes outside the core are
//     isolated, never renumbered.
//   - For i < j, the edge set of level j is a subset of the edge set of level i.
//   - Isolated nodes have core number 0; a graph without edges has max core 0
//     and an empty hierarchy.
//
// Complexity (V = nodes, E = edges)
//
//   - CoreNumbers: O(V + E) time, O(V + E) memory.
//   - Hierarchy:   O(K·(V + E)) for K = max core.
//
// Errors
//
//   - ErrGraphNil            if the graph pointer is nil.
//   - ErrSelfLoop            if the graph holds a self-loop.
//   - ErrInvalidLevel        if k < 0 is requested.
//   - ErrCoreLengthMismatch  if a supplied core slice does not match NodeCount().
package kcore
