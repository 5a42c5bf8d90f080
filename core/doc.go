// Package core provides the snapshot graph used by every other ctgcn package:
// an undirected, weighted, index-based Graph over a fixed node count, plus a
// NodeIndex that pins the canonical node ordering of a dataset.
//
// Why a fixed node count?
//
//	A temporal dataset is a sequence of snapshots that all share one canonical
//	node list (the "full node list"). Embedding rows, negative pools, structure
//	matrices and k-core adjacency matrices are all indexed by that ordering, so
//	every snapshot Graph is allocated with exactly NodeCount() == len(nodes),
//	even when some nodes are isolated in a given snapshot.
//
// Graph G = (V, E):
//
//   - V = {0, …, n-1}; n is fixed at construction (NewGraph).
//   - E is a set of undirected edges {u, v} with a float64 weight (default 1).
//   - Parallel edges collapse: adding {u, v} twice keeps one edge, last weight wins.
//   - Self-loops are rejected unless WithLoops() is given (k-core peeling
//     and the adjacency exporters assume a loop-free graph).
//
// Core Methods:
//
//	AddEdge(u, v int, w float64) error   // O(1)
//	HasEdge(u, v int) bool               // O(1)
//	Weight(u, v int) (float64, bool)     // O(1)
//	Neighbors(u int) ([]int, error)      // O(d·log d), sorted
//	Degree(u int) (int, error)           // O(1)
//	Edges() []Edge                       // O(E·log E), sorted by (U, V), U < V
//	Induced(keep func(int) bool) *Graph  // O(V + E), same node count
//	Clone() *Graph                       // O(V + E)
//	Stats() GraphStats                   // O(1)
//
// Concurrency:
//
//	A single sync.RWMutex guards adjacency; queries take the read lock,
//	mutations the write lock. Induced and Clone snapshot under the read lock.
//
// Errors:
//
//	ErrBadNodeCount   – NewGraph with n < 0
//	ErrNodeOutOfRange – node index outside [0, n)
//	ErrLoopNotAllowed – self-loop on a loop-free graph
//	ErrBadWeight      – NaN or ±Inf weight
//	ErrEmptyLabel     – blank label in NewNodeIndex
//	ErrDuplicateLabel – repeated label in NewNodeIndex
package core
