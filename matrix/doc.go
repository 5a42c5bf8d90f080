// Package matrix provides the sparse adjacency representation used to persist
// k-core levels: a compressed-sparse-row (CSR) matrix, a converter from
// core.Graph, and Matrix Market coordinate serialization.
//
// The package provides:
//
//   - CSR: immutable row-compressed storage with O(log nnz_row) At lookups.
//   - FromGraph: symmetric node×node adjacency whose entries are edge weights.
//   - WriteMatrixMarket / ReadMatrixMarket and SaveFile / LoadFile for the
//     "%%MatrixMarket matrix coordinate real general" text format.
//   - Dense: a gonum *mat.Dense view for numeric consumers.
//
// Every adjacency has the graph's full node count as its dimension, so all
// levels of one snapshot share a shape even when most nodes are isolated.
package matrix
