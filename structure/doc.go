// Package structure turns a temporal graph dataset into per-timestamp k-core
// hierarchies on disk.
//
// Dataset layout (all paths relative to Config.BasePath):
//
//	<NodeFile>                  canonical node list, one label per line
//	<OriginFolder>/<ts>.csv     one edge file per timestamp
//	<CoreFolder>/<ts>/<k>.mtx   written here: one adjacency per core level
//
// For every timestamp the Generator loads the snapshot over the full node
// list, computes core numbers, and saves the k-core adjacency for every
// k in 1..max_core. Level labels are zero-padded to the digit width of
// max_core so that lexical and numeric order agree. Every matrix is
// node_num×node_num; nodes outside a core are kept as empty rows.
//
// AllTimestamps runs timestamps sequentially (fail-fast) or on a bounded
// worker pool; in the pool every task's outcome is collected and failures
// are reported together after all tasks finish.
//
// ReadHierarchy and VerifyNesting are the consumer side: they load a
// timestamp's levels back in order and check that level k+1 ⊆ level k.
package structure
