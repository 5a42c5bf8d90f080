// Package graphio reads and writes the on-disk shapes of a temporal graph
// dataset: the canonical node list, one edge-list file per timestamp, and
// the zero-padded labels used to name per-level outputs.
//
// Edge files are delimiter-separated (tab by default) with an optional
// header row and an optional third weight column:
//
//	from_id	to_id	weight
//	a	b	1
//	b	c	2.5
//
// Every graph is built over the full canonical node list (core.NodeIndex),
// so nodes that never appear in a snapshot are present and isolated.
// Self-loops are dropped on load.
package graphio
