// Package ctgcn is the structural toolkit behind temporal graph
// convolution embeddings: k-core hierarchies per snapshot and the loss
// functions that train embeddings against them.
//
// What is inside?
//
//	core/      — index-based, thread-safe undirected Graph and canonical NodeIndex
//	builder/   — deterministic topology generators (path, cycle, wheel, random…)
//	graphio/   — node lists, per-timestamp edge files, zero-padded level labels
//	kcore/     — Batagelj–Zaversnik core numbers and nested k-core levels
//	matrix/    — CSR adjacency with Matrix Market I/O and gonum views
//	structure/ — per-timestamp hierarchy generation on a bounded worker pool
//	loss/      — unsupervised (negative sampling, reconstruction) and
//	             supervised (NLL + accuracy) objectives over embeddings
//	config/    — YAML run configuration
//	cmd/ctgcn  — the synth / kcore / inspect command line
//
// Quick ASCII example: a 4-clique with a tail
//
//	A───B
//	│ ╳ │
//	C───D───E───F
//
// has core numbers A..D = 3 and E, F = 1, so the hierarchy holds three
// levels: level 1 is the whole graph, levels 2 and 3 are the clique, and
// every level is written as a 6×6 adjacency.
//
//	go run ./cmd/ctgcn synth --base data/toy && go run ./cmd/ctgcn kcore --base data/toy
package ctgcn
