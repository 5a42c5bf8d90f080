package kcore

import (
	"fmt"

	"github.com/katalvlaran/ctgcn/core"
)

// CoreNumbers returns the core number of every node of g.
//
// Implementation:
//   - Stage 1: snapshot neighbour lists and degrees; reject self-loops.
//   - Stage 2: bucket-sort nodes by degree (bin, pos, vert arrays).
//   - Stage 3: peel in vert order; for each neighbour with a larger current
//     degree, swap it to the start of its bin and decrement its degree.
//
// Determinism:
//   - Core numbers are unique by definition; the peel order is fixed by the
//     sorted neighbour lists but does not affect the result.
//
// Complexity: O(V + E).
func CoreNumbers(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.NodeCount()
	nbrs := make([][]int, n)
	deg := make([]int, n)
	maxDeg := 0

	var (
		u, v int
		err  error
	)
	for u = 0; u < n; u++ {
		if nbrs[u], err = g.Neighbors(u); err != nil {
			return nil, fmt.Errorf("CoreNumbers: %w", err)
		}
		for _, v = range nbrs[u] {
			if v == u {
				return nil, fmt.Errorf("CoreNumbers: node %d: %w", u, ErrSelfLoop)
			}
		}
		deg[u] = len(nbrs[u])
		if deg[u] > maxDeg {
			maxDeg = deg[u]
		}
	}

	// bin[d] = start offset of degree-d nodes inside vert.
	bin := make([]int, maxDeg+1)
	for u = 0; u < n; u++ {
		bin[deg[u]]++
	}
	start := 0
	for d := 0; d <= maxDeg; d++ {
		num := bin[d]
		bin[d] = start
		start += num
	}

	pos := make([]int, n)
	vert := make([]int, n)
	for u = 0; u < n; u++ {
		pos[u] = bin[deg[u]]
		vert[pos[u]] = u
		bin[deg[u]]++
	}
	// restore bin starts
	for d := maxDeg; d >= 1; d-- {
		bin[d] = bin[d-1]
	}
	bin[0] = 0

	var du, pu, pw, w int
	for i := 0; i < n; i++ {
		v = vert[i]
		for _, u = range nbrs[v] {
			if deg[u] <= deg[v] {
				continue
			}
			du = deg[u]
			pu = pos[u]
			pw = bin[du]
			w = vert[pw]
			if u != w {
				pos[u], pos[w] = pw, pu
				vert[pu], vert[pw] = w, u
			}
			bin[du]++
			deg[u]--
		}
	}

	return deg, nil
}

// MaxCore returns the largest core number, 0 for an empty slice.
func MaxCore(cores []int) int {
	m := 0
	for _, c := range cores {
		if c > m {
			m = c
		}
	}

	return m
}

// KCore returns the k-core of g: the subgraph induced by nodes whose core
// number is at least k. cores may be nil, in which case it is computed.
// The result keeps all g.NodeCount() nodes; nodes outside the core are isolated.
//
// Complexity: O(V + E) (plus CoreNumbers when cores == nil).
func KCore(g *core.Graph, k int, cores []int) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if k < 0 {
		return nil, fmt.Errorf("KCore(k=%d): %w", k, ErrInvalidLevel)
	}
	if cores == nil {
		var err error
		if cores, err = CoreNumbers(g); err != nil {
			return nil, err
		}
	}
	if len(cores) != g.NodeCount() {
		return nil, fmt.Errorf("KCore: len(cores)=%d, n=%d: %w", len(cores), g.NodeCount(), ErrCoreLengthMismatch)
	}

	return g.Induced(func(u int) bool { return cores[u] >= k }), nil
}

// Hierarchy computes core numbers once and materializes every level 1..MaxCore.
//
// Complexity: O(K·(V + E)).
func Hierarchy(g *core.Graph) (*Decomposition, error) {
	cores, err := CoreNumbers(g)
	if err != nil {
		return nil, err
	}

	d := &Decomposition{Cores: cores, MaxCore: MaxCore(cores)}
	d.Levels = make([]*core.Graph, 0, d.MaxCore)
	for k := 1; k <= d.MaxCore; k++ {
		level, err := KCore(g, k, cores)
		if err != nil {
			return nil, err
		}
		d.Levels = append(d.Levels, level)
	}

	return d, nil
}
