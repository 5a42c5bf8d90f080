package kcore

import (
	"errors"

	"github.com/katalvlaran/ctgcn/core"
)

// Sentinel errors for k-core decomposition.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("kcore: graph is nil")

	// ErrSelfLoop is returned when the graph contains a self-loop.
	ErrSelfLoop = errors.New("kcore: self-loops are not permitted")

	// ErrInvalidLevel is returned for a negative core level.
	ErrInvalidLevel = errors.New("kcore: invalid core level")

	// ErrCoreLengthMismatch is returned when precomputed core numbers do not
	// cover exactly the graph's nodes.
	ErrCoreLengthMismatch = errors.New("kcore: core numbers do not match node count")
)

// Decomposition holds the k-core hierarchy of one snapshot.
//   - Cores:   core number per node (len == NodeCount()).
//   - MaxCore: max(Cores), 0 for an edgeless graph.
//   - Levels:  Levels[i-1] is the i-core for i = 1..MaxCore.
type Decomposition struct {
	Cores   []int
	MaxCore int
	Levels  []*core.Graph
}

// Level returns the k-core for 1 ≤ k ≤ MaxCore.
func (d *Decomposition) Level(k int) (*core.Graph, error) {
	if k < 1 || k > d.MaxCore {
		return nil, ErrInvalidLevel
	}

	return d.Levels[k-1], nil
}
