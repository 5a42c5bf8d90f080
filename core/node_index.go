// SPDX-License-Identifier: MIT
//
// File: node_index.go
// Role: Canonical node ordering (the dataset's full node list).
// Determinism:
//   - Index i is the position of the label in the list passed to NewNodeIndex.

package core

import (
	"fmt"
	"strings"
)

// NodeIndex maps canonical node labels to dense indices and back.
// It is immutable after construction and safe for concurrent use.
type NodeIndex struct {
	labels []string
	index  map[string]int
}

// NewNodeIndex builds an index over labels, in order.
// Labels are trimmed of surrounding whitespace.
//
// Errors:
//   - ErrEmptyLabel: a label is blank after trimming.
//   - ErrDuplicateLabel: a label appears twice.
//
// Complexity: O(n).
func NewNodeIndex(labels []string) (*NodeIndex, error) {
	ni := &NodeIndex{
		labels: make([]string, len(labels)),
		index:  make(map[string]int, len(labels)),
	}
	for i, raw := range labels {
		l := strings.TrimSpace(raw)
		if l == "" {
			return nil, fmt.Errorf("NewNodeIndex: position %d: %w", i, ErrEmptyLabel)
		}
		if prev, dup := ni.index[l]; dup {
			return nil, fmt.Errorf("NewNodeIndex: %q at %d and %d: %w", l, prev, i, ErrDuplicateLabel)
		}
		ni.labels[i] = l
		ni.index[l] = i
	}

	return ni, nil
}

// Len returns the number of canonical nodes.
func (ni *NodeIndex) Len() int { return len(ni.labels) }

// Index returns the canonical index of label.
func (ni *NodeIndex) Index(label string) (int, bool) {
	i, ok := ni.index[strings.TrimSpace(label)]

	return i, ok
}

// Label returns the label at index i.
func (ni *NodeIndex) Label(i int) (string, error) {
	if i < 0 || i >= len(ni.labels) {
		return "", fmt.Errorf("Label(%d): %w", i, ErrNodeOutOfRange)
	}

	return ni.labels[i], nil
}

// Labels returns a copy of the canonical ordering.
func (ni *NodeIndex) Labels() []string {
	out := make([]string, len(ni.labels))
	copy(out, ni.labels)

	return out
}

// NewGraph allocates an empty Graph sized to the index.
func (ni *NodeIndex) NewGraph(opts ...GraphOption) (*Graph, error) {
	return NewGraph(len(ni.labels), opts...)
}
