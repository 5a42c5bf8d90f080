// SPDX-License-Identifier: MIT

package graphio

import "errors"

var (
	// ErrUnknownNode is returned when an edge references a label outside the node list.
	ErrUnknownNode = errors.New("graphio: edge references unknown node")

	// ErrMalformedLine is returned when an edge row has fewer than two fields
	// or a weight that does not parse as a finite float.
	ErrMalformedLine = errors.New("graphio: malformed edge line")

	// ErrNilIndex is returned when a nil *core.NodeIndex is supplied.
	ErrNilIndex = errors.New("graphio: node index is nil")

	// ErrNilGraph is returned when a nil *core.Graph is supplied.
	ErrNilGraph = errors.New("graphio: graph is nil")
)
