// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with call context)
// and tests match them via errors.Is. No function panics on user input.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a shape is negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrNilMatrix indicates that a nil *CSR was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrMalformed is returned by the Matrix Market reader for a bad header,
	// size line or entry.
	ErrMalformed = errors.New("matrix: malformed matrix market data")

	// ErrAsymmetry signals that an adjacency expected to be symmetric is not.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")
)
