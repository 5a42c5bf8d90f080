// SPDX-License-Identifier: MIT
// Package: ctgcn/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with `%w`.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was run without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrGraphTooSmall indicates a topology does not fit into the graph's node range.
var ErrGraphTooSmall = errors.New("builder: topology exceeds graph node count")

// ErrConstructFailed indicates a nil constructor or a failed core mutation.
var ErrConstructFailed = errors.New("builder: construction failed")
