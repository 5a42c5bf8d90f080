// SPDX-License-Identifier: MIT
//
// File: embeddings.go
// Role: one tagged representation for per-timestamp matrices.
// Determinism:
//   - At(t) for Single returns the same matrix for every t; Len() == 1.

package loss

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Kind tags how an Embeddings value was supplied.
type Kind int

const (
	// PerTimestamp is a list of independent N×D matrices.
	PerTimestamp Kind = iota
	// Stacked is a contiguous T×N×D buffer viewed as T matrices.
	Stacked
	// Single is one N×D matrix standing for a single timestamp.
	Single
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case PerTimestamp:
		return "per-timestamp"
	case Stacked:
		return "stacked"
	case Single:
		return "single"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Embeddings is a read-only sequence of per-timestamp matrices.
// The zero value has no timestamps.
type Embeddings struct {
	kind Kind
	mats []*mat.Dense
}

// FromList wraps one matrix per timestamp. Matrices are not copied.
func FromList(ms []*mat.Dense) (Embeddings, error) {
	if len(ms) == 0 {
		return Embeddings{}, fmt.Errorf("FromList: %w", ErrEmptyEmbeddings)
	}
	for i, m := range ms {
		if m == nil {
			return Embeddings{}, fmt.Errorf("FromList: timestamp %d is nil: %w", i, ErrEmptyEmbeddings)
		}
	}
	out := make([]*mat.Dense, len(ms))
	copy(out, ms)

	return Embeddings{kind: PerTimestamp, mats: out}, nil
}

// FromStacked views data as t row-major matrices of n×d, sharing the buffer.
func FromStacked(data []float64, t, n, d int) (Embeddings, error) {
	if t <= 0 || n <= 0 || d <= 0 {
		return Embeddings{}, fmt.Errorf("FromStacked(%d,%d,%d): %w", t, n, d, ErrShapeMismatch)
	}
	if len(data) != t*n*d {
		return Embeddings{}, fmt.Errorf("FromStacked: len(data)=%d, want %d: %w", len(data), t*n*d, ErrShapeMismatch)
	}
	step := n * d
	ms := make([]*mat.Dense, t)
	for i := 0; i < t; i++ {
		ms[i] = mat.NewDense(n, d, data[i*step:(i+1)*step:(i+1)*step])
	}

	return Embeddings{kind: Stacked, mats: ms}, nil
}

// FromSingle wraps one matrix.
func FromSingle(m *mat.Dense) (Embeddings, error) {
	if m == nil {
		return Embeddings{}, fmt.Errorf("FromSingle: %w", ErrEmptyEmbeddings)
	}

	return Embeddings{kind: Single, mats: []*mat.Dense{m}}, nil
}

// Kind reports how e was built.
func (e Embeddings) Kind() Kind { return e.kind }

// Len returns the number of timestamps (1 for Single).
func (e Embeddings) Len() int { return len(e.mats) }

// At returns the matrix for timestamp t. It panics if t is out of range,
// like a slice index.
func (e Embeddings) At(t int) *mat.Dense { return e.mats[t] }

// pairWith checks that other covers the same number of timestamps as e.
func (e Embeddings) pairWith(other Embeddings, what string) error {
	if other.Len() != e.Len() {
		return fmt.Errorf("%s: %d timestamps, embeddings have %d: %w", what, other.Len(), e.Len(), ErrTimestampMismatch)
	}

	return nil
}
