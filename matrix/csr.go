// SPDX-License-Identifier: MIT

// Package matrix - CSR storage & safe accessors.
//
// Purpose:
//   - Store a sparse matrix in row-compressed form: indptr (rows+1), indices
//     and data (nnz each); column indices sorted ascending within every row.
//   - Keep the public surface safe: At returns an error instead of panicking.
//   - Deterministic: Triplets enumerates in (row, col) ascending order.
//
// Complexity quicksheet:
//   - NewCSR: O(nnz log nnz); At: O(log nnz_row); Dense: O(r*c); Equal: O(nnz).

package matrix

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Triplet is one (row, col, value) entry in coordinate form.
type Triplet struct {
	Row, Col int
	Value    float64
}

// CSR is an immutable compressed-sparse-row matrix.
type CSR struct {
	rows, cols int
	indptr     []int
	indices    []int
	data       []float64
}

// NewCSR builds a CSR from coordinate triplets.
//
// Implementation:
//   - Stage 1: validate shape, bounds and finiteness of every triplet.
//   - Stage 2: sort a copy by (row, col); duplicates are summed, the same
//     convention as coordinate-to-CSR conversion in numeric libraries.
//   - Stage 3: drop explicit zeros and build indptr by counting per row.
//
// Errors: ErrBadShape, ErrOutOfRange, ErrNaNInf (wrapped with the triplet position).
func NewCSR(rows, cols int, ts []Triplet) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewCSR(%d,%d): %w", rows, cols, ErrBadShape)
	}
	for i, t := range ts {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, fmt.Errorf("NewCSR: triplet %d (%d,%d): %w", i, t.Row, t.Col, ErrOutOfRange)
		}
		if math.IsNaN(t.Value) || math.IsInf(t.Value, 0) {
			return nil, fmt.Errorf("NewCSR: triplet %d: %w", i, ErrNaNInf)
		}
	}

	sorted := make([]Triplet, len(ts))
	copy(sorted, ts)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	m := &CSR{rows: rows, cols: cols, indptr: make([]int, rows+1)}
	for i := 0; i < len(sorted); {
		t := sorted[i]
		v := t.Value
		j := i + 1
		for ; j < len(sorted) && sorted[j].Row == t.Row && sorted[j].Col == t.Col; j++ {
			v += sorted[j].Value
		}
		i = j
		if v == 0 {
			continue
		}
		m.indices = append(m.indices, t.Col)
		m.data = append(m.data, v)
		m.indptr[t.Row+1]++
	}
	for r := 0; r < rows; r++ {
		m.indptr[r+1] += m.indptr[r]
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *CSR) Shape() (int, int) { return m.rows, m.cols }

// NNZ returns the number of stored non-zero entries.
func (m *CSR) NNZ() int { return len(m.data) }

// RowNNZ returns the number of stored entries in row r.
func (m *CSR) RowNNZ(r int) (int, error) {
	if r < 0 || r >= m.rows {
		return 0, fmt.Errorf("CSR.RowNNZ(%d): %w", r, ErrOutOfRange)
	}

	return m.indptr[r+1] - m.indptr[r], nil
}

// At returns the value at (r, c); absent entries are 0.
func (m *CSR) At(r, c int) (float64, error) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		return 0, fmt.Errorf("CSR.At(%d,%d): %w", r, c, ErrOutOfRange)
	}
	lo, hi := m.indptr[r], m.indptr[r+1]
	k := lo + sort.SearchInts(m.indices[lo:hi], c)
	if k < hi && m.indices[k] == c {
		return m.data[k], nil
	}

	return 0, nil
}

// Triplets returns all stored entries in (row, col) ascending order.
func (m *CSR) Triplets() []Triplet {
	out := make([]Triplet, 0, len(m.data))
	for r := 0; r < m.rows; r++ {
		for k := m.indptr[r]; k < m.indptr[r+1]; k++ {
			out = append(out, Triplet{Row: r, Col: m.indices[k], Value: m.data[k]})
		}
	}

	return out
}

// Dense materializes m as a gonum dense matrix. A 0×k or k×0 shape, which
// gonum cannot represent, returns nil.
func (m *CSR) Dense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	d := mat.NewDense(m.rows, m.cols, nil)
	for r := 0; r < m.rows; r++ {
		for k := m.indptr[r]; k < m.indptr[r+1]; k++ {
			d.Set(r, m.indices[k], m.data[k])
		}
	}

	return d
}

// Equal reports whether a and b have the same shape and the same stored entries.
func Equal(a, b *CSR) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols || len(a.data) != len(b.data) {
		return false
	}
	for i := range a.indptr {
		if a.indptr[i] != b.indptr[i] {
			return false
		}
	}
	for k := range a.data {
		if a.indices[k] != b.indices[k] || a.data[k] != b.data[k] {
			return false
		}
	}

	return true
}

// IsSubsetOf reports whether every stored (row, col) of a is also stored in b.
// Values are ignored; shapes must match.
func (m *CSR) IsSubsetOf(b *CSR) (bool, error) {
	if m == nil || b == nil {
		return false, ErrNilMatrix
	}
	if m.rows != b.rows || m.cols != b.cols {
		return false, fmt.Errorf("CSR.IsSubsetOf: %dx%d vs %dx%d: %w", m.rows, m.cols, b.rows, b.cols, ErrDimensionMismatch)
	}
	for r := 0; r < m.rows; r++ {
		for k := m.indptr[r]; k < m.indptr[r+1]; k++ {
			v, _ := b.At(r, m.indices[k])
			if v == 0 {
				return false, nil
			}
		}
	}

	return true, nil
}

// ValidateSymmetric returns ErrAsymmetry unless m is square and m[i][j] == m[j][i].
func ValidateSymmetric(m *CSR) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.rows != m.cols {
		return fmt.Errorf("ValidateSymmetric: %dx%d: %w", m.rows, m.cols, ErrDimensionMismatch)
	}
	for _, t := range m.Triplets() {
		v, _ := m.At(t.Col, t.Row)
		if v != t.Value {
			return fmt.Errorf("ValidateSymmetric: (%d,%d): %w", t.Row, t.Col, ErrAsymmetry)
		}
	}

	return nil
}
