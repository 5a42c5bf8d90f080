// SPDX-License-Identifier: MIT
//
// File: market.go
// Role: Matrix Market coordinate I/O.
// Format:
//
//	%%MatrixMarket matrix coordinate real general
//	<rows> <cols> <nnz>
//	<row> <col> <value>     (1-based, one per stored entry)
//
// Determinism:
//   - Entries are written in (row, col) ascending order; values use the
//     shortest representation that round-trips ('g', -1).

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Extension is the file suffix used for saved matrices.
const Extension = ".mtx"

const mmHeader = "%%MatrixMarket matrix coordinate real general"

// WriteMatrixMarket serializes m to w.
func WriteMatrixMarket(w io.Writer, m *CSR) error {
	if m == nil {
		return ErrNilMatrix
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, mmHeader)
	fmt.Fprintf(bw, "%d %d %d\n", m.rows, m.cols, len(m.data))
	for _, t := range m.Triplets() {
		fmt.Fprintf(bw, "%d %d %s\n", t.Row+1, t.Col+1, strconv.FormatFloat(t.Value, 'g', -1, 64))
	}

	return bw.Flush()
}

// ReadMatrixMarket parses a coordinate real general matrix from r.
// Comment lines ('%') after the header and blank lines are ignored.
// Symmetric files are expanded to both triangles.
//
// Errors: ErrMalformed (wrapped with the line number), plus NewCSR errors.
func ReadMatrixMarket(r io.Reader) (*CSR, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("ReadMatrixMarket: empty input: %w", ErrMalformed)
	}
	lineNo++
	head := strings.Fields(strings.ToLower(sc.Text()))
	if len(head) != 5 || head[0] != "%%matrixmarket" || head[1] != "matrix" || head[2] != "coordinate" {
		return nil, fmt.Errorf("ReadMatrixMarket: header %q: %w", sc.Text(), ErrMalformed)
	}
	if head[3] != "real" && head[3] != "integer" && head[3] != "pattern" {
		return nil, fmt.Errorf("ReadMatrixMarket: field %q: %w", head[3], ErrMalformed)
	}
	pattern := head[3] == "pattern"
	var symmetric bool
	switch head[4] {
	case "general":
	case "symmetric":
		symmetric = true
	default:
		return nil, fmt.Errorf("ReadMatrixMarket: symmetry %q: %w", head[4], ErrMalformed)
	}

	var (
		rows, cols, nnz int
		sized           bool
		ts              []Triplet
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "%") {
			continue
		}
		f := strings.Fields(line)
		if !sized {
			if len(f) != 3 {
				return nil, fmt.Errorf("ReadMatrixMarket: line %d: size line: %w", lineNo, ErrMalformed)
			}
			var err error
			if rows, err = strconv.Atoi(f[0]); err == nil {
				if cols, err = strconv.Atoi(f[1]); err == nil {
					nnz, err = strconv.Atoi(f[2])
				}
			}
			if err != nil || rows < 0 || cols < 0 || nnz < 0 {
				return nil, fmt.Errorf("ReadMatrixMarket: line %d: size line: %w", lineNo, ErrMalformed)
			}
			ts = make([]Triplet, 0, nnz)
			sized = true
			continue
		}

		want := 3
		if pattern {
			want = 2
		}
		if len(f) != want {
			return nil, fmt.Errorf("ReadMatrixMarket: line %d: %w", lineNo, ErrMalformed)
		}
		i, err1 := strconv.Atoi(f[0])
		j, err2 := strconv.Atoi(f[1])
		v := 1.0
		var err3 error
		if !pattern {
			v, err3 = strconv.ParseFloat(f[2], 64)
		}
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("ReadMatrixMarket: line %d: %w", lineNo, ErrMalformed)
		}
		ts = append(ts, Triplet{Row: i - 1, Col: j - 1, Value: v})
		if symmetric && i != j {
			ts = append(ts, Triplet{Row: j - 1, Col: i - 1, Value: v})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if !sized {
		return nil, fmt.Errorf("ReadMatrixMarket: missing size line: %w", ErrMalformed)
	}
	entries := len(ts)
	if symmetric {
		entries = 0
		for _, t := range ts {
			if t.Row <= t.Col {
				entries++
			}
		}
	}
	if entries != nnz {
		return nil, fmt.Errorf("ReadMatrixMarket: %d entries, size line says %d: %w", entries, nnz, ErrMalformed)
	}

	return NewCSR(rows, cols, ts)
}

// SaveFile writes m to path in Matrix Market format, creating parent directories.
func SaveFile(path string, m *CSR) error {
	if m == nil {
		return ErrNilMatrix
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("SaveFile(%s): %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveFile(%s): %w", path, err)
	}
	if err = WriteMatrixMarket(f, m); err != nil {
		f.Close()
		return fmt.Errorf("SaveFile(%s): %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("SaveFile(%s): %w", path, err)
	}

	return nil
}

// LoadFile reads a Matrix Market file written by SaveFile (or any compatible tool).
func LoadFile(path string) (*CSR, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}
	defer f.Close()

	m, err := ReadMatrixMarket(f)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}

	return m, nil
}
