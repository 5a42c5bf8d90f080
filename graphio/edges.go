// SPDX-License-Identifier: MIT
//
// File: edges.go
// Role: per-timestamp edge-list I/O over a canonical node index.
// Determinism:
//   - WriteEdgeList emits edges in core.Graph.Edges() order (U asc, V asc).

package graphio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/ctgcn/core"
)

// LoadGraph builds an undirected graph over every node of idx from the edge
// file at path.
//
// Implementation:
//   - Stage 1: allocate idx.Len() isolated nodes.
//   - Stage 2: scan rows; skip the header (unless WithHeader(false)) and
//     blank lines; split on the separator.
//   - Stage 3: resolve both labels, parse the optional weight (default 1),
//     drop self-loops, add the edge. Repeated edges keep the last weight.
//
// Errors: ErrNilIndex, ErrUnknownNode, ErrMalformedLine, or the os error.
func LoadGraph(path string, idx *core.NodeIndex, opts ...Option) (*core.Graph, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadGraph(%s): %w", path, err)
	}
	defer f.Close()

	g, err := ReadGraph(f, idx, opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadGraph(%s): %w", path, err)
	}

	return g, nil
}

// ReadGraph is LoadGraph over an arbitrary reader.
func ReadGraph(r io.Reader, idx *core.NodeIndex, opts ...Option) (*core.Graph, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}
	cfg := newReadConfig(opts...)
	g, err := idx.NewGraph()
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(r)
	skipHeader := cfg.header
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if skipHeader {
			skipHeader = false
			continue
		}

		fields := strings.Split(line, cfg.sep)
		if len(fields) < 2 {
			return nil, fmt.Errorf("line %d: %q: %w", lineNo, line, ErrMalformedLine)
		}
		u, ok := idx.Index(fields[0])
		if !ok {
			return nil, fmt.Errorf("line %d: %q: %w", lineNo, fields[0], ErrUnknownNode)
		}
		v, ok := idx.Index(fields[1])
		if !ok {
			return nil, fmt.Errorf("line %d: %q: %w", lineNo, fields[1], ErrUnknownNode)
		}
		w := core.DefaultWeight
		if len(fields) > 2 && strings.TrimSpace(fields[2]) != "" {
			w, err = strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
			if err != nil || math.IsNaN(w) || math.IsInf(w, 0) {
				return nil, fmt.Errorf("line %d: weight %q: %w", lineNo, fields[2], ErrMalformedLine)
			}
		}
		if u == v {
			continue
		}
		if err = g.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}

	return g, nil
}

// WriteEdgeList writes g as a tab-separated edge file with a
// "from_id\tto_id\tweight" header, labelling nodes through idx.
func WriteEdgeList(path string, g *core.Graph, idx *core.NodeIndex) error {
	if g == nil {
		return ErrNilGraph
	}
	if idx == nil {
		return ErrNilIndex
	}
	if g.NodeCount() != idx.Len() {
		return fmt.Errorf("WriteEdgeList(%s): graph has %d nodes, index %d: %w",
			path, g.NodeCount(), idx.Len(), core.ErrNodeOutOfRange)
	}
	if err := EnsureParent(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteEdgeList(%s): %w", path, err)
	}
	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "from_id%sto_id%sweight\n", DefaultSeparator, DefaultSeparator)
	for _, e := range g.Edges() {
		lu, _ := idx.Label(e.U)
		lv, _ := idx.Label(e.V)
		fmt.Fprintf(bw, "%s\t%s\t%s\n", lu, lv, strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}
	if err = bw.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("WriteEdgeList(%s): %w", path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("WriteEdgeList(%s): %w", path, err)
	}

	return nil
}
