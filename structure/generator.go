// SPDX-License-Identifier: MIT
//
// File: generator.go
// Role: per-timestamp k-core hierarchy generation.
// Determinism:
//   - Origin files are processed (and reported) in lexical order.
//   - Output bytes depend only on the input file and the node list.
// Concurrency:
//   - A Generator is immutable after NewGenerator; KCoreGraph may run
//     concurrently for distinct output directories.

package structure

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ctgcn/core"
	"github.com/katalvlaran/ctgcn/graphio"
	"github.com/katalvlaran/ctgcn/kcore"
	"github.com/katalvlaran/ctgcn/matrix"
)

// Generator writes k-core hierarchies for every timestamp of a dataset.
type Generator struct {
	basePath   string
	originPath string
	corePath   string
	idx        *core.NodeIndex
	logger     *slog.Logger
	readOpts   []graphio.Option
	cpuCount   func() int
}

// NewGenerator resolves the dataset paths, reads the node list and ensures
// the core output directory exists.
//
// Errors: ErrEmptyNodeList, node-list read/parse errors, directory errors.
func NewGenerator(cfg Config, opts ...Option) (*Generator, error) {
	g := &Generator{
		basePath: cfg.BasePath,
		logger:   slog.Default(),
		cpuCount: physicalCPUs,
	}
	for _, opt := range opts {
		opt(g)
	}

	var err error
	if g.originPath, err = filepath.Abs(filepath.Join(cfg.BasePath, cfg.OriginFolder)); err != nil {
		return nil, fmt.Errorf("NewGenerator: %w", err)
	}
	if g.corePath, err = filepath.Abs(filepath.Join(cfg.BasePath, cfg.CoreFolder)); err != nil {
		return nil, fmt.Errorf("NewGenerator: %w", err)
	}

	labels, err := graphio.ReadNodeList(filepath.Join(cfg.BasePath, cfg.NodeFile))
	if err != nil {
		return nil, fmt.Errorf("NewGenerator: %w", err)
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("NewGenerator(%s): %w", cfg.NodeFile, ErrEmptyNodeList)
	}
	if g.idx, err = core.NewNodeIndex(labels); err != nil {
		return nil, fmt.Errorf("NewGenerator: %w", err)
	}
	if err = graphio.EnsureDir(g.corePath); err != nil {
		return nil, fmt.Errorf("NewGenerator: %w", err)
	}

	return g, nil
}

// NodeCount returns the size of the canonical node list.
func (g *Generator) NodeCount() int { return g.idx.Len() }

// NodeIndex returns the canonical node index.
func (g *Generator) NodeIndex() *core.NodeIndex { return g.idx }

// OriginPath returns the absolute edge-file directory.
func (g *Generator) OriginPath() string { return g.originPath }

// CorePath returns the absolute output directory.
func (g *Generator) CorePath() string { return g.corePath }

// KCoreGraph decomposes one snapshot and writes its levels into outputDir.
//
// Implementation:
//   - Stage 1: load inputFile over the canonical node list.
//   - Stage 2: kcore.Hierarchy (core numbers once, every level induced over all nodes).
//   - Stage 3: save level k as <LevelLabel(max_core,k)>.mtx.
//
// A snapshot with no edges has max_core 0 and writes nothing.
func (g *Generator) KCoreGraph(ctx context.Context, inputFile, outputDir string) (*LevelReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	graph, err := graphio.LoadGraph(inputFile, g.idx, g.readOpts...)
	if err != nil {
		return nil, err
	}
	d, err := kcore.Hierarchy(graph)
	if err != nil {
		return nil, fmt.Errorf("KCoreGraph(%s): %w", inputFile, err)
	}

	st := graph.Stats()
	rep := &LevelReport{
		Input:      inputFile,
		OutputDir:  outputDir,
		NodeCount:  st.NodeCount,
		EdgeCount:  st.EdgeCount,
		MaxCore:    d.MaxCore,
		MaxDegree:  st.MaxDegree,
		LevelEdges: make([]int, 0, d.MaxCore),
		Files:      make([]string, 0, d.MaxCore),
	}
	g.logger.Info("max core num",
		slog.String("file", filepath.Base(inputFile)),
		slog.Int("max_core", d.MaxCore),
		slog.Int("max_degree", st.MaxDegree))

	if err = graphio.EnsureDir(outputDir); err != nil {
		return nil, err
	}
	for k := 1; k <= d.MaxCore; k++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		level, _ := d.Level(k)
		m, err := matrix.FromGraph(level)
		if err != nil {
			return nil, fmt.Errorf("KCoreGraph(%s): level %d: %w", inputFile, k, err)
		}
		path := filepath.Join(outputDir, graphio.LevelLabel(d.MaxCore, k)+matrix.Extension)
		if err = matrix.SaveFile(path, m); err != nil {
			return nil, err
		}
		rep.LevelEdges = append(rep.LevelEdges, level.EdgeCount())
		rep.Files = append(rep.Files, path)
	}

	return rep, nil
}

// originFiles lists regular files in the origin directory, sorted by name.
func (g *Generator) originFiles() ([]string, error) {
	entries, err := os.ReadDir(g.originPath)
	if err != nil {
		return nil, fmt.Errorf("AllTimestamps: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	return names, nil
}

// timestampName is the file name up to its first '.'.
func timestampName(file string) string {
	if i := strings.IndexByte(file, '.'); i >= 0 {
		return file[:i]
	}
	return file
}

// AllTimestamps runs KCoreGraph for every origin file, writing into
// <CorePath>/<name before first '.'>.
//
// workers ≤ 0 runs sequentially and stops at the first failure, returning
// it as a *TaskError. Otherwise min(workers, files, physical CPUs)
// goroutines process the files; every outcome is collected and, after all
// tasks finish, failures are returned as ErrWorkerTaskFailure joined with
// one *TaskError each. Context cancellation stops dispatching new files;
// undispatched files are reported as failed with ctx.Err().
//
// The Summary is returned alongside a non-nil error so that successful
// timestamps remain visible.
func (g *Generator) AllTimestamps(ctx context.Context, workers int) (*Summary, error) {
	files, err := g.originFiles()
	if err != nil {
		return nil, err
	}
	start := time.Now()
	g.logger.Info("getting k-core graph for all timestamps",
		slog.String("origin", g.originPath),
		slog.Int("files", len(files)))

	sum := &Summary{Reports: make([]*LevelReport, len(files))}
	errs := make([]error, len(files))
	task := func(i int) {
		in := filepath.Join(g.originPath, files[i])
		out := filepath.Join(g.corePath, timestampName(files[i]))
		rep, err := g.KCoreGraph(ctx, in, out)
		if err != nil {
			errs[i] = &TaskError{File: files[i], Err: err}
			return
		}
		sum.Reports[i] = rep
	}

	if workers <= 0 || len(files) == 0 {
		for i := range files {
			task(i)
			if errs[i] != nil {
				return sum, errs[i]
			}
		}
	} else {
		sum.Workers = poolSize(workers, len(files), g.cpuCount())
		g.logger.Info("start workers", slog.Int("workers", sum.Workers))

		var eg errgroup.Group
		eg.SetLimit(sum.Workers)
		for i := range files {
			if err = ctx.Err(); err != nil {
				errs[i] = &TaskError{File: files[i], Err: err}
				continue
			}
			eg.Go(func() error {
				task(i)
				return nil
			})
		}
		_ = eg.Wait()
	}

	var failed []error
	for i, e := range errs {
		if e != nil {
			failed = append(failed, e)
			g.logger.Error("timestamp failed", slog.String("file", files[i]), slog.Any("err", e))
		}
	}
	for _, r := range sum.Reports {
		if r == nil {
			continue
		}
		sum.MaxCore = max(sum.MaxCore, r.MaxCore)
		sum.MaxDegree = max(sum.MaxDegree, r.MaxDegree)
	}
	g.logger.Info("got it",
		slog.Int("succeeded", len(files)-len(failed)),
		slog.Int("failed", len(failed)),
		slog.Int("max_core", sum.MaxCore),
		slog.Duration("elapsed", time.Since(start)))

	if len(failed) > 0 {
		return sum, errors.Join(append([]error{ErrWorkerTaskFailure}, failed...)...)
	}

	return sum, nil
}
