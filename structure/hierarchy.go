// SPDX-License-Identifier: MIT

package structure

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/ctgcn/matrix"
)

// ReadHierarchy loads the level files of one timestamp directory, ordered
// by level. Files without the matrix extension are ignored.
//
// Errors: ErrBadLevelFile when a name is not a positive level number or the
// levels are not exactly 1..k; matrix read errors.
func ReadHierarchy(dir string) ([]*matrix.CSR, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("ReadHierarchy: %w", err)
	}

	type levelFile struct {
		level int
		path  string
	}
	var files []levelFile
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || filepath.Ext(name) != matrix.Extension {
			continue
		}
		k, err := strconv.Atoi(strings.TrimSuffix(name, matrix.Extension))
		if err != nil || k < 1 {
			return nil, fmt.Errorf("ReadHierarchy: %q: %w", name, ErrBadLevelFile)
		}
		files = append(files, levelFile{level: k, path: filepath.Join(dir, name)})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].level < files[j].level })

	levels := make([]*matrix.CSR, len(files))
	for i, f := range files {
		if f.level != i+1 {
			return nil, fmt.Errorf("ReadHierarchy: expected level %d, found %d: %w", i+1, f.level, ErrBadLevelFile)
		}
		if levels[i], err = matrix.LoadFile(f.path); err != nil {
			return nil, fmt.Errorf("ReadHierarchy: %w", err)
		}
	}

	return levels, nil
}

// VerifyNesting checks that all levels are square with one shape and that
// the stored entries of level k+1 are a subset of those of level k.
func VerifyNesting(levels []*matrix.CSR) error {
	for i, m := range levels {
		if m == nil {
			return fmt.Errorf("VerifyNesting: level %d: %w", i+1, matrix.ErrNilMatrix)
		}
		if m.Rows() != m.Cols() || m.Rows() != levels[0].Rows() {
			r, c := m.Shape()
			return fmt.Errorf("VerifyNesting: level %d is %dx%d: %w", i+1, r, c, ErrNestingViolation)
		}
		if i == 0 {
			continue
		}
		ok, err := m.IsSubsetOf(levels[i-1])
		if err != nil {
			return fmt.Errorf("VerifyNesting: level %d: %w", i+1, err)
		}
		if !ok {
			return fmt.Errorf("VerifyNesting: level %d ⊄ level %d: %w", i+1, i, ErrNestingViolation)
		}
	}

	return nil
}
