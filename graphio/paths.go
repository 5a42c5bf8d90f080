// SPDX-License-Identifier: MIT
//
// File: paths.go
// Role: directory creation and zero-padded level labels.

package graphio

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// EnsureDir creates path and any missing parents. Existing directories are fine.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("EnsureDir(%s): %w", path, err)
	}

	return nil
}

// EnsureParent creates the parent directory of a file path.
func EnsureParent(file string) error {
	return EnsureDir(filepath.Dir(file))
}

// FormatWidth returns the number of decimal digits of maxValue (at least 1).
func FormatWidth(maxValue int) int {
	if maxValue < 0 {
		maxValue = -maxValue
	}

	return len(strconv.Itoa(maxValue))
}

// LevelLabel renders i zero-padded to FormatWidth(maxValue) digits,
// so that labels for 1..maxValue sort lexically in numeric order.
//
//	LevelLabel(12, 3) == "03"
func LevelLabel(maxValue, i int) string {
	return fmt.Sprintf("%0*d", FormatWidth(maxValue), i)
}
