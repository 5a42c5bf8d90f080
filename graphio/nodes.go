// SPDX-License-Identifier: MIT
//
// File: nodes.go
// Role: canonical node list I/O.

package graphio

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadNodeList reads newline-delimited node labels in file order.
// Lines are trimmed; blank lines are skipped.
func ReadNodeList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadNodeList(%s): %w", path, err)
	}
	defer f.Close()

	var labels []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		l := strings.TrimSpace(sc.Text())
		if l == "" {
			continue
		}
		labels = append(labels, l)
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("ReadNodeList(%s): %w", path, err)
	}

	return labels, nil
}

// WriteNodeList writes one label per line, creating parent directories.
func WriteNodeList(path string, labels []string) error {
	if err := EnsureParent(path); err != nil {
		return err
	}
	var b strings.Builder
	for _, l := range labels {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("WriteNodeList(%s): %w", path, err)
	}

	return nil
}
