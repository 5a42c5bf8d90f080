// SPDX-License-Identifier: MIT

package loss

import (
	"fmt"
	"strings"
)

// Type selects the objective computed by an engine.
type Type string

const (
	// Connection is the negative-sampling (unsupervised) or classification
	// (supervised) objective.
	Connection Type = "connection"

	// Structure adds, or is, the structural reconstruction objective.
	Structure Type = "structure"
)

// ParseType maps a case-insensitive name onto a Type.
func ParseType(s string) (Type, error) {
	switch t := Type(strings.ToLower(strings.TrimSpace(s))); t {
	case Connection, Structure:
		return t, nil
	default:
		return "", fmt.Errorf("ParseType(%q): %w", s, ErrUnsupportedLossType)
	}
}

func (t Type) validate() error {
	if t != Connection && t != Structure {
		return fmt.Errorf("loss type %q: %w", string(t), ErrUnsupportedLossType)
	}

	return nil
}

// NodePairs maps a node index to its positive neighbours at one timestamp.
// Nodes absent from the map have no positive neighbours.
type NodePairs map[int][]int

// Result is the detailed outcome of an unsupervised evaluation.
//   - Total:        Σ PerTimestamp.
//   - PerTimestamp: contribution of every timestamp (0 when skipped).
//   - Skipped:      timestamps skipped because a sample set was empty.
type Result struct {
	Total        float64
	PerTimestamp []float64
	Skipped      []int
}

// SupervisedResult is the detailed outcome of a supervised evaluation.
// Loss and Accuracy are summed over timestamps.
type SupervisedResult struct {
	Loss         float64
	Accuracy     float64
	PerTimestamp []Step
}

// Step is one timestamp's supervised contribution.
type Step struct {
	NLL      float64
	MSE      float64
	Accuracy float64
}
