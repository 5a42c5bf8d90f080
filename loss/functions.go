// SPDX-License-Identifier: MIT
//
// File: functions.go
// Role: numerically stable reductions shared by both engines.
// Contract:
//   - Every function returns a mean over its elements, matching the "mean"
//     reduction of the usual deep-learning losses.
//   - Empty inputs yield 0 (BCEWithLogits) or ErrEmptyBatch (row-selecting kernels).

package loss

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// BCEWithLogits returns the mean binary cross-entropy of sigmoid(x) against
// target 1:
//
//	ℓ(x) = max(x,0) − x + log(1 + e^{−|x|})
//
// The form never exponentiates a positive number, so it is stable for any x.
func BCEWithLogits(logits []float64) float64 {
	if len(logits) == 0 {
		return 0
	}
	var sum float64
	for _, x := range logits {
		sum += math.Max(x, 0) - x + math.Log1p(math.Exp(-math.Abs(x)))
	}

	return sum / float64(len(logits))
}

// MSE returns the mean squared difference between a and b restricted to
// rows, averaged over len(rows)·cols elements.
func MSE(a, b *mat.Dense, rows []int) (float64, error) {
	if len(rows) == 0 {
		return 0, fmt.Errorf("MSE: %w", ErrEmptyBatch)
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ac != bc {
		return 0, fmt.Errorf("MSE: %d vs %d columns: %w", ac, bc, ErrShapeMismatch)
	}
	var sum float64
	for _, r := range rows {
		if r < 0 || r >= ar || r >= br {
			return 0, fmt.Errorf("MSE: row %d: %w", r, ErrNodeOutOfRange)
		}
		d := floats.Distance(a.RawRowView(r), b.RawRowView(r), 2)
		sum += d * d
	}

	return sum / float64(len(rows)*ac), nil
}

// LogSoftmax returns a len(rows)×cols matrix whose i-th row is
// log-softmax(m[rows[i]]).
func LogSoftmax(m *mat.Dense, rows []int) (*mat.Dense, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("LogSoftmax: %w", ErrEmptyBatch)
	}
	r, c := m.Dims()
	out := mat.NewDense(len(rows), c, nil)
	for i, row := range rows {
		if row < 0 || row >= r {
			return nil, fmt.Errorf("LogSoftmax: row %d: %w", row, ErrNodeOutOfRange)
		}
		dst := out.RawRowView(i)
		copy(dst, m.RawRowView(row))
		floats.AddConst(-floats.LogSumExp(dst), dst)
	}

	return out, nil
}

// NLL returns the mean negative log-likelihood −mean(logProbs[i][labels[i]]).
func NLL(logProbs *mat.Dense, labels []int) (float64, error) {
	if err := checkLabels(logProbs, labels); err != nil {
		return 0, fmt.Errorf("NLL: %w", err)
	}
	var sum float64
	for i, l := range labels {
		sum -= logProbs.At(i, l)
	}

	return sum / float64(len(labels)), nil
}

// Accuracy returns the fraction of rows whose argmax equals the label.
// Ties resolve to the lowest column.
func Accuracy(scores *mat.Dense, labels []int) (float64, error) {
	if err := checkLabels(scores, labels); err != nil {
		return 0, fmt.Errorf("Accuracy: %w", err)
	}
	correct := 0
	for i, l := range labels {
		if floats.MaxIdx(scores.RawRowView(i)) == l {
			correct++
		}
	}

	return float64(correct) / float64(len(labels)), nil
}

func checkLabels(m *mat.Dense, labels []int) error {
	if len(labels) == 0 {
		return ErrEmptyBatch
	}
	r, c := m.Dims()
	if r != len(labels) {
		return fmt.Errorf("%d rows, %d labels: %w", r, len(labels), ErrLabelMismatch)
	}
	for i, l := range labels {
		if l < 0 || l >= c {
			return fmt.Errorf("label[%d]=%d, classes=%d: %w", i, l, c, ErrLabelOutOfRange)
		}
	}

	return nil
}
