// SPDX-License-Identifier: MIT

package loss

import (
	"fmt"
	"log/slog"
)

// Supervised computes node classification loss and accuracy, optionally
// with the structural reconstruction term. It holds no sampling state and
// is safe for concurrent use.
type Supervised struct {
	cfg engineConfig
}

// NewSupervised builds an engine. Only WithLogger applies.
func NewSupervised(opts ...Option) *Supervised {
	return &Supervised{cfg: newEngineConfig(opts...)}
}

// Compute returns the summed loss and the summed accuracy over all
// timestamps of out. Accuracy is summed, not averaged: a perfect
// prediction over T timestamps yields T.
//
// For Structure, structures and embs must both be supplied with the same
// timestamp count as out; each timestamp adds MSE(S_t[batch], emb_t[batch]).
func (s *Supervised) Compute(out Embeddings, batch, labels []int, lt Type, structures, embs *Embeddings) (loss, acc float64, err error) {
	res, err := s.Evaluate(out, batch, labels, lt, structures, embs)
	if err != nil {
		return 0, 0, err
	}

	return res.Loss, res.Accuracy, nil
}

// Evaluate is Compute with the per-timestamp breakdown.
//
// Implementation, per timestamp t:
//   - Stage 1: lp = LogSoftmax(out_t, batch).
//   - Stage 2: nll = NLL(lp, labels), acc = Accuracy(lp, labels).
//   - Stage 3 (Structure): mse = MSE(S_t, emb_t, batch).
func (s *Supervised) Evaluate(out Embeddings, batch, labels []int, lt Type, structures, embs *Embeddings) (*SupervisedResult, error) {
	if err := lt.validate(); err != nil {
		return nil, fmt.Errorf("Supervised.Evaluate: %w", err)
	}
	if out.Len() == 0 {
		return nil, fmt.Errorf("Supervised.Evaluate: %w", ErrEmptyEmbeddings)
	}
	if len(batch) == 0 {
		return nil, fmt.Errorf("Supervised.Evaluate: %w", ErrEmptyBatch)
	}
	if len(labels) != len(batch) {
		return nil, fmt.Errorf("Supervised.Evaluate: %d labels, %d nodes: %w", len(labels), len(batch), ErrLabelMismatch)
	}
	if lt == Structure {
		if structures == nil || embs == nil || structures.Len() == 0 || embs.Len() == 0 {
			return nil, fmt.Errorf("Supervised.Evaluate: %w", ErrMissingStructures)
		}
		if err := out.pairWith(*structures, "structures"); err != nil {
			return nil, fmt.Errorf("Supervised.Evaluate: %w", err)
		}
		if err := out.pairWith(*embs, "embeddings"); err != nil {
			return nil, fmt.Errorf("Supervised.Evaluate: %w", err)
		}
	}

	T := out.Len()
	res := &SupervisedResult{PerTimestamp: make([]Step, T)}
	for t := 0; t < T; t++ {
		step, err := s.step(out, batch, labels, lt, structures, embs, t)
		if err != nil {
			return nil, fmt.Errorf("Supervised.Evaluate(%s): timestamp %d: %w", lt, t, err)
		}
		res.PerTimestamp[t] = step
		res.Loss += step.NLL + step.MSE
		res.Accuracy += step.Accuracy
	}
	s.cfg.logger.Debug("supervised loss",
		slog.String("type", string(lt)),
		slog.Int("timestamps", T),
		slog.Float64("loss", res.Loss),
		slog.Float64("accuracy", res.Accuracy))

	return res, nil
}

func (s *Supervised) step(out Embeddings, batch, labels []int, lt Type, structures, embs *Embeddings, t int) (Step, error) {
	var st Step

	lp, err := LogSoftmax(out.At(t), batch)
	if err != nil {
		return st, err
	}
	if st.NLL, err = NLL(lp, labels); err != nil {
		return st, err
	}
	if st.Accuracy, err = Accuracy(lp, labels); err != nil {
		return st, err
	}
	if lt == Structure {
		if st.MSE, err = structureTerm(structures.At(t), embs.At(t), batch); err != nil {
			return st, err
		}
	}

	return st, nil
}
