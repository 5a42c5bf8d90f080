// SPDX-License-Identifier: MIT

package loss

import (
	"fmt"
	"log/slog"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// Unsupervised computes the negative-sampling connection loss or the
// structural reconstruction loss.
//
// Sampling state (the RNG) is guarded by a mutex, so one engine may be shared
// by goroutines; results then depend on call interleaving.
type Unsupervised struct {
	mu  sync.Mutex
	cfg engineConfig
}

// NewUnsupervised builds an engine. Node pairs and negative pools are only
// needed for the Connection type and are checked when it runs.
func NewUnsupervised(opts ...Option) *Unsupervised {
	return &Unsupervised{cfg: newEngineConfig(opts...)}
}

// NegativeSamples returns the configured sample count.
func (u *Unsupervised) NegativeSamples() int { return u.cfg.negNum }

// Q returns the configured negative-term weight.
func (u *Unsupervised) Q() float64 { return u.cfg.q }

// Compute returns the loss summed over all timestamps of emb.
// structures is required for Structure and ignored for Connection.
func (u *Unsupervised) Compute(emb Embeddings, batch []int, lt Type, structures *Embeddings) (float64, error) {
	res, err := u.Evaluate(emb, batch, lt, structures)
	if err != nil {
		return 0, err
	}

	return res.Total, nil
}

// Evaluate is Compute with the per-timestamp breakdown.
//
// Errors:
//   - ErrUnsupportedLossType for an unknown lt (checked first).
//   - ErrEmptyEmbeddings, ErrMissingSamplingData, ErrMissingStructures,
//     ErrTimestampMismatch, ErrShapeMismatch, ErrNodeOutOfRange, ErrEmptyBatch.
func (u *Unsupervised) Evaluate(emb Embeddings, batch []int, lt Type, structures *Embeddings) (*Result, error) {
	if err := lt.validate(); err != nil {
		return nil, fmt.Errorf("Unsupervised.Evaluate: %w", err)
	}
	if emb.Len() == 0 {
		return nil, fmt.Errorf("Unsupervised.Evaluate: %w", ErrEmptyEmbeddings)
	}

	var (
		res *Result
		err error
	)
	switch lt {
	case Connection:
		res, err = u.connection(emb, batch)
	case Structure:
		res, err = u.structure(emb, batch, structures)
	}
	if err != nil {
		return nil, fmt.Errorf("Unsupervised.Evaluate(%s): %w", lt, err)
	}

	return res, nil
}

// connection implements the negative-sampling objective.
//
// Implementation, per timestamp t:
//   - Stage 1: for every batch node, take SamplePositives of its neighbours;
//     the node is repeated once per positive, giving aligned (node, pos) lists.
//   - Stage 2: draw one shared negative set with SampleNegatives and
//     accumulate its embedding rows into negSum.
//   - Stage 3: pos_i = ⟨E[node_i], E[pos_i]⟩, neg_i = −⟨E[node_i], negSum⟩;
//     loss_t = BCE(pos) + Q·BCE(neg). Empty lists skip the timestamp.
//
// Complexity: O(T · (B·n + n) · D).
func (u *Unsupervised) connection(emb Embeddings, batch []int) (*Result, error) {
	cfg := &u.cfg
	T := emb.Len()
	if cfg.pairs == nil || cfg.pools == nil {
		return nil, ErrMissingSamplingData
	}
	if len(cfg.pairs) < T || len(cfg.pools) < T {
		return nil, fmt.Errorf("%d timestamps, %d node-pair maps, %d pools: %w",
			T, len(cfg.pairs), len(cfg.pools), ErrTimestampMismatch)
	}

	res := &Result{PerTimestamp: make([]float64, T)}
	for t := 0; t < T; t++ {
		E := emb.At(t)
		n, d := E.Dims()

		nodes, pos, negs, err := u.sample(t, batch, n)
		if err != nil {
			return nil, fmt.Errorf("timestamp %d: %w", t, err)
		}
		if len(nodes) == 0 || len(pos) == 0 || len(negs) == 0 {
			res.Skipped = append(res.Skipped, t)
			cfg.logger.Debug("skipping timestamp with empty sample set",
				slog.Int("timestamp", t),
				slog.Int("positives", len(pos)),
				slog.Int("negatives", len(negs)))
			continue
		}

		negSum := make([]float64, d)
		for _, j := range negs {
			cfg.dev.AddInPlace(negSum, E.RawRowView(j))
		}
		posScore := make([]float64, len(nodes))
		negScore := make([]float64, len(nodes))
		for i, v := range nodes {
			row := E.RawRowView(v)
			posScore[i] = cfg.dev.Dot(row, E.RawRowView(pos[i]))
			negScore[i] = -cfg.dev.Dot(row, negSum)
		}

		v := BCEWithLogits(posScore) + cfg.q*BCEWithLogits(negScore)
		res.PerTimestamp[t] = v
		res.Total += v
	}

	return res, nil
}

// sample draws the aligned node/positive lists and the shared negatives of
// timestamp t, validating every index against n rows.
func (u *Unsupervised) sample(t int, batch []int, n int) (nodes, pos, negs []int, err error) {
	cfg := &u.cfg
	pairs := cfg.pairs[t]

	u.mu.Lock()
	defer u.mu.Unlock()

	for _, v := range batch {
		if v < 0 || v >= n {
			return nil, nil, nil, fmt.Errorf("batch node %d (rows=%d): %w", v, n, ErrNodeOutOfRange)
		}
		ps := SamplePositives(cfg.rng, pairs[v], cfg.negNum)
		for _, p := range ps {
			if p < 0 || p >= n {
				return nil, nil, nil, fmt.Errorf("positive %d of node %d: %w", p, v, ErrNodeOutOfRange)
			}
			nodes = append(nodes, v)
		}
		pos = append(pos, ps...)
	}
	negs = SampleNegatives(cfg.rng, cfg.pools[t], cfg.negNum)
	for _, j := range negs {
		if j < 0 || j >= n {
			return nil, nil, nil, fmt.Errorf("negative %d: %w", j, ErrNodeOutOfRange)
		}
	}

	return nodes, pos, negs, nil
}

// structure implements Σ_t MSE(S_t[batch], E_t[batch]).
func (u *Unsupervised) structure(emb Embeddings, batch []int, structures *Embeddings) (*Result, error) {
	if structures == nil || structures.Len() == 0 {
		return nil, ErrMissingStructures
	}
	if err := emb.pairWith(*structures, "structures"); err != nil {
		return nil, err
	}
	if len(batch) == 0 {
		return nil, ErrEmptyBatch
	}

	T := emb.Len()
	res := &Result{PerTimestamp: make([]float64, T)}
	for t := 0; t < T; t++ {
		v, err := structureTerm(structures.At(t), emb.At(t), batch)
		if err != nil {
			return nil, fmt.Errorf("timestamp %d: %w", t, err)
		}
		res.PerTimestamp[t] = v
		res.Total += v
	}

	return res, nil
}

// structureTerm is MSE(S[batch], E[batch]) with shape checks.
func structureTerm(S, E *mat.Dense, batch []int) (float64, error) {
	sr, sc := S.Dims()
	er, ec := E.Dims()
	if sc != ec {
		return 0, fmt.Errorf("structure %dx%d vs embedding %dx%d: %w", sr, sc, er, ec, ErrShapeMismatch)
	}

	return MSE(S, E, batch)
}
