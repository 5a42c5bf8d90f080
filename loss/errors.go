// SPDX-License-Identifier: MIT

package loss

import "errors"

var (
	// ErrUnsupportedLossType is returned for any loss type other than
	// Connection or Structure.
	ErrUnsupportedLossType = errors.New("loss: unsupported loss type")

	// ErrMissingSamplingData is returned when the connection loss runs without
	// node pairs or negative pools.
	ErrMissingSamplingData = errors.New("loss: node pairs and negative pools are required for connection loss")

	// ErrMissingStructures is returned when the structure loss runs without
	// structure matrices (or, for Supervised, without embeddings).
	ErrMissingStructures = errors.New("loss: structure matrices are required for structure loss")

	// ErrTimestampMismatch is returned when per-timestamp inputs disagree on
	// the number of timestamps.
	ErrTimestampMismatch = errors.New("loss: timestamp count mismatch")

	// ErrShapeMismatch is returned when matrices or buffers have incompatible shapes.
	ErrShapeMismatch = errors.New("loss: shape mismatch")

	// ErrEmptyEmbeddings is returned for an Embeddings value with no timestamps.
	ErrEmptyEmbeddings = errors.New("loss: no embeddings")

	// ErrNodeOutOfRange is returned when a node index exceeds the matrix rows.
	ErrNodeOutOfRange = errors.New("loss: node index out of range")

	// ErrEmptyBatch is returned when a loss that averages over the batch gets none.
	ErrEmptyBatch = errors.New("loss: empty batch")

	// ErrLabelMismatch is returned when labels and batch differ in length.
	ErrLabelMismatch = errors.New("loss: labels do not match batch")

	// ErrLabelOutOfRange is returned when a label is not a valid class column.
	ErrLabelOutOfRange = errors.New("loss: label out of range")
)
