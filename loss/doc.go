// Package loss computes the training objectives of a temporal graph
// convolution model over per-timestamp node embeddings.
//
// Two engines are provided:
//
//   - Unsupervised: negative-sampling connection loss (positive neighbours
//     versus a shared set of pool-drawn negatives, weighted by Q) or a
//     structural reconstruction loss (MSE between embeddings and precomputed
//     structure matrices).
//   - Supervised: node classification loss (log-softmax + NLL) with summed
//     accuracy, optionally plus the structural reconstruction term.
//
// Both engines sum contributions across timestamps; nothing is averaged over
// time. Embeddings arrive as one tagged value (see Embeddings) built from a
// per-timestamp list, a stacked T×N×D buffer, or a single matrix.
//
// Vector kernels (dot products, row accumulation) go through a Device,
// injected once with WithDevice; CPU is the default and uses SIMD kernels
// from github.com/viterin/vek. Reductions use gonum/floats.
//
// Gradients are out of scope: values are plain float64 results.
package loss
