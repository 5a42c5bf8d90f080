// SPDX-License-Identifier: MIT

package loss

import "github.com/viterin/vek"

// Device executes the vector kernels used by the loss engines.
// Implementations must be safe for concurrent use.
type Device interface {
	// Dot returns Σ a[i]·b[i]; len(a) == len(b).
	Dot(a, b []float64) float64
	// AddInPlace performs dst[i] += src[i]; len(dst) == len(src).
	AddInPlace(dst, src []float64)
	// Name identifies the device in logs.
	Name() string
}

// CPU runs kernels on the host with SIMD acceleration where available.
type CPU struct{}

// Dot implements Device.
func (CPU) Dot(a, b []float64) float64 { return vek.Dot(a, b) }

// AddInPlace implements Device.
func (CPU) AddInPlace(dst, src []float64) { vek.Add_Inplace(dst, src) }

// Name implements Device.
func (CPU) Name() string { return "cpu" }
