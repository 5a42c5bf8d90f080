// SPDX-License-Identifier: MIT

package structure

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// physicalCPUs returns the number of physical cores, falling back to the
// logical count when the platform does not report it.
func physicalCPUs() int {
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}

	return runtime.NumCPU()
}

// poolSize returns min(workers, tasks, cpus), at least 1.
func poolSize(workers, tasks, cpus int) int {
	n := workers
	if tasks < n {
		n = tasks
	}
	if cpus > 0 && cpus < n {
		n = cpus
	}
	if n < 1 {
		n = 1
	}

	return n
}
