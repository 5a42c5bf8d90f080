// Command ctgcn prepares structural inputs for temporal graph embedding:
// it generates synthetic temporal datasets, decomposes every snapshot into
// its k-core hierarchy, and inspects the written hierarchies.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
