package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ctgcn/matrix"
	"github.com/katalvlaran/ctgcn/structure"
)

func newInspectCmd(a *app) *cobra.Command {
	var ds datasetFlags
	cmd := &cobra.Command{
		Use:   "inspect [timestamp...]",
		Short: "Verify and summarize written k-core hierarchies",
		Long: `Read the k-core levels of the given timestamps (all of them by default),
check that every level is contained in the one below it, and print the edge
count of each level.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ds.apply(cmd, a.cfg)
			d := a.cfg.Dataset
			coreDir := filepath.Join(d.BasePath, d.CoreFolder)

			names := args
			if len(names) == 0 {
				entries, err := os.ReadDir(coreDir)
				if err != nil {
					return err
				}
				for _, e := range entries {
					if e.IsDir() {
						names = append(names, e.Name())
					}
				}
				sort.Strings(names)
			}

			out := cmd.OutOrStdout()
			for _, ts := range names {
				levels, err := structure.ReadHierarchy(filepath.Join(coreDir, ts))
				if err != nil {
					return err
				}
				if err = structure.VerifyNesting(levels); err != nil {
					return fmt.Errorf("timestamp %s: %w", ts, err)
				}
				edges := make([]int, len(levels))
				n := 0
				for k, m := range levels {
					edges[k] = matrix.EdgeCount(m)
					n = m.Rows()
				}
				fmt.Fprintf(out, "%s: nodes=%d levels=%d edges=%v\n", ts, n, len(levels), edges)
			}

			return nil
		},
	}
	ds.register(cmd)

	return cmd
}
