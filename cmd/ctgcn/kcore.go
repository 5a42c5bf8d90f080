package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ctgcn/structure"
)

func newKCoreCmd(a *app) *cobra.Command {
	var (
		ds      datasetFlags
		workers int
	)
	cmd := &cobra.Command{
		Use:   "kcore",
		Short: "Write the k-core hierarchy of every timestamp",
		Long: `Decompose every edge file of the origin folder into its k-core hierarchy
and write one Matrix Market adjacency per level under <core>/<timestamp>/.

--workers <= 0 runs sequentially and stops at the first failure; otherwise
timestamps run in parallel and all failures are reported at the end.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds.apply(cmd, a.cfg)
			if cmd.Flags().Changed("workers") {
				a.cfg.Structure.Workers = workers
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			opts := append(a.cfg.GeneratorOptions(), structure.WithLogger(a.logger))
			gen, err := structure.NewGenerator(a.cfg.StructureConfig(), opts...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			sum, runErr := gen.AllTimestamps(ctx, a.cfg.Structure.Workers)
			if sum != nil {
				printSummary(cmd, sum)
			}
			if runErr != nil && errors.Is(runErr, context.Canceled) {
				return fmt.Errorf("interrupted: %w", runErr)
			}

			return runErr
		},
	}
	ds.register(cmd)
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (<= 0: sequential)")

	return cmd
}

func printSummary(cmd *cobra.Command, sum *structure.Summary) {
	out := cmd.OutOrStdout()
	done := 0
	for _, r := range sum.Reports {
		if r == nil {
			continue
		}
		done++
		fmt.Fprintf(out, "%-20s nodes=%d edges=%d max_core=%d levels=%v\n",
			r.OutputDir, r.NodeCount, r.EdgeCount, r.MaxCore, r.LevelEdges)
	}
	fmt.Fprintf(out, "%d/%d timestamps, max core %d, max degree %d\n",
		done, len(sum.Reports), sum.MaxCore, sum.MaxDegree)
}
