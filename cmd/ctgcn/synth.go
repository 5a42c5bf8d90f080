package main

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ctgcn/builder"
	"github.com/katalvlaran/ctgcn/core"
	"github.com/katalvlaran/ctgcn/graphio"
)

func newSynthCmd(a *app) *cobra.Command {
	var (
		ds         datasetFlags
		nodes      int
		timestamps int
		prob       float64
		seed       int64
	)
	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Write a random temporal dataset",
		Long: `Write a node list and one Erdős–Rényi edge file per timestamp, laid out
the way "ctgcn kcore" expects. Timestamp t uses seed+t, so runs are reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds.apply(cmd, a.cfg)
			s := &a.cfg.Synth
			if cmd.Flags().Changed("n") {
				s.Nodes = nodes
			}
			if cmd.Flags().Changed("timestamps") {
				s.Timestamps = timestamps
			}
			if cmd.Flags().Changed("p") {
				s.Probability = prob
			}
			if cmd.Flags().Changed("seed") {
				s.Seed = seed
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}

			d := a.cfg.Dataset
			labels := make([]string, s.Nodes)
			for i := range labels {
				labels[i] = strconv.Itoa(i)
			}
			idx, err := core.NewNodeIndex(labels)
			if err != nil {
				return err
			}
			if err = graphio.WriteNodeList(filepath.Join(d.BasePath, d.NodeFile), labels); err != nil {
				return err
			}

			width := graphio.FormatWidth(s.Timestamps - 1)
			for t := 0; t < s.Timestamps; t++ {
				g, err := idx.NewGraph()
				if err != nil {
					return err
				}
				bopts := []builder.BuilderOption{builder.WithSeed(s.Seed + int64(t))}
				if err = builder.Apply(g, bopts, builder.RandomSparse(s.Probability)); err != nil {
					return err
				}
				name := fmt.Sprintf("%0*d.csv", width, t)
				if err = graphio.WriteEdgeList(filepath.Join(d.BasePath, d.OriginFolder, name), g, idx); err != nil {
					return err
				}
				a.logger.Debug("wrote snapshot", "file", name, "edges", g.EdgeCount())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d nodes, %d timestamps to %s\n",
				s.Nodes, s.Timestamps, filepath.Join(d.BasePath, d.OriginFolder))

			return nil
		},
	}
	ds.register(cmd)
	cmd.Flags().IntVar(&nodes, "n", 0, "node count")
	cmd.Flags().IntVar(&timestamps, "timestamps", 0, "number of snapshots")
	cmd.Flags().Float64Var(&prob, "p", 0, "edge probability")
	cmd.Flags().Int64Var(&seed, "seed", 0, "base random seed")

	return cmd
}
