package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ctgcn/config"
)

// app carries state shared by subcommands after the root pre-run.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ctgcn",
		Short: "k-core structure preprocessing for temporal graph embedding",
		Long: `ctgcn turns a temporal graph dataset (a node list plus one edge file per
timestamp) into per-timestamp k-core hierarchies stored as Matrix Market files.

Examples:
  ctgcn synth --base data/toy                 # write a random dataset
  ctgcn kcore --base data/toy --workers 4     # decompose every timestamp
  ctgcn inspect --base data/toy               # verify and summarize levels`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (defaults built in)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(newKCoreCmd(a), newSynthCmd(a), newInspectCmd(a))

	return root
}

// setup loads the config and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.configPath != "" {
		if a.cfg, err = config.Load(a.configPath); err != nil {
			return err
		}
	} else {
		a.cfg = config.Default()
	}
	if a.logLevel != "" {
		a.cfg.Log.Level = a.logLevel
	}
	level, err := config.ParseLevel(a.cfg.Log.Level)
	if err != nil {
		return err
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	slog.SetDefault(a.logger)

	return nil
}

// datasetFlags binds the dataset path overrides shared by subcommands.
type datasetFlags struct {
	base, origin, core, nodes string
}

func (f *datasetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.base, "base", "", "dataset base directory")
	cmd.Flags().StringVar(&f.origin, "origin", "", "edge-file folder under base")
	cmd.Flags().StringVar(&f.core, "core", "", "k-core output folder under base")
	cmd.Flags().StringVar(&f.nodes, "nodes", "", "node list file under base")
}

// apply overrides config values with explicitly set flags.
func (f *datasetFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("base") {
		cfg.Dataset.BasePath = f.base
	}
	if cmd.Flags().Changed("origin") {
		cfg.Dataset.OriginFolder = f.origin
	}
	if cmd.Flags().Changed("core") {
		cfg.Dataset.CoreFolder = f.core
	}
	if cmd.Flags().Changed("nodes") {
		cfg.Dataset.NodeFile = f.nodes
	}
}
