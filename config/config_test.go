package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/ctgcn/config"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "\t", cfg.Dataset.Separator)
	require.Equal(t, -1, cfg.Structure.Workers)
	require.Len(t, cfg.GeneratorOptions(), 2)
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	p := filepath.Join(t.TempDir(), "ctgcn.yaml")
	require.NoError(t, os.WriteFile(p, []byte(`
dataset:
  base_path: data/enron
  separator: ","
structure:
  workers: 4
log:
  level: DEBUG
`), 0o644))

	cfg, err := config.Load(p)
	require.NoError(t, err)
	require.Equal(t, "data/enron", cfg.Dataset.BasePath)
	require.Equal(t, ",", cfg.Dataset.Separator)
	require.Equal(t, "1.format", cfg.Dataset.OriginFolder)
	require.True(t, cfg.Dataset.Header)
	require.Equal(t, 4, cfg.Structure.Workers)
	require.Equal(t, 100, cfg.Synth.Nodes)

	sc := cfg.StructureConfig()
	require.Equal(t, "data/enron", sc.BasePath)
	require.Equal(t, "nodes_set/nodes.csv", sc.NodeFile)

	lvl, err := config.ParseLevel(cfg.Log.Level)
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := config.Load(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("dataset: [1, 2"), 0o644))
	_, err = config.Load(bad)
	require.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("synth:\n  probability: 2\nlog:\n  level: loud\n"), 0o644))
	_, err = config.Load(invalid)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.Contains(t, err.Error(), "synth.probability")
	require.Contains(t, err.Error(), "log.level")
}

func TestValidate_ReportsAll(t *testing.T) {
	cfg := config.Default()
	cfg.Dataset.NodeFile = " "
	cfg.Dataset.Separator = ""
	cfg.Synth.Nodes = 1
	cfg.Synth.Timestamps = 0

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	for _, want := range []string{"node_file", "separator", "synth.nodes", "synth.timestamps"} {
		require.Contains(t, err.Error(), want)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.yaml")
	cfg := config.Default()
	cfg.Synth.Seed = 42
	require.NoError(t, cfg.Save(p))

	back, err := config.Load(p)
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}
