// Package config loads the YAML run configuration of the ctgcn command and
// translates it into library options.
//
//	dataset:
//	  base_path: data/enron
//	  origin_folder: 1.format
//	  core_folder: 2.kcore
//	  node_file: nodes_set/nodes.csv
//	  separator: "\t"
//	  header: true
//	structure:
//	  workers: 4
//	synth:
//	  nodes: 100
//	  timestamps: 5
//	  probability: 0.05
//	  seed: 1
//	log:
//	  level: info
//
// Missing keys keep their Default values.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ctgcn/structure"
)

// ErrInvalidConfig is returned by Validate (and Load) for unusable values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root document.
type Config struct {
	Dataset   Dataset   `yaml:"dataset"`
	Structure Structure `yaml:"structure"`
	Synth     Synth     `yaml:"synth"`
	Log       Log       `yaml:"log"`
}

// Dataset locates the input files.
type Dataset struct {
	BasePath     string `yaml:"base_path"`
	OriginFolder string `yaml:"origin_folder"`
	CoreFolder   string `yaml:"core_folder"`
	NodeFile     string `yaml:"node_file"`
	Separator    string `yaml:"separator"`
	Header       bool   `yaml:"header"`
}

// Structure tunes the k-core generator.
type Structure struct {
	// Workers ≤ 0 runs timestamps sequentially.
	Workers int `yaml:"workers"`
}

// Synth describes a generated random temporal dataset.
type Synth struct {
	Nodes       int     `yaml:"nodes"`
	Timestamps  int     `yaml:"timestamps"`
	Probability float64 `yaml:"probability"`
	Seed        int64   `yaml:"seed"`
}

// Log selects the log level: debug, info, warn or error.
type Log struct {
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Dataset: Dataset{
			BasePath:     ".",
			OriginFolder: "1.format",
			CoreFolder:   "2.kcore",
			NodeFile:     "nodes_set/nodes.csv",
			Separator:    "\t",
			Header:       true,
		},
		Structure: Structure{Workers: -1},
		Synth:     Synth{Nodes: 100, Timestamps: 5, Probability: 0.05, Seed: 1},
		Log:       Log{Level: "info"},
	}
}

// Load reads path over Default and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes cfg as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// Validate reports every problem at once, joined under ErrInvalidConfig.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Dataset.NodeFile) == "" {
		problems = append(problems, "dataset.node_file is empty")
	}
	if strings.TrimSpace(c.Dataset.OriginFolder) == "" {
		problems = append(problems, "dataset.origin_folder is empty")
	}
	if strings.TrimSpace(c.Dataset.CoreFolder) == "" {
		problems = append(problems, "dataset.core_folder is empty")
	}
	if c.Dataset.Separator == "" {
		problems = append(problems, "dataset.separator is empty")
	}
	if c.Synth.Nodes < 2 {
		problems = append(problems, fmt.Sprintf("synth.nodes=%d, need at least 2", c.Synth.Nodes))
	}
	if c.Synth.Timestamps < 1 {
		problems = append(problems, fmt.Sprintf("synth.timestamps=%d, need at least 1", c.Synth.Timestamps))
	}
	if c.Synth.Probability < 0 || c.Synth.Probability > 1 {
		problems = append(problems, fmt.Sprintf("synth.probability=%g outside [0,1]", c.Synth.Probability))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, err.Error())
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}

// ParseLevel maps a level name onto slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", s, err)
	}

	return l, nil
}

// StructureConfig returns the generator's dataset paths.
func (c *Config) StructureConfig() structure.Config {
	return structure.Config{
		BasePath:     c.Dataset.BasePath,
		OriginFolder: c.Dataset.OriginFolder,
		CoreFolder:   c.Dataset.CoreFolder,
		NodeFile:     c.Dataset.NodeFile,
	}
}

// GeneratorOptions returns the parsing options implied by the dataset section.
func (c *Config) GeneratorOptions() []structure.Option {
	return []structure.Option{
		structure.WithSeparator(c.Dataset.Separator),
		structure.WithHeader(c.Dataset.Header),
	}
}
