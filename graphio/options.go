// SPDX-License-Identifier: MIT

package graphio

// DefaultSeparator is the field delimiter of edge files.
const DefaultSeparator = "\t"

// Option customizes edge-file parsing.
type Option func(*readConfig)

type readConfig struct {
	sep    string
	header bool
}

func newReadConfig(opts ...Option) readConfig {
	cfg := readConfig{sep: DefaultSeparator, header: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeparator sets the field delimiter. Panics on an empty separator.
func WithSeparator(sep string) Option {
	if sep == "" {
		panic("graphio: WithSeparator(\"\")")
	}
	return func(c *readConfig) { c.sep = sep }
}

// WithHeader controls whether the first non-blank line is skipped as a header.
// Default: true.
func WithHeader(skip bool) Option {
	return func(c *readConfig) { c.header = skip }
}
