package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Parse decodes YAML content into a Config with defaults applied.
// Unknown keys are rejected so typos fail loudly instead of being ignored.
func Parse(content []byte) (*Config, error) {
	cfg := New()

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty config file: defaults only.
			return cfg, nil
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Re-apply binding defaults when the config names only one of them.
	if cfg.Bindings.Theme == "" {
		cfg.Bindings.Theme = "colors"
	}
	if cfg.Bindings.Styles == "" {
		cfg.Bindings.Styles = "styles"
	}

	return cfg, nil
}

// Template is the starter configuration written by `hookfix init`.
const Template = `# hookfix configuration
#
# Files are processed in order. Entries may be literal paths or
# doublestar glob patterns, relative to this file's directory.
files:
  - "src/components/**/*.tsx"
  - "src/features/**/*.tsx"

# Glob patterns removed from the expanded file list.
exclude:
  - "**/*.test.tsx"
  - "**/__snapshots__/**"

# Hook binding tokens the engine recognizes. The defect shape is always
# two hook lines: a destructured theme binding and a styles binding.
bindings:
  theme: colors
  styles: styles

# Keep a .hookfix.bak sidecar of each file before it is rewritten.
backups:
  enabled: false
`
