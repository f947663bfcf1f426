// Package config defines the configuration types for hookfix.
// These are pure data structures; loading and discovery live in
// internal/configloader.
package config

// Bindings names the hook bindings the engine recognizes. The defect shape
// is fixed at two hook lines; only the binding tokens are configurable.
type Bindings struct {
	// Theme is the first destructured name of the theme hook line.
	Theme string `yaml:"theme"`

	// Styles is the binding name of the styles hook line.
	Styles string `yaml:"styles"`
}

// BackupsConfig controls sidecar backups when fixing files.
type BackupsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Config is the root configuration for hookfix.
type Config struct {
	// Files lists the source files to process, in order. Entries may be
	// literal paths or doublestar glob patterns, relative to the working
	// directory.
	Files []string `yaml:"files"`

	// Exclude contains glob patterns removed from the expanded file list.
	Exclude []string `yaml:"exclude"`

	// Bindings configures the recognized hook binding tokens.
	Bindings Bindings `yaml:"bindings"`

	// Backups configures backup behavior when fixing.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (never persisted to config files).

	// DryRun shows diffs without writing files.
	DryRun bool `yaml:"-"`

	// Check reports files that would change without writing, for CI.
	Check bool `yaml:"-"`

	// NoBackups disables backup creation regardless of Backups.Enabled.
	NoBackups bool `yaml:"-"`
}

// New returns a Config with defaults applied.
func New() *Config {
	return &Config{
		Bindings: Bindings{
			Theme:  "colors",
			Styles: "styles",
		},
	}
}

// BackupsEnabled reports whether backups should be created for this run.
func (c *Config) BackupsEnabled() bool {
	return c.Backups.Enabled && !c.NoBackups
}
