// Package configloader resolves the hookfix configuration: project config
// discovery, environment overrides, and CLI merging, in ascending
// precedence.
package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yaklabco/hookfix/pkg/config"
)

// projectConfigNames are the file names probed in the working directory,
// in order of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var projectConfigNames = []string{".hookfix.yaml", ".hookfix.yml", "hookfix.yaml"}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory searched for a project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// When set, project discovery is skipped and a missing file is an error.
	ExplicitPath string

	// IgnoreEnv skips HOOKFIX_* environment overrides.
	IgnoreEnv bool

	// CLIConfig carries CLI flag values; highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// LoadedFrom is the config file that was loaded, empty when none.
	LoadedFrom string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the configuration for a run.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	result := &LoadResult{}

	path, err := resolvePath(opts)
	if err != nil {
		return nil, err
	}

	cfg := config.New()
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		cfg, err = config.Parse(content)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		result.LoadedFrom = path
	}

	if !opts.IgnoreEnv {
		if err := LoadFromEnv(cfg); err != nil {
			return nil, fmt.Errorf("load environment: %w", err)
		}
	}

	mergeCLI(cfg, opts.CLIConfig)

	warnings, err := Validate(cfg)
	if err != nil {
		return nil, err
	}
	result.Warnings = append(result.Warnings, warnings...)

	result.Config = cfg
	return result, nil
}

// resolvePath picks the config file to load: the explicit path when given,
// otherwise the first project config found in the working directory. An
// empty return means defaults only.
func resolvePath(opts LoadOptions) (string, error) {
	if opts.ExplicitPath != "" {
		if _, err := os.Stat(opts.ExplicitPath); err != nil {
			return "", fmt.Errorf("config file %s: %w", opts.ExplicitPath, err)
		}
		return opts.ExplicitPath, nil
	}

	workDir := opts.WorkingDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	for _, name := range projectConfigNames {
		candidate := filepath.Join(workDir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", nil
}

// mergeCLI overlays CLI flag values onto the configuration.
func mergeCLI(cfg, cli *config.Config) {
	if cli == nil {
		return
	}
	if len(cli.Files) > 0 {
		cfg.Files = cli.Files
	}
	if len(cli.Exclude) > 0 {
		cfg.Exclude = append(cfg.Exclude, cli.Exclude...)
	}
	cfg.DryRun = cli.DryRun
	cfg.Check = cli.Check
	cfg.NoBackups = cli.NoBackups
}
