package configloader

import (
	"fmt"
	"regexp"

	"github.com/yaklabco/hookfix/pkg/config"
)

// bindingToken restricts binding names to plain JS identifiers; anything
// else would be spliced into the engine's match patterns.
//
//nolint:gochecknoglobals // Compiled once.
var bindingToken = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// Validate checks the resolved configuration. It returns warnings for
// conditions worth surfacing and an error for configurations that cannot
// be run.
func Validate(cfg *config.Config) ([]string, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}

	if !bindingToken.MatchString(cfg.Bindings.Theme) {
		return nil, fmt.Errorf("bindings.theme %q is not a valid identifier", cfg.Bindings.Theme)
	}
	if !bindingToken.MatchString(cfg.Bindings.Styles) {
		return nil, fmt.Errorf("bindings.styles %q is not a valid identifier", cfg.Bindings.Styles)
	}

	var warnings []string
	if len(cfg.Files) == 0 {
		warnings = append(warnings, "no files configured; pass paths as arguments or list them in .hookfix.yaml")
	}
	if cfg.DryRun && cfg.Check {
		warnings = append(warnings, "--dry-run implies --check; diffs will be shown")
	}

	return warnings, nil
}
