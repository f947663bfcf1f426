package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/hookfix/pkg/config"
)

// envVarPrefix is the prefix for all hookfix environment variables.
const envVarPrefix = "HOOKFIX_"

// LoadFromEnv applies environment variable overrides to the configuration.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v := os.Getenv(envVarPrefix + "THEME_BINDING"); v != "" {
		cfg.Bindings.Theme = v
	}
	if v := os.Getenv(envVarPrefix + "STYLES_BINDING"); v != "" {
		cfg.Bindings.Styles = v
	}
	if v := os.Getenv(envVarPrefix + "FILES"); v != "" {
		cfg.Files = splitList(v)
	}
	if v := os.Getenv(envVarPrefix + "EXCLUDE"); v != "" {
		cfg.Exclude = splitList(v)
	}
	if v := os.Getenv(envVarPrefix + "BACKUPS_ENABLED"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid boolean for %sBACKUPS_ENABLED: %q", envVarPrefix, v)
		}
		cfg.Backups.Enabled = enabled
	}

	return nil
}

// ListEnvVars returns the supported environment variables with descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		envVarPrefix + "THEME_BINDING":   "First destructured name of the theme hook line",
		envVarPrefix + "STYLES_BINDING":  "Binding name of the styles hook line",
		envVarPrefix + "FILES":           "Comma-separated list of files or glob patterns",
		envVarPrefix + "EXCLUDE":         "Comma-separated list of exclude patterns",
		envVarPrefix + "BACKUPS_ENABLED": "Create sidecar backups when fixing: true or false",
	}
}

// splitList parses a comma-separated value, trimming whitespace and
// dropping empty elements.
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
