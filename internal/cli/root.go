// Package cli provides the Cobra command structure for hookfix.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/hookfix/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root hookfix command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:   "hookfix",
		Short: "Relocate misplaced React hook calls out of destructured props",
		Long: `hookfix repairs a recurring structural defect in React component files:
hook calls such as useTheme() and useStyles() pasted inside a component's
destructured props list instead of in the function body.

It scans each listed file for the defect shape, moves the hook lines to
just after the parameter-list closer, and writes the file back atomically.
Everything outside a matched block is preserved byte for byte, and running
hookfix twice is always a no-op.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newFixCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
