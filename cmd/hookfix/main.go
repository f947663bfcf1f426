// Package main is the entry point for the hookfix CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/hookfix/internal/cli"
	"github.com/yaklabco/hookfix/internal/logging"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.Execute()
	if err != nil {
		// ErrFixPending is just a signal for the exit code, not a failure
		// worth logging.
		if !errors.Is(err, cli.ErrFixPending) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
	}

	return cli.ExitCodeForError(err)
}
