package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/hookfix/internal/configloader"
	"github.com/yaklabco/hookfix/internal/logging"
	"github.com/yaklabco/hookfix/internal/ui/pretty"
	"github.com/yaklabco/hookfix/pkg/config"
	"github.com/yaklabco/hookfix/pkg/rewrite"
	"github.com/yaklabco/hookfix/pkg/runner"
)

type fixFlags struct {
	dryRun    bool
	check     bool
	noBackups bool
	exclude   []string
	summary   bool
}

func newFixCommand() *cobra.Command {
	flags := &fixFlags{}

	cmd := &cobra.Command{
		Use:   "fix [files...]",
		Short: "Relocate misplaced hook calls in the listed files",
		Long:  fixLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "show diffs without writing files")
	cmd.Flags().BoolVar(&flags.check, "check", false, "report files that would change; exit 2 if any")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "disable backup creation when fixing")
	cmd.Flags().StringSliceVar(&flags.exclude, "exclude", nil, "glob patterns to exclude from the file list")
	cmd.Flags().BoolVar(&flags.summary, "summary", false, "print a detailed summary table")

	return cmd
}

const fixLongDescription = `Relocate misplaced hook calls in the listed files.

Files are taken from the command line when given, otherwise from the
files list in .hookfix.yaml. Entries may be literal paths or doublestar
glob patterns, and are processed strictly in list order. Files that do
not exist are reported as missing without aborting the batch.

Examples:
  hookfix fix                          # Fix the configured file list
  hookfix fix src/Card.tsx             # Fix a single file
  hookfix fix 'src/**/*.tsx'           # Fix a glob pattern
  hookfix fix --dry-run                # Show diffs without writing
  hookfix fix --check                  # CI gate: exit 2 if fixes pending
  hookfix fix --no-backups             # Skip .hookfix.bak sidecars`

func runFix(cmd *cobra.Command, args []string, flags *fixFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	// Command-line values override the config file.
	cliCfg := config.New()
	cliCfg.Files = args
	cliCfg.Exclude = flags.exclude
	cliCfg.DryRun = flags.dryRun
	cliCfg.Check = flags.check
	cliCfg.NoBackups = flags.noBackups

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(ErrConfigInvalid, err)
	}

	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if loadResult.LoadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, loadResult.LoadedFrom)
	}

	logger.Debug("starting fix run",
		logging.FieldFiles, cfg.Files,
		logging.FieldWorkingDir, workDir,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldCheck, cfg.Check,
		logging.FieldBackup, cfg.BackupsEnabled(),
	)

	rewriter := rewrite.New(rewrite.Options{
		ThemeBinding:  cfg.Bindings.Theme,
		StylesBinding: cfg.Bindings.Styles,
	})

	result, err := runner.New(rewriter).Run(ctx, runner.Options{
		Files:      cfg.Files,
		WorkingDir: workDir,
		Exclude:    cfg.Exclude,
		DryRun:     cfg.DryRun,
		Check:      cfg.Check,
		Backup:     cfg.BackupsEnabled(),
	})
	if err != nil {
		return errors.Join(errors.New("fix run failed"), err)
	}

	logger.Debug("fix run complete",
		logging.FieldFilesListed, result.Stats.FilesListed,
		logging.FieldFilesFixed, result.Stats.FilesFixed,
		logging.FieldBlocksRelocated, result.Stats.BlocksRelocated,
		logging.FieldFilesMissing, result.Stats.FilesMissing,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
	)

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, out))

	for _, outcome := range result.Files {
		fmt.Fprint(out, styles.FormatOutcome(outcome))
		if outcome.Diff != "" {
			fmt.Fprint(out, styles.FormatDiff(outcome.Diff))
		}
	}

	if flags.summary {
		fmt.Fprint(out, styles.FormatSummary(result.Stats))
	} else {
		fmt.Fprintln(out, styles.FormatSummaryOneLine(result.Stats))
	}

	if result.HasErrors() {
		return ErrFilesErrored
	}
	if cfg.Check && result.HasPending() {
		return ErrFixPending
	}

	return nil
}
