package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/yaklabco/hookfix/pkg/fsutil"
	"github.com/yaklabco/hookfix/pkg/langdetect"
	"github.com/yaklabco/hookfix/pkg/rewrite"
)

// Runner drives the rewrite engine over a resolved file list.
type Runner struct {
	// Rewriter is the pure rewrite engine applied to each file.
	Rewriter *rewrite.Rewriter
}

// New creates a Runner around the given engine.
func New(rw *rewrite.Rewriter) *Runner {
	return &Runner{Rewriter: rw}
}

// Run resolves the file list and processes each file in order. Processing
// is deliberately sequential: the defect list is small and strict ordering
// keeps reporting deterministic. Per-file failures are recorded in the
// outcome, never returned.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Resolve(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesListed = len(files)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("run cancelled: %w", err)
		}
		result.accumulate(r.processFile(ctx, path, opts))
	}

	return result, nil
}

// processFile runs the full safety sequence for one file: read, guard,
// rewrite in memory, then (unless dry-run/check) race check, backup, and
// atomic write-back. The file on disk is only ever replaced wholesale.
func (r *Runner) processFile(ctx context.Context, path string, opts Options) FileOutcome {
	outcome := FileOutcome{Path: path}

	full := path
	if !filepath.IsAbs(full) && opts.WorkingDir != "" {
		full = filepath.Join(opts.WorkingDir, path)
	}

	content, snap, err := fsutil.Read(ctx, full)
	if err != nil {
		if errors.Is(err, fsutil.ErrNotFound) {
			outcome.Status = StatusMissing
			return outcome
		}
		outcome.Status = StatusError
		outcome.Err = err
		return outcome
	}

	if !langdetect.IsScript(path, content) {
		outcome.Status = StatusSkipped
		outcome.Reason = "not a JavaScript/TypeScript source file"
		return outcome
	}

	res := r.Rewriter.Rewrite(content)
	if !res.Changed {
		outcome.Status = StatusUnchanged
		return outcome
	}
	outcome.Blocks = res.Blocks

	if opts.DryRun || opts.Check {
		outcome.Status = StatusWouldFix
		if opts.DryRun {
			diff, err := unifiedDiff(path, content, res.Content)
			if err != nil {
				outcome.Status = StatusError
				outcome.Err = fmt.Errorf("render diff: %w", err)
				return outcome
			}
			outcome.Diff = diff
		}
		return outcome
	}

	modified, err := fsutil.Modified(ctx, snap)
	if err != nil {
		outcome.Status = StatusError
		outcome.Err = err
		return outcome
	}
	if modified {
		outcome.Status = StatusSkipped
		outcome.Reason = "file changed during processing"
		outcome.Blocks = nil
		return outcome
	}

	if opts.Backup {
		if _, err := fsutil.Backup(ctx, full); err != nil {
			outcome.Status = StatusError
			outcome.Err = fmt.Errorf("create backup: %w", err)
			return outcome
		}
	}

	if err := fsutil.WriteAtomic(ctx, full, res.Content, snap.Mode); err != nil {
		outcome.Status = StatusError
		outcome.Err = err
		return outcome
	}

	outcome.Status = StatusFixed
	return outcome
}
