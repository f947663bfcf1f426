package runner

import "github.com/yaklabco/hookfix/pkg/rewrite"

// Status classifies the outcome for a single file.
type Status string

const (
	// StatusFixed means the defect was found and the file was rewritten.
	StatusFixed Status = "fixed"

	// StatusWouldFix means the defect was found but not written
	// (dry-run or check mode).
	StatusWouldFix Status = "would-fix"

	// StatusUnchanged means the file contains no defect.
	StatusUnchanged Status = "unchanged"

	// StatusMissing means the listed file does not exist.
	StatusMissing Status = "missing"

	// StatusSkipped means the file was not touched for a reported reason,
	// e.g. it is not script source or it changed during processing.
	StatusSkipped Status = "skipped"

	// StatusError means reading or writing the file failed.
	StatusError Status = "error"
)

// FileOutcome is the per-file result of a run.
type FileOutcome struct {
	// Path is the file entry as listed (relative to the working directory).
	Path string

	// Status classifies what happened.
	Status Status

	// Blocks lists the repaired defect occurrences, when any.
	Blocks []rewrite.Block

	// Diff holds the unified diff in dry-run mode.
	Diff string

	// Reason explains a skip.
	Reason string

	// Err is set when Status is StatusError.
	Err error
}

// Stats aggregates a run.
type Stats struct {
	// FilesListed is the number of files after glob expansion.
	FilesListed int

	// FilesFixed counts files rewritten on disk.
	FilesFixed int

	// FilesWouldFix counts files that would change (dry-run/check).
	FilesWouldFix int

	// FilesUnchanged counts files with no defect.
	FilesUnchanged int

	// FilesMissing counts listed files that do not exist.
	FilesMissing int

	// FilesSkipped counts files skipped for other reasons.
	FilesSkipped int

	// FilesErrored counts files with read or write failures.
	FilesErrored int

	// BlocksRelocated is the total number of hook preambles moved.
	BlocksRelocated int
}

// Result is the overall outcome of a run, in input order.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasErrors reports whether any file failed with a hard error.
func (r *Result) HasErrors() bool {
	return r != nil && r.Stats.FilesErrored > 0
}

// HasPending reports whether any file would change but was not written.
// Used by check mode to drive the exit code.
func (r *Result) HasPending() bool {
	return r != nil && r.Stats.FilesWouldFix > 0
}

// accumulate folds one outcome into the result.
func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)
	r.Stats.BlocksRelocated += len(outcome.Blocks)

	switch outcome.Status {
	case StatusFixed:
		r.Stats.FilesFixed++
	case StatusWouldFix:
		r.Stats.FilesWouldFix++
	case StatusUnchanged:
		r.Stats.FilesUnchanged++
	case StatusMissing:
		r.Stats.FilesMissing++
	case StatusSkipped:
		r.Stats.FilesSkipped++
	case StatusError:
		r.Stats.FilesErrored++
	}
}
