// Package runner orchestrates the per-file fix batch. Files are processed
// strictly in list order, one at a time; a failure on one file never aborts
// the rest of the batch.
package runner

// Options controls a fix run.
type Options struct {
	// Files is the ordered list of entries to process. An entry is either a
	// literal path or a doublestar glob pattern, relative to WorkingDir.
	Files []string

	// WorkingDir is the base directory for relative entries and glob
	// expansion. Defaults to the process working directory.
	WorkingDir string

	// Exclude contains glob patterns removed from the expanded list.
	Exclude []string

	// DryRun renders diffs instead of writing files.
	DryRun bool

	// Check reports files that would change without writing them.
	Check bool

	// Backup creates a sidecar backup before each write.
	Backup bool
}
