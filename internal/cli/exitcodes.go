package cli

import "errors"

// Exit codes for hookfix.
const (
	// ExitSuccess indicates successful execution with nothing left to do.
	ExitSuccess = 0

	// ExitFileErrors indicates the run completed but some files failed.
	ExitFileErrors = 1

	// ExitCheckPending indicates check mode found files that would change.
	ExitCheckPending = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitIOError indicates file I/O errors outside the per-file pipeline.
	ExitIOError = 74
)

// Sentinel errors that carry an exit code out of command execution.
// Cobra surfaces them from RunE; main maps them via ExitCodeForError.
var (
	// ErrFilesErrored signals that one or more files failed to process.
	ErrFilesErrored = errors.New("some files failed to process")

	// ErrFixPending signals that check mode found pending changes.
	ErrFixPending = errors.New("files need fixing")

	// ErrConfigInvalid signals a configuration loading or validation failure.
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrIO signals an I/O failure outside the per-file pipeline.
	ErrIO = errors.New("i/o failure")
)

// ExitCodeForError maps a command error to the process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFixPending):
		return ExitCheckPending
	case errors.Is(err, ErrConfigInvalid):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	default:
		return ExitFileErrors
	}
}
