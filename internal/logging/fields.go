package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Run fields.
	FieldDryRun = "dry_run"
	FieldCheck  = "check"
	FieldBackup = "backup"

	// Statistics fields.
	FieldFilesListed     = "files_listed"
	FieldFilesFixed      = "files_fixed"
	FieldFilesMissing    = "files_missing"
	FieldFilesErrored    = "files_errored"
	FieldBlocksRelocated = "blocks_relocated"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
