package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldWorkingDir = "working_dir"

	// Formatting fields.
	FieldPass    = "pass"
	FieldCursor  = "cursor"
	FieldWrite   = "write"
	FieldCheck   = "check"
	FieldJobs    = "jobs"
	FieldChanged = "changed"

	// Upload fields.
	FieldURL    = "url"
	FieldBucket = "bucket"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesChanged    = "files_changed"
	FieldFilesSkipped    = "files_skipped"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
