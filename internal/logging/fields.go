// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldReason     = "reason"
	FieldConfig     = "config"
	FieldWorkingDir = "working_dir"

	// Run fields.
	FieldMode     = "mode"
	FieldWrite    = "write"
	FieldDryRun   = "dry_run"
	FieldJobs     = "jobs"
	FieldEncoding = "encoding"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesWithIssues = "files_with_issues"
	FieldFilesWritten    = "files_written"
	FieldFindingsTotal   = "findings_total"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldRule        = "rule"
	FieldOption      = "option"
	FieldKind        = "kind"
	FieldDescription = "description"
	FieldReports     = "reports"
)
