package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/jandent/internal/configloader"
	"github.com/yaklabco/jandent/pkg/lint"
)

// Exit codes for jandent.
const (
	// ExitSuccess indicates successful execution with no findings.
	ExitSuccess = 0

	// ExitFindings indicates lint completed and reported findings.
	ExitFindings = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrFindingsPresent signals that lint reported findings. It carries no
	// message worth logging; it only selects the exit code.
	ErrFindingsPresent = errors.New("findings present")

	// ErrUsage marks invalid flags or arguments.
	ErrUsage = errors.New("invalid usage")

	// ErrFilesFailed is returned when one or more files could not be processed.
	ErrFilesFailed = errors.New("some files could not be processed")
)

// ExitCodeFromError maps a command error to a process exit code.
func ExitCodeFromError(err error) int {
	var pathErr *fs.PathError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrFindingsPresent):
		return ExitFindings
	case errors.Is(err, ErrUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig), errors.Is(err, configloader.ErrMigration):
		return ExitConfigError
	case errors.Is(err, ErrFilesFailed), lint.IsPipelineError(err), errors.As(err, &pathErr):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
