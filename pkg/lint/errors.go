package lint

import "errors"

var (
	// ErrUnexpectedResult reports that a document pass produced a result of
	// the wrong shape for the requested mode. It indicates a bug, not bad input.
	ErrUnexpectedResult = errors.New("unexpected result")

	// ErrPatternCompile reports that a character table produced a pattern
	// that does not compile.
	ErrPatternCompile = errors.New("compile rule pattern")
)
