package reporter

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownFormat is returned by ParseFormat for names it does not know.
var ErrUnknownFormat = errors.New("unknown format")

// Format names an output format.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatSummary Format = "summary"
	// FormatDiff is produced by convert --dry-run only.
	FormatDiff Format = "diff"
)

//nolint:gochecknoglobals // fixed list
var formats = []Format{FormatText, FormatJSON, FormatSummary, FormatDiff}

// ParseFormat maps a flag or config value to a Format. The empty string is text.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return FormatText, nil
	}
	format := Format(name)
	if !format.IsValid() {
		names := make([]string, len(formats))
		for i, f := range formats {
			names[i] = string(f)
		}
		return "", fmt.Errorf("%w %q; valid formats: %s", ErrUnknownFormat, name, strings.Join(names, ", "))
	}
	return format, nil
}

func (f Format) String() string {
	return string(f)
}

// IsValid reports whether f is one of the known formats.
func (f Format) IsValid() bool {
	return slices.Contains(formats, f)
}
