package fix

import "strings"

// ApplyEdits applies a sorted, validated slice of edits to line.
// Edits must be prepared with PrepareEdits before calling.
func ApplyEdits(line []rune, edits []TextEdit) string {
	if len(edits) == 0 {
		return string(line)
	}

	var out strings.Builder
	out.Grow(len(line) * 3)

	cursor := 0
	for _, e := range edits {
		out.WriteString(string(line[cursor:e.Start]))
		out.WriteString(e.NewText)
		cursor = e.End
	}
	out.WriteString(string(line[cursor:]))

	return out.String()
}

// Apply prepares edits against line and applies them.
func Apply(line string, edits []TextEdit) (string, error) {
	if len(edits) == 0 {
		return line, nil
	}

	runes := []rune(line)
	prepared, err := PrepareEdits(edits, len(runes))
	if err != nil {
		return "", err
	}
	return ApplyEdits(runes, prepared), nil
}
