// Package fix provides rune-offset text edits and line diffs for converted text.
package fix

// TextEdit replaces the runes [Start, End) of a line with NewText.
// Offsets always refer to the unedited line.
type TextEdit struct {
	// Start is the rune index where the edit begins (inclusive).
	Start int

	// End is the rune index where the edit ends (exclusive).
	End int

	// NewText is the replacement text.
	NewText string
}

// EditBuilder accumulates edits against one line. Its methods chain:
//
//	edits := fix.NewEditBuilder().Delete(3, 5).Insert(7, "　").Edits()
type EditBuilder struct {
	edits []TextEdit
}

// NewEditBuilder creates an empty EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{}
}

// Insert adds text before the rune at offset.
func (b *EditBuilder) Insert(offset int, text string) *EditBuilder {
	b.edits = append(b.edits, TextEdit{Start: offset, End: offset, NewText: text})
	return b
}

// Delete removes runes [start, end).
func (b *EditBuilder) Delete(start, end int) *EditBuilder {
	b.edits = append(b.edits, TextEdit{Start: start, End: end})
	return b
}

// Edits returns the accumulated edits in the order they were added.
func (b *EditBuilder) Edits() []TextEdit {
	return b.edits
}
