package config

import "slices"

// FullWidthSpace is the ideographic space used for indentation and padding.
const FullWidthSpace = "　"

// TargetChars holds the character tables rules test membership against.
//
// Entries are placed inside regular-expression character classes verbatim.
// A literal "." is the only entry that is escaped; entries containing other
// metacharacters such as "]", "^", "-" or "\" produce undefined matching.
type TargetChars struct {
	// Replace is applied literally to every line before any rule runs.
	Replace *ReplaceTable `yaml:"replace,omitempty" toml:"replace,omitempty"`

	// ForbidConsecChars may not repeat back to back.
	ForbidConsecChars []string `yaml:"forbid_consec_chars,omitempty" toml:"forbid_consec_chars,omitempty"`

	LeftBrackets  []string `yaml:"left_brackets,omitempty" toml:"left_brackets,omitempty"`
	RightBrackets []string `yaml:"right_brackets,omitempty" toml:"right_brackets,omitempty"`
	Puncs         []string `yaml:"puncs,omitempty" toml:"puncs,omitempty"`
	Exclams       []string `yaml:"exclams,omitempty" toml:"exclams,omitempty"`
	Dashes        []string `yaml:"dashes,omitempty" toml:"dashes,omitempty"`
	Leaders       []string `yaml:"leaders,omitempty" toml:"leaders,omitempty"`
	Spaces        []string `yaml:"spaces,omitempty" toml:"spaces,omitempty"`

	// Newline joins converted lines.
	Newline string `yaml:"newline,omitempty" toml:"newline,omitempty"`
}

// DefaultTargetChars returns the built-in tables with an empty replace table.
func DefaultTargetChars() TargetChars {
	return TargetChars{
		Replace:           NewReplaceTable(),
		ForbidConsecChars: []string{"を", "ん", "っ", "ゃ", "ゅ", "ょ"},
		LeftBrackets:      []string{"「", "『", "【", "［", "《", "〈"},
		RightBrackets:     []string{"」", "』", "】", "］", "》", "〉"},
		Puncs:             []string{"、", "。"},
		Exclams:           []string{"！", "？"},
		Dashes:            []string{"―"},
		Leaders:           []string{"…", "‥"},
		Spaces:            []string{" ", FullWidthSpace},
		Newline:           "\n",
	}
}

// Clone returns a deep copy.
func (t TargetChars) Clone() TargetChars {
	return TargetChars{
		Replace:           t.Replace.Clone(),
		ForbidConsecChars: slices.Clone(t.ForbidConsecChars),
		LeftBrackets:      slices.Clone(t.LeftBrackets),
		RightBrackets:     slices.Clone(t.RightBrackets),
		Puncs:             slices.Clone(t.Puncs),
		Exclams:           slices.Clone(t.Exclams),
		Dashes:            slices.Clone(t.Dashes),
		Leaders:           slices.Clone(t.Leaders),
		Spaces:            slices.Clone(t.Spaces),
		Newline:           t.Newline,
	}
}

func (t *TargetChars) registerEntries(entries []ReplaceEntry) {
	if len(entries) == 0 {
		return
	}
	if t.Replace == nil {
		t.Replace = NewReplaceTable()
	}
	for _, entry := range entries {
		t.Replace.Set(entry.From, entry.To)
	}
}
