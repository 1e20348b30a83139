package lint

// Kind classifies a finding.
type Kind string

const (
	KindMissingLineHeadSpace                 Kind = "MissingLineHeadSpace"
	KindSingleUsedSpecificChar               Kind = "SingleUsedSpecificChar"
	KindConsecutiveSpecificChar              Kind = "ConsecutiveSpecificChar"
	KindSpecificCharAfterOtherSpecificChars  Kind = "SpecificCharAfterOtherSpecificChars"
	KindSpecificCharBeforeOtherSpecificChars Kind = "SpecificCharBeforeOtherSpecificChars"
	KindSpecificCharAfterDisallowedChar      Kind = "SpecificCharAfterDisallowedChar"
)

//nolint:gochecknoglobals // Static message table.
var kindMessages = map[Kind]string{
	KindMissingLineHeadSpace:                 "line does not start with an indent",
	KindSingleUsedSpecificChar:               "character should be doubled",
	KindConsecutiveSpecificChar:              "character repeats",
	KindSpecificCharAfterOtherSpecificChars:  "character follows a mark it should not follow",
	KindSpecificCharBeforeOtherSpecificChars: "character precedes a mark it should not precede",
	KindSpecificCharAfterDisallowedChar:      "mark should be followed by a space",
}

// Message returns a short human-readable description of the kind.
func (k Kind) Message() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return string(k)
}

// Finding is one detected violation.
//
// Line is 1-based. ColumnBegin and ColumnEnd are 0-based rune offsets into
// the unmodified line, end exclusive.
type Finding struct {
	Line        int    `json:"line"`
	ColumnBegin int    `json:"columnBegin"`
	ColumnEnd   int    `json:"columnEnd"`
	Detected    string `json:"detected"`
	Kind        Kind   `json:"kind"`

	// RuleID and RuleName identify the rule that produced the finding.
	RuleID   string `json:"ruleId,omitempty"`
	RuleName string `json:"ruleName,omitempty"`
}

// Message returns the description of the finding's kind.
func (f Finding) Message() string {
	return f.Kind.Message()
}
