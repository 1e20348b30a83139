// Package numeral rewrites ASCII digit runs as kanji numerals.
//
// Three notations are supported. Simple substitutes each digit. Moderate
// groups the integer part by myriads and attaches a large-number unit to
// every group above the ones group. Verbose spells out every position with
// its unit, skipping zeros. The unit list ends at 無量大数; larger numbers
// wrap around to 万 again.
package numeral

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Mode selects the notation density.
type Mode string

const (
	ModeSimple   Mode = "simple"
	ModeModerate Mode = "moderate"
	ModeVerbose  Mode = "verbose"
	// ModeDictate reads zero aloud. It is not implemented and renders as ModeSimple.
	ModeDictate Mode = "dictate"
)

// Glyphs selects the digit glyph table.
type Glyphs string

const (
	GlyphsModern Glyphs = "modern"
	// GlyphsRetro uses the forms written on legal and financial documents.
	GlyphsRetro Glyphs = "retro"
)

var (
	// ErrUnknownMode is returned for an unrecognized notation mode.
	ErrUnknownMode = errors.New("unknown numeral mode")

	// ErrUnknownGlyphs is returned for an unrecognized glyph table.
	ErrUnknownGlyphs = errors.New("unknown numeral glyphs")
)

// myriadUnits are the large-number units, one per four digits above the ones group.
//
//nolint:gochecknoglobals // Fixed lookup table.
var myriadUnits = []string{
	"万", "億", "兆", "京", "垓", "𥝱", "穣", "溝",
	"正", "載", "極", "恒河沙", "阿僧祇", "那由他", "不可思議", "無量大数",
}

// placeUnits are the units inside one myriad group, ones first.
//
//nolint:gochecknoglobals // Fixed lookup table.
var placeUnits = []string{"", "十", "百", "千"}

//nolint:gochecknoglobals // Fixed lookup tables.
var glyphTables = map[Glyphs]map[rune]string{
	GlyphsModern: {
		'0': "〇", '1': "一", '2': "二", '3': "三", '4': "四",
		'5': "五", '6': "六", '7': "七", '8': "八", '9': "九",
		'.': "・",
	},
	GlyphsRetro: {
		'0': "零", '1': "壱", '2': "弐", '3': "参", '4': "肆",
		'5': "伍", '6': "陸", '7': "漆", '8': "捌", '9': "玖",
		'.': "・",
		'十': "拾", '百': "佰", '千': "仟", '万': "萬",
	},
}

// runPattern matches digit groups, each optionally followed by one "." or ",".
const runPattern = `(?:[0-9]+[.,]?)+`

// ParseMode validates a mode name. The empty string selects ModeSimple.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case "":
		return ModeSimple, nil
	case ModeSimple, ModeModerate, ModeVerbose, ModeDictate:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// ParseGlyphs validates a glyph table name. The empty string selects GlyphsModern.
func ParseGlyphs(s string) (Glyphs, error) {
	switch g := Glyphs(strings.ToLower(s)); g {
	case "":
		return GlyphsModern, nil
	case GlyphsModern, GlyphsRetro:
		return g, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownGlyphs, s)
	}
}

// Converter renders digit runs in one mode and glyph table.
// A Converter is immutable and safe for concurrent use.
type Converter struct {
	mode   Mode
	glyphs map[rune]string
	run    *regexp2.Regexp
}

// New creates a Converter.
func New(mode Mode, glyphs Glyphs) (*Converter, error) {
	mode, err := ParseMode(string(mode))
	if err != nil {
		return nil, err
	}
	glyphs, err = ParseGlyphs(string(glyphs))
	if err != nil {
		return nil, err
	}
	return &Converter{
		mode:   mode,
		glyphs: glyphTables[glyphs],
		run:    regexp2.MustCompile(runPattern, regexp2.None),
	}, nil
}

// Convert rewrites every digit run in text and leaves everything else untouched.
func (c *Converter) Convert(text string) (string, error) {
	out, err := c.run.ReplaceFunc(text, func(m regexp2.Match) string {
		return c.Number(m.String())
	}, -1, -1)
	if err != nil {
		return "", fmt.Errorf("convert numerals: %w", err)
	}
	return out, nil
}

// Number renders a single digit run such as "1,234.5".
// Commas are dropped before the mode is applied.
func (c *Converter) Number(run string) string {
	digits := strings.ReplaceAll(run, ",", "")
	switch c.mode {
	case ModeModerate:
		return c.Moderate(digits)
	case ModeVerbose:
		return c.Verbose(digits)
	default:
		return c.Simple(digits)
	}
}

// Simple substitutes glyphs rune by rune.
func (c *Converter) Simple(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		if g, ok := c.glyphs[r]; ok {
			b.WriteString(g)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Moderate groups the integer part by four digits and suffixes every group
// above the ones group with a myriad unit. Only the first "." splits off the
// fraction; later dots stay in the fraction text.
func (c *Converter) Moderate(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var result string
	if len(intPart) <= 4 {
		result = intPart
	} else {
		for group, end := 0, len(intPart); end > 0; group, end = group+1, end-4 {
			chunk := intPart[max(end-4, 0):end]
			if group == 0 {
				result = chunk
				continue
			}
			result = chunk + myriadUnit(group) + result
		}
	}

	if hasFrac {
		result += "." + frac
	}
	return c.Simple(result)
}

// Verbose writes every non-zero position with its unit. A 1 in the tens,
// hundreds or thousands place is written as the unit alone. Zero positions
// emit nothing, so a myriad unit appears only when the ones place of its
// group is non-zero, and an all-zero integer part is empty.
func (c *Converter) Verbose(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for pos := len(intPart) - 1; pos >= 0; pos-- {
		digit := intPart[len(intPart)-1-pos]
		if digit == '0' {
			continue
		}
		place, group := pos%4, pos/4
		if digit != '1' || place == 0 {
			b.WriteByte(digit)
		}
		b.WriteString(placeUnits[place])
		if place == 0 && group > 0 {
			b.WriteString(myriadUnit(group))
		}
	}

	result := b.String()
	if hasFrac {
		result += "." + frac
	}
	return c.Simple(result)
}

// myriadUnit returns the unit for the given group, counting the ones group as 0.
func myriadUnit(group int) string {
	return myriadUnits[(group-1)%len(myriadUnits)]
}
