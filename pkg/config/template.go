package config

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes the character tables.
	// If false, generates only toggles and numeral settings.
	Full bool

	// Format is the output format: "yaml" or "toml".
	Format string
}

// optionDescriptions documents each toggle for templates and listings.
//
//nolint:gochecknoglobals // Static documentation table.
var optionDescriptions = map[OptionName]string{
	OptionConvertNumerals:           "Rewrite ASCII digit runs as kanji numerals; also maps full-width digits to ASCII first",
	OptionInsertLineHeadSpace:       "Indent lines that do not start with a space or an opening bracket",
	OptionRemovePuncBeforeBrackets:  "Drop punctuation placed right before a closing bracket",
	OptionUnifyDoubleDash:           "Double single dashes",
	OptionUnifyDoubleLeaders:        "Double single ellipsis leaders",
	OptionRemoveConsecPunc:          "Collapse runs of punctuation to the first mark",
	OptionRemoveExclamAfterPunc:     "Drop punctuation placed right after exclamation or question marks",
	OptionInsertSpaceAfterExclam:    "Put a full-width space after exclamation or question marks inside a sentence",
	OptionRemoveTrailingSpaces:      "Strip trailing half-width and full-width spaces",
	OptionRemoveConsecSpecificChars: "Collapse repeats of the same forbidden character",
	OptionConvertHalfExclam:         "Map half-width ! and ? to their full-width forms",
}

// Description returns a one-line explanation of the toggle.
func (o OptionName) Description() string {
	return optionDescriptions[o]
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	switch opts.Format {
	case "", "yaml", "yml":
		return generateYAMLTemplate(opts)
	case "toml":
		return generateTOMLTemplate(opts)
	default:
		return nil, fmt.Errorf("unknown template format %q", opts.Format)
	}
}

func templateConfig() *Config {
	cfg := NewConfig()
	// Derived entries are registered at load time from the toggles; writing
	// them out would pin them even after the toggle is turned off.
	cfg.Chars.Replace = NewReplaceTable()
	return cfg
}

func generateYAMLTemplate(opts TemplateOptions) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(DefaultTemplateHeader())
	buf.WriteString("\n\noptions:\n")
	for _, name := range AllOptions() {
		fmt.Fprintf(&buf, "  # %s\n", wrapComment(name.Description(), commentWrapWidth))
		fmt.Fprintf(&buf, "  %s: %t\n", name, DefaultOption(name))
	}

	buf.WriteString(`
numeral:
  # simple, moderate, verbose or dictate
  mode: simple
  # modern or retro
  glyphs: modern

# Input encoding: utf-8, shift_jis, euc-jp or iso-2022-jp
encoding: utf-8

# Extensions picked up when a directory is given
extensions:
  - .txt
  - .md

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"

backups:
  enabled: true
  mode: sidecar
`)

	if !opts.Full {
		return buf.Bytes(), nil
	}

	var chars bytes.Buffer
	encoder := yaml.NewEncoder(&chars)
	encoder.SetIndent(YAMLIndent())
	if err := encoder.Encode(struct {
		Chars TargetChars `yaml:"chars"`
	}{Chars: templateConfig().Chars}); err != nil {
		return nil, fmt.Errorf("encode chars: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	buf.WriteString("\n# Character tables. A table given here replaces the default as a whole.\n")
	buf.Write(chars.Bytes())

	return buf.Bytes(), nil
}

func generateTOMLTemplate(opts TemplateOptions) ([]byte, error) {
	cfg := templateConfig()
	if !opts.Full {
		cfg.Chars = TargetChars{}
	}
	body, err := cfg.ToTOML()
	if err != nil {
		return nil, err
	}
	return WithHeader(DefaultTemplateHeader(), body), nil
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n  # ")
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# jandent configuration
# See: https://github.com/yaklabco/jandent`
}
