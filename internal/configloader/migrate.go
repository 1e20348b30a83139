package configloader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/yaklabco/jandent/pkg/config"
)

// ErrMigration is returned when an arguments file cannot be converted.
var ErrMigration = errors.New("cannot migrate arguments file")

// MigrationResult contains the result of converting an arguments file.
type MigrationResult struct {
	// Config is the converted configuration. Its replace table holds only the
	// entries the file listed; toggle-derived entries are added at load time.
	Config *config.Config

	// Warnings contains non-fatal issues encountered during conversion.
	Warnings []string

	// SourcePath is the path to the original file.
	SourcePath string
}

// legacyChars mirrors the "chars" object of the JavaScript tool's arguments.
// "dashs" is the key that tool used.
type legacyChars struct {
	ReplaceStrings    json.RawMessage `json:"replaceStrings"`
	ForbidConsecChars []string        `json:"forbidConsecChars"`
	LeftBrackets      []string        `json:"leftBrackets"`
	RightBrackets     []string        `json:"rightBrackets"`
	Puncs             []string        `json:"puncs"`
	Exclams           []string        `json:"exclams"`
	Dashes            []string        `json:"dashs"`
	Leaders           []string        `json:"leaders"`
	Spaces            []string        `json:"spaces"`
	Newline           *string         `json:"newline"`
}

// ConvertArgsJSON converts a JSON (or JSONC) arguments object of the form
// {"options": {...}, "chars": {...}} into a configuration.
func ConvertArgsJSON(path string) (*MigrationResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := parseJSONC(content, &raw); err != nil {
		return nil, fmt.Errorf("%w: parse JSON: %w", ErrMigration, err)
	}

	result := &MigrationResult{SourcePath: path}
	cfg := config.NewConfig()
	cfg.Chars.Replace = config.NewReplaceTable()

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		switch key {
		case "options":
			if err := migrateOptions(cfg, raw[key], result); err != nil {
				return nil, err
			}
		case "chars":
			if err := migrateChars(cfg, raw[key], result); err != nil {
				return nil, err
			}
		case "$schema":
		default:
			result.Warnings = append(result.Warnings, fmt.Sprintf("unknown key %q; skipping", key))
		}
	}

	result.Config = cfg
	return result, nil
}

func migrateOptions(cfg *config.Config, data json.RawMessage, result *MigrationResult) error {
	var options map[string]any
	if err := json.Unmarshal(data, &options); err != nil {
		return fmt.Errorf("%w: options: %w", ErrMigration, err)
	}

	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		name, ok := ResolveOptionKey(nil, key)
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("unknown option %q; skipping", key))
			continue
		}
		enabled, ok := options[key].(bool)
		if !ok {
			result.Warnings = append(result.Warnings, fmt.Sprintf("option %q is not a boolean; skipping", key))
			continue
		}
		cfg.Options[name] = enabled
	}
	return nil
}

func migrateChars(cfg *config.Config, data json.RawMessage, result *MigrationResult) error {
	var chars legacyChars
	if err := json.Unmarshal(data, &chars); err != nil {
		return fmt.Errorf("%w: chars: %w", ErrMigration, err)
	}

	if len(chars.ReplaceStrings) > 0 {
		table, err := orderedReplaceTable(chars.ReplaceStrings)
		if err != nil {
			return fmt.Errorf("%w: chars.replaceStrings: %w", ErrMigration, err)
		}
		cfg.Chars.Replace = table
	}

	for _, pair := range []struct{ dst, src *[]string }{
		{&cfg.Chars.ForbidConsecChars, &chars.ForbidConsecChars},
		{&cfg.Chars.LeftBrackets, &chars.LeftBrackets},
		{&cfg.Chars.RightBrackets, &chars.RightBrackets},
		{&cfg.Chars.Puncs, &chars.Puncs},
		{&cfg.Chars.Exclams, &chars.Exclams},
		{&cfg.Chars.Dashes, &chars.Dashes},
		{&cfg.Chars.Leaders, &chars.Leaders},
		{&cfg.Chars.Spaces, &chars.Spaces},
	} {
		if *pair.src != nil {
			*pair.dst = *pair.src
		}
	}

	if chars.Newline != nil {
		if *chars.Newline == "" {
			result.Warnings = append(result.Warnings, "empty newline; keeping \\n")
		} else {
			cfg.Chars.Newline = *chars.Newline
		}
	}
	return nil
}

// orderedReplaceTable decodes a JSON object into a replace table, keeping
// the order keys appear in the document.
func orderedReplaceTable(data json.RawMessage) (*config.ReplaceTable, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("%w: expected an object", config.ErrInvalidReplaceTable)
	}

	table := config.NewReplaceTable()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("read key: %w", err)
		}
		from, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: expected a string key", config.ErrInvalidReplaceTable)
		}

		var to string
		if err := dec.Decode(&to); err != nil {
			return nil, fmt.Errorf("%w: value for %q: %w", config.ErrInvalidReplaceTable, from, err)
		}
		table.Set(from, to)
	}
	return table, nil
}

// parseJSONC parses JSON, retrying with comments stripped.
func parseJSONC(content []byte, target any) error {
	if err := json.Unmarshal(content, target); err == nil {
		return nil
	}

	if err := json.Unmarshal(stripJSONComments(content), target); err != nil {
		return fmt.Errorf("unmarshal stripped JSON: %w", err)
	}
	return nil
}

// stripJSONComments removes JavaScript-style comments from JSON content.
func stripJSONComments(content []byte) []byte {
	var result []byte
	inString := false
	inSingleComment := false
	inMultiComment := false

	for idx := 0; idx < len(content); idx++ {
		char := content[idx]

		switch {
		case inSingleComment:
			if char == '\n' {
				inSingleComment = false
				result = append(result, char)
			}
		case inMultiComment:
			if char == '*' && idx+1 < len(content) && content[idx+1] == '/' {
				inMultiComment = false
				idx++
			}
		case inString:
			result = append(result, char)
			if char == '\\' && idx+1 < len(content) {
				idx++
				result = append(result, content[idx])
			} else if char == '"' {
				inString = false
			}
		case char == '"':
			inString = true
			result = append(result, char)
		case char == '/' && idx+1 < len(content) && content[idx+1] == '/':
			inSingleComment = true
			idx++
		case char == '/' && idx+1 < len(content) && content[idx+1] == '*':
			inMultiComment = true
			idx++
		default:
			result = append(result, char)
		}
	}

	return result
}

// MigrationHeader returns a header comment for migrated configs.
func MigrationHeader(sourcePath string) string {
	return fmt.Sprintf("# jandent configuration\n# Migrated from: %s\n", filepath.Base(sourcePath))
}
