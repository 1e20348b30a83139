package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/jandent/pkg/config"
)

// envVarPrefix is the prefix for all jandent environment variables.
const envVarPrefix = "JANDENT_"

type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

type envMapping struct {
	field string
	typ   envFieldType
	desc  string
}

//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"FORMAT":         {field: "format", typ: envTypeString, desc: "Output format: text, json, summary, or diff"},
	"JOBS":           {field: "jobs", typ: envTypeInt, desc: "Number of parallel workers (0 = auto)"},
	"ENCODING":       {field: "encoding", typ: envTypeString, desc: "Input file encoding: utf-8, shift_jis, euc-jp, or iso-2022-jp"},
	"NUMERAL_MODE":   {field: "numeral.mode", typ: envTypeString, desc: "Numeral mode: simple, moderate, verbose, or dictate"},
	"NUMERAL_GLYPHS": {field: "numeral.glyphs", typ: envTypeString, desc: "Numeral glyphs: modern or retro"},
	"NEWLINE":        {field: "newline", typ: envTypeString, desc: "Output newline: lf, crlf, or cr"},
	"ENABLE":         {field: "enable", typ: envTypeSlice, desc: "Comma-separated options to turn on"},
	"DISABLE":        {field: "disable", typ: envTypeSlice, desc: "Comma-separated options to turn off"},
	"IGNORE":         {field: "ignore", typ: envTypeSlice, desc: "Comma-separated list of ignore patterns"},
	"WRITE":          {field: "write", typ: envTypeBool, desc: "Rewrite files in place: true or false"},
	"NO_BACKUPS":     {field: "no_backups", typ: envTypeBool, desc: "Disable backups: true or false"},
}

// LoadFromEnv applies JANDENT_* environment variable overrides to cfg.
// Option names in JANDENT_ENABLE/JANDENT_DISABLE may be given in any form
// ResolveOptionKey accepts.
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	// Fixed order so DISABLE wins over ENABLE for the same option.
	for _, envSuffix := range envOrder() {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}
		if err := applyEnvValue(cfg, envMappings[envSuffix], value, envVar); err != nil {
			return err
		}
	}

	return nil
}

func envOrder() []string {
	return []string{
		"FORMAT", "JOBS", "ENCODING", "NUMERAL_MODE", "NUMERAL_GLYPHS", "NEWLINE",
		"IGNORE", "WRITE", "NO_BACKUPS", "ENABLE", "DISABLE",
	}
}

func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value, envVar)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		return setSliceField(cfg, mapping.field, parseSliceValue(value), envVar)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue splits a comma-separated value, trimming each element.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func setStringField(cfg *config.Config, field, value, envVar string) error {
	switch field {
	case "format":
		cfg.Format = config.OutputFormat(value)
	case "encoding":
		cfg.Encoding = value
	case "numeral.mode":
		cfg.Numeral.Mode = value
	case "numeral.glyphs":
		cfg.Numeral.Glyphs = value
	case "newline":
		newline, err := ParseNewline(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", envVar, err)
		}
		cfg.Chars.Newline = newline
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "write":
		cfg.Write = value
	case "no_backups":
		cfg.NoBackups = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

func setSliceField(cfg *config.Config, field string, value []string, envVar string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	case "enable", "disable":
		for _, key := range value {
			name, ok := ResolveOptionKey(nil, key)
			if !ok {
				return fmt.Errorf("unknown option %q in %s", key, envVar)
			}
			cfg.Options[name] = field == "enable"
		}
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// ParseNewline maps lf, crlf and cr (or the literal sequences) to a newline string.
func ParseNewline(value string) (string, error) {
	switch strings.ToLower(value) {
	case "lf", "\n":
		return "\n", nil
	case "crlf", "\r\n":
		return "\r\n", nil
	case "cr", "\r":
		return "\r", nil
	default:
		return "", fmt.Errorf("unknown newline %q; must be one of: lf, crlf, cr", value)
	}
}

// ListEnvVars returns every supported environment variable with its description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envMappings))
	for suffix, mapping := range envMappings {
		vars[envVarPrefix+suffix] = mapping.desc
	}
	return vars
}
