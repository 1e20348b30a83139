package configloader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/jandent/pkg/config"
)

// fileConfig is one config file as written. Pointer and nil-slice fields
// distinguish "absent" from "set to the zero value".
type fileConfig struct {
	Options    map[string]bool `yaml:"options" toml:"options"`
	Chars      fileChars       `yaml:"chars" toml:"chars"`
	Numeral    fileNumeral     `yaml:"numeral" toml:"numeral"`
	Extensions []string        `yaml:"extensions" toml:"extensions"`
	Ignore     []string        `yaml:"ignore" toml:"ignore"`
	Encoding   *string         `yaml:"encoding" toml:"encoding"`
	Backups    fileBackups     `yaml:"backups" toml:"backups"`
}

type fileChars struct {
	Replace           *config.ReplaceTable `yaml:"replace" toml:"replace"`
	ForbidConsecChars []string             `yaml:"forbid_consec_chars" toml:"forbid_consec_chars"`
	LeftBrackets      []string             `yaml:"left_brackets" toml:"left_brackets"`
	RightBrackets     []string             `yaml:"right_brackets" toml:"right_brackets"`
	Puncs             []string             `yaml:"puncs" toml:"puncs"`
	Exclams           []string             `yaml:"exclams" toml:"exclams"`
	Dashes            []string             `yaml:"dashes" toml:"dashes"`
	Leaders           []string             `yaml:"leaders" toml:"leaders"`
	Spaces            []string             `yaml:"spaces" toml:"spaces"`
	Newline           *string              `yaml:"newline" toml:"newline"`
}

type fileNumeral struct {
	Mode   *string `yaml:"mode" toml:"mode"`
	Glyphs *string `yaml:"glyphs" toml:"glyphs"`
}

type fileBackups struct {
	Enabled *bool   `yaml:"enabled" toml:"enabled"`
	Mode    *string `yaml:"mode" toml:"mode"`
}

// loadConfigFile parses a YAML or TOML config file, chosen by extension.
func loadConfigFile(path string) (*fileConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	layer := &fileConfig{}
	if IsTOMLConfig(path) {
		if _, err := toml.Decode(string(content), layer); err != nil {
			return nil, fmt.Errorf("parse TOML: %w", err)
		}
		return layer, nil
	}

	if err := yaml.Unmarshal(content, layer); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}
	return layer, nil
}

// apply overlays a file layer onto cfg. Option keys override one by one;
// character tables present in the layer replace the current table
// wholesale. Unresolvable option keys are returned for the caller to
// report.
func (l *fileConfig) apply(cfg *config.Config, resolve func(string) (config.OptionName, bool)) []string {
	var unknown []string
	for key, enabled := range l.Options {
		name, ok := resolve(key)
		if !ok {
			unknown = append(unknown, key)
			continue
		}
		// Stored directly; derived replace entries are synced once after
		// every layer is merged.
		cfg.Options[name] = enabled
	}

	chars := &cfg.Chars
	if l.Chars.Replace != nil {
		chars.Replace = l.Chars.Replace.Clone()
	}
	replaceIfSet(&chars.ForbidConsecChars, l.Chars.ForbidConsecChars)
	replaceIfSet(&chars.LeftBrackets, l.Chars.LeftBrackets)
	replaceIfSet(&chars.RightBrackets, l.Chars.RightBrackets)
	replaceIfSet(&chars.Puncs, l.Chars.Puncs)
	replaceIfSet(&chars.Exclams, l.Chars.Exclams)
	replaceIfSet(&chars.Dashes, l.Chars.Dashes)
	replaceIfSet(&chars.Leaders, l.Chars.Leaders)
	replaceIfSet(&chars.Spaces, l.Chars.Spaces)
	if l.Chars.Newline != nil {
		chars.Newline = *l.Chars.Newline
	}

	if l.Numeral.Mode != nil {
		cfg.Numeral.Mode = *l.Numeral.Mode
	}
	if l.Numeral.Glyphs != nil {
		cfg.Numeral.Glyphs = *l.Numeral.Glyphs
	}
	replaceIfSet(&cfg.Extensions, l.Extensions)
	replaceIfSet(&cfg.Ignore, l.Ignore)
	if l.Encoding != nil {
		cfg.Encoding = *l.Encoding
	}
	if l.Backups.Enabled != nil {
		cfg.Backups.Enabled = *l.Backups.Enabled
	}
	if l.Backups.Mode != nil {
		cfg.Backups.Mode = *l.Backups.Mode
	}

	return unknown
}

func replaceIfSet(dst *[]string, src []string) {
	if src != nil {
		*dst = append([]string{}, src...)
	}
}

// IsTOMLConfig returns true if the path is a TOML config file.
func IsTOMLConfig(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// IsYAMLConfig returns true if the path is a YAML config file.
func IsYAMLConfig(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
