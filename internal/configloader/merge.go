package configloader

import (
	"maps"
	"slices"

	"github.com/yaklabco/jandent/pkg/config"
)

// merge overlays override onto base and returns the result. base is not
// modified.
//   - Options: deep merge, override's keys win
//   - Scalars: override wins if non-zero
//   - Slices and the replace table: override replaces base entirely if non-nil
//   - Booleans: only a true override is visible, so a later layer cannot unset
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if result.Options == nil {
		result.Options = make(map[config.OptionName]bool, len(override.Options))
	}
	maps.Copy(result.Options, override.Options)

	mergeChars(&result.Chars, &override.Chars)

	if override.Numeral.Mode != "" {
		result.Numeral.Mode = override.Numeral.Mode
	}
	if override.Numeral.Glyphs != "" {
		result.Numeral.Glyphs = override.Numeral.Glyphs
	}
	if override.Encoding != "" {
		result.Encoding = override.Encoding
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.RuleFormat != "" {
		result.RuleFormat = override.RuleFormat
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}

	if override.Write {
		result.Write = true
	}
	if override.DryRun {
		result.DryRun = true
	}
	if override.NoBackups {
		result.NoBackups = true
	}

	if override.Extensions != nil {
		result.Extensions = slices.Clone(override.Extensions)
	}
	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}

	return result
}

func mergeChars(dst, src *config.TargetChars) {
	if src.Replace != nil {
		dst.Replace = src.Replace.Clone()
	}
	for _, pair := range []struct{ dst, src *[]string }{
		{&dst.ForbidConsecChars, &src.ForbidConsecChars},
		{&dst.LeftBrackets, &src.LeftBrackets},
		{&dst.RightBrackets, &src.RightBrackets},
		{&dst.Puncs, &src.Puncs},
		{&dst.Exclams, &src.Exclams},
		{&dst.Dashes, &src.Dashes},
		{&dst.Leaders, &src.Leaders},
		{&dst.Spaces, &src.Spaces},
	} {
		if *pair.src != nil {
			*pair.dst = slices.Clone(*pair.src)
		}
	}
	if src.Newline != "" {
		dst.Newline = src.Newline
	}
}

// MergeAll merges configurations in order, later ones taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for _, cfg := range configs[1:] {
		result = merge(result, cfg)
	}
	return result
}
