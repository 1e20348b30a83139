package configloader

import (
	"sync"

	"github.com/sajari/fuzzy"

	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/lint"
)

// legacyOptionNames maps the camelCase toggle names of the JavaScript
// tool's arguments object to option names. The misspelled
// isConvertHarfExclam is the name that tool actually used.
//
//nolint:gochecknoglobals // Read-only lookup table.
var legacyOptionNames = map[string]config.OptionName{
	"isConvertArabicNum":          config.OptionConvertNumerals,
	"isInsertLineHeadSpace":       config.OptionInsertLineHeadSpace,
	"isRemovePuncBeforeBrackets":  config.OptionRemovePuncBeforeBrackets,
	"isUnifyDoubleDash":           config.OptionUnifyDoubleDash,
	"isUnifyDoubleLeaders":        config.OptionUnifyDoubleLeaders,
	"isRemoveConsecPunc":          config.OptionRemoveConsecPunc,
	"isRemoveExclamAfterPunc":     config.OptionRemoveExclamAfterPunc,
	"isInsertSpaceAfterExclam":    config.OptionInsertSpaceAfterExclam,
	"isRemoveTrailingSpaces":      config.OptionRemoveTrailingSpaces,
	"isRemoveConsecSpecificChars": config.OptionRemoveConsecSpecificChars,
	"isConvertHarfExclam":         config.OptionConvertHalfExclam,
	"isConvertHalfExclam":         config.OptionConvertHalfExclam,
}

// ResolveOptionKey maps a key from a config file or flag to an option name.
// Accepted forms are option names, rule IDs, rule names and legacy
// camelCase names.
func ResolveOptionKey(registry *lint.Registry, key string) (config.OptionName, bool) {
	if name, ok := legacyOptionNames[key]; ok {
		return name, true
	}
	if registry == nil {
		registry = lint.DefaultRegistry
	}
	return registry.Resolve(key)
}

//nolint:gochecknoglobals // Lazily trained, read-only afterwards.
var (
	suggestModel     *fuzzy.Model
	suggestModelOnce sync.Once
)

func optionModel() *fuzzy.Model {
	suggestModelOnce.Do(func() {
		model := fuzzy.NewModel()
		model.SetDepth(2)
		model.SetThreshold(1)
		for _, name := range config.AllOptions() {
			model.TrainWord(string(name))
		}
		suggestModel = model
	})
	return suggestModel
}

// SuggestOption returns the closest known option name for an unknown key,
// or "" when nothing is close enough.
func SuggestOption(key string) string {
	suggestions := optionModel().SpellCheckSuggestions(key, 1)
	if len(suggestions) == 0 {
		return ""
	}
	return suggestions[0]
}
