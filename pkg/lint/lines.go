package lint

import (
	"fmt"

	"github.com/yaklabco/jandent/pkg/config"
	"github.com/yaklabco/jandent/pkg/numeral"
)

// step is one enabled rule bound to the run's character tables.
type step struct {
	rule    Rule
	checker Checker
}

// ruleSet is the line pipeline compiled from a configuration snapshot.
// It holds no per-run state and may be shared by concurrent runs.
type ruleSet struct {
	replace  *config.ReplaceTable
	numerals *numeral.Converter
	steps    []step
	newline  string
}

// compileRuleSet snapshots cfg and binds every enabled rule in registry, in ID order.
func compileRuleSet(cfg *config.Config, registry *Registry) (*ruleSet, error) {
	chars := cfg.Chars.Clone()

	set := &ruleSet{
		replace: chars.Replace,
		newline: chars.Newline,
	}
	if set.newline == "" {
		set.newline = "\n"
	}

	if cfg.Enabled(config.OptionConvertNumerals) {
		conv, err := numeral.New(numeral.Mode(cfg.Numeral.Mode), numeral.Glyphs(cfg.Numeral.Glyphs))
		if err != nil {
			return nil, fmt.Errorf("numeral converter: %w", err)
		}
		set.numerals = conv
	}

	for _, rule := range registry.Rules() {
		if !cfg.Enabled(rule.Option()) {
			continue
		}
		checker, err := rule.Compile(chars)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrPatternCompile, rule.ID(), err)
		}
		set.steps = append(set.steps, step{rule: rule, checker: checker})
	}

	return set, nil
}

// convertLine runs the replace table, the numeral converter, and every rule
// over one line, each step seeing the previous step's output.
func (s *ruleSet) convertLine(line string) (string, error) {
	if s.replace.Len() > 0 {
		line = s.replace.Apply(line)
	}

	if s.numerals != nil {
		converted, err := s.numerals.Convert(line)
		if err != nil {
			return "", err
		}
		line = converted
	}

	for _, st := range s.steps {
		fixed, err := Fix(st.checker, line)
		if err != nil {
			return "", fmt.Errorf("%s: %w", st.rule.ID(), err)
		}
		line = fixed
	}

	return line, nil
}

// lintLine runs every reporting rule over the unmodified line.
func (s *ruleSet) lintLine(line string, state *RunState) ([]Finding, error) {
	var findings []Finding
	for _, st := range s.steps {
		if !st.rule.Reports() {
			continue
		}
		found, err := Report(st.checker, st.rule, line, state.Line)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", st.rule.ID(), err)
		}
		findings = append(findings, found...)
	}
	return findings, nil
}
