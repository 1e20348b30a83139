package lint

import "github.com/yaklabco/jandent/pkg/config"

// BaseRule provides the metadata half of the Rule interface.
// Embed this in rule implementations and add Compile.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
type BaseRule struct {
	id      string
	name    string
	desc    string
	option  config.OptionName
	kind    Kind
	reports bool
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, option config.OptionName, kind Kind, reports bool) BaseRule {
	return BaseRule{
		id:      id,
		name:    name,
		desc:    desc,
		option:  option,
		kind:    kind,
		reports: reports,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Option returns the toggle that gates the rule.
func (r *BaseRule) Option() config.OptionName {
	return r.option
}

// Kind returns the kind of finding the rule reports.
func (r *BaseRule) Kind() Kind {
	return r.kind
}

// Reports returns whether lint reports this rule's violations.
func (r *BaseRule) Reports() bool {
	return r.reports
}
