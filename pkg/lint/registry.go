package lint

import (
	"slices"
	"strings"
	"sync"

	"github.com/yaklabco/jandent/pkg/config"
)

// Registry holds rules in pipeline order. Rule IDs sort in the order the
// rules run, so the registry keeps them sorted by ID.
type Registry struct {
	mu       sync.RWMutex
	rules    []Rule
	byKey    map[string]Rule
	byOption map[config.OptionName]Rule
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byKey:    make(map[string]Rule),
		byOption: make(map[config.OptionName]Rule),
	}
}

// Register adds rule, replacing any rule with the same ID.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, found := slices.BinarySearchFunc(r.rules, rule.ID(), func(have Rule, id string) int {
		return strings.Compare(have.ID(), id)
	})
	if found {
		old := r.rules[pos]
		delete(r.byKey, old.Name())
		delete(r.byOption, old.Option())
		r.rules[pos] = rule
	} else {
		r.rules = slices.Insert(r.rules, pos, rule)
	}

	r.byKey[rule.ID()] = rule
	r.byKey[rule.Name()] = rule
	r.byOption[rule.Option()] = rule
}

// Get looks a rule up by ID or name.
func (r *Registry) Get(key string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byKey[key]
	return rule, ok
}

// Resolve maps a rule ID, rule name, or option name to the option that gates it.
func (r *Registry) Resolve(key string) (config.OptionName, bool) {
	if rule, ok := r.Get(key); ok {
		return rule.Option(), true
	}
	if name := config.OptionName(key); name.IsKnown() {
		return name, true
	}
	return "", false
}

// ForOption returns the rule gated by an option, if any.
func (r *Registry) ForOption(name config.OptionName) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byOption[name]
	return rule, ok
}

// Rules returns a copy of the registered rules in pipeline order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.rules)
}

// IDs returns the registered rule IDs in pipeline order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, len(r.rules))
	for i, rule := range r.rules {
		ids[i] = rule.ID()
	}
	return ids
}

// DefaultRegistry holds the built-in rules, registered by importing
// pkg/lint/rules.
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
