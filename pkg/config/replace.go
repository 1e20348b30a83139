package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidReplaceTable is returned when a replace table cannot be decoded.
var ErrInvalidReplaceTable = errors.New("invalid replace table")

// ReplaceEntry is one literal substitution.
type ReplaceEntry struct {
	From string
	To   string
}

// ReplaceTable is an insertion-ordered mapping of literal substitutions.
// Setting an existing key updates it in place without moving it.
type ReplaceTable struct {
	entries []ReplaceEntry
}

// NewReplaceTable creates a table holding the given entries in order.
func NewReplaceTable(entries ...ReplaceEntry) *ReplaceTable {
	t := &ReplaceTable{}
	for _, e := range entries {
		t.Set(e.From, e.To)
	}
	return t
}

// Set adds or updates an entry.
func (t *ReplaceTable) Set(from, to string) {
	if i := t.index(from); i >= 0 {
		t.entries[i].To = to
		return
	}
	t.entries = append(t.entries, ReplaceEntry{From: from, To: to})
}

// Get returns the replacement registered for from.
func (t *ReplaceTable) Get(from string) (string, bool) {
	if i := t.index(from); i >= 0 {
		return t.entries[i].To, true
	}
	return "", false
}

// Delete removes an entry and reports whether it existed.
func (t *ReplaceTable) Delete(from string) bool {
	i := t.index(from)
	if i < 0 {
		return false
	}
	t.entries = slices.Delete(t.entries, i, i+1)
	return true
}

// Len returns the number of entries. A nil table is empty.
func (t *ReplaceTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns a copy of the entries in order.
func (t *ReplaceTable) Entries() []ReplaceEntry {
	if t == nil {
		return nil
	}
	return slices.Clone(t.entries)
}

// Clone returns a deep copy. Cloning nil yields nil.
func (t *ReplaceTable) Clone() *ReplaceTable {
	if t == nil {
		return nil
	}
	return &ReplaceTable{entries: slices.Clone(t.entries)}
}

// Apply replaces every occurrence of every key, in table order.
// Empty keys are ignored.
func (t *ReplaceTable) Apply(s string) string {
	if t == nil {
		return s
	}
	for _, e := range t.entries {
		if e.From == "" {
			continue
		}
		s = strings.ReplaceAll(s, e.From, e.To)
	}
	return s
}

func (t *ReplaceTable) index(from string) int {
	if t == nil {
		return -1
	}
	for i, e := range t.entries {
		if e.From == from {
			return i
		}
	}
	return -1
}

// MarshalYAML encodes the table as a mapping in insertion order.
func (t *ReplaceTable) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range t.Entries() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.From},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.To},
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a mapping, keeping document order.
func (t *ReplaceTable) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: line %d: expected a mapping", ErrInvalidReplaceTable, value.Line)
	}
	t.entries = nil
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if key.Kind != yaml.ScalarNode || val.Kind != yaml.ScalarNode {
			return fmt.Errorf("%w: line %d: keys and values must be strings", ErrInvalidReplaceTable, key.Line)
		}
		t.Set(key.Value, val.Value)
	}
	return nil
}

// MarshalTOML encodes the table as an array of [from, to] pairs so order survives.
func (t *ReplaceTable) MarshalTOML() ([]byte, error) {
	pairs := make([][2]string, 0, t.Len())
	for _, e := range t.Entries() {
		pairs = append(pairs, [2]string{e.From, e.To})
	}
	data, err := json.Marshal(pairs)
	if err != nil {
		return nil, fmt.Errorf("encode replace table: %w", err)
	}
	return data, nil
}

// UnmarshalTOML accepts either an array of [from, to] pairs or a table.
// Tables carry no order, so their keys are sorted.
func (t *ReplaceTable) UnmarshalTOML(data any) error {
	t.entries = nil
	switch v := data.(type) {
	case []any:
		for i, item := range v {
			pair, ok := item.([]any)
			if !ok || len(pair) != 2 {
				return fmt.Errorf("%w: entry %d: expected [from, to]", ErrInvalidReplaceTable, i)
			}
			from, okFrom := pair[0].(string)
			to, okTo := pair[1].(string)
			if !okFrom || !okTo {
				return fmt.Errorf("%w: entry %d: expected strings", ErrInvalidReplaceTable, i)
			}
			t.Set(from, to)
		}
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			to, ok := v[k].(string)
			if !ok {
				return fmt.Errorf("%w: key %q: expected a string", ErrInvalidReplaceTable, k)
			}
			t.Set(k, to)
		}
	default:
		return fmt.Errorf("%w: unexpected %T", ErrInvalidReplaceTable, data)
	}
	return nil
}
