package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/jandent/pkg/config"
)

func TestReplaceTable(t *testing.T) {
	t.Parallel()

	t.Run("set keeps insertion position", func(t *testing.T) {
		t.Parallel()
		table := config.NewReplaceTable()
		table.Set("a", "1")
		table.Set("b", "2")
		table.Set("a", "3")
		assert.Equal(t, []config.ReplaceEntry{{From: "a", To: "3"}, {From: "b", To: "2"}}, table.Entries())
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()
		table := config.NewReplaceTable(config.ReplaceEntry{From: "a", To: "1"})
		assert.True(t, table.Delete("a"))
		assert.False(t, table.Delete("a"))
		assert.Equal(t, 0, table.Len())
	})

	t.Run("nil table is empty", func(t *testing.T) {
		t.Parallel()
		var table *config.ReplaceTable
		assert.Equal(t, 0, table.Len())
		assert.Nil(t, table.Entries())
		assert.Equal(t, "abc", table.Apply("abc"))
	})
}

func TestReplaceTable_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []config.ReplaceEntry
		input   string
		want    string
	}{
		{
			name:    "every occurrence",
			entries: []config.ReplaceEntry{{From: "!", To: "！"}},
			input:   "あ!い!",
			want:    "あ！い！",
		},
		{
			name:    "table order",
			entries: []config.ReplaceEntry{{From: "a", To: "b"}, {From: "b", To: "c"}},
			input:   "a",
			want:    "c",
		},
		{
			name:    "empty key ignored",
			entries: []config.ReplaceEntry{{From: "", To: "x"}},
			input:   "abc",
			want:    "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			table := config.NewReplaceTable(tt.entries...)
			assert.Equal(t, tt.want, table.Apply(tt.input))
		})
	}
}

func TestReplaceTable_YAMLOrder(t *testing.T) {
	t.Parallel()

	var holder struct {
		Replace *config.ReplaceTable `yaml:"replace"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("replace:\n  z: Z\n  a: A\n  m: M\n"), &holder))
	require.NotNil(t, holder.Replace)
	assert.Equal(t, []config.ReplaceEntry{
		{From: "z", To: "Z"},
		{From: "a", To: "A"},
		{From: "m", To: "M"},
	}, holder.Replace.Entries())

	out, err := yaml.Marshal(holder)
	require.NoError(t, err)
	assert.Equal(t, "replace:\n    z: Z\n    a: A\n    m: M\n", string(out))

	err = yaml.Unmarshal([]byte("replace: [a, b]\n"), &holder)
	require.ErrorIs(t, err, config.ErrInvalidReplaceTable)
}

func TestReplaceTable_UnmarshalTOMLTable(t *testing.T) {
	t.Parallel()

	table := config.NewReplaceTable()
	require.NoError(t, table.UnmarshalTOML(map[string]any{"b": "B", "a": "A"}))
	assert.Equal(t, []config.ReplaceEntry{{From: "a", To: "A"}, {From: "b", To: "B"}}, table.Entries())

	require.ErrorIs(t, table.UnmarshalTOML([]any{[]any{"a"}}), config.ErrInvalidReplaceTable)
	require.ErrorIs(t, table.UnmarshalTOML(42), config.ErrInvalidReplaceTable)
}
