package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/jandent/pkg/fix"
)

func TestGenerateDiff(t *testing.T) {
	t.Parallel()

	t.Run("identical lines produce nil", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, fix.GenerateDiff("a.txt", []string{"a", "b"}, []string{"a", "b"}))
		assert.Nil(t, fix.GenerateDiff("a.txt", nil, nil))
	})

	t.Run("paired lines", func(t *testing.T) {
		t.Parallel()
		diff := fix.GenerateDiff("doc.txt",
			[]string{"本文", "「会話」", "あ―い"},
			[]string{"　本文", "「会話」", "あ――い"},
		)
		require.NotNil(t, diff)
		assert.True(t, diff.HasChanges())
		assert.Equal(t, 2, diff.Additions)
		assert.Equal(t, 2, diff.Deletions)
		require.Len(t, diff.Hunks, 1)

		want := "--- a/doc.txt\n" +
			"+++ b/doc.txt\n" +
			"@@ -1,3 +1,3 @@\n" +
			"-本文\n" +
			"+　本文\n" +
			" 「会話」\n" +
			"-あ―い\n" +
			"+あ――い\n"
		assert.Equal(t, want, diff.String())
		assert.Equal(t, "diff --git a/doc.txt b/doc.txt\n"+want, diff.FullString())
	})

	t.Run("distant changes split into hunks", func(t *testing.T) {
		t.Parallel()
		orig := []string{"x", "1", "2", "3", "4", "5", "6", "7", "8", "y"}
		mod := []string{"X", "1", "2", "3", "4", "5", "6", "7", "8", "Y"}
		diff := fix.GenerateDiff("f", orig, mod)
		require.NotNil(t, diff)
		require.Len(t, diff.Hunks, 2)
		assert.Equal(t, 1, diff.Hunks[0].OriginalStart)
		assert.Equal(t, 4, diff.Hunks[0].OriginalCount)
		assert.Equal(t, 7, diff.Hunks[1].OriginalStart)
		assert.Equal(t, 4, diff.Hunks[1].ModifiedCount)
	})

	t.Run("different lengths are aligned", func(t *testing.T) {
		t.Parallel()
		diff := fix.GenerateDiff("f", []string{"a", "b", "c"}, []string{"a", "c"})
		require.NotNil(t, diff)
		assert.Equal(t, 0, diff.Additions)
		assert.Equal(t, 1, diff.Deletions)
		assert.Equal(t, "--- a/f\n+++ b/f\n@@ -1,3 +1,2 @@\n a\n-b\n c\n", diff.String())
	})

	t.Run("leading slash trimmed from path", func(t *testing.T) {
		t.Parallel()
		diff := fix.GenerateDiff("/abs/f.txt", []string{"a"}, []string{"b"})
		assert.Equal(t, "diff --git a/abs/f.txt b/abs/f.txt", diff.GitHeader())
	})
}

func TestDiff_NilSafe(t *testing.T) {
	t.Parallel()

	var diff *fix.Diff
	assert.False(t, diff.HasChanges())
	assert.Empty(t, diff.String())
	assert.Empty(t, diff.FullString())
	assert.Empty(t, diff.GitHeader())
}
