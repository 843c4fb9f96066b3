package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderDiff(t *testing.T) {
	t.Run("renders no changes message", func(t *testing.T) {
		result := RenderDiff(nil, nil, nil)
		assert.Equal(t, "No changes detected.", result)
	})

	t.Run("renders added entries", func(t *testing.T) {
		added := []string{"transformation example::keg:1.0"}
		result := RenderDiff(added, nil, nil)

		assert.Contains(t, result, "Added:")
		assert.Contains(t, result, "+ ")
		assert.Contains(t, result, "transformation example::keg:1.0")
		assert.Contains(t, result, "1 added")
	})

	t.Run("renders removed entries", func(t *testing.T) {
		removed := []string{"container centos-pegasus"}
		result := RenderDiff(nil, removed, nil)

		assert.Contains(t, result, "Removed:")
		assert.Contains(t, result, "- ")
		assert.Contains(t, result, "container centos-pegasus")
		assert.Contains(t, result, "1 removed")
	})

	t.Run("renders modified entries", func(t *testing.T) {
		modified := []ModifiedItem{
			{Name: "transformation keg", Diff: "sites.condorpool.pfn:\n  - /old\n  + /new"},
		}
		result := RenderDiff(nil, nil, modified)

		assert.Contains(t, result, "Modified:")
		assert.Contains(t, result, "~ ")
		assert.Contains(t, result, "transformation keg")
		assert.Contains(t, result, "sites.condorpool.pfn")
		assert.Contains(t, result, "1 modified")
	})

	t.Run("renders all change types", func(t *testing.T) {
		added := []string{"transformation new"}
		removed := []string{"transformation old"}
		modified := []ModifiedItem{
			{Name: "container c1", Diff: "changed"},
		}
		result := RenderDiff(added, removed, modified)

		assert.Contains(t, result, "Added:")
		assert.Contains(t, result, "Removed:")
		assert.Contains(t, result, "Modified:")
		assert.Contains(t, result, "1 added, 1 removed, 1 modified")
	})

	t.Run("renders multiple items per category", func(t *testing.T) {
		added := []string{"transformation a", "transformation b", "container c"}
		result := RenderDiff(added, nil, nil)

		assert.Contains(t, result, "transformation a")
		assert.Contains(t, result, "transformation b")
		assert.Contains(t, result, "container c")
		assert.Contains(t, result, "3 added")
	})
}

func TestDiffSummary(t *testing.T) {
	tests := []struct {
		name     string
		added    int
		removed  int
		modified int
		want     string
	}{
		{"no changes", 0, 0, 0, "No changes"},
		{"only added", 1, 0, 0, "1 added"},
		{"only removed", 0, 2, 0, "2 removed"},
		{"only modified", 0, 0, 3, "3 modified"},
		{"added and removed", 1, 2, 0, "1 added, 2 removed"},
		{"all types", 1, 2, 3, "1 added, 2 removed, 3 modified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diffSummary(tt.added, tt.removed, tt.modified)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIndentDiff(t *testing.T) {
	t.Run("indents each line", func(t *testing.T) {
		input := "line1\nline2\nline3"
		result := IndentDiff(input, "    ")

		expected := "    line1\n    line2\n    line3\n"
		assert.Equal(t, expected, result)
	})

	t.Run("skips empty lines", func(t *testing.T) {
		input := "line1\n\nline2"
		result := IndentDiff(input, "  ")

		expected := "  line1\n  line2\n"
		assert.Equal(t, expected, result)
	})

	t.Run("returns empty for empty input", func(t *testing.T) {
		result := IndentDiff("", "    ")
		assert.Empty(t, result)
	})
}
