package output

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStatusStyle(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		wantBold bool
		wantFG   lipgloss.Color
	}{
		{
			name:   "valid returns green",
			status: StatusValid,
			wantFG: ColorGreen,
		},
		{
			name:   "invalid returns red",
			status: StatusInvalid,
			wantFG: ColorRed,
		},
		{
			name:     "error returns bold red",
			status:   StatusError,
			wantBold: true,
			wantFG:   ColorBoldRed,
		},
		{
			name:   "unknown returns default unstyled",
			status: "unknown-value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			style := StatusStyle(tt.status)
			if tt.wantBold {
				assert.True(t, style.GetBold(), "expected bold")
			}
			if tt.wantFG != "" {
				assert.Equal(t, tt.wantFG, style.GetForeground(), "foreground color mismatch")
			}
		})
	}
}

func TestFormatEntryLine(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		id     string
		status string
	}{
		{
			name:   "transformation entry",
			prefix: "t:",
			id:     "example::keg:1.0",
			status: StatusValid,
		},
		{
			name:   "container entry",
			prefix: "c:",
			id:     "centos-pegasus",
			status: StatusInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatEntryLine(tt.prefix, tt.id, tt.status)

			// The rendered string contains ANSI codes. Strip them for content checks.
			assert.Contains(t, result, tt.id, "should contain entry identifier")
			assert.Contains(t, result, tt.status, "should contain status text")
			assert.True(t, strings.HasPrefix(stripAnsi(result), tt.prefix), "should start with prefix")
		})
	}

	t.Run("alignment consistency", func(t *testing.T) {
		// Two lines with different identifier lengths should have status
		// starting at the same position (both shorter than min column width).
		line1 := FormatEntryLine("t:", "keg", StatusValid)
		line2 := FormatEntryLine("t:", "example::keg:1.0", StatusValid)

		stripped1 := stripAnsi(line1)
		stripped2 := stripAnsi(line2)

		idx1 := strings.Index(stripped1, StatusValid)
		idx2 := strings.Index(stripped2, StatusValid)

		assert.Equal(t, idx1, idx2, "status words should align to same column")
	})
}

func TestFormatCheckmark(t *testing.T) {
	result := FormatCheckmark("Catalog written")
	assert.Contains(t, result, "✔", "should contain checkmark")
	assert.Contains(t, result, "Catalog written", "should contain message")
}

func TestFormatVetCheck(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		detail     string
		wantDetail string
	}{
		{
			name:       "with detail",
			label:      "document parses",
			detail:     "tc.yml",
			wantDetail: "tc.yml",
		},
		{
			name:   "without detail",
			label:  "schema valid",
			detail: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FormatVetCheck(tt.label, tt.detail)

			assert.Contains(t, result, "✔", "should contain checkmark")
			assert.Contains(t, result, tt.label, "should contain label")

			if tt.detail != "" {
				assert.Contains(t, result, tt.wantDetail, "should contain detail")
			} else {
				stripped := stripAnsi(result)
				assert.False(t, strings.HasSuffix(stripped, " "), "should not have trailing whitespace when detail is empty")
			}
		})
	}

	t.Run("alignment consistency", func(t *testing.T) {
		// Check lines with different label lengths should have detail text
		// starting at the same column position.
		line1 := FormatVetCheck("document parses", "tc.yml")
		line2 := FormatVetCheck("references resolve", "4 edges")

		stripped1 := stripAnsi(line1)
		stripped2 := stripAnsi(line2)

		idx1 := strings.Index(stripped1, "tc.yml")
		idx2 := strings.Index(stripped2, "4 edges")

		assert.Equal(t, idx1, idx2, "detail text should align to same column")
	})
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "1 transformation", FormatCount(1, "transformation"))
	assert.Equal(t, "3 transformations", FormatCount(3, "transformation"))
	assert.Equal(t, "0 containers", FormatCount(0, "container"))
}

// stripAnsi removes ANSI escape sequences for content assertions.
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}
	return result.String()
}
