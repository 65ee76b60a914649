package issues

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/asynctools/internal/severity"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name     string
		issue    Issue
		expected string
	}{
		{
			name:     "error with rule",
			issue:    Issue{Rule: "info-title", Path: "#/info", Message: "title is required", Severity: severity.SeverityError},
			expected: "✗ #/info: title is required (info-title)",
		},
		{
			name:     "warning without rule",
			issue:    Issue{Path: "#/tags/0", Message: "missing description", Severity: severity.SeverityWarning},
			expected: "⚠ #/tags/0: missing description",
		},
		{
			name:     "info",
			issue:    Issue{Rule: "r", Path: "#/", Message: "m", Severity: severity.SeverityInfo},
			expected: "ℹ #/: m (r)",
		},
		{
			name:     "unknown severity",
			issue:    Issue{Path: "#/", Message: "m", Severity: severity.Severity(42)},
			expected: "? #/: m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.issue.String())
		})
	}
}
