// Package issues provides the path-tagged issue record produced by validation rules.
package issues

import (
	"fmt"

	"github.com/erraggy/asynctools/internal/severity"
)

// Issue represents a single problem found while validating a document.
type Issue struct {
	// Rule is the name of the rule that reported the issue
	Rule string
	// Path is the document pointer of the offending element (e.g. "#/info")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	if i.Rule == "" {
		return fmt.Sprintf("%s %s: %s", symbol, i.Path, i.Message)
	}
	return fmt.Sprintf("%s %s: %s (%s)", symbol, i.Path, i.Message, i.Rule)
}
