// Package severity provides severity level constants and utilities
// for issues reported by the validator.
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Error
package severity

// Severity indicates the severity level of an issue found while validating a document.
type Severity int

const (
	// SeverityError indicates a rule violation that makes the document invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a best-practice violation or recommendation
	// that does not make the document invalid.
	SeverityWarning

	// SeverityInfo indicates an informational notice.
	SeverityInfo
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// IsError reports whether the severity makes a document invalid.
func (s Severity) IsError() bool {
	return s == SeverityError
}
