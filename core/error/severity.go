// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to classify errors for logging
//              and for the exit codes of the textx command.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with four severity levels
// - 2025-08-14 v0.2.0: Severity mapping for the textx codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as a bad argument
	SeverityLow Severity = iota

	// SeverityMedium indicates a lookup that could not be satisfied
	SeverityMedium

	// SeverityHigh indicates a broken environment, e.g. an unreadable config
	SeverityHigh

	// SeverityCritical indicates an internal invariant violation
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh
	case CodeMarkerNotFound, CodeEndMarkerNotFoundAfterStart:
		return SeverityMedium
	case CodeNullInput, CodeInvalidEnumValue, CodeEmptyCollection, CodeNullOrEmptyMember,
		CodeNegativeLength, CodeLengthOutOfRange, CodeInvalidInput, CodeInvalidLocale:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
