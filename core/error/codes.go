// File: codes.go
// Title: Error Codes for textx
// Description: Defines the structured error codes raised by the textx
//              packages. Codes map one-to-one onto the failure kinds of the
//              extraction engine and its validation layer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with platform error codes
// - 2025-08-14 v0.2.0: Replaced platform codes with the textx taxonomy

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Argument validation
	CodeNullInput         Code = "NULL_INPUT"
	CodeInvalidEnumValue  Code = "INVALID_ENUM_VALUE"
	CodeEmptyCollection   Code = "EMPTY_COLLECTION"
	CodeNullOrEmptyMember Code = "NULL_OR_EMPTY_MEMBER"

	// Marker location
	CodeMarkerNotFound              Code = "MARKER_NOT_FOUND"
	CodeEndMarkerNotFoundAfterStart Code = "END_MARKER_NOT_FOUND_AFTER_START"

	// Length bounds
	CodeNegativeLength   Code = "NEGATIVE_LENGTH"
	CodeLengthOutOfRange Code = "LENGTH_OUT_OF_RANGE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeInvalidLocale Code = "INVALID_LOCALE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeNullInput, CodeInvalidEnumValue, CodeEmptyCollection, CodeNullOrEmptyMember,
		CodeMarkerNotFound, CodeEndMarkerNotFoundAfterStart,
		CodeNegativeLength, CodeLengthOutOfRange,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeInvalidLocale:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNullInput, CodeInvalidEnumValue, CodeEmptyCollection, CodeNullOrEmptyMember, CodeInvalidInput:
		return "argument"
	case CodeMarkerNotFound, CodeEndMarkerNotFoundAfterStart:
		return "lookup"
	case CodeNegativeLength, CodeLengthOutOfRange:
		return "range"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeInvalidLocale:
		return "configuration"
	default:
		return "generic"
	}
}

// IsArgumentError reports whether the code describes a caller mistake that
// was detected before any index arithmetic took place.
func (c Code) IsArgumentError() bool {
	switch c.Category() {
	case "argument", "range":
		return true
	}
	return false
}
