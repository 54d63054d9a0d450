// File: standards.go
// Title: Standard Error Constructors
// Description: One constructor per failure kind of the textx engine. Messages
//              are deterministic: operation, parameter name and a bounded
//              preview of the offending value, so they can be asserted
//              verbatim in tests.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-08-14 v0.2.0: Rewritten around the extraction error taxonomy

package errors

import (
	mdwerror "github.com/msto63/textx/core/error"
)

// NullInput reports a required argument that is absent (nil slice, nil
// strategy, or an empty string where a value is mandatory).
func NullInput(module, operation, parameter string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %s cannot be nil or empty", module, operation, parameter).
		Code(mdwerror.CodeNullInput).
		Detail("parameter", parameter).
		Build()
}

// InvalidEnumValue reports an enumerated argument outside its defined set
func InvalidEnumValue(module, operation, parameter string, value interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %s has undefined value %v", module, operation, parameter, value).
		Code(mdwerror.CodeInvalidEnumValue).
		Detail("parameter", parameter).
		Detail("value", value).
		Build()
}

// EmptyCollection reports a collection argument without members
func EmptyCollection(module, operation, parameter string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %s cannot be an empty collection", module, operation, parameter).
		Code(mdwerror.CodeEmptyCollection).
		Detail("parameter", parameter).
		Build()
}

// NullOrEmptyMember reports an empty member inside a collection argument
func NullOrEmptyMember(module, operation, parameter string, index int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %s[%d] cannot be nil or empty", module, operation, parameter, index).
		Code(mdwerror.CodeNullOrEmptyMember).
		Detail("parameter", parameter).
		Detail("index", index).
		Build()
}

// MarkerNotFound reports a marker that does not occur in the subject
func MarkerNotFound(module, operation, parameter, marker string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %s %q not found", module, operation, parameter, Preview(marker)).
		Code(mdwerror.CodeMarkerNotFound).
		Detail("parameter", parameter).
		Detail("value", Preview(marker)).
		Build()
}

// EndMarkerNotFoundAfterStart reports an end marker that occurs in the
// subject only before (or overlapping) the located start marker.
func EndMarkerNotFoundAfterStart(module, operation, startMarker, endMarker string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: endString %q not found after startString %q",
			module, operation, Preview(endMarker), Preview(startMarker)).
		Code(mdwerror.CodeEndMarkerNotFoundAfterStart).
		Detail("parameter", "endString").
		Detail("value", Preview(endMarker)).
		Detail("start", Preview(startMarker)).
		Build()
}

// NegativeLength reports a negative length argument
func NegativeLength(module, operation, parameter string, length int) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %s cannot be negative, got %d", module, operation, parameter, length).
		Code(mdwerror.CodeNegativeLength).
		Detail("parameter", parameter).
		Detail("value", length).
		Build()
}

// LengthOutOfRange reports a requested length that exceeds what is
// available. The overflow is requested minus available.
func LengthOutOfRange(module, operation, parameter string, available, requested int) *mdwerror.Error {
	overflow := requested - available
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%s.%s: %s %d exceeds the %d characters available by %d",
			module, operation, parameter, requested, available, overflow).
		Code(mdwerror.CodeLengthOutOfRange).
		Detail("parameter", parameter).
		Detail("available", available).
		Detail("requested", requested).
		Detail("overflow", overflow).
		Build()
}

// InvalidConfig reports a configuration value that cannot be used
func InvalidConfig(key string, value interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation("Validate").
		Messagef("config: %s has invalid value %v, expected %s", key, value, expected).
		Code(mdwerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Detail("expected", expected).
		Build()
}
