// File: require.go
// Title: Precondition Checks
// Description: Parameter-named precondition checks consumed by the textx
//              engine before any index arithmetic. Each check returns nil or
//              a *mdwerror.Error built by core/errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework utilities
// - 2025-08-14 v0.2.0: Reduced to the precondition checks of the engine

package validation

import (
	"reflect"

	mdwerrors "github.com/msto63/textx/core/errors"
)

// Enum is implemented by enumerated option types. Go permits converting any
// integer to such a type, so validity has to be checked at run time.
type Enum interface {
	IsValid() bool
	String() string
}

// RequireNotNil fails when value is nil or a typed nil pointer, map, slice,
// func or interface.
func RequireNotNil(module, operation, param string, value interface{}) error {
	if isNil(value) {
		return mdwerrors.NullInput(module, operation, param)
	}
	return nil
}

// RequireNonEmpty fails when a mandatory string is empty
func RequireNonEmpty(module, operation, param, value string) error {
	if value == "" {
		return mdwerrors.NullInput(module, operation, param)
	}
	return nil
}

// RequireValidEnum fails when value is outside its defined set
func RequireValidEnum(module, operation, param string, value Enum) error {
	if isNil(value) {
		return mdwerrors.NullInput(module, operation, param)
	}
	if !value.IsValid() {
		return mdwerrors.InvalidEnumValue(module, operation, param, value.String())
	}
	return nil
}

// RequireNonNegative fails when n is below zero
func RequireNonNegative(module, operation, param string, n int) error {
	if n < 0 {
		return mdwerrors.NegativeLength(module, operation, param, n)
	}
	return nil
}

// RequireWithinBounds fails when requested exceeds available
func RequireWithinBounds(module, operation, param string, available, requested int) error {
	if requested > available {
		return mdwerrors.LengthOutOfRange(module, operation, param, available, requested)
	}
	return nil
}

// RequireCollection fails for a nil or empty collection
func RequireCollection(module, operation, param string, values []string) error {
	if values == nil {
		return mdwerrors.NullInput(module, operation, param)
	}
	if len(values) == 0 {
		return mdwerrors.EmptyCollection(module, operation, param)
	}
	return nil
}

// RequireMembers fails for the first empty member of values
func RequireMembers(module, operation, param string, values []string) error {
	for i, v := range values {
		if v == "" {
			return mdwerrors.NullOrEmptyMember(module, operation, param, i)
		}
	}
	return nil
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}
