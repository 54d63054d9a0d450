// File: builder.go
// Title: Error Builder
// Description: Fluent builder shared by all textx packages for assembling
//              *mdwerror.Error values with a module, an operation and
//              structured details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-08-14 v0.2.0: Operation names qualified with the module

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/textx/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx    = "stringx"
	ModuleValidation = "validation"
	ModuleConfig     = "config"
	ModuleI18n       = "i18n"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  *mdwerror.Severity
	code      mdwerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
		code:    mdwerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity mdwerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error. The operation recorded on the error is
// qualified with the module, e.g. "stringx.SubstringStart".
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	op := eb.qualifiedOperation()

	message := eb.message
	if message == "" {
		message = fmt.Sprintf("%s failed", op)
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, message)
	} else {
		err = mdwerror.New(message)
	}

	err = err.WithCode(eb.code).
		WithOperation(op).
		WithDetails(eb.details).
		WithDetail("module", eb.module)
	if eb.severity != nil {
		err = err.WithSeverity(*eb.severity)
	}
	return err
}

func (eb *ErrorBuilder) qualifiedOperation() string {
	if eb.operation == "" {
		return eb.module
	}
	return eb.module + "." + eb.operation
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if e, ok := err.(*mdwerror.Error); ok {
		if module, ok := e.Details()["module"].(string); ok {
			return module
		}
	}
	return ""
}

// ExtractParameter extracts the offending parameter name from an error
func ExtractParameter(err error) string {
	if e, ok := err.(*mdwerror.Error); ok {
		if param, ok := e.Details()["parameter"].(string); ok {
			return param
		}
	}
	return ""
}
