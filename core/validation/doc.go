// Package validation provides the precondition checks the textx engine runs
// before it touches any index.
//
// Package: validation
// Title: Precondition Checks for textx
// Description: Parameter-named checks for nil arguments, empty strings,
//              enum validity, non-negative lengths, length bounds and
//              collections. Failures are *mdwerror.Error values created by
//              core/errors, so the error taxonomy stays in one place.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework
// - 2025-08-14 v0.2.0: Precondition checks and Chain
//
// A chain binds the checks of one operation and reports the first failure:
//
//	err := validation.NewChain("stringx", "SubstringLength").
//		ValidEnum("comparison", opts.Comparison).
//		NonNegative("length", length).
//		Validate()
package validation
