// Package error provides structured error handling for textx.
//
// Package: error
// Title: textx Error Handling Framework
// Description: Structured errors with codes, severities, operation names and
//              details. Every failure of the extraction engine is an *Error,
//              so callers can branch on codes and read the offending
//              parameter from the details instead of parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-08-14 v0.2.0: textx code taxonomy and errors.Is support
//
// Usage:
//
//	import mdwerror "github.com/msto63/textx/core/error"
//
//	err := mdwerror.New("endString \"end\" not found").
//		WithCode(mdwerror.CodeMarkerNotFound).
//		WithOperation("stringx.SubstringStart").
//		WithDetail("parameter", "endString")
//
//	if mdwerror.HasCode(err, mdwerror.CodeMarkerNotFound) {
//		// ...
//	}
//
// Two *Error values compare equal under errors.Is when their codes match,
// which lets packages export sentinel values:
//
//	var ErrMarkerNotFound = mdwerror.New("marker not found").WithCode(mdwerror.CodeMarkerNotFound)
//
//	if errors.Is(err, ErrMarkerNotFound) { ... }
package error
