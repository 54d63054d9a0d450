// Package errors provides the standard error constructors used by every
// textx package.
//
// Package: errors
// Title: Standard Error Handling API for textx
// Description: One constructor per failure kind (NullInput, InvalidEnumValue,
//              EmptyCollection, NullOrEmptyMember, MarkerNotFound,
//              EndMarkerNotFoundAfterStart, NegativeLength,
//              LengthOutOfRange) plus the ErrorBuilder they share and the
//              Preview helper that keeps offending values short.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2025-08-14 v0.2.0: Extraction error taxonomy, grapheme-aware previews
//
// Every constructor records the module, the qualified operation and the
// parameter name in the error details:
//
//	err := errors.MarkerNotFound(errors.ModuleStringx, "SubstringStart", "endString", "end")
//	err.Error()                    // stringx.SubstringStart: endString "end" not found
//	errors.ExtractParameter(err)   // endString
//
// Values echoed into messages pass through Preview, which keeps the first
// ten grapheme clusters and appends "..." so messages stay bounded no
// matter how long a marker is.
package errors
