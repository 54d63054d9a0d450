// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides marker-based substring extraction
//              with configurable comparison rules, plus removal,
//              replacement, character-class filtering and trimming.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2025-08-14 v0.2.0: Rewritten around the extraction engine

// Package stringx locates marker substrings in a subject and returns the
// text around or between them.
//
// Overview
//
// Every marker-based operation follows the same steps: validate the
// arguments, locate the marker(s), resolve the slice bounds and slice. A
// failure at any step returns a *mdwerror.Error before anything is sliced;
// the result is always a contiguous run of the subject.
//
//   - SubstringStart / SubstringStartLast: text before a marker
//   - SubstringEnd / SubstringEndLast: text after a marker
//   - SubstringLength / SubstringLengthLast: n characters after a marker
//   - SubstringBetween / SubstringBetweenLast: text between two markers
//
// The Last variants use the last occurrence of the marker. For the
// two-marker operations the start marker is always its first occurrence
// and only the end marker search is affected; the end marker is searched
// only after the start marker.
//
// Empty markers
//
// The empty marker stands for a boundary of the subject, never for "no
// marker":
//
//	SubstringStart(s, "", opts)     == ""
//	SubstringStartLast(s, "", opts) == s
//	SubstringEnd(s, "", opts)       == s
//	SubstringEndLast(s, "", opts)   == s
//
// An empty start marker of SubstringBetween is the beginning of the subject.
// An empty end marker is found right after the start marker (first
// occurrence) or at the end of the subject (last occurrence).
//
// Options
//
// Options carries the comparison, the inclusion policy and the locale as
// named fields. The zero value compares with the current culture and keeps
// no markers:
//
//	opts := stringx.Options{Comparison: stringx.OrdinalIgnoreCase}
//	v, err := stringx.SubstringBetween("a [X] b", "[", "]", opts)
//	// v == "X"
//
// Comparison modes map to Comparer implementations: ordinal modes compare
// bytes or case-folded runes, culture modes use golang.org/x/text/search
// and golang.org/x/text/collate. Callers may inject their own Comparer.
// Extractor resolves the Comparer once for repeated use.
//
// Errors
//
// Errors carry a code (MARKER_NOT_FOUND, LENGTH_OUT_OF_RANGE, ...) and can
// be matched with errors.Is against the Err* sentinels:
//
//	_, err := stringx.SubstringStart("", "end", stringx.Options{})
//	errors.Is(err, stringx.ErrMarkerNotFound) // true
//	err.Error() // stringx.SubstringStart: endString "end" not found
//
// Units
//
// Lengths passed to SubstringLength and the overflow reported by its errors
// count runes. Byte offsets returned by IndexOf and LastIndexOf count bytes,
// as in package strings.
package stringx
