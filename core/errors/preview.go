// File: preview.go
// Title: Bounded Value Previews
// Description: Truncates offending values to a fixed number of grapheme
//              clusters so error messages stay bounded regardless of input.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation on rivo/uniseg

package errors

import "github.com/rivo/uniseg"

// PreviewLength is the number of user-perceived characters kept by Preview.
const PreviewLength = 10

// Ellipsis marks a truncated preview.
const Ellipsis = "..."

// Preview bounds a value for use in error messages: the first PreviewLength
// grapheme clusters, followed by Ellipsis when the value is longer.
func Preview(value string) string {
	return Truncate(value, PreviewLength)
}

// Truncate keeps the first n grapheme clusters of value and appends Ellipsis
// if anything was cut. Combining sequences and emoji are never split.
func Truncate(value string, n int) string {
	if n <= 0 {
		if value == "" {
			return ""
		}
		return Ellipsis
	}

	count, end := 0, 0
	g := uniseg.NewGraphemes(value)
	for g.Next() {
		if count == n {
			return value[:end] + Ellipsis
		}
		_, end = g.Positions()
		count++
	}
	return value
}
