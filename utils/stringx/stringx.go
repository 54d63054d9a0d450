// File: stringx.go
// Title: Core String Helpers
// Description: Small predicates and helpers used across textx on top of
//              the marker-based operations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-08-14 v0.2.0: Reduced to the helpers used by the extraction engine

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	mdwerrors "github.com/msto63/textx/core/errors"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first string that is not blank, or "" if none
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}

// RuneLen returns the number of characters (runes) in s
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Preview returns the first ten user-perceived characters of s followed by
// "..." when s is longer. Error messages use it for offending values.
func Preview(s string) string {
	return mdwerrors.Preview(s)
}

// SplitLines splits s on "\n", dropping one trailing "\r" per line
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
