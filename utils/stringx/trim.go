// File: trim.go
// Title: Trimming
// Description: Removal of repeated leading and trailing occurrences of a
//              value under a Comparison, and Unicode whitespace trimming.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
)

// TrimStart removes every leading occurrence of value from s
func TrimStart(s, value string, opts Options) (string, error) {
	cmp, err := valueComparer("TrimStart", "value", value, opts)
	if err != nil {
		return "", err
	}
	return trimStart(cmp, s, value), nil
}

// TrimEnd removes every trailing occurrence of value from s
func TrimEnd(s, value string, opts Options) (string, error) {
	cmp, err := valueComparer("TrimEnd", "value", value, opts)
	if err != nil {
		return "", err
	}
	return trimEnd(cmp, s, value), nil
}

// Trim removes every leading and trailing occurrence of value from s
func Trim(s, value string, opts Options) (string, error) {
	cmp, err := valueComparer("Trim", "value", value, opts)
	if err != nil {
		return "", err
	}
	return trimEnd(cmp, trimStart(cmp, s, value), value), nil
}

// TrimSpace removes leading and trailing Unicode whitespace
func TrimSpace(s string) string {
	return strings.TrimFunc(s, unicode.IsSpace)
}

// TrimStartSpace removes leading Unicode whitespace
func TrimStartSpace(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// TrimEndSpace removes trailing Unicode whitespace
func TrimEndSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

func trimStart(cmp Comparer, s, value string) string {
	for s != "" {
		end, ok := cmp.MatchPrefix(s, value)
		if !ok || end == 0 {
			break
		}
		s = s[end:]
	}
	return s
}

func trimEnd(cmp Comparer, s, value string) string {
	for s != "" {
		start, ok := cmp.MatchSuffix(s, value)
		if !ok || start == len(s) {
			break
		}
		s = s[:start]
	}
	return s
}
