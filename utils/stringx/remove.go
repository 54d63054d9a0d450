// File: remove.go
// Title: Remove and Replace
// Description: Removal and replacement of every occurrence of one or more
//              values under a Comparison.
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
	"unicode/utf8"
)

// Remove deletes every non-overlapping occurrence of value from s
func Remove(s, value string, opts Options) (string, error) {
	cmp, err := valueComparer("Remove", "value", value, opts)
	if err != nil {
		return "", err
	}
	return replace(cmp, s, value, ""), nil
}

// RemoveAll deletes every occurrence of each of values, in order
func RemoveAll(s string, values []string, opts Options) (string, error) {
	cmp, err := collectionComparer("RemoveAll", values, opts)
	if err != nil {
		return "", err
	}
	for _, v := range values {
		s = replace(cmp, s, v, "")
	}
	return s, nil
}

// Replace substitutes newValue for every non-overlapping occurrence of
// oldValue. Text outside the matches is kept as is, including its case.
func Replace(s, oldValue, newValue string, opts Options) (string, error) {
	cmp, err := valueComparer("Replace", "oldValue", oldValue, opts)
	if err != nil {
		return "", err
	}
	return replace(cmp, s, oldValue, newValue), nil
}

// ReplaceAll substitutes newValue for every occurrence of each of oldValues,
// in order.
func ReplaceAll(s string, oldValues []string, newValue string, opts Options) (string, error) {
	cmp, err := collectionComparer("ReplaceAll", oldValues, opts)
	if err != nil {
		return "", err
	}
	for _, v := range oldValues {
		s = replace(cmp, s, v, newValue)
	}
	return s, nil
}

func replace(cmp Comparer, s, oldValue, newValue string) string {
	if _, ok := cmp.(ordinalComparer); ok {
		return strings.ReplaceAll(s, oldValue, newValue)
	}

	var b strings.Builder
	for {
		st, en := cmp.Index(s, oldValue)
		if st < 0 {
			break
		}
		if en == st {
			// Zero-width match (ignorable characters only); step one rune.
			_, w := utf8.DecodeRuneInString(s[st:])
			if w == 0 {
				break
			}
			b.WriteString(s[:st+w])
			s = s[st+w:]
			continue
		}
		b.WriteString(s[:st])
		b.WriteString(newValue)
		s = s[en:]
	}
	if b.Len() == 0 {
		return s
	}
	b.WriteString(s)
	return b.String()
}
