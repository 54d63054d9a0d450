// File: trim_test.go
// Title: Unit Tests for Trimming
// Description: Tests for value trimming under a comparison and for Unicode
//              whitespace trimming.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial test implementation

package stringx

import (
	"errors"
	"testing"
)

func TestTrimValue(t *testing.T) {
	tests := []struct {
		name       string
		s, value   string
		comparison Comparison
		start      string
		end        string
		both       string
	}{
		{"ordinal", "--a-b--", "-", Ordinal, "a-b--", "--a-b", "a-b"},
		{"multi-char", "abab-x-abab", "ab", Ordinal, "-x-abab", "abab-x-", "-x-"},
		{"ignore case", "xXaXx", "x", OrdinalIgnoreCase, "aXx", "xXa", "a"},
		{"culture ignore case", "HeyheyMiddleHEY", "hey", InvariantCultureIgnoreCase, "Middle" + "HEY", "HeyheyMiddle", "Middle"},
		{"everything", "aaa", "a", Ordinal, "", "", ""},
		{"nothing", "bab", "a", Ordinal, "bab", "bab", "bab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{Comparison: tt.comparison}
			if got, _ := TrimStart(tt.s, tt.value, opts); got != tt.start {
				t.Errorf("TrimStart(%q, %q) = %q; want %q", tt.s, tt.value, got, tt.start)
			}
			if got, _ := TrimEnd(tt.s, tt.value, opts); got != tt.end {
				t.Errorf("TrimEnd(%q, %q) = %q; want %q", tt.s, tt.value, got, tt.end)
			}
			if got, _ := Trim(tt.s, tt.value, opts); got != tt.both {
				t.Errorf("Trim(%q, %q) = %q; want %q", tt.s, tt.value, got, tt.both)
			}
		})
	}
}

func TestTrimValueValidation(t *testing.T) {
	if _, err := Trim("abc", "", ordinal); !errors.Is(err, ErrNullInput) {
		t.Errorf("Trim with empty value: error = %v; want null input", err)
	}
	if _, err := TrimStart("abc", "a", Options{Comparison: Comparison(8)}); !errors.Is(err, ErrInvalidEnumValue) {
		t.Errorf("TrimStart with invalid comparison: error = %v", err)
	}
}

func TestTrimSpace(t *testing.T) {
	input := "\u3000\t hello world \n "

	if got := TrimSpace(input); got != "hello world" {
		t.Errorf("TrimSpace = %q", got)
	}
	if got := TrimStartSpace(input); got != "hello world \n " {
		t.Errorf("TrimStartSpace = %q", got)
	}
	if got := TrimEndSpace(input); got != "\u3000\t hello world" {
		t.Errorf("TrimEndSpace = %q", got)
	}
}
