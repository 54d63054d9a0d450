// File: search_test.go
// Title: Unit Tests for Multi-Needle Search
// Description: Tests for containment, index, affix and equality queries.
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

func TestContains(t *testing.T) {
	tests := []struct {
		name       string
		s, value   string
		comparison Comparison
		expected   bool
	}{
		{"ordinal match", "Hello World", "World", Ordinal, true},
		{"ordinal case mismatch", "Hello World", "world", Ordinal, false},
		{"ignore case", "Hello World", "world", OrdinalIgnoreCase, true},
		{"culture ignore case", "Hello World", "WORLD", InvariantCultureIgnoreCase, true},
		{"absent", "Hello World", "planet", OrdinalIgnoreCase, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Contains(tt.s, tt.value, Options{Comparison: tt.comparison})
			if err != nil {
				t.Fatalf("Contains failed: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Contains(%q, %q) = %v; want %v", tt.s, tt.value, got, tt.expected)
			}
		})
	}

	if _, err := Contains("abc", "", ordinal); !errors.Is(err, ErrNullInput) {
		t.Errorf("Contains with empty value: error = %v; want null input", err)
	}
}

func TestContainsAnyAll(t *testing.T) {
	opts := Options{Comparison: OrdinalIgnoreCase}
	s := "The Quick Brown Fox"

	tests := []struct {
		name   string
		values []string
		any    bool
		all    bool
	}{
		{"all present", []string{"quick", "fox"}, true, true},
		{"some present", []string{"quick", "dog"}, true, false},
		{"none present", []string{"cat", "dog"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotAny, err := ContainsAny(s, tt.values, opts)
			if err != nil {
				t.Fatalf("ContainsAny failed: %v", err)
			}
			gotAll, err := ContainsAll(s, tt.values, opts)
			if err != nil {
				t.Fatalf("ContainsAll failed: %v", err)
			}
			if gotAny != tt.any || gotAll != tt.all {
				t.Errorf("any=%v all=%v; want any=%v all=%v", gotAny, gotAll, tt.any, tt.all)
			}
		})
	}

	if _, err := ContainsAny(s, nil, opts); !errors.Is(err, ErrNullInput) {
		t.Errorf("ContainsAny(nil) error = %v; want null input", err)
	}
	if _, err := ContainsAll(s, []string{}, opts); !errors.Is(err, ErrEmptyCollection) {
		t.Errorf("ContainsAll(empty) error = %v; want empty collection", err)
	}
}

func TestIndexOf(t *testing.T) {
	opts := Options{Comparison: OrdinalIgnoreCase}

	if i, _ := IndexOf("abcABC", "ABC", opts); i != 0 {
		t.Errorf("IndexOf = %d; want 0", i)
	}
	if i, _ := LastIndexOf("abcABC", "abc", opts); i != 3 {
		t.Errorf("LastIndexOf = %d; want 3", i)
	}
	if i, _ := IndexOf("abc", "x", opts); i != -1 {
		t.Errorf("IndexOf absent = %d; want -1", i)
	}
	if i, err := LastIndexOf("abc", "", opts); i != -1 || !errors.Is(err, ErrNullInput) {
		t.Errorf("LastIndexOf empty = %d, %v; want -1, null input", i, err)
	}
}

func TestCultureFindsLiteralOccurrences(t *testing.T) {
	for _, c := range []Comparison{CurrentCulture, InvariantCulture, InvariantCultureIgnoreCase} {
		opts := Options{Comparison: c}

		if i, err := IndexOf("ab\u00ad", "b", opts); err != nil || i != 1 {
			t.Errorf("%s: IndexOf before soft hyphen = %d, %v; want 1", c, i, err)
		}
		if ok, _ := Contains("x\u200by", "x", opts); !ok {
			t.Errorf("%s: Contains before zero width space = false", c)
		}
		if ok, _ := HasPrefix("b\u00adx", "b", opts); !ok {
			t.Errorf("%s: HasPrefix before soft hyphen = false", c)
		}
		if ok, _ := HasSuffix("xab\u00ad", "b\u00ad", opts); !ok {
			t.Errorf("%s: HasSuffix with soft hyphen = false", c)
		}
		if ok, _ := Equal("b\u00ad", "b\u00ad", opts); !ok {
			t.Errorf("%s: Equal of identical strings = false", c)
		}
	}
}

func TestAffixEqualCompare(t *testing.T) {
	opts := Options{Comparison: OrdinalIgnoreCase}

	if ok, _ := HasPrefix("README.md", "readme", opts); !ok {
		t.Error("HasPrefix should ignore case")
	}
	if ok, _ := HasSuffix("README.md", ".MD", opts); !ok {
		t.Error("HasSuffix should ignore case")
	}
	if ok, _ := HasSuffix("README.md", ".MD", ordinal); ok {
		t.Error("ordinal HasSuffix should respect case")
	}
	if ok, _ := Equal("Go", "GO", opts); !ok {
		t.Error("Equal should ignore case")
	}
	if c, _ := Compare("apple", "Banana", opts); c != -1 {
		t.Errorf("Compare = %d; want -1", c)
	}
	if _, err := Compare("a", "b", Options{Comparison: Comparison(9)}); !errors.Is(err, ErrInvalidEnumValue) {
		t.Errorf("Compare with invalid comparison: error = %v", err)
	}
}
