// File: comparison.go
// Title: Comparison and Inclusion Modes
// Description: Enumerations selecting how markers are matched (ordinal or
//              culture-aware, case-sensitive or not) and which markers are
//              kept in a dual-marker extraction.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package stringx

import (
	"fmt"
	"strings"
)

// Comparison selects the rules used to match markers against a subject.
type Comparison int

const (
	// CurrentCulture compares linguistically using the current locale.
	CurrentCulture Comparison = iota

	// CurrentCultureIgnoreCase is CurrentCulture ignoring case.
	CurrentCultureIgnoreCase

	// InvariantCulture compares linguistically using the root collation.
	InvariantCulture

	// InvariantCultureIgnoreCase is InvariantCulture ignoring case.
	InvariantCultureIgnoreCase

	// Ordinal compares bytes.
	Ordinal

	// OrdinalIgnoreCase compares runes under simple Unicode case folding.
	OrdinalIgnoreCase
)

var comparisonNames = [...]string{
	CurrentCulture:             "current-culture",
	CurrentCultureIgnoreCase:   "current-culture-ignore-case",
	InvariantCulture:           "invariant-culture",
	InvariantCultureIgnoreCase: "invariant-culture-ignore-case",
	Ordinal:                    "ordinal",
	OrdinalIgnoreCase:          "ordinal-ignore-case",
}

// String returns the kebab-case name of the comparison
func (c Comparison) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Comparison(%d)", int(c))
	}
	return comparisonNames[c]
}

// IsValid reports whether c is one of the defined comparisons
func (c Comparison) IsValid() bool {
	return c >= CurrentCulture && c <= OrdinalIgnoreCase
}

// IgnoreCase reports whether c ignores case
func (c Comparison) IgnoreCase() bool {
	return c == CurrentCultureIgnoreCase || c == InvariantCultureIgnoreCase || c == OrdinalIgnoreCase
}

// IsCulture reports whether c is linguistic rather than ordinal
func (c Comparison) IsCulture() bool {
	return c.IsValid() && c < Ordinal
}

// ParseComparison parses a comparison name. Case, hyphens and underscores
// are ignored, so "OrdinalIgnoreCase", "ordinal_ignore_case" and
// "ordinal-ignore-case" are equivalent.
func ParseComparison(s string) (Comparison, error) {
	key := compactName(s)
	for c, name := range comparisonNames {
		if compactName(name) == key {
			return Comparison(c), nil
		}
	}
	return CurrentCulture, fmt.Errorf("stringx: unknown comparison %q", s)
}

// Inclusion selects which markers a dual-marker extraction keeps.
type Inclusion int

const (
	// IncludeNone keeps neither marker.
	IncludeNone Inclusion = iota

	// IncludeStart keeps the start marker.
	IncludeStart

	// IncludeEnd keeps the end marker.
	IncludeEnd

	// IncludeAll keeps both markers.
	IncludeAll
)

var inclusionNames = [...]string{
	IncludeNone:  "none",
	IncludeStart: "start",
	IncludeEnd:   "end",
	IncludeAll:   "all",
}

// String returns the name of the inclusion policy
func (i Inclusion) String() string {
	if !i.IsValid() {
		return fmt.Sprintf("Inclusion(%d)", int(i))
	}
	return inclusionNames[i]
}

// IsValid reports whether i is one of the defined policies
func (i Inclusion) IsValid() bool {
	return i >= IncludeNone && i <= IncludeAll
}

// KeepsStart reports whether the start marker is part of the result
func (i Inclusion) KeepsStart() bool {
	return i == IncludeStart || i == IncludeAll
}

// KeepsEnd reports whether the end marker is part of the result
func (i Inclusion) KeepsEnd() bool {
	return i == IncludeEnd || i == IncludeAll
}

// ParseInclusion parses an inclusion name ("none", "start", "end", "all",
// optionally prefixed with "include").
func ParseInclusion(s string) (Inclusion, error) {
	key := strings.TrimPrefix(compactName(s), "include")
	for i, name := range inclusionNames {
		if name == key {
			return Inclusion(i), nil
		}
	}
	if key == "both" {
		return IncludeAll, nil
	}
	return IncludeNone, fmt.Errorf("stringx: unknown inclusion %q", s)
}

func compactName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
