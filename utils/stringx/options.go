// File: options.go
// Title: Extraction Options
// Description: Named, defaulted settings shared by every marker-based
//              operation, and their resolution into a Comparer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package stringx

import (
	"golang.org/x/text/language"

	mdwerrors "github.com/msto63/textx/core/errors"
	"github.com/msto63/textx/core/validation"
)

// Options configures a marker-based operation. The zero value is the
// default: CurrentCulture comparison, IncludeNone, exclusive single markers
// and the locale of the process environment.
type Options struct {
	// Comparison selects how markers are matched. Ignored when Comparer is set.
	Comparison Comparison

	// Inclusion selects the markers kept by SubstringBetween and
	// SubstringBetweenLast.
	Inclusion Inclusion

	// Inclusive keeps the marker in the result of single-marker operations.
	Inclusive bool

	// Locale is the current culture. language.Und selects the locale of
	// the process environment.
	Locale language.Tag

	// Comparer overrides Comparison with a custom strategy.
	Comparer Comparer
}

// DefaultOptions returns the zero Options
func DefaultOptions() Options {
	return Options{}
}

// OrdinalOptions returns options for case-sensitive byte comparison
func OrdinalOptions() Options {
	return Options{Comparison: Ordinal}
}

// WithComparison returns a copy of o using comparison c
func (o Options) WithComparison(c Comparison) Options {
	o.Comparison = c
	return o
}

// WithInclusion returns a copy of o using inclusion i
func (o Options) WithInclusion(i Inclusion) Options {
	o.Inclusion = i
	return o
}

// WithInclusive returns a copy of o with Inclusive set to inclusive
func (o Options) WithInclusive(inclusive bool) Options {
	o.Inclusive = inclusive
	return o
}

// WithLocale returns a copy of o using locale as the current culture
func (o Options) WithLocale(locale language.Tag) Options {
	o.Locale = locale
	return o
}

// comparer validates the comparison fields of o for operation and returns
// the strategy they select.
func (o Options) comparer(operation string) (Comparer, error) {
	if o.Comparer != nil {
		if err := validation.RequireNotNil(mdwerrors.ModuleStringx, operation, "comparer", o.Comparer); err != nil {
			return nil, err
		}
		return o.Comparer, nil
	}
	if err := validation.RequireValidEnum(mdwerrors.ModuleStringx, operation, "comparisonType", o.Comparison); err != nil {
		return nil, err
	}
	return NewComparer(o.Comparison, o.Locale)
}
