// File: substring.go
// Title: Substring Extraction
// Description: Marker-based extraction: prefix up to a marker, suffix from
//              a marker, a fixed number of characters after a marker, and
//              the text between two markers, each in first- and
//              last-occurrence variants.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package stringx

import (
	"unicode/utf8"

	mdwerrors "github.com/msto63/textx/core/errors"
	"github.com/msto63/textx/core/validation"
)

// Extractor runs extractions with fixed Options. The Comparer is resolved
// once on construction. An Extractor is safe for concurrent use.
type Extractor struct {
	opts Options
	cmp  Comparer
}

// NewExtractor validates opts and resolves its Comparer
func NewExtractor(opts Options) (*Extractor, error) {
	if err := validation.RequireValidEnum(mdwerrors.ModuleStringx, "NewExtractor", "inclusion", opts.Inclusion); err != nil {
		return nil, err
	}
	cmp, err := opts.comparer("NewExtractor")
	if err != nil {
		return nil, err
	}
	return &Extractor{opts: opts, cmp: cmp}, nil
}

// NewExtractorWithComparer creates an Extractor that matches markers with cmp
func NewExtractorWithComparer(cmp Comparer, opts Options) (*Extractor, error) {
	if err := validation.RequireNotNil(mdwerrors.ModuleStringx, "NewExtractorWithComparer", "comparer", cmp); err != nil {
		return nil, err
	}
	opts.Comparer = cmp
	return NewExtractor(opts)
}

// Options returns the options of the extractor
func (e *Extractor) Options() Options {
	return e.opts
}

// Comparer returns the resolved comparison strategy
func (e *Extractor) Comparer() Comparer {
	return e.cmp
}

// Start returns the text before the first occurrence of endString
func (e *Extractor) Start(s, endString string) (string, error) {
	return prefixTo(e.cmp, "SubstringStart", s, endString, first, e.opts.Inclusive)
}

// StartLast returns the text before the last occurrence of endString
func (e *Extractor) StartLast(s, endString string) (string, error) {
	return prefixTo(e.cmp, "SubstringStartLast", s, endString, last, e.opts.Inclusive)
}

// End returns the text after the first occurrence of startString
func (e *Extractor) End(s, startString string) (string, error) {
	return suffixFrom(e.cmp, "SubstringEnd", s, startString, first, e.opts.Inclusive)
}

// EndLast returns the text after the last occurrence of startString
func (e *Extractor) EndLast(s, startString string) (string, error) {
	return suffixFrom(e.cmp, "SubstringEndLast", s, startString, last, e.opts.Inclusive)
}

// Length returns length characters following the first occurrence of startString
func (e *Extractor) Length(s, startString string, length int) (string, error) {
	return withLength(e.cmp, "SubstringLength", s, startString, length, first, e.opts.Inclusive)
}

// LengthLast returns length characters following the last occurrence of startString
func (e *Extractor) LengthLast(s, startString string, length int) (string, error) {
	return withLength(e.cmp, "SubstringLengthLast", s, startString, length, last, e.opts.Inclusive)
}

// Between returns the text between the first startString and the first
// endString after it.
func (e *Extractor) Between(s, startString, endString string) (string, error) {
	return between(e.cmp, "SubstringBetween", s, startString, endString, first, e.opts.Inclusion)
}

// BetweenLast returns the text between the first startString and the last
// endString after it.
func (e *Extractor) BetweenLast(s, startString, endString string) (string, error) {
	return between(e.cmp, "SubstringBetweenLast", s, startString, endString, last, e.opts.Inclusion)
}

// SubstringStart returns the text of s before the first occurrence of
// endString, or up to and including it when opts.Inclusive is set. An empty
// endString yields "".
func SubstringStart(s, endString string, opts Options) (string, error) {
	cmp, err := opts.comparer("SubstringStart")
	if err != nil {
		return "", err
	}
	return prefixTo(cmp, "SubstringStart", s, endString, first, opts.Inclusive)
}

// SubstringStartLast is SubstringStart for the last occurrence of
// endString. An empty endString yields s.
func SubstringStartLast(s, endString string, opts Options) (string, error) {
	cmp, err := opts.comparer("SubstringStartLast")
	if err != nil {
		return "", err
	}
	return prefixTo(cmp, "SubstringStartLast", s, endString, last, opts.Inclusive)
}

// SubstringEnd returns the text of s after the first occurrence of
// startString, or from it when opts.Inclusive is set. An empty startString
// yields s.
func SubstringEnd(s, startString string, opts Options) (string, error) {
	cmp, err := opts.comparer("SubstringEnd")
	if err != nil {
		return "", err
	}
	return suffixFrom(cmp, "SubstringEnd", s, startString, first, opts.Inclusive)
}

// SubstringEndLast is SubstringEnd for the last occurrence of startString.
// An empty startString yields s.
func SubstringEndLast(s, startString string, opts Options) (string, error) {
	cmp, err := opts.comparer("SubstringEndLast")
	if err != nil {
		return "", err
	}
	return suffixFrom(cmp, "SubstringEndLast", s, startString, last, opts.Inclusive)
}

// SubstringLength returns exactly length characters (runes) of s following
// the first occurrence of startString. With opts.Inclusive the count starts
// at the marker itself. An empty startString counts from the beginning of s.
//
// It fails with a NEGATIVE_LENGTH error for length < 0 and with a
// LENGTH_OUT_OF_RANGE error, reporting the overflow, when fewer than length
// characters remain.
func SubstringLength(s, startString string, length int, opts Options) (string, error) {
	cmp, err := opts.comparer("SubstringLength")
	if err != nil {
		return "", err
	}
	return withLength(cmp, "SubstringLength", s, startString, length, first, opts.Inclusive)
}

// SubstringLengthLast is SubstringLength for the last occurrence of startString
func SubstringLengthLast(s, startString string, length int, opts Options) (string, error) {
	cmp, err := opts.comparer("SubstringLengthLast")
	if err != nil {
		return "", err
	}
	return withLength(cmp, "SubstringLengthLast", s, startString, length, last, opts.Inclusive)
}

// SubstringBetween returns the text between the first occurrence of
// startString and the first occurrence of endString after it. opts.Inclusion
// selects which markers are kept.
//
// An empty startString is the beginning of s. An empty endString is found
// immediately after the start marker, so the result holds at most the start
// marker.
func SubstringBetween(s, startString, endString string, opts Options) (string, error) {
	cmp, err := betweenComparer("SubstringBetween", opts)
	if err != nil {
		return "", err
	}
	return between(cmp, "SubstringBetween", s, startString, endString, first, opts.Inclusion)
}

// SubstringBetweenLast returns the text between the first occurrence of
// startString and the last occurrence of endString after it. An empty
// endString extends the result to the end of s.
func SubstringBetweenLast(s, startString, endString string, opts Options) (string, error) {
	cmp, err := betweenComparer("SubstringBetweenLast", opts)
	if err != nil {
		return "", err
	}
	return between(cmp, "SubstringBetweenLast", s, startString, endString, last, opts.Inclusion)
}

func betweenComparer(operation string, opts Options) (Comparer, error) {
	if err := validation.RequireValidEnum(mdwerrors.ModuleStringx, operation, "inclusion", opts.Inclusion); err != nil {
		return nil, err
	}
	return opts.comparer(operation)
}

func prefixTo(cmp Comparer, operation, s, endString string, occ occurrence, inclusive bool) (string, error) {
	end, err := locateEnd(cmp, operation, s, endString, occ)
	if err != nil {
		return "", err
	}
	if inclusive {
		return s[:end.end], nil
	}
	return s[:end.start], nil
}

func suffixFrom(cmp Comparer, operation, s, startString string, occ occurrence, inclusive bool) (string, error) {
	start, err := locateStart(cmp, operation, s, startString, occ)
	if err != nil {
		return "", err
	}
	if inclusive {
		return s[start.start:], nil
	}
	return s[start.end:], nil
}

func withLength(cmp Comparer, operation, s, startString string, length int, occ occurrence, inclusive bool) (string, error) {
	if err := validation.RequireNonNegative(mdwerrors.ModuleStringx, operation, "length", length); err != nil {
		return "", err
	}
	start, err := locateStart(cmp, operation, s, startString, occ)
	if err != nil {
		return "", err
	}

	from := start.end
	if inclusive {
		from = start.start
	}
	rest := s[from:]
	available := utf8.RuneCountInString(rest)
	if err := validation.RequireWithinBounds(mdwerrors.ModuleStringx, operation, "length", available, length); err != nil {
		return "", err
	}
	return rest[:runeOffset(rest, length)], nil
}

func between(cmp Comparer, operation, s, startString, endString string, occ occurrence, inc Inclusion) (string, error) {
	start, err := locateStart(cmp, operation, s, startString, first)
	if err != nil {
		return "", err
	}
	endRel, err := locateEndAfterStart(cmp, operation, s, start, startString, endString, occ)
	if err != nil {
		return "", err
	}
	from, length := resolve(start, endRel, inc)
	return s[from : from+length], nil
}

// runeOffset returns the byte offset of the n-th rune of s, or len(s)
func runeOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}
