// File: comparer.go
// Title: Comparison Provider
// Description: The Comparer interface used by every marker search, and the
//              ordinal implementations. Culture-aware implementations live in
//              culture.go.
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
	"unicode/utf8"

	"golang.org/x/text/language"

	mdwerrors "github.com/msto63/textx/core/errors"
	"github.com/msto63/textx/core/i18n"
	"github.com/msto63/textx/core/validation"
)

// Comparer matches substrings under one comparison rule. Positions are byte
// offsets into the searched string. A match may be longer or shorter than
// the pattern when case folding or collation is involved, which is why
// matches are reported as start/end pairs.
//
// Implementations must be safe for concurrent use.
type Comparer interface {
	// Index returns the first match of substr in s, or -1, -1.
	Index(s, substr string) (start, end int)

	// LastIndex returns the match of substr in s that starts last, or -1, -1.
	LastIndex(s, substr string) (start, end int)

	// MatchPrefix reports whether s starts with prefix and where the match ends.
	MatchPrefix(s, prefix string) (end int, ok bool)

	// MatchSuffix reports whether s ends with suffix and where the match starts.
	MatchSuffix(s, suffix string) (start int, ok bool)

	// Equal reports whether a and b are equal.
	Equal(a, b string) bool

	// Compare orders a and b, returning -1, 0 or +1.
	Compare(a, b string) int
}

// NewComparer returns the Comparer for c. locale is the current culture used
// by CurrentCulture and CurrentCultureIgnoreCase; language.Und selects the
// locale of the process environment.
func NewComparer(c Comparison, locale language.Tag) (Comparer, error) {
	if err := validation.RequireValidEnum(mdwerrors.ModuleStringx, "NewComparer", "comparison", c); err != nil {
		return nil, err
	}

	switch c {
	case Ordinal:
		return ordinalComparer{}, nil
	case OrdinalIgnoreCase:
		return foldComparer{}, nil
	case InvariantCulture, InvariantCultureIgnoreCase:
		return sharedCultureComparer(language.Und, c.IgnoreCase()), nil
	default:
		if locale == language.Und {
			locale = i18n.CurrentLocale()
		}
		return sharedCultureComparer(locale, c.IgnoreCase()), nil
	}
}

// ordinalComparer compares bytes.
type ordinalComparer struct{}

func (ordinalComparer) Index(s, substr string) (int, int) {
	i := strings.Index(s, substr)
	if i < 0 {
		return -1, -1
	}
	return i, i + len(substr)
}

func (ordinalComparer) LastIndex(s, substr string) (int, int) {
	i := strings.LastIndex(s, substr)
	if i < 0 {
		return -1, -1
	}
	return i, i + len(substr)
}

func (ordinalComparer) MatchPrefix(s, prefix string) (int, bool) {
	if strings.HasPrefix(s, prefix) {
		return len(prefix), true
	}
	return 0, false
}

func (ordinalComparer) MatchSuffix(s, suffix string) (int, bool) {
	if strings.HasSuffix(s, suffix) {
		return len(s) - len(suffix), true
	}
	return 0, false
}

func (ordinalComparer) Equal(a, b string) bool {
	return a == b
}

func (ordinalComparer) Compare(a, b string) int {
	return strings.Compare(a, b)
}

// foldComparer compares runes under simple case folding. Folding maps one
// rune to one rune, so a match always spans as many runes as the pattern,
// though not necessarily as many bytes (e.g. U+212A KELVIN SIGN and 'k').
type foldComparer struct{}

func (foldComparer) Index(s, substr string) (int, int) {
	for i := 0; ; {
		if n, ok := matchFold(s[i:], substr); ok {
			return i, i + n
		}
		if i == len(s) {
			return -1, -1
		}
		_, w := utf8.DecodeRuneInString(s[i:])
		i += w
	}
}

func (foldComparer) LastIndex(s, substr string) (int, int) {
	for i := len(s); ; {
		if n, ok := matchFold(s[i:], substr); ok {
			return i, i + n
		}
		if i == 0 {
			return -1, -1
		}
		_, w := utf8.DecodeLastRuneInString(s[:i])
		i -= w
	}
}

func (foldComparer) MatchPrefix(s, prefix string) (int, bool) {
	return matchFold(s, prefix)
}

func (foldComparer) MatchSuffix(s, suffix string) (int, bool) {
	i := len(s)
	for k := utf8.RuneCountInString(suffix); k > 0; k-- {
		if i == 0 {
			return 0, false
		}
		_, w := utf8.DecodeLastRuneInString(s[:i])
		i -= w
	}
	if n, ok := matchFold(s[i:], suffix); ok && i+n == len(s) {
		return i, true
	}
	return 0, false
}

func (foldComparer) Equal(a, b string) bool {
	return strings.EqualFold(a, b)
}

func (foldComparer) Compare(a, b string) int {
	for a != "" && b != "" {
		ra, wa := utf8.DecodeRuneInString(a)
		rb, wb := utf8.DecodeRuneInString(b)
		fa, fb := foldRune(ra), foldRune(rb)
		if fa != fb {
			if fa < fb {
				return -1
			}
			return 1
		}
		a, b = a[wa:], b[wb:]
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}

// matchFold reports whether s starts with pattern under simple folding and
// how many bytes of s the match consumed.
func matchFold(s, pattern string) (int, bool) {
	n := 0
	for pattern != "" {
		if n == len(s) {
			return 0, false
		}
		rs, ws := utf8.DecodeRuneInString(s[n:])
		rp, wp := utf8.DecodeRuneInString(pattern)
		if !equalFoldRune(rs, rp) {
			return 0, false
		}
		n += ws
		pattern = pattern[wp:]
	}
	return n, true
}

func equalFoldRune(a, b rune) bool {
	if a == b {
		return true
	}
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		return 'a' <= (a|0x20) && (a|0x20) <= 'z' && a|0x20 == b|0x20
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}

// foldRune returns the smallest rune of r's folding orbit, a canonical
// representative that is equal for all case variants of r.
func foldRune(r rune) rune {
	min := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < min {
			min = f
		}
	}
	return min
}
