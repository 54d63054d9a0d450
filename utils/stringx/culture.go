// File: culture.go
// Title: Culture-Aware Comparer
// Description: Linguistic matching backed by golang.org/x/text. Searching
//              and equality use the collation-based search.Matcher of the
//              locale; ordering uses collate.Collator.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-21
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation
// - 2025-08-21 v0.2.1: Literal matches found next to ignorable runes

package stringx

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/msto63/textx/pkg/core/cache"
)

type cultureKey struct {
	tag        language.Tag
	ignoreCase bool
}

// cultureComparers holds one comparer per locale and case mode. Building a
// collator is far more expensive than a search.
var cultureComparers = cache.New[cultureKey, *cultureComparer](cache.Config{MaxItems: 64})

// sharedCultureComparer returns the cached comparer for tag, building it on
// first use.
func sharedCultureComparer(tag language.Tag, ignoreCase bool) *cultureComparer {
	cmp, _ := cultureComparers.GetOrSet(cultureKey{tag, ignoreCase}, func() (*cultureComparer, error) {
		return newCultureComparer(tag, ignoreCase), nil
	})
	return cmp
}

type cultureComparer struct {
	tag language.Tag

	// mu guards matcher and collator, neither of which is documented as
	// safe for concurrent use.
	mu       sync.Mutex
	matcher  *search.Matcher
	collator *collate.Collator

	// literal finds the occurrences the collation search misses, e.g. a
	// marker followed by an ignorable rune such as U+00AD. Every literal
	// match is also a linguistic one.
	literal Comparer
}

func newCultureComparer(tag language.Tag, ignoreCase bool) *cultureComparer {
	var (
		searchOpts  []search.Option
		collateOpts []collate.Option
	)
	if ignoreCase {
		searchOpts = append(searchOpts, search.IgnoreCase)
		collateOpts = append(collateOpts, collate.IgnoreCase)
	}
	var literal Comparer = ordinalComparer{}
	if ignoreCase {
		literal = foldComparer{}
	}
	return &cultureComparer{
		tag:      tag,
		matcher:  search.New(tag, searchOpts...),
		collator: collate.New(tag, collateOpts...),
		literal:  literal,
	}
}

// Locale returns the language tag the comparer was built for
func (c *cultureComparer) Locale() language.Tag {
	return c.tag
}

// Index returns whichever of the linguistic and the literal match starts
// first, preferring the linguistic one on a tie.
func (c *cultureComparer) Index(s, substr string) (int, int) {
	c.mu.Lock()
	start, end := c.matcher.IndexString(s, substr)
	c.mu.Unlock()

	ls, le := c.literal.Index(s, substr)
	if ls >= 0 && (start < 0 || ls < start) {
		return ls, le
	}
	return start, end
}

// LastIndex walks the matches from the left and keeps the last one, so it
// only needs forward search. A later literal match wins.
func (c *cultureComparer) LastIndex(s, substr string) (int, int) {
	c.mu.Lock()
	start, end := -1, -1
	c.eachMatch(s, substr, func(st, en int) bool {
		start, end = st, en
		return true
	})
	c.mu.Unlock()

	if ls, le := c.literal.LastIndex(s, substr); ls > start {
		return ls, le
	}
	return start, end
}

func (c *cultureComparer) MatchPrefix(s, prefix string) (int, bool) {
	c.mu.Lock()
	start, end := c.matcher.IndexString(s, prefix, search.Anchor)
	c.mu.Unlock()

	if start == 0 {
		return end, true
	}
	return c.literal.MatchPrefix(s, prefix)
}

func (c *cultureComparer) MatchSuffix(s, suffix string) (int, bool) {
	c.mu.Lock()
	found, at := false, 0
	c.eachMatch(s, suffix, func(st, en int) bool {
		if en == len(s) {
			found, at = true, st
			return false
		}
		return true
	})
	c.mu.Unlock()

	if found {
		return at, true
	}
	return c.literal.MatchSuffix(s, suffix)
}

func (c *cultureComparer) Equal(a, b string) bool {
	if c.literal.Equal(a, b) {
		return true
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.matcher.EqualString(a, b)
}

func (c *cultureComparer) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collator.CompareString(a, b)
}

// eachMatch calls fn for every match of pattern in s in order of their
// start, including overlapping ones, until fn returns false. The caller
// holds c.mu.
func (c *cultureComparer) eachMatch(s, pattern string, fn func(start, end int) bool) {
	p := c.matcher.CompileString(pattern)
	for i := 0; i <= len(s); {
		st, en := p.IndexString(s[i:])
		if st < 0 {
			return
		}
		if !fn(i+st, i+en) {
			return
		}
		_, w := utf8.DecodeRuneInString(s[i+st:])
		if w == 0 {
			return
		}
		i += st + w
	}
}
