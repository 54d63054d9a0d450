// File: locate.go
// Title: Boundary Locator and Inclusion Resolver
// Description: Finds marker occurrences in a subject and turns located
//              markers plus an inclusion policy into slice bounds.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package stringx

import (
	mdwerrors "github.com/msto63/textx/core/errors"
)

// occurrence selects the first or the last match of a marker
type occurrence int

const (
	first occurrence = iota
	last
)

// span is a located match as byte offsets [start, end)
type span struct {
	start, end int
}

func (s span) len() int {
	return s.end - s.start
}

var notFound = span{-1, -1}

// find returns the requested occurrence of marker in s, or notFound
func find(cmp Comparer, s, marker string, occ occurrence) span {
	var st, en int
	if occ == last {
		st, en = cmp.LastIndex(s, marker)
	} else {
		st, en = cmp.Index(s, marker)
	}
	if st < 0 {
		return notFound
	}
	return span{st, en}
}

// locateStart locates a start marker. The empty marker is the beginning of
// the subject for both occurrences.
func locateStart(cmp Comparer, operation, s, marker string, occ occurrence) (span, error) {
	if marker == "" {
		return span{}, nil
	}
	sp := find(cmp, s, marker, occ)
	if sp == notFound {
		return notFound, mdwerrors.MarkerNotFound(mdwerrors.ModuleStringx, operation, "startString", marker)
	}
	return sp, nil
}

// locateEnd locates an end marker that delimits a prefix of the subject.
// The empty marker is the beginning of the subject for the first occurrence
// and the end of the subject for the last.
func locateEnd(cmp Comparer, operation, s, marker string, occ occurrence) (span, error) {
	if marker == "" {
		if occ == last {
			return span{len(s), len(s)}, nil
		}
		return span{}, nil
	}
	sp := find(cmp, s, marker, occ)
	if sp == notFound {
		return notFound, mdwerrors.MarkerNotFound(mdwerrors.ModuleStringx, operation, "endString", marker)
	}
	return sp, nil
}

// locateEndAfterStart locates endMarker in the region following the start
// match. The result is relative to start.end. An empty end marker is found
// immediately (first) or at the end of the region (last).
func locateEndAfterStart(cmp Comparer, operation, s string, start span, startMarker, endMarker string, occ occurrence) (span, error) {
	region := s[start.end:]
	if endMarker == "" {
		if occ == last {
			return span{len(region), len(region)}, nil
		}
		return span{}, nil
	}
	sp := find(cmp, region, endMarker, occ)
	if sp != notFound {
		return sp, nil
	}
	if find(cmp, s, endMarker, first) != notFound {
		return notFound, mdwerrors.EndMarkerNotFoundAfterStart(mdwerrors.ModuleStringx, operation, startMarker, endMarker)
	}
	return notFound, mdwerrors.MarkerNotFound(mdwerrors.ModuleStringx, operation, "endString", endMarker)
}

// resolve computes the slice bounds for a start match and an end match
// relative to start.end. The returned length counts bytes from from.
func resolve(start, endRel span, inc Inclusion) (from, length int) {
	startLen, endLen := start.len(), endRel.len()
	switch inc {
	case IncludeStart:
		return start.start, endRel.start + startLen
	case IncludeEnd:
		return start.end, endRel.start + endLen
	case IncludeAll:
		return start.start, endRel.start + startLen + endLen
	default:
		return start.end, endRel.start
	}
}
