// File: search.go
// Title: Multi-Needle Search
// Description: Containment and index queries under a Comparison.
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
	"github.com/msto63/textx/core/validation"
)

// Contains reports whether value occurs in s
func Contains(s, value string, opts Options) (bool, error) {
	i, err := IndexOf(s, value, opts)
	return i >= 0, err
}

// ContainsAny reports whether any of values occurs in s
func ContainsAny(s string, values []string, opts Options) (bool, error) {
	cmp, err := collectionComparer("ContainsAny", values, opts)
	if err != nil {
		return false, err
	}
	for _, v := range values {
		if st, _ := cmp.Index(s, v); st >= 0 {
			return true, nil
		}
	}
	return false, nil
}

// ContainsAll reports whether every one of values occurs in s
func ContainsAll(s string, values []string, opts Options) (bool, error) {
	cmp, err := collectionComparer("ContainsAll", values, opts)
	if err != nil {
		return false, err
	}
	for _, v := range values {
		if st, _ := cmp.Index(s, v); st < 0 {
			return false, nil
		}
	}
	return true, nil
}

// IndexOf returns the byte offset of the first occurrence of value in s,
// or -1.
func IndexOf(s, value string, opts Options) (int, error) {
	cmp, err := valueComparer("IndexOf", "value", value, opts)
	if err != nil {
		return -1, err
	}
	st, _ := cmp.Index(s, value)
	return st, nil
}

// LastIndexOf returns the byte offset of the last occurrence of value in s,
// or -1.
func LastIndexOf(s, value string, opts Options) (int, error) {
	cmp, err := valueComparer("LastIndexOf", "value", value, opts)
	if err != nil {
		return -1, err
	}
	st, _ := cmp.LastIndex(s, value)
	return st, nil
}

// HasPrefix reports whether s starts with value
func HasPrefix(s, value string, opts Options) (bool, error) {
	cmp, err := opts.comparer("HasPrefix")
	if err != nil {
		return false, err
	}
	_, ok := cmp.MatchPrefix(s, value)
	return ok, nil
}

// HasSuffix reports whether s ends with value
func HasSuffix(s, value string, opts Options) (bool, error) {
	cmp, err := opts.comparer("HasSuffix")
	if err != nil {
		return false, err
	}
	_, ok := cmp.MatchSuffix(s, value)
	return ok, nil
}

// Equal reports whether a and b are equal under the comparison
func Equal(a, b string, opts Options) (bool, error) {
	cmp, err := opts.comparer("Equal")
	if err != nil {
		return false, err
	}
	return cmp.Equal(a, b), nil
}

// Compare orders a and b under the comparison, returning -1, 0 or +1
func Compare(a, b string, opts Options) (int, error) {
	cmp, err := opts.comparer("Compare")
	if err != nil {
		return 0, err
	}
	return cmp.Compare(a, b), nil
}

func valueComparer(operation, param, value string, opts Options) (Comparer, error) {
	if err := validation.RequireNonEmpty(mdwerrors.ModuleStringx, operation, param, value); err != nil {
		return nil, err
	}
	return opts.comparer(operation)
}

func collectionComparer(operation string, values []string, opts Options) (Comparer, error) {
	err := validation.NewChain(mdwerrors.ModuleStringx, operation).
		Collection("values", values).
		Validate()
	if err != nil {
		return nil, err
	}
	return opts.comparer(operation)
}
