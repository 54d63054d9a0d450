// File: example_test.go
// Title: Example Tests for StringX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2025-08-14 v0.2.0: Examples for the extraction engine

package stringx_test

import (
	"errors"
	"fmt"

	"github.com/msto63/textx/utils/stringx"
)

func ExampleSubstringBetween() {
	s := "Begin start start middle end end terminus."
	opts := stringx.Options{Comparison: stringx.Ordinal}

	for _, inc := range []stringx.Inclusion{stringx.IncludeNone, stringx.IncludeStart, stringx.IncludeEnd, stringx.IncludeAll} {
		v, _ := stringx.SubstringBetween(s, "start", "end", opts.WithInclusion(inc))
		fmt.Printf("%-5s %q\n", inc, v)
	}
	// Output:
	// none  " start middle "
	// start "start start middle "
	// end   " start middle end"
	// all   "start start middle end"
}

func ExampleSubstringBetweenLast() {
	s := "Begin start start middle end end terminus."
	v, _ := stringx.SubstringBetweenLast(s, "start", "end", stringx.OrdinalOptions())
	fmt.Printf("%q\n", v)
	// Output: " start middle end "
}

func ExampleSubstringLength() {
	v, _ := stringx.SubstringLength("I started sweating.", "start", 8, stringx.OrdinalOptions())
	fmt.Printf("%q\n", v)

	_, err := stringx.SubstringLength("I started sweating.", "start", 20, stringx.OrdinalOptions())
	fmt.Println(err)
	// Output:
	// "ed sweat"
	// stringx.SubstringLength: length 20 exceeds the 12 characters available by 8
}

func ExampleSubstringStart() {
	s := "key=value=more"
	opts := stringx.OrdinalOptions()

	first, _ := stringx.SubstringStart(s, "=", opts)
	last, _ := stringx.SubstringStartLast(s, "=", opts)
	empty, _ := stringx.SubstringStart(s, "", opts)
	whole, _ := stringx.SubstringStartLast(s, "", opts)
	fmt.Printf("%q %q %q %q\n", first, last, empty, whole)
	// Output: "key" "key=value" "" "key=value=more"
}

func ExampleSubstringEnd() {
	s := "path/to/file.txt"
	opts := stringx.OrdinalOptions()

	afterFirst, _ := stringx.SubstringEnd(s, "/", opts)
	afterLast, _ := stringx.SubstringEndLast(s, "/", opts)
	withMarker, _ := stringx.SubstringEndLast(s, ".", opts.WithInclusive(true))
	fmt.Println(afterFirst, afterLast, withMarker)
	// Output: to/file.txt file.txt .txt
}

func ExampleSubstringStart_notFound() {
	_, err := stringx.SubstringStart("", "end", stringx.OrdinalOptions())
	fmt.Println(errors.Is(err, stringx.ErrMarkerNotFound))
	fmt.Println(err)
	// Output:
	// true
	// stringx.SubstringStart: endString "end" not found
}

func ExampleNewExtractor() {
	ex, err := stringx.NewExtractor(stringx.Options{Comparison: stringx.OrdinalIgnoreCase})
	if err != nil {
		fmt.Println(err)
		return
	}

	v, _ := ex.Between("<TITLE>Report</title>", "<title>", "</TITLE>")
	fmt.Println(v)
	// Output: Report
}

func ExampleReplace() {
	v, _ := stringx.Replace("One TWO one", "ONE", "1", stringx.Options{Comparison: stringx.OrdinalIgnoreCase})
	fmt.Println(v)
	// Output: 1 TWO 1
}

func ExampleKeepNumbers() {
	fmt.Println(stringx.KeepNumbers("Order #4711, 3 items"))
	// Output: 47113
}

func ExampleTrim() {
	v, _ := stringx.Trim("**bold**", "*", stringx.OrdinalOptions())
	fmt.Println(v)
	// Output: bold
}
