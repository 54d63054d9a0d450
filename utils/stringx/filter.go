// File: filter.go
// Title: Character-Class Filters
// Description: Keep or remove letters, decimal digits and whitespace.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package stringx

import "regexp"

var (
	lettersPattern             = regexp.MustCompile(`\p{L}+`)
	numbersPattern             = regexp.MustCompile(`\p{Nd}+`)
	lettersAndNumbersPattern   = regexp.MustCompile(`[\p{L}\p{Nd}]+`)
	nonLettersPattern          = regexp.MustCompile(`[^\p{L}]+`)
	nonNumbersPattern          = regexp.MustCompile(`[^\p{Nd}]+`)
	nonLettersOrNumbersPattern = regexp.MustCompile(`[^\p{L}\p{Nd}]+`)
	whitespacePattern          = regexp.MustCompile(`[\s\p{Z}\x{85}]+`)
)

// KeepLetters removes every character that is not a letter
func KeepLetters(s string) string {
	return nonLettersPattern.ReplaceAllLiteralString(s, "")
}

// KeepNumbers removes every character that is not a decimal digit
func KeepNumbers(s string) string {
	return nonNumbersPattern.ReplaceAllLiteralString(s, "")
}

// KeepLettersAndNumbers removes every character that is neither a letter
// nor a decimal digit.
func KeepLettersAndNumbers(s string) string {
	return nonLettersOrNumbersPattern.ReplaceAllLiteralString(s, "")
}

// RemoveLetters removes every letter
func RemoveLetters(s string) string {
	return lettersPattern.ReplaceAllLiteralString(s, "")
}

// RemoveNumbers removes every decimal digit
func RemoveNumbers(s string) string {
	return numbersPattern.ReplaceAllLiteralString(s, "")
}

// RemoveLettersAndNumbers removes every letter and decimal digit
func RemoveLettersAndNumbers(s string) string {
	return lettersAndNumbersPattern.ReplaceAllLiteralString(s, "")
}

// RemoveWhitespace removes every whitespace character, including Unicode
// space separators.
func RemoveWhitespace(s string) string {
	return whitespacePattern.ReplaceAllLiteralString(s, "")
}
