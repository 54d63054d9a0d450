// Package i18n resolves locales for culture-aware string comparison.
//
// Package: i18n
// Title: Locale Resolution for textx
// Description: Normalizes POSIX and BCP 47 locale strings, parses them into
//              golang.org/x/text language tags and detects the current
//              locale from LC_ALL, LC_MESSAGES and LANG.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial i18n implementation
// - 2025-08-14 v0.2.0: Reduced to locale resolution
//
// Usage:
//
//	i18n.NormalizeLocale("de_DE.UTF-8") // "de-DE"
//	tag, err := i18n.ParseLocale("fr_CA")
//	current := i18n.CurrentLocale()
//
// The names "", "C", "POSIX", "invariant" and "und" all denote the
// invariant culture, represented as language.Und.
package i18n
