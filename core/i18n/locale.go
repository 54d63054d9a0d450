// File: locale.go
// Title: Locale Detection and Normalization
// Description: Resolves the "current culture" used by culture-aware string
//              comparison. Locale strings from POSIX environment variables,
//              configuration files and command-line flags are normalized and
//              parsed into language tags.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of locale detection
// - 2025-08-14 v0.2.0: POSIX environment detection, language.Tag parsing

package i18n

import (
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	mdwerror "github.com/msto63/textx/core/error"
	mdwerrors "github.com/msto63/textx/core/errors"
)

// DefaultLocale is used when the environment does not name a usable locale.
var DefaultLocale = language.English

// localeVariables are consulted in POSIX precedence order.
var localeVariables = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// invariantNames denote the invariant culture rather than a language.
var invariantNames = map[string]bool{
	"":          true,
	"c":         true,
	"posix":     true,
	"invariant": true,
	"und":       true,
}

// NormalizeLocale converts a locale string to BCP 47 form: the encoding and
// modifier suffixes of POSIX names are dropped, underscores become hyphens,
// the language is lower case and a two-letter region upper case.
// "de_DE.UTF-8@euro" becomes "de-DE". Invariant names yield "".
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	if invariantNames[strings.ToLower(locale)] {
		return ""
	}

	parts := strings.Split(strings.ReplaceAll(locale, "_", "-"), "-")
	parts[0] = strings.ToLower(parts[0])
	for i := 1; i < len(parts); i++ {
		if len(parts[i]) == 2 {
			parts[i] = strings.ToUpper(parts[i])
		}
	}
	return strings.Join(parts, "-")
}

// IsInvariant reports whether locale names the invariant culture
func IsInvariant(locale string) bool {
	return NormalizeLocale(locale) == ""
}

// ParseLocale parses a locale string. Invariant names return language.Und.
func ParseLocale(locale string) (language.Tag, error) {
	normalized := NormalizeLocale(locale)
	if normalized == "" {
		return language.Und, nil
	}

	tag, err := language.Parse(normalized)
	if err != nil {
		return language.Und, mdwerrors.NewErrorBuilder(mdwerrors.ModuleI18n).
			Operation("ParseLocale").
			Messagef("i18n.ParseLocale: invalid locale %q", mdwerrors.Preview(locale)).
			Code(mdwerror.CodeInvalidLocale).
			Cause(err).
			Detail("locale", locale).
			Build()
	}
	return tag, nil
}

// ValidateLocale reports whether locale can be parsed
func ValidateLocale(locale string) error {
	_, err := ParseLocale(locale)
	return err
}

// CurrentLocale returns the locale of the process environment
func CurrentLocale() language.Tag {
	return LocaleFromEnv(os.Getenv)
}

// LocaleFromEnv resolves the locale from LC_ALL, LC_MESSAGES and LANG using
// getenv. Unset, invariant or unparsable values are skipped; DefaultLocale is
// returned when none is usable.
func LocaleFromEnv(getenv func(string) string) language.Tag {
	for _, name := range localeVariables {
		value := getenv(name)
		if IsInvariant(value) {
			continue
		}
		if tag, err := ParseLocale(value); err == nil {
			return tag
		}
	}
	return DefaultLocale
}

// SplitLocale splits a locale into its language and region codes
func SplitLocale(locale string) (lang, region string) {
	tag, err := ParseLocale(locale)
	if err != nil || tag == language.Und {
		return "", ""
	}

	base, _ := tag.Base()
	lang = base.String()
	if r, conf := tag.Region(); conf == language.Exact {
		region = r.String()
	}
	return lang, region
}

// DisplayName returns the name of the locale in its own language, or
// "Invariant" for language.Und.
func DisplayName(tag language.Tag) string {
	if tag == language.Und {
		return "Invariant"
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return tag.String()
}
