// File: locale_test.go
// Title: Locale Resolution Tests
// Description: Tests for normalization, parsing and environment detection.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14

package i18n

import (
	"testing"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/textx/core/error"
)

func TestNormalizeLocale(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"C", ""},
		{"POSIX", ""},
		{"C.UTF-8", ""},
		{"invariant", ""},
		{"en", "en"},
		{"EN", "en"},
		{"en_US", "en-US"},
		{"de_DE.UTF-8", "de-DE"},
		{"de_DE.UTF-8@euro", "de-DE"},
		{"fr-ca", "fr-CA"},
		{" sr-Latn-RS ", "sr-Latn-RS"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeLocale(tt.input); got != tt.expected {
				t.Errorf("NormalizeLocale(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseLocale(t *testing.T) {
	tests := []struct {
		input   string
		want    language.Tag
		wantErr bool
	}{
		{"", language.Und, false},
		{"C", language.Und, false},
		{"en_US.UTF-8", language.AmericanEnglish, false},
		{"de", language.German, false},
		{"tr_TR", language.MustParse("tr-TR"), false},
		{"not a locale!", language.Und, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLocale(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLocale(%q) expected error", tt.input)
				}
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidLocale) {
					t.Errorf("code = %s, want %s", mdwerror.GetCode(err), mdwerror.CodeInvalidLocale)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLocale(%q) error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLocale(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLocaleFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want language.Tag
	}{
		{"nothing set", map[string]string{}, DefaultLocale},
		{"LANG only", map[string]string{"LANG": "de_DE.UTF-8"}, language.MustParse("de-DE")},
		{"LC_ALL wins", map[string]string{"LC_ALL": "fr_FR", "LANG": "de_DE"}, language.MustParse("fr-FR")},
		{"LC_MESSAGES before LANG", map[string]string{"LC_MESSAGES": "es", "LANG": "de"}, language.Spanish},
		{"POSIX skipped", map[string]string{"LC_ALL": "C", "LANG": "it_IT"}, language.MustParse("it-IT")},
		{"garbage skipped", map[string]string{"LC_ALL": "???", "LANG": "nl"}, language.Dutch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LocaleFromEnv(func(k string) string { return tt.env[k] })
			if got != tt.want {
				t.Errorf("LocaleFromEnv() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestSplitLocale(t *testing.T) {
	lang, region := SplitLocale("de_AT.UTF-8")
	if lang != "de" || region != "AT" {
		t.Errorf("SplitLocale() = %q, %q; want de, AT", lang, region)
	}

	lang, region = SplitLocale("C")
	if lang != "" || region != "" {
		t.Errorf("SplitLocale(C) = %q, %q; want empty", lang, region)
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(language.Und); got != "Invariant" {
		t.Errorf("DisplayName(und) = %q; want Invariant", got)
	}
	if got := DisplayName(language.German); got != "Deutsch" {
		t.Errorf("DisplayName(de) = %q; want Deutsch", got)
	}
}
