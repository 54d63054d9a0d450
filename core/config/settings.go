// File: settings.go
// Title: textx Settings
// Description: Typed view of the textx configuration keys and their
//              conversion into extraction options and a logger.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-21
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation
// - 2025-08-21 v0.2.1: Invariant locale names select the invariant culture

package config

import (
	"io"

	"github.com/msto63/textx/core/i18n"
	"github.com/msto63/textx/core/log"
	"github.com/msto63/textx/utils/stringx"
)

// Configuration keys
const (
	KeyComparison = "comparison"
	KeyInclusion  = "inclusion"
	KeyInclusive  = "inclusive"
	KeyLocale     = "locale"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
)

// Settings holds the textx defaults. String fields keep the configured
// spelling; Validate checks that they parse.
type Settings struct {
	Comparison string
	Inclusion  string
	Inclusive  bool
	Locale     string
	LogLevel   string
	LogFormat  string
}

// DefaultSettings returns the settings used when nothing is configured
func DefaultSettings() Settings {
	return Settings{
		Comparison: stringx.CurrentCulture.String(),
		Inclusion:  stringx.IncludeNone.String(),
		LogLevel:   log.LevelInfo.String(),
		LogFormat:  log.FormatText.String(),
	}
}

// Settings reads the textx keys from c, falling back to DefaultSettings
func (c *Config) Settings() Settings {
	d := DefaultSettings()
	return Settings{
		Comparison: c.GetString(KeyComparison, d.Comparison),
		Inclusion:  c.GetString(KeyInclusion, d.Inclusion),
		Inclusive:  c.GetBool(KeyInclusive, d.Inclusive),
		Locale:     c.GetString(KeyLocale, d.Locale),
		LogLevel:   c.GetString(KeyLogLevel, d.LogLevel),
		LogFormat:  c.GetString(KeyLogFormat, d.LogFormat),
	}
}

// Options converts the settings into extraction options
func (s Settings) Options() (stringx.Options, error) {
	if err := s.Validate().Err(); err != nil {
		return stringx.Options{}, err
	}

	comparison, _ := stringx.ParseComparison(s.Comparison)
	inclusion, _ := stringx.ParseInclusion(s.Inclusion)
	locale, _ := i18n.ParseLocale(s.Locale)

	// An explicit invariant locale ("invariant", "C", "POSIX") selects the
	// invariant culture. Only an unset locale means the process locale.
	if stringx.IsNotBlank(s.Locale) && i18n.IsInvariant(s.Locale) {
		comparison = invariantComparison(comparison)
	}

	return stringx.Options{
		Comparison: comparison,
		Inclusion:  inclusion,
		Inclusive:  s.Inclusive,
		Locale:     locale,
	}, nil
}

func invariantComparison(c stringx.Comparison) stringx.Comparison {
	switch c {
	case stringx.CurrentCulture:
		return stringx.InvariantCulture
	case stringx.CurrentCultureIgnoreCase:
		return stringx.InvariantCultureIgnoreCase
	}
	return c
}

// Logger creates a logger writing to output at the configured level and format
func (s Settings) Logger(output io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, invalid(KeyLogLevel, s.LogLevel, "trace, debug, info, warn, error or fatal")
	}
	format, err := log.ParseFormat(s.LogFormat)
	if err != nil {
		return nil, invalid(KeyLogFormat, s.LogFormat, "json, text or console")
	}
	return log.New().
		WithLevel(level).
		WithFormat(format).
		WithOutput(output).
		WithName("textx"), nil
}
