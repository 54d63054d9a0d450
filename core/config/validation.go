// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates textx settings and collects every invalid value
//              into a single result.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2025-08-14 v0.2.0: Validation of the textx settings keys

package config

import (
	"errors"

	mdwerror "github.com/msto63/textx/core/error"
	mdwerrors "github.com/msto63/textx/core/errors"
	"github.com/msto63/textx/core/i18n"
	"github.com/msto63/textx/core/log"
	"github.com/msto63/textx/utils/stringx"
)

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`

	errs []error
}

// Err joins the validation errors, or returns nil when valid
func (r *ValidationResult) Err() error {
	return errors.Join(r.errs...)
}

func (r *ValidationResult) add(err error) {
	if err == nil {
		return
	}
	r.Valid = false
	r.Errors = append(r.Errors, err.Error())
	r.errs = append(r.errs, err)
}

// Validate checks every settings value
func (s Settings) Validate() *ValidationResult {
	result := &ValidationResult{Valid: true}

	if _, err := stringx.ParseComparison(s.Comparison); err != nil {
		result.add(invalid(KeyComparison, s.Comparison,
			"current-culture, current-culture-ignore-case, invariant-culture, invariant-culture-ignore-case, ordinal or ordinal-ignore-case"))
	}
	if _, err := stringx.ParseInclusion(s.Inclusion); err != nil {
		result.add(invalid(KeyInclusion, s.Inclusion, "none, start, end or all"))
	}
	if err := i18n.ValidateLocale(s.Locale); err != nil {
		result.add(mdwerror.Wrap(err, "config: invalid locale").
			WithCode(mdwerror.CodeInvalidConfig).
			WithDetail("key", KeyLocale))
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		result.add(invalid(KeyLogLevel, s.LogLevel, "trace, debug, info, warn, error or fatal"))
	}
	if _, err := log.ParseFormat(s.LogFormat); err != nil {
		result.add(invalid(KeyLogFormat, s.LogFormat, "json, text or console"))
	}

	return result
}

func invalid(key, value, expected string) error {
	return mdwerrors.InvalidConfig(key, value, expected)
}
