// File: doc.go
// Title: Package Documentation for config
// Description: Package config loads textx defaults from TOML or YAML files
//              and TEXTX_* environment variables.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-08-14 v0.2.0: textx settings, discovery and env overrides

// Package config loads the defaults used by textx.
//
// Configuration files are TOML (BurntSushi/toml) or YAML (gopkg.in/yaml.v3),
// chosen by file extension:
//
//	# textx.toml
//	comparison = "ordinal-ignore-case"
//	inclusion  = "none"
//	inclusive  = false
//	locale     = "de_DE.UTF-8"
//
//	[log]
//	level  = "debug"
//	format = "console"
//
// Every key can be overridden from the environment: the key is upper-cased,
// dots become underscores and the TEXTX_ prefix is added, so log.level is
// read from TEXTX_LOG_LEVEL. Environment values win over file values.
//
// Discover looks for textx.toml, textx.yaml, textx.yml and .textx.toml in
// the working directory. Without a file, configuration comes from the
// environment alone:
//
//	cfg, err := config.DiscoverWithDefaults()
//	if err != nil {
//	    return err
//	}
//	settings := cfg.Settings()
//	if err := settings.Validate().Err(); err != nil {
//	    return err
//	}
//	opts, _ := settings.Options()
//	v, err := stringx.SubstringBetween(s, "[", "]", opts)
package config
