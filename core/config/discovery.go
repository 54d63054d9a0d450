// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Looks for textx.toml, textx.yaml and .textx.toml in the
//              search paths and falls back to environment-only
//              configuration when none exists.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2025-08-14 v0.2.0: textx file names, optional discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	mdwerror "github.com/msto63/textx/core/error"
)

// EnvPrefix is the prefix of the environment variables read by textx
const EnvPrefix = "TEXTX"

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths     []string // Directories to search for config files
	Filenames []string // File names to look for, with extension
	EnvPrefix string   // Environment variable prefix for overrides
	Required  bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the textx discovery defaults
func DefaultDiscoveryOptions() DiscoveryOptions {
	return DiscoveryOptions{
		Paths:     []string{"."},
		Filenames: []string{"textx.toml", "textx.yaml", "textx.yml", ".textx.toml"},
		EnvPrefix: EnvPrefix,
		Required:  false,
	}
}

// Discover loads the first configuration file found. When none exists and
// the file is not required, an environment-only configuration is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = DefaultDiscoveryOptions().Filenames
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		config, loadErr := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
		})
		if loadErr != nil {
			return nil, mdwerror.Wrap(loadErr, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return config, nil
	}

	if options.Required {
		return nil, mdwerror.New("no configuration file found").
			WithCode(mdwerror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("searchPaths", ListPossibleConfigFiles(options))
	}
	return LoadFromEnv(options.EnvPrefix), nil
}

// DiscoverWithDefaults discovers configuration with default options
func DiscoverWithDefaults() (*Config, error) {
	return Discover(DefaultDiscoveryOptions())
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeMissingConfig).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every path Discover would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			paths = append(paths, filepath.Join(path, filename))
		}
	}
	return paths
}

// LoadFromEnv loads configuration entirely from environment variables
func LoadFromEnv(envPrefix string) *Config {
	return loadFromEnviron(envPrefix, os.Environ(), os.Getenv)
}

func loadFromEnviron(envPrefix string, environ []string, getenv func(string) string) *Config {
	data := make(map[string]interface{})
	prefix := strings.ToUpper(envPrefix) + "_"

	for _, env := range environ {
		key, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}
		if envPrefix != "" {
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			key = strings.TrimPrefix(key, prefix)
		}

		// TEXTX_LOG_LEVEL -> log.level
		configKey := strings.ToLower(strings.ReplaceAll(key, "_", "."))
		setNestedValue(data, configKey, parseEnvValue(value))
	}

	return &Config{
		data:      data,
		format:    FormatAuto,
		envPrefix: envPrefix,
		getenv:    getenv,
	}
}

// parseEnvValue parses booleans and integers, leaving everything else a string
func parseEnvValue(value string) interface{} {
	if value == "true" || value == "false" {
		return value == "true"
	}
	if intVal, err := strconv.Atoi(value); err == nil {
		return intVal
	}
	return value
}

// setNestedValue sets a nested value in a map using dot notation
func setNestedValue(data map[string]interface{}, key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
}
