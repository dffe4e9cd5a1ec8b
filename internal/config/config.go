// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for autolog.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the key validation service settings.
	API API `envPrefix:"AUTOLOG_API_"`

	// Log holds logging settings.
	Log Log `envPrefix:"AUTOLOG_LOG_"`

	// Manifest holds pyproject.toml reader settings.
	Manifest Manifest `envPrefix:"AUTOLOG_MANIFEST_"`
}

// API configures the remote key validation call.
type API struct {
	// URL is the base URL of the key validation service.
	URL string `env:"URL"`

	// Timeout bounds a single validation request.
	Timeout time.Duration `env:"TIMEOUT"`
}

// Log configures the CLI logger.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error, ...).
	Level string `env:"LEVEL"`
}

// Manifest configures how pyproject.toml is read.
type Manifest struct {
	// Dialect is "ini" (ConfigParser-like) or "toml".
	Dialect string `env:"DIALECT"`
}

// Default values applied before any other source.
const (
	DefaultAPIURL          = "http://localhost:8080"
	DefaultAPITimeout      = 10 * time.Second
	DefaultLogLevel        = "info"
	DefaultManifestDialect = "ini"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		API:      API{URL: DefaultAPIURL, Timeout: DefaultAPITimeout},
		Log:      Log{Level: DefaultLogLevel},
		Manifest: Manifest{Dialect: DefaultManifestDialect},
	}
}

// GetStructuredConfig builds and validates the configuration from defaults,
// environment variables and the flags registered on fs by [RegisterFlags].
// fs must already be parsed; a nil fs skips the flag layer.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		build()
	if err != nil {
		return nil, fmt.Errorf("error building config: %w", err)
	}

	return cfg, nil
}
