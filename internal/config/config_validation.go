// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/MKhiriev/autolog/internal/manifest"
	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used to
// wire the application.
func (cfg *StructuredConfig) validate() error {
	u, err := url.Parse(cfg.API.URL)
	if cfg.API.URL == "" || err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: bad url %q", ErrInvalidAPIConfigs, cfg.API.URL)
	}
	if cfg.API.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidAPIConfigs)
	}

	if _, err = zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	switch manifest.Dialect(cfg.Manifest.Dialect) {
	case manifest.DialectINI, manifest.DialectTOML:
	default:
		return fmt.Errorf("%w: unknown dialect %q", ErrInvalidManifestConfigs, cfg.Manifest.Dialect)
	}

	return nil
}

// LogLevel returns the parsed log level. The config must be validated.
func (cfg *StructuredConfig) LogLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(cfg.Log.Level)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
