// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

const (
	flagAPIURL          = "api-url"
	flagAPITimeout      = "api-timeout"
	flagLogLevel        = "log-level"
	flagManifestDialect = "manifest-dialect"
)

// RegisterFlags declares autolog's configuration flags on fs.
//
// Flags:
//
//	--api-url           key validation service base URL
//	--api-timeout       key validation request timeout (e.g., "5s")
//	--log-level         log level (debug, info, warn, error)
//	--manifest-dialect  pyproject.toml reader: ini or toml
//
// Flag defaults are zero values so that an unset flag never overrides the
// environment.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flagAPIURL, "", "Key validation service base URL (default "+DefaultAPIURL+")")
	fs.Duration(flagAPITimeout, 0, "Key validation request timeout (default "+DefaultAPITimeout.String()+")")
	fs.String(flagLogLevel, "", "Log level: debug, info, warn, error (default "+DefaultLogLevel+")")
	fs.String(flagManifestDialect, "", "Manifest dialect: ini or toml (default "+DefaultManifestDialect+")")
}

// parseFlags reads the values registered by [RegisterFlags] from a parsed fs.
// Flags that were not registered are treated as unset.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	var err error
	if cfg.API.URL, err = stringFlag(fs, flagAPIURL); err != nil {
		return nil, err
	}
	if cfg.API.Timeout, err = durationFlag(fs, flagAPITimeout); err != nil {
		return nil, err
	}
	if cfg.Log.Level, err = stringFlag(fs, flagLogLevel); err != nil {
		return nil, err
	}
	if cfg.Manifest.Dialect, err = stringFlag(fs, flagManifestDialect); err != nil {
		return nil, err
	}

	return cfg, nil
}

func stringFlag(fs *pflag.FlagSet, name string) (string, error) {
	if fs.Lookup(name) == nil {
		return "", nil
	}
	v, err := fs.GetString(name)
	if err != nil {
		return "", fmt.Errorf("error reading flag --%s: %w", name, err)
	}
	return v, nil
}

func durationFlag(fs *pflag.FlagSet, name string) (time.Duration, error) {
	if fs.Lookup(name) == nil {
		return 0, nil
	}
	v, err := fs.GetDuration(name)
	if err != nil {
		return 0, fmt.Errorf("error reading flag --%s: %w", name, err)
	}
	return v, nil
}
