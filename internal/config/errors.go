// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid key validation settings
	// (for example, an empty URL or a non-positive timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidManifestConfigs indicates an unsupported manifest dialect.
	ErrInvalidManifestConfigs = errors.New("invalid manifest configuration")
)
