// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Environment variables shared between the resolver, the API key gate and
// downstream consumers.
const (
	// EnvAPIKey holds the key for advanced (remote) features.
	EnvAPIKey = "AUTOLOG_API_KEY"
	// EnvProjectName is published by the resolver.
	EnvProjectName = "AUTOLOG_PROJECT_NAME"
	// EnvRunLocally is published by the resolver as "true" or "false".
	EnvRunLocally = "AUTOLOG_RUN_LOCALLY"
)

// Notices shown to the user. They are advisory and never returned as errors.
const (
	NoticeAPIKeyNotSet  = "Environment variable AUTOLOG_API_KEY not set. Advanced features disabled."
	NoticeAPIKeyInvalid = "AUTOLOG_API_KEY invalid. Advanced features disabled."
)
