// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides loading, merging, and validation of autolog's own
// settings: where the key validation service lives, how long to wait for it,
// the log level, and which manifest dialect to use.
//
// Settings are assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//
// Project configuration (pyproject.toml, .env) is not handled here; see
// package resolver.
//
// The main entry point is [GetStructuredConfig].
package config
