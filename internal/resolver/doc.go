// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver turns a project directory into a [models.ResolvedConfig].
//
// Sources, in order:
//  1. <root>/.env is loaded into the environment store (missing is fine,
//     existing variables win).
//  2. The [tool.autolog] section of <root>/pyproject.toml. Without the file
//     or the section the defaults are published and returned as-is.
//  3. Per-field defaults for keys the section does not declare.
//
// Resolution always leaves AUTOLOG_PROJECT_NAME and AUTOLOG_RUN_LOCALLY set
// in the store.
package resolver
