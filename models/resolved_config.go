// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// DefaultChangelogName is used when the manifest does not name a changelog.
const DefaultChangelogName = "CHANGELOG.md"

// ResolvedConfig is the normalized configuration consumed by the rest of the
// tool for the duration of one invocation.
type ResolvedConfig struct {
	// ChangelogName is the changelog file name. Always ends with ".md".
	ChangelogName string `json:"changelog_name"`
	// Local disables remote features, including API key validation.
	Local bool `json:"local"`
}

// DefaultConfig returns the configuration used when the project has no
// manifest or no [tool.autolog] section.
func DefaultConfig() ResolvedConfig {
	return ResolvedConfig{
		ChangelogName: DefaultChangelogName,
		Local:         false,
	}
}

// FormatRunLocally renders the local flag the way it is published in
// AUTOLOG_RUN_LOCALLY.
func FormatRunLocally(local bool) string {
	return strconv.FormatBool(local)
}
