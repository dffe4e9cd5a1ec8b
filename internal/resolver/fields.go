// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/autolog/internal/manifest"
)

const changelogSuffix = ".md"

// booleanStates are the spellings accepted for boolean keys, compared
// case-insensitively.
var booleanStates = map[string]bool{
	"1": true, "yes": true, "true": true, "on": true,
	"0": false, "no": false, "false": false, "off": false,
}

// stringField reads key and strips one layer of surrounding quotes. An absent
// key yields def.
func stringField(sec manifest.Section, key, def string) (string, error) {
	raw, err := sec.Get(key)
	switch {
	case errors.Is(err, manifest.ErrKeyNotFound):
		return def, nil
	case err != nil:
		return "", fmt.Errorf("error reading %q: %w", key, err)
	}

	return StripQuotes(raw), nil
}

// boolField reads key as a boolean. Both an absent key and a value that is
// not a recognised boolean yield def.
func boolField(sec manifest.Section, key string, def bool) (bool, error) {
	raw, err := sec.Get(key)
	switch {
	case errors.Is(err, manifest.ErrKeyNotFound):
		return def, nil
	case err != nil:
		return false, fmt.Errorf("error reading %q: %w", key, err)
	}

	v, ok := parseBool(raw)
	if !ok {
		return def, nil
	}
	return v, nil
}

func parseBool(s string) (bool, bool) {
	v, ok := booleanStates[strings.ToLower(s)]
	return v, ok
}

// StripQuotes removes one matching pair of surrounding single or double
// quotes. Anything else is returned unchanged.
func StripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}

	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// NormalizeChangelog appends ".md" unless name already ends with it.
func NormalizeChangelog(name string) string {
	if strings.HasSuffix(name, changelogSuffix) {
		return name
	}
	return name + changelogSuffix
}
