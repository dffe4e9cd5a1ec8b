// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import (
	"fmt"
	"os"
)

// Dialect selects how the manifest file is parsed.
type Dialect string

const (
	DialectINI  Dialect = "ini"
	DialectTOML Dialect = "toml"
)

// Section is a read-only view of one manifest section.
type Section interface {
	// Get returns the raw value of key, or [ErrKeyNotFound].
	Get(key string) (string, error)
}

// Reader opens a manifest file and returns one of its sections.
type Reader interface {
	ReadSection(path, name string) (Section, error)
}

// NewReader returns the [Reader] for dialect. An empty dialect selects
// [DialectINI].
func NewReader(dialect Dialect) (Reader, error) {
	switch dialect {
	case DialectINI, "":
		return newINIReader(), nil
	case DialectTOML:
		return tomlReader{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading manifest: %w", err)
	}
	return data, nil
}
