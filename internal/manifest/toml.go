// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import (
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type tomlReader struct{}

func (tomlReader) ReadSection(path, name string) (Section, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]any
	if err = toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error parsing manifest %s: %w", path, err)
	}

	table := doc
	for _, part := range strings.Split(name, ".") {
		next, ok := table[part].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, name)
		}
		table = next
	}

	return tomlSection(table), nil
}

type tomlSection map[string]any

func (s tomlSection) Get(key string) (string, error) {
	v, ok := s[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	if str, ok := v.(string); ok {
		return str, nil
	}
	return fmt.Sprint(v), nil
}
