// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import (
	"fmt"
	"slices"
	"strings"

	"gopkg.in/ini.v1"
)

type iniReader struct {
	opts ini.LoadOptions
}

// newINIReader keeps duplicate sections and keys apart so that ReadSection
// can reject them instead of merging.
func newINIReader() iniReader {
	return iniReader{
		opts: ini.LoadOptions{
			InsensitiveKeys:            true,
			IgnoreInlineComment:        true,
			IgnoreContinuation:         true,
			AllowPythonMultilineValues: true,
			PreserveSurroundedQuote:    true,
			AllowNonUniqueSections:     true,
			AllowShadows:               true,
			AllowDuplicateShadowValues: true,
		},
	}
}

func (r iniReader) ReadSection(path, name string) (Section, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	f, err := ini.LoadSources(r.opts, data)
	if err != nil {
		return nil, fmt.Errorf("error parsing manifest %s: %w", path, err)
	}
	if err = checkDuplicates(f); err != nil {
		return nil, fmt.Errorf("error parsing manifest %s: %w", path, err)
	}

	sec, err := f.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSectionNotFound, name)
	}
	defaults, _ := f.SectionsByName(ini.DefaultSection)

	return iniSection{sec: sec, defaults: defaults}, nil
}

// checkDuplicates rejects a section declared twice and a key declared twice
// within a section. Repeated [DEFAULT] headers share one key space.
func checkDuplicates(f *ini.File) error {
	seen := make(map[string]map[string]struct{})
	for _, sec := range f.Sections() {
		name := sec.Name()
		keys, ok := seen[name]
		switch {
		case ok && name != ini.DefaultSection:
			return fmt.Errorf("%w: section [%s]", ErrDuplicateEntry, name)
		case !ok:
			keys = make(map[string]struct{})
			seen[name] = keys
		}

		for _, key := range sec.Keys() {
			_, dup := keys[key.Name()]
			if dup || len(key.ValueWithShadows()) > 1 {
				return fmt.Errorf("%w: key %q in section [%s]", ErrDuplicateEntry, key.Name(), name)
			}
			keys[key.Name()] = struct{}{}
		}
	}

	return nil
}

type iniSection struct {
	sec      *ini.Section
	defaults []*ini.Section
}

// Get looks at keys declared in the section itself, then in [DEFAULT]. ini
// would otherwise fall back to a parent section ("tool" for "tool.autolog").
func (s iniSection) Get(key string) (string, error) {
	key = strings.ToLower(key)
	if slices.Contains(s.sec.KeyStrings(), key) {
		return s.sec.Key(key).String(), nil
	}

	for _, def := range s.defaults {
		if slices.Contains(def.KeyStrings(), key) {
			return def.Key(key).String(), nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
}
