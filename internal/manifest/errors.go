// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package manifest

import "errors"

var (
	// ErrKeyNotFound is returned by [Section.Get] when the key is absent.
	ErrKeyNotFound = errors.New("key not found")
	// ErrSectionNotFound is returned by [Reader.ReadSection] when the file
	// has no section with the requested name.
	ErrSectionNotFound = errors.New("section not found")
	// ErrDuplicateEntry is a parse error: a section or a key is declared
	// more than once.
	ErrDuplicateEntry = errors.New("duplicate manifest entry")
	// ErrUnknownDialect is returned by [NewReader] for unsupported dialects.
	ErrUnknownDialect = errors.New("unknown manifest dialect")
)
