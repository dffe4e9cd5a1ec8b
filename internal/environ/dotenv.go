// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environ

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

// LoadFile reads the dotenv file at path into store.
//
// A missing file is a no-op. Variables already present in store keep their
// value. Returns the names of the variables that were set.
func LoadFile(store Store, path string) ([]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading env file %s: %w", path, err)
	}

	loaded := make([]string, 0, len(vars))
	for k, v := range vars {
		if _, ok := store.Lookup(k); ok {
			continue
		}
		if err = store.Set(k, v); err != nil {
			return loaded, err
		}
		loaded = append(loaded, k)
	}

	return loaded, nil
}
