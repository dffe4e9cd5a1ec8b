// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environ

import (
	"fmt"
	"maps"
	"os"
	"sync"
)

// Store is a mutable mapping from variable name to value.
//
// Lookup distinguishes an absent variable from one set to the empty string.
type Store interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
	Unset(key string) error
}

type processStore struct{}

// Process returns a [Store] backed by the OS environment of the current
// process.
func Process() Store {
	return processStore{}
}

func (processStore) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (processStore) Set(key, value string) error {
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (processStore) Unset(key string) error {
	if err := os.Unsetenv(key); err != nil {
		return fmt.Errorf("unset %s: %w", key, err)
	}
	return nil
}

// MapStore is an in-memory [Store].
type MapStore struct {
	mu   sync.RWMutex
	vars map[string]string
}

// NewMapStore returns a MapStore seeded with a copy of vars.
func NewMapStore(vars map[string]string) *MapStore {
	s := &MapStore{vars: make(map[string]string, len(vars))}
	maps.Copy(s.vars, vars)
	return s
}

func (s *MapStore) Lookup(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vars[key]
	return v, ok
}

func (s *MapStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vars[key] = value
	return nil
}

func (s *MapStore) Unset(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.vars, key)
	return nil
}

// Snapshot returns a copy of all variables.
func (s *MapStore) Snapshot() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.vars)
}
