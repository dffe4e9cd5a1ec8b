// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test", zerolog.InfoLevel)
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry contains the role.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "test-role", zerolog.DebugLevel)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "test-role", entry["role"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "caller-role", zerolog.DebugLevel)

	l.Info().Msg("caller")

	entry := decodeEntry(t, &buf)
	assert.Contains(t, entry["func"], "TestNewLogger_CallerFieldName")
}

// TestNewLogger_GlobalLevel verifies that NewLogger applies the level globally.
func TestNewLogger_GlobalLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := newLogger(&buf, "level-role", zerolog.WarnLevel)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	l.Info().Msg("filtered")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.NotEmpty(t, buf.String())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestComponent_AddsFieldWithoutTouchingParent verifies child isolation.
func TestComponent_AddsFieldWithoutTouchingParent(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	parent := newLogger(&buf, "role", zerolog.DebugLevel)
	child := parent.Component("resolver")

	child.Info().Msg("child")
	entry := decodeEntry(t, &buf)
	assert.Equal(t, "resolver", entry["component"])
	assert.Equal(t, "role", entry["role"])

	buf.Reset()
	parent.Info().Msg("parent")
	entry = decodeEntry(t, &buf)
	_, has := entry["component"]
	assert.False(t, has)
}
