// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/autolog/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSection serves values from a map and a fixed error for selected keys.
type fakeSection struct {
	values map[string]string
	errs   map[string]error
}

func (s fakeSection) Get(key string) (string, error) {
	if err, ok := s.errs[key]; ok {
		return "", err
	}
	v, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", manifest.ErrKeyNotFound, key)
	}
	return v, nil
}

func TestStripQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `"myproj"`, want: "myproj"},
		{in: `'myproj'`, want: "myproj"},
		{in: `myproj`, want: "myproj"},
		{in: `"'myproj'"`, want: "'myproj'"},
		{in: `''myproj''`, want: "'myproj'"},
		{in: `'myproj"`, want: `'myproj"`},
		{in: `"`, want: `"`},
		{in: `""`, want: ""},
		{in: ``, want: ""},
		{in: `my "quoted" proj`, want: `my "quoted" proj`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, StripQuotes(tt.in))
		})
	}
}

func TestNormalizeChangelog(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "CHANGELOG.md", want: "CHANGELOG.md"},
		{in: "notes", want: "notes.md"},
		{in: "notes.MD", want: "notes.MD.md"},
		{in: "notes.txt", want: "notes.txt.md"},
		{in: "", want: ".md"},
		{in: ".md", want: ".md"},
		{in: "docs/history", want: "docs/history.md"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			once := NormalizeChangelog(tt.in)
			assert.Equal(t, tt.want, once)
			assert.Equal(t, once, NormalizeChangelog(once), "normalization must be idempotent")
		})
	}
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"1", "yes", "YES", "true", "True", "on", "On"} {
		v, ok := parseBool(s)
		assert.True(t, ok, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"0", "no", "No", "false", "FALSE", "off"} {
		v, ok := parseBool(s)
		assert.True(t, ok, s)
		assert.False(t, v, s)
	}
	for _, s := range []string{"not-a-bool", "", "2", "t", `"true"`, " true"} {
		_, ok := parseBool(s)
		assert.False(t, ok, s)
	}
}

func TestStringField(t *testing.T) {
	sec := fakeSection{
		values: map[string]string{"project": `'foo'`, "raw": "a b c"},
		errs:   map[string]error{"broken": errors.New("boom")},
	}

	got, err := stringField(sec, "project", "def")
	require.NoError(t, err)
	assert.Equal(t, "foo", got)

	got, err = stringField(sec, "raw", "def")
	require.NoError(t, err)
	assert.Equal(t, "a b c", got)

	got, err = stringField(sec, "missing", "def")
	require.NoError(t, err)
	assert.Equal(t, "def", got)

	_, err = stringField(sec, "broken", "def")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestBoolField(t *testing.T) {
	sec := fakeSection{
		values: map[string]string{"on": "yes", "junk": "not-a-bool"},
		errs:   map[string]error{"broken": errors.New("boom")},
	}

	got, err := boolField(sec, "on", false)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = boolField(sec, "junk", false)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = boolField(sec, "missing", false)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = boolField(sec, "broken", false)
	require.Error(t, err)
}

func TestPathStem(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/tmp/proj", want: "proj"},
		{in: "/tmp/proj/", want: "proj"},
		{in: "/tmp/proj.v2", want: "proj"},
		{in: "/tmp/archive.tar.gz", want: "archive.tar"},
		{in: "/tmp/.hidden", want: ".hidden"},
		{in: "/tmp/trailing.", want: "trailing."},
		{in: "/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, pathStem(tt.in))
		})
	}
}
