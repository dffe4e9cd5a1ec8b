// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/autolog/internal/environ"
	"github.com/MKhiriev/autolog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, store environ.Store, args ...string) (string, string, error) {
	t.Helper()
	for _, k := range []string{"AUTOLOG_API_URL", "AUTOLOG_API_TIMEOUT", "AUTOLOG_LOG_LEVEL", "AUTOLOG_MANIFEST_DIALECT"} {
		t.Setenv(k, "")
	}

	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(models.NewAppBuildInfo("1.2.3", "", "abc"), store)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func localProject(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "proj")
	require.NoError(t, os.Mkdir(root, 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "pyproject.toml"),
		[]byte("[tool.autolog]\nproject = 'foo'\nchangelog = notes\nlocal = true\n"),
		0o600,
	))
	return root
}

func TestConfigCommand_Text(t *testing.T) {
	store := environ.NewMapStore(map[string]string{models.EnvAPIKey: "k"})

	stdout, _, err := run(t, store, "config", localProject(t), "--log-level", "error")

	require.NoError(t, err)
	assert.Equal(t, "changelog_name: notes.md\nlocal: true\n", stdout)
	v, _ := store.Lookup(models.EnvProjectName)
	assert.Equal(t, "foo", v)
}

func TestConfigCommand_JSONKeepsNoticesOffStdout(t *testing.T) {
	store := environ.NewMapStore(nil)

	stdout, stderr, err := run(t, store, "config", localProject(t), "--json", "--log-level", "error")

	require.NoError(t, err)
	var got models.ResolvedConfig
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, models.ResolvedConfig{ChangelogName: "notes.md", Local: true}, got)
	assert.Contains(t, stderr, models.NoticeAPIKeyNotSet)
}

func TestConfigCommand_HelpExplainsEnvFileScope(t *testing.T) {
	stdout, _, err := run(t, environ.NewMapStore(nil), "config", "--help")

	require.NoError(t, err)
	assert.Contains(t, stdout, "not AUTOLOG_API_URL, AUTOLOG_API_TIMEOUT")
	assert.Contains(t, stdout, "process\nenvironment or with the matching flags")
}

func TestConfigCommand_EnvFileDoesNotConfigureTool(t *testing.T) {
	root := localProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("AUTOLOG_MANIFEST_DIALECT=yaml\n"), 0o600))
	store := environ.NewMapStore(nil)

	stdout, _, err := run(t, store, "config", root, "--log-level", "error")

	require.NoError(t, err, "tool settings are built before the project .env is read")
	assert.Equal(t, "changelog_name: notes.md\nlocal: true\n", stdout)
	v, ok := store.Lookup("AUTOLOG_MANIFEST_DIALECT")
	assert.True(t, ok)
	assert.Equal(t, "yaml", v)
}

func TestConfigCommand_UnknownDialectFlag(t *testing.T) {
	_, _, err := run(t, environ.NewMapStore(nil), "config", localProject(t), "--manifest-dialect", "yaml")

	require.Error(t, err)
}

func TestConfigCommand_TooManyArgs(t *testing.T) {
	_, _, err := run(t, environ.NewMapStore(nil), "config", "a", "b")

	require.Error(t, err)
}

func TestRootCommand_Version(t *testing.T) {
	stdout, _, err := run(t, environ.NewMapStore(nil), "--version")

	require.NoError(t, err)
	assert.Contains(t, stdout, "1.2.3 (commit: abc, built: N/A)")
}
