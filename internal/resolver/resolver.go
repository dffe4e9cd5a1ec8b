// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/MKhiriev/autolog/internal/environ"
	"github.com/MKhiriev/autolog/internal/logger"
	"github.com/MKhiriev/autolog/internal/manifest"
	"github.com/MKhiriev/autolog/internal/notice"
	"github.com/MKhiriev/autolog/models"
)

const (
	envFileName      = ".env"
	manifestFileName = "pyproject.toml"
	sectionName      = "tool.autolog"

	keyProject   = "project"
	keyLocal     = "local"
	keyChangelog = "changelog"
)

// Resolver resolves the autolog configuration of a project directory and
// publishes the derived variables into an environment store.
type Resolver struct {
	store    environ.Store
	reader   manifest.Reader
	notifier notice.Notifier
	logger   *logger.Logger
}

// NewResolver returns a Resolver that reads manifests with reader, publishes
// into store and reports advisory notices through notifier.
func NewResolver(store environ.Store, reader manifest.Reader, notifier notice.Notifier, log *logger.Logger) *Resolver {
	return &Resolver{
		store:    store,
		reader:   reader,
		notifier: notifier,
		logger:   log.Component("resolver"),
	}
}

// Resolve loads <projectRoot>/.env, reads the [tool.autolog] section of
// <projectRoot>/pyproject.toml and returns the normalized configuration.
//
// A missing manifest or section is not an error: the defaults are published
// and [models.DefaultConfig] is returned. Missing keys fall back to their
// defaults and an unrecognised "local" value counts as false. Any other
// manifest error is returned.
func (r *Resolver) Resolve(projectRoot string) (models.ResolvedConfig, error) {
	loaded, err := environ.LoadFile(r.store, filepath.Join(projectRoot, envFileName))
	if err != nil {
		return models.ResolvedConfig{}, err
	}
	if len(loaded) > 0 {
		r.logger.Debug().Strs("vars", loaded).Msg("loaded env file")
	}

	defaults := DefaultVars(projectRoot)

	manifestPath := filepath.Join(projectRoot, manifestFileName)
	sec, err := r.reader.ReadSection(manifestPath, sectionName)
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, manifest.ErrSectionNotFound):
		r.logger.Debug().Str("manifest", manifestPath).Msg("no autolog configuration, using defaults")
		if err = defaults.publish(r.store); err != nil {
			return models.ResolvedConfig{}, fmt.Errorf("error publishing defaults: %w", err)
		}
		return models.DefaultConfig(), nil
	case err != nil:
		return models.ResolvedConfig{}, err
	}

	vars := Vars{}
	if vars.ProjectName, err = stringField(sec, keyProject, defaults.ProjectName); err != nil {
		return models.ResolvedConfig{}, err
	}
	if vars.RunLocally, err = boolField(sec, keyLocal, defaults.RunLocally); err != nil {
		return models.ResolvedConfig{}, err
	}
	changelogName, err := stringField(sec, keyChangelog, models.DefaultChangelogName)
	if err != nil {
		return models.ResolvedConfig{}, err
	}
	changelogName = NormalizeChangelog(changelogName)

	if _, ok := r.store.Lookup(models.EnvAPIKey); !ok {
		r.notifier.Notify(models.NoticeAPIKeyNotSet)
	}

	if err = vars.publish(r.store); err != nil {
		return models.ResolvedConfig{}, fmt.Errorf("error publishing config: %w", err)
	}

	r.logger.Debug().
		Str("project", vars.ProjectName).
		Bool("local", vars.RunLocally).
		Str("changelog", changelogName).
		Msg("resolved project config")

	return models.ResolvedConfig{
		ChangelogName: changelogName,
		Local:         vars.RunLocally,
	}, nil
}
