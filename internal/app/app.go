// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the resolver and the API key gate into the single
// configuration step autolog runs before doing any work.
package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/autolog/internal/apikey"
	"github.com/MKhiriev/autolog/internal/config"
	"github.com/MKhiriev/autolog/internal/environ"
	"github.com/MKhiriev/autolog/internal/logger"
	"github.com/MKhiriev/autolog/internal/manifest"
	"github.com/MKhiriev/autolog/internal/notice"
	"github.com/MKhiriev/autolog/internal/resolver"
	"github.com/MKhiriev/autolog/models"
)

type App struct {
	resolver *resolver.Resolver
	gate     *apikey.Gate
	logger   *logger.Logger
}

// NewApp builds the resolver and the gate from cfg. Both operate on store
// and report notices through notifier.
func NewApp(cfg *config.StructuredConfig, store environ.Store, notifier notice.Notifier, log *logger.Logger) (*App, error) {
	reader, err := manifest.NewReader(manifest.Dialect(cfg.Manifest.Dialect))
	if err != nil {
		return nil, fmt.Errorf("create manifest reader: %w", err)
	}

	validator := apikey.NewHTTPValidator(cfg.API, store, log)

	return &App{
		resolver: resolver.NewResolver(store, reader, notifier, log),
		gate:     apikey.NewGate(store, validator, notifier, log),
		logger:   log,
	}, nil
}

// Configure resolves the project at projectRoot, then validates the API key
// unless the project runs locally.
func (a *App) Configure(ctx context.Context, projectRoot string) (models.ResolvedConfig, error) {
	cfg, err := a.resolver.Resolve(projectRoot)
	if err != nil {
		return models.ResolvedConfig{}, fmt.Errorf("resolve project config: %w", err)
	}

	outcome, err := a.gate.Enforce(ctx, cfg.Local)
	if err != nil {
		return models.ResolvedConfig{}, fmt.Errorf("enforce api key: %w", err)
	}

	a.logger.Debug().
		Str("root", projectRoot).
		Stringer("api_key", outcome).
		Msg("project configured")

	return cfg, nil
}
