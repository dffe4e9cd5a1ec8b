// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apikey

import (
	"context"
	"fmt"

	"github.com/MKhiriev/autolog/internal/environ"
	"github.com/MKhiriev/autolog/internal/logger"
	"github.com/MKhiriev/autolog/internal/notice"
	"github.com/MKhiriev/autolog/models"
)

// Outcome is the terminal state of one [Gate.Enforce] call.
type Outcome int

const (
	// OutcomeUnchanged: the key was accepted, or rejected but not set.
	OutcomeUnchanged Outcome = iota
	// OutcomeSkippedLocal: validation was bypassed for a local run.
	OutcomeSkippedLocal
	// OutcomeCleared: the key was rejected and removed.
	OutcomeCleared
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeSkippedLocal:
		return "skipped-local"
	case OutcomeCleared:
		return "cleared"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Gate removes an invalid API key from the environment.
type Gate struct {
	store     environ.Store
	validator Validator
	notifier  notice.Notifier
	logger    *logger.Logger
}

// NewGate returns a Gate operating on store.
func NewGate(store environ.Store, validator Validator, notifier notice.Notifier, log *logger.Logger) *Gate {
	return &Gate{
		store:     store,
		validator: validator,
		notifier:  notifier,
		logger:    log.Component("apikey"),
	}
}

// Enforce validates the API key unless local is true. A rejected key that is
// present in the store is removed and the user is notified. The validator is
// called at most once.
func (g *Gate) Enforce(ctx context.Context, local bool) (Outcome, error) {
	if local {
		g.logger.Debug().Msg("local run, api key validation skipped")
		return OutcomeSkippedLocal, nil
	}

	if g.validator.Validate(ctx) {
		return OutcomeUnchanged, nil
	}

	if _, ok := g.store.Lookup(models.EnvAPIKey); !ok {
		return OutcomeUnchanged, nil
	}

	g.notifier.Notify(models.NoticeAPIKeyInvalid)
	if err := g.store.Unset(models.EnvAPIKey); err != nil {
		return OutcomeUnchanged, fmt.Errorf("error clearing api key: %w", err)
	}

	g.logger.Info().Msg("invalid api key removed from environment")
	return OutcomeCleared, nil
}
