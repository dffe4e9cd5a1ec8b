// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apikey

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/autolog/internal/config"
	"github.com/MKhiriev/autolog/internal/environ"
	"github.com/MKhiriev/autolog/internal/logger"
	"github.com/MKhiriev/autolog/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	validatePath  = "/api/keys/validate"
	apiKeyHeader  = "X-API-Key"
	traceIDHeader = "X-Trace-ID"
)

type httpValidator struct {
	client *resty.Client
	store  environ.Store
	logger *logger.Logger
}

// NewHTTPValidator returns a [Validator] that checks the key found in store
// against the key service at cfg.URL.
//
// The key is sent in the X-API-Key header of a GET request. A 2xx response
// means the key is valid; any other status or a transport failure means it
// is not. No request is made when the key is absent or blank.
func NewHTTPValidator(cfg config.API, store environ.Store, log *logger.Logger) Validator {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.URL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpValidator{
		client: cli,
		store:  store,
		logger: log.Component("apikey-validator"),
	}
}

func (v *httpValidator) Validate(ctx context.Context) bool {
	key, ok := v.store.Lookup(models.EnvAPIKey)
	if !ok || strings.TrimSpace(key) == "" {
		return false
	}

	traceID := newTraceID()
	resp, err := v.client.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, key).
		SetHeader(traceIDHeader, traceID).
		Get(validatePath)
	if err != nil {
		v.logger.Warn().Err(err).Str("trace_id", traceID).Msg("api key validation request failed")
		return false
	}

	valid := resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
	v.logger.Debug().
		Int("status", resp.StatusCode()).
		Str("trace_id", traceID).
		Bool("valid", valid).
		Msg("api key validated")

	return valid
}

func newTraceID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
