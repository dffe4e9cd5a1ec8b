// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apikey decides whether AUTOLOG_API_KEY may stay in the environment.
//
// [Gate] asks a [Validator] about the current key unless the project runs
// locally, and removes the key when it is rejected. [NewHTTPValidator]
// provides the Validator used by the CLI: a single call to the key service
// with no retries.
package apikey

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator reports whether the API key currently set in the environment is
// accepted by the key service. It must not modify the environment.
type Validator interface {
	Validate(ctx context.Context) bool
}
