// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package environ models the process environment as an injectable key-value
// [Store].
//
// [Process] is backed by the real OS environment and is what the autolog
// binary uses. [MapStore] keeps values in memory so the resolver and the API
// key gate can be exercised without touching process-wide state.
//
// [LoadFile] reads a dotenv file (KEY=VALUE lines) into a store. A missing
// file is not an error and variables that are already set are left alone.
package environ
