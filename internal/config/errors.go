// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid. Several of them may be
// joined into a single error.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// negative timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates a missing signing key, a non-positive
	// token TTL or a bcrypt cost out of range.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or a non-positive pool size.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServicesConfigs indicates a backend address that is not an
	// absolute http(s) URL.
	ErrInvalidServicesConfigs = errors.New("invalid services configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero queue size).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
