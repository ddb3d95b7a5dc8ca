// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errUnknownService is returned by NewHandlers for a service name no
	// binary serves.
	errUnknownService = errors.New("unknown service")

	// errMissingDependency is returned when a dependency the named service
	// needs was not provided.
	errMissingDependency = errors.New("missing handler dependency")
)
