// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendUnavailable matches every *UnavailableError.
	ErrBackendUnavailable = errors.New("backend unavailable")

	ErrUnknownBackend = errors.New("unknown backend")
)

// Short transport failure classifications reported to clients.
const (
	ReasonConnectionRefused = "connection refused"
	ReasonTimeout           = "timeout"
	ReasonHostNotFound      = "host not found"
	ReasonConnectionError   = "connection error"
)

// UnavailableError reports that a backend could not be reached. Its message
// names the backend and a short reason and never contains the backend URL.
type UnavailableError struct {
	Backend string
	Reason  string
	Err     error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s service unavailable: %s", e.Backend, e.Reason)
}

func (e *UnavailableError) Unwrap() []error {
	return []error{ErrBackendUnavailable, e.Err}
}
