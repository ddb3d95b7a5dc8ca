// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server defines the lifecycle contract of the transport server.
type Server interface {
	// RunServer serves requests until ctx is done or SIGINT, SIGTERM or
	// SIGQUIT arrives, then shuts down gracefully. It returns a non-nil
	// error only when serving could not start or shutdown did not complete.
	RunServer(ctx context.Context) error
}
