// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package gateway forwards client requests to the backend services.
//
// A [RouteTable] maps the first path segment (/users, /products, /orders) to
// a [Backend] whose base address is resolved once at startup. The
// [Forwarder] replays the request against the backend with a single attempt
// and hands the complete backend response back to the caller, or fails with
// an error matching [ErrBackendUnavailable] when the backend cannot be
// reached.
package gateway
