// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of every micro-commerce
// binary.
//
// It exposes route wiring, request handlers, and middleware for the user
// service ([Handler]), the API gateway ([GatewayHandler]) and the stub
// services ([StubHandler]). Cross-cutting concerns such as authentication,
// request tracing, access logging, metrics and response compression are
// handled here before requests are delegated to the service layer or
// forwarded to a backend. All error responses share the
// {"detail","reason","fields"} body and are produced in errors_mapper.go.
package http
