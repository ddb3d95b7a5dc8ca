// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler selects and assembles the HTTP transport of a single
// micro-commerce binary.
package handler

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-micro-commerce/internal/config"
	"github.com/MKhiriev/go-micro-commerce/internal/gateway"
	myHTTP "github.com/MKhiriev/go-micro-commerce/internal/handler/http"
	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/metrics"
	"github.com/MKhiriev/go-micro-commerce/internal/service"
	"github.com/MKhiriev/go-micro-commerce/models"
)

// timeoutBody is written by the request timeout wrapper.
const timeoutBody = `{"detail":"request timed out","reason":"timeout"}`

// Dependencies are the components a service's handler may need. Only the
// ones used by the selected service have to be set.
type Dependencies struct {
	// Services is required by the user service.
	Services *service.Services

	// Routes and Forwarder are required by the gateway.
	Routes    *gateway.RouteTable
	Forwarder *gateway.Forwarder

	// Metrics is optional.
	Metrics *metrics.Metrics
}

type Handlers struct {
	HTTP http.Handler
}

// NewHandlers builds the HTTP handler of the named service.
//
// The user and stub services are bounded by cfg.RequestTimeout. The gateway
// is not: its forwarder applies the same limit to each backend call, and a
// relayed response must never be cut short.
func NewHandlers(serviceName string, deps Dependencies, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Str("handler", serviceName).Msg("creating new handlers...")

	var router http.Handler
	switch serviceName {
	case models.ServiceGateway:
		if deps.Routes == nil || deps.Forwarder == nil {
			return nil, fmt.Errorf("%w: gateway needs routes and forwarder", errMissingDependency)
		}
		return &Handlers{
			HTTP: myHTTP.NewGatewayHandler(deps.Routes, deps.Forwarder, deps.Metrics, logger).Init(),
		}, nil
	case models.ServiceUser:
		if deps.Services == nil {
			return nil, fmt.Errorf("%w: user service needs services", errMissingDependency)
		}
		router = myHTTP.NewHandler(deps.Services, deps.Metrics, logger).Init()
	case models.ServiceProduct, models.ServiceOrder:
		router = myHTTP.NewStubHandler(serviceName, deps.Metrics, logger).Init()
	case models.ServiceNotification:
		router = myHTTP.NewNotificationHandler(deps.Metrics, logger).Init()
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownService, serviceName)
	}

	if cfg.RequestTimeout > 0 {
		router = http.TimeoutHandler(router, cfg.RequestTimeout, timeoutBody)
	}

	return &Handlers{HTTP: router}, nil
}
