// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-micro-commerce/internal/gateway"
	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/metrics"
	"github.com/MKhiriev/go-micro-commerce/models"
	"github.com/go-chi/chi/v5"
)

// proxiedMethods are the methods the gateway forwards.
var proxiedMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

// GatewayHandler serves the API gateway: every request under a backend
// prefix is forwarded to that backend once.
type GatewayHandler struct {
	routes    *gateway.RouteTable
	forwarder *gateway.Forwarder

	metrics *metrics.Metrics
	logger  *logger.Logger
}

func NewGatewayHandler(routes *gateway.RouteTable, forwarder *gateway.Forwarder, m *metrics.Metrics, logger *logger.Logger) *GatewayHandler {
	logger.Info().Int("backends", len(routes.Backends())).Msg("gateway handler created")
	return &GatewayHandler{
		routes:    routes,
		forwarder: forwarder,
		metrics:   m,
		logger:    logger,
	}
}

func (h *GatewayHandler) Init() *chi.Mux {
	router := newRouter(models.ServiceGateway, h.metrics, h.logger)

	for _, backend := range h.routes.Backends() {
		proxy := h.proxy(backend)
		for _, method := range proxiedMethods {
			router.Method(method, backend.Prefix, proxy)
			router.Method(method, backend.Prefix+"/*", proxy)
		}
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// proxy relays the request to backend and writes its response verbatim.
// Nothing is written when the client has gone away.
func (h *GatewayHandler) proxy(backend gateway.Backend) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedRequest, err))
			return
		}

		resp, err := h.forwarder.Forward(ctx, backend, gateway.Request{
			Method:   r.Method,
			Path:     chi.URLParam(r, "*"),
			RawQuery: r.URL.RawQuery,
			Header:   r.Header,
			Body:     body,
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			writeError(w, r, err)
			return
		}

		for name, values := range resp.Header {
			w.Header()[name] = values
		}
		w.WriteHeader(resp.StatusCode)
		if _, err = w.Write(resp.Body); err != nil {
			log.Err(err).Str("backend", backend.Name).Msg("error relaying backend response")
		}
	}
}
