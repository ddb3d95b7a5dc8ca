// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/metrics"
	"github.com/MKhiriev/go-micro-commerce/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// newRouter returns the router every service starts from: panic recovery,
// trace ids, access logging and metrics, plus GET /health and GET /metrics.
// m may be nil, in which case no metrics are recorded or served.
func newRouter(serviceName string, m *metrics.Metrics, log *logger.Logger) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(withTraceID(log))
	router.Use(withLogging)
	if m != nil {
		router.Use(m.Middleware)
	}

	router.Get("/health", health(serviceName))
	if m != nil {
		router.Method(http.MethodGet, "/metrics", m.Handler())
	}

	router.NotFound(notFound)
	return router
}

func (h *Handler) Init() *chi.Mux {
	router := newRouter(models.ServiceUser, h.metrics, h.logger)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/me", h.me)
			r.Patch("/me", h.updateMe)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
