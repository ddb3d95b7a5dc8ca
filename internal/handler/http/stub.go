// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/metrics"
	"github.com/MKhiriev/go-micro-commerce/internal/utils"
	"github.com/MKhiriev/go-micro-commerce/models"
	"github.com/go-chi/chi/v5"
)

// StubHandler serves a placeholder service that only reports its health.
// The notification service additionally accepts events.
type StubHandler struct {
	service             string
	acceptNotifications bool

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewStubHandler returns a health-only handler for the named service.
func NewStubHandler(service string, m *metrics.Metrics, logger *logger.Logger) *StubHandler {
	logger.Info().Str("stub", service).Msg("stub handler created")
	return &StubHandler{service: service, metrics: m, logger: logger}
}

// NewNotificationHandler returns the notification sink handler.
func NewNotificationHandler(m *metrics.Metrics, logger *logger.Logger) *StubHandler {
	h := NewStubHandler(models.ServiceNotification, m, logger)
	h.acceptNotifications = true
	return h
}

func (h *StubHandler) Init() *chi.Mux {
	router := newRouter(h.service, h.metrics, h.logger)

	if h.acceptNotifications {
		router.Post("/notifications", h.notify)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// notify logs the event and acknowledges it with 202.
func (h *StubHandler) notify(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var notification models.Notification
	if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrMalformedRequest, err))
		return
	}

	log.Info().
		Str("type", string(notification.Type)).
		Str("email", notification.Data.Email).
		Str("username", notification.Data.Username).
		Msg("notification received")

	if _, err := utils.WriteJSON(w, models.AcceptedResponse{Status: models.StatusAccepted}, http.StatusAccepted); err != nil {
		log.Err(err).Msg("error writing response")
	}
}
