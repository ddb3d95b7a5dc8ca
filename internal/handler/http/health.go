// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/utils"
	"github.com/MKhiriev/go-micro-commerce/models"
)

func health(serviceName string) http.HandlerFunc {
	status := models.HealthStatus{Status: models.StatusHealthy, Service: serviceName}

	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := utils.WriteJSON(w, status, http.StatusOK); err != nil {
			logger.FromRequest(r).Err(err).Msg("error writing health status")
		}
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrNotFound)
}
