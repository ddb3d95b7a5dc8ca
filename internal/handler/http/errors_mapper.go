// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-micro-commerce/internal/gateway"
	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/service"
	"github.com/MKhiriev/go-micro-commerce/internal/utils"
	"github.com/MKhiriev/go-micro-commerce/internal/validators"
	"github.com/MKhiriev/go-micro-commerce/models"
)

// errorMapping is the response produced for a family of errors.
type errorMapping struct {
	status int
	reason string
}

const reasonInternalError = "internal_error"

var errorStatusMap = map[error]errorMapping{
	service.ErrDuplicateEmail:     {status: http.StatusBadRequest, reason: "duplicate_email"},
	service.ErrDuplicatePhone:     {status: http.StatusBadRequest, reason: "duplicate_phone"},
	service.ErrInvalidCredentials: {status: http.StatusUnauthorized, reason: "invalid_credentials"},
	service.ErrUnauthorized:       {status: http.StatusUnauthorized, reason: "unauthorized"},
	service.ErrValidation:         {status: http.StatusUnprocessableEntity, reason: "validation_error"},

	gateway.ErrBackendUnavailable: {status: http.StatusServiceUnavailable, reason: "backend_unavailable"},

	ErrMalformedRequest: {status: http.StatusBadRequest, reason: "malformed_request"},
	ErrNotFound:         {status: http.StatusNotFound, reason: "not_found"},
}

// mappingFromError returns the mapping for err and the sentinel it matched.
// Unknown errors map to 500 with a nil sentinel.
func mappingFromError(err error) (errorMapping, error) {
	for target, mapping := range errorStatusMap {
		if errors.Is(err, target) {
			return mapping, target
		}
	}
	return errorMapping{status: http.StatusInternalServerError, reason: reasonInternalError}, nil
}

// writeError writes the error body for err.
//
// The detail is the matched sentinel message, or the backend name and reason
// for an unavailable backend. Unknown errors are logged and reported without
// any internal detail. 401 responses carry "WWW-Authenticate: Bearer".
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	mapping, target := mappingFromError(err)

	detail := http.StatusText(mapping.status)
	if target != nil {
		detail = target.Error()
	}

	var unavailable *gateway.UnavailableError
	if errors.As(err, &unavailable) {
		detail = unavailable.Error()
	}

	var fields []models.FieldError
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		fields = validationErr.Fields
	}

	if mapping.status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	if mapping.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", mapping.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", mapping.status).Msg("request rejected")
	}

	utils.WriteError(w, mapping.status, mapping.reason, detail, fields...)
}
