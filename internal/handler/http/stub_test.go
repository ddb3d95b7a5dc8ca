// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestStubHandler_Health(t *testing.T) {
	for _, name := range []string{models.ServiceProduct, models.ServiceOrder, models.ServiceNotification} {
		t.Run(name, func(t *testing.T) {
			router := NewStubHandler(name, nil, logger.Nop()).Init()

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"status":"healthy","service":"`+name+`"}`, rr.Body.String())
		})
	}
}

func TestStubHandler_NoNotificationsRoute(t *testing.T) {
	router := NewStubHandler(models.ServiceProduct, nil, logger.Nop()).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(`{}`)))

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNotificationHandler_Accepts(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	router := NewNotificationHandler(nil, log).Init()

	body := `{"type":"user_created","data":{"email":"ada@example.com","username":"Ada Lovelace"}}`
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(body)))

	assert.Equal(t, http.StatusAccepted, rr.Code)
	assert.JSONEq(t, `{"status":"accepted"}`, rr.Body.String())
	assert.Contains(t, buf.String(), `"type":"user_created"`)
	assert.Contains(t, buf.String(), `"email":"ada@example.com"`)
}

func TestNotificationHandler_MalformedJSON(t *testing.T) {
	router := NewNotificationHandler(nil, logger.Nop()).Init()

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(`{"type":`)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "malformed_request", decodeError(t, rr).Reason)
}
