// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-micro-commerce/models"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	m := New("test-service", models.NewAppBuildInfo("v1", "", ""))

	router := chi.NewRouter()
	router.Use(m.Middleware)
	router.Get("/users/*", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/users/me", "/users/42", "/health", "/nowhere"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/users/*", "418")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/health", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.InFlight))
}

func TestObserve_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveProxy("user", OutcomeForwarded, time.Millisecond)
		m.ObserveNotification(OutcomeDropped)
	})
}

func TestObserveProxyAndNotification(t *testing.T) {
	m := New("api-gateway", models.AppBuildInfo{})

	m.ObserveProxy("User", OutcomeUnavailable, 5*time.Millisecond)
	m.ObserveProxy("User", OutcomeUnavailable, 5*time.Millisecond)
	m.ObserveNotification(OutcomeDelivered)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ProxyRequestsTotal.WithLabelValues("User", OutcomeUnavailable)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsTotal.WithLabelValues(OutcomeDelivered)))
}

func TestHandler_ExposesBuildInfo(t *testing.T) {
	m := New("user-service", models.NewAppBuildInfo("v1.2.3", "2026-03-01", "abc123"))

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `microcommerce_build_info{commit="abc123",date="2026-03-01",service="user-service",version="v1.2.3"} 1`)
}
