// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes Prometheus instrumentation shared by every
// micro-commerce binary.
//
// Each process owns a private registry so tests and multiple handlers in one
// process never collide on registration. The registry is served on
// GET /metrics by the HTTP layer.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-micro-commerce/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "microcommerce"

// Outcomes recorded by the gateway and the notification worker.
const (
	OutcomeForwarded   = "forwarded"
	OutcomeUnavailable = "unavailable"
	OutcomeCanceled    = "canceled"

	OutcomeDelivered = "delivered"
	OutcomeFailed    = "failed"
	OutcomeDropped   = "dropped"
)

type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal    *prometheus.CounterVec
	RequestsDuration *prometheus.HistogramVec
	InFlight         prometheus.Gauge

	// Gateway
	ProxyRequestsTotal *prometheus.CounterVec
	ProxyDuration      *prometheus.HistogramVec

	// Notification worker
	NotificationsTotal *prometheus.CounterVec

	BuildInfo *prometheus.GaugeVec
}

// New creates the collectors for service and registers them, together with
// the Go runtime and process collectors, on a fresh registry.
func New(service string, buildInfo models.AppBuildInfo) *Metrics {
	constLabels := prometheus.Labels{"service": service}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "http_requests_total",
				Help:        "Total HTTP requests processed.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		RequestsDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency distributions.",
				ConstLabels: constLabels,
				Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"method", "route", "status"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Name:        "http_in_flight_requests",
				Help:        "Current number of in-flight HTTP requests.",
				ConstLabels: constLabels,
			},
		),
		ProxyRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "gateway",
				Name:        "proxy_requests_total",
				Help:        "Proxied requests by backend and outcome.",
				ConstLabels: constLabels,
			},
			[]string{"backend", "outcome"}, // outcome=forwarded|unavailable|canceled
		),
		ProxyDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   namespace,
				Subsystem:   "gateway",
				Name:        "proxy_duration_seconds",
				Help:        "Round trip to the backend, including failed attempts.",
				ConstLabels: constLabels,
				Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"backend"},
		),
		NotificationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Subsystem:   "notifications",
				Name:        "results_total",
				Help:        "Notification outcomes.",
				ConstLabels: constLabels,
			},
			[]string{"result"}, // result=delivered|failed|dropped
		),
		BuildInfo: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Name:        "build_info",
				Help:        "Build metadata of the running binary. Always 1.",
				ConstLabels: constLabels,
			},
			[]string{"version", "date", "commit"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestsTotal, m.RequestsDuration, m.InFlight,
		m.ProxyRequestsTotal, m.ProxyDuration,
		m.NotificationsTotal,
		m.BuildInfo,
	)

	m.BuildInfo.WithLabelValues(
		orNA(buildInfo.BuildVersion()),
		orNA(buildInfo.BuildDate()),
		orNA(buildInfo.BuildCommit()),
	).Set(1)

	return m
}

// Registry returns the registry backing m.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request count, latency and in-flight requests. The
// route label is the chi route pattern, so it must run inside a chi router.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		m.InFlight.Inc()
		defer m.InFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		statusLabel := strconv.Itoa(status)

		m.RequestsTotal.WithLabelValues(r.Method, route, statusLabel).Inc()
		m.RequestsDuration.WithLabelValues(r.Method, route, statusLabel).Observe(time.Since(start).Seconds())
	})
}

// ObserveProxy records one forwarded request. Safe on a nil receiver.
func (m *Metrics) ObserveProxy(backend, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.ProxyRequestsTotal.WithLabelValues(backend, outcome).Inc()
	m.ProxyDuration.WithLabelValues(backend).Observe(took.Seconds())
}

// ObserveNotification records a notification outcome. Safe on a nil receiver.
func (m *Metrics) ObserveNotification(result string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(result).Inc()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
