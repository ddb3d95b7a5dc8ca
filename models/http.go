// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// HealthStatus is the body of GET /health on every service.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// StatusHealthy is the only health status reported.
const StatusHealthy = "healthy"

// ErrorResponse is the error body shared by all services.
type ErrorResponse struct {
	// Detail is a human readable message.
	Detail string `json:"detail"`
	// Reason is a stable machine readable code, e.g. "duplicate_email".
	Reason string `json:"reason"`
	// Fields lists per-field validation failures.
	Fields []FieldError `json:"fields,omitempty"`
}

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AcceptedResponse is returned by fire-and-forget endpoints.
type AcceptedResponse struct {
	Status string `json:"status"`
}

// Service names reported by /health, logs and metrics.
const (
	ServiceGateway      = "api-gateway"
	ServiceUser         = "user-service"
	ServiceProduct      = "product-service"
	ServiceOrder        = "order-service"
	ServiceNotification = "notification-service"
)

// StatusAccepted is the status of an AcceptedResponse.
const StatusAccepted = "accepted"
