// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides outbound clients for the services the user
// service depends on.
//
// The only remote dependency is the notification service, reached through
// [NotificationAdapter]. Error values defined in errors.go are mapped from
// HTTP status codes by mapHTTPError so that callers can use [errors.Is]
// without inspecting responses.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-micro-commerce/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// NotificationAdapter delivers events to the notification service.
type NotificationAdapter interface {
	// SendNotification posts notification to POST /notifications. A non-2xx
	// response is an error.
	SendNotification(ctx context.Context, notification models.Notification) error
}
