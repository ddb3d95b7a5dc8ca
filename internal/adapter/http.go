// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-micro-commerce/internal/config"
	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/utils"
	"github.com/MKhiriev/go-micro-commerce/models"
)

const notificationsPath = "/notifications"

type httpNotificationAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPNotificationAdapter constructs an HTTP implementation of
// [NotificationAdapter] pointed at services.NotificationURL. Each delivery is
// bounded by adapterCfg.RequestTimeout.
//
// Returns an error if the notification address is empty or cannot be parsed
// as a valid URL.
func NewHTTPNotificationAdapter(services config.Services, adapterCfg config.Adapter, logger *logger.Logger) (NotificationAdapter, error) {
	baseURL, err := utils.NormalizeBaseURL(services.NotificationURL)
	if err != nil {
		return nil, fmt.Errorf("invalid notification service address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpNotificationAdapter{client: client, logger: logger}, nil
}

// SendNotification implements [NotificationAdapter].
func (h *httpNotificationAdapter) SendNotification(ctx context.Context, notification models.Notification) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(notification).
		Post(notificationsPath)
	if err != nil {
		return fmt.Errorf("notification request: %w", err)
	}

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.logger.Debug().
		Str("type", string(notification.Type)).
		Int("status", resp.StatusCode()).
		Msg("notification delivered")
	return nil
}
