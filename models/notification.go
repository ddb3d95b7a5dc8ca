// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NotificationType names the event carried by a Notification.
type NotificationType string

const NotificationUserCreated NotificationType = "user_created"

// Notification is the payload accepted by the notification service.
type Notification struct {
	Type NotificationType `json:"type"`
	Data NotificationData `json:"data"`
}

type NotificationData struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

// NewUserCreatedNotification builds the event emitted after registration.
func NewUserCreatedNotification(u User) Notification {
	return Notification{
		Type: NotificationUserCreated,
		Data: NotificationData{
			Email:    u.Email,
			Username: u.FullName,
		},
	}
}
