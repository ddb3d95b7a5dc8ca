// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the account logic of the user service:
// registration, login, token checks and profile updates.
package service

import (
	"context"

	"github.com/MKhiriev/go-micro-commerce/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages user accounts and their access tokens.
type AuthService interface {
	// Register creates a new account and returns it.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login checks credentials and issues an access token.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error)
	// CurrentUser resolves the account the token was issued to.
	CurrentUser(ctx context.Context, tokenString string) (models.User, error)
	// UpdateProfile applies update to the account identified by email.
	UpdateProfile(ctx context.Context, email string, update models.ProfileUpdate) (models.User, error)
	// ParseToken validates a raw access token.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// Notifier accepts events for asynchronous delivery.
// Enqueue must not block; it reports false when the event was dropped.
type Notifier interface {
	Enqueue(notification models.Notification) bool
}
