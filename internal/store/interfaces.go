// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists user accounts in a relational database.
//
// PostgreSQL (pgx) is the production backend; SQLite (go-sqlite3) serves
// local runs and tests. Queries are built with squirrel so one repository
// works with both placeholder styles, and driver errors are translated into
// the package sentinels by a per-driver [ErrorClassificator].
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-micro-commerce/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the credential store of the user service.
type UserRepository interface {
	// CreateUser inserts user and returns it with its assigned ID.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail looks up a user by normalised email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// UpdateUser applies the non-nil fields of update and returns the row.
	UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error)
	// UpdateLastLogin records a successful login.
	UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error
}

// ErrorClassificator translates driver errors into store sentinels.
type ErrorClassificator interface {
	Classify(err error) error
	Retryable(err error) bool
}
