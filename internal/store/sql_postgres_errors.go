// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unique indexes on the users table.
const (
	usersEmailIndex = "ix_users_email"
	usersPhoneIndex = "ix_users_phone"
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
// It inspects the pgconn error returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Unique violations on the email
// and phone indexes become [ErrEmailAlreadyExists] and
// [ErrPhoneAlreadyExists]; any other error is returned unchanged.
func (c *PostgresErrorClassifier) Classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	if pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}

	switch {
	case pgErr.ConstraintName == usersEmailIndex, strings.Contains(pgErr.Detail, "(email)"):
		return ErrEmailAlreadyExists
	case pgErr.ConstraintName == usersPhoneIndex, strings.Contains(pgErr.Detail, "(phone)"):
		return ErrPhoneAlreadyExists
	default:
		return err
	}
}

// Retryable reports whether a failed operation may succeed if attempted
// again: connection loss, serialization failure, deadlock or a server that
// is starting up.
func (c *PostgresErrorClassifier) Retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow:
		return true
	default:
		return false
	}
}
