// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-micro-commerce/models"
)

const usersTable = "users"

// userColumns is the scan order used by scanUser.
var userColumns = []string{
	"id",
	"email",
	"hashed_password",
	"full_name",
	"phone",
	"role",
	"is_active",
	"is_verified",
	"created_at",
	"updated_at",
	"last_login",
}

func returningUserColumns() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns("email", "hashed_password", "full_name", "phone", "role",
			"is_active", "is_verified", "created_at", "updated_at").
		Values(user.Email, user.PasswordHash, user.FullName, user.Phone, string(user.Role),
			user.IsActive, user.IsVerified, user.CreatedAt, user.UpdatedAt).
		Suffix(returningUserColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery sets only the non-nil fields of update and always
// refreshes updated_at.
func buildUpdateUserQuery(b sq.StatementBuilderType, update models.UserUpdate) (string, []any, error) {
	qb := b.Update(usersTable)

	if update.FullName != nil {
		qb = qb.Set("full_name", *update.FullName)
	}
	if update.Phone != nil {
		qb = qb.Set("phone", *update.Phone)
	}
	if update.PasswordHash != nil {
		qb = qb.Set("hashed_password", *update.PasswordHash)
	}

	query, args, err := qb.
		Set("updated_at", update.UpdatedAt).
		Where(sq.Eq{"id": update.ID}).
		Suffix(returningUserColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildUpdateLastLoginQuery(b sq.StatementBuilderType, userID int64, at time.Time) (string, []any, error) {
	query, args, err := b.
		Update(usersTable).
		Set("last_login", at).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
