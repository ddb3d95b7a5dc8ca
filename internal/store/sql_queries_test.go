// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-micro-commerce/models"
	"github.com/stretchr/testify/require"
)

var (
	dollar   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	question = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildCreateUserQuery_SQLContainsParts(t *testing.T) {
	user := models.User{Email: "a@x.io", PasswordHash: "h", FullName: "Ann", Role: models.RoleCustomer, IsActive: true}

	query, args, err := buildCreateUserQuery(dollar, user)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into users")
	require.Contains(t, q, "returning id, email, hashed_password")
	require.Contains(t, query, "$9")
	require.Len(t, args, 9)
	require.Equal(t, "a@x.io", args[0])
	require.Equal(t, "customer", args[4])
}

func Test_buildCreateUserQuery_SQLitePlaceholders(t *testing.T) {
	query, _, err := buildCreateUserQuery(question, models.User{Email: "a@x.io"})
	require.NoError(t, err)

	require.NotContains(t, query, "$1")
	require.Contains(t, query, "?")
}

func Test_buildFindUserByEmailQuery(t *testing.T) {
	query, args, err := buildFindUserByEmailQuery(dollar, "a@x.io")
	require.NoError(t, err)

	require.Equal(t,
		"SELECT "+strings.Join(userColumns, ", ")+" FROM users WHERE email = $1 LIMIT 1",
		query)
	require.Equal(t, []any{"a@x.io"}, args)
}

func Test_buildUpdateUserQuery_SQLContainsParts(t *testing.T) {
	name, phone, hash := "Bo", "+15550100123", "newhash"
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		update     models.UserUpdate
		checkQuery func(t *testing.T, query string, args []any)
	}{
		{
			name:   "only updated_at",
			update: models.UserUpdate{ID: 5, UpdatedAt: at},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "SET updated_at = $1 WHERE id = $2")
				require.Equal(t, []any{at, int64(5)}, args)
			},
		},
		{
			name:   "all fields",
			update: models.UserUpdate{ID: 5, FullName: &name, Phone: &phone, PasswordHash: &hash, UpdatedAt: at},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.Contains(t, query, "full_name = $1")
				require.Contains(t, query, "phone = $2")
				require.Contains(t, query, "hashed_password = $3")
				require.Contains(t, query, "updated_at = $4")
				require.Contains(t, query, "WHERE id = $5")
				require.Contains(t, query, "RETURNING id")
				require.Equal(t, []any{name, phone, hash, at, int64(5)}, args)
			},
		},
		{
			name:   "phone only",
			update: models.UserUpdate{ID: 2, Phone: &phone, UpdatedAt: at},
			checkQuery: func(t *testing.T, query string, args []any) {
				require.NotContains(t, query, "full_name")
				require.NotContains(t, query, "hashed_password =")
				require.Len(t, args, 3)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateUserQuery(dollar, tt.update)
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildUpdateLastLoginQuery(t *testing.T) {
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildUpdateLastLoginQuery(question, 3, at)
	require.NoError(t, err)
	require.Equal(t, "UPDATE users SET last_login = ? WHERE id = ?", query)
	require.Equal(t, []any{at, int64(3)}, args)
}
