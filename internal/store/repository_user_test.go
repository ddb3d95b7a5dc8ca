// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     newPostgresDB(db, l),
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func pgUniqueError(constraint string) error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraint}
}

var testCreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func userRow(id int64, email string) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(id, email, "hash", "Ann Lee", nil, "customer", true, false, testCreatedAt, testCreatedAt, nil)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	user := models.User{
		Email:        "a@x.io",
		PasswordHash: "hash",
		FullName:     "Ann Lee",
		Role:         models.RoleCustomer,
		IsActive:     true,
		CreatedAt:    testCreatedAt,
		UpdatedAt:    testCreatedAt,
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("a@x.io", "hash", "Ann Lee", sqlmock.AnyArg(), "customer", true, false, testCreatedAt, testCreatedAt).
		WillReturnRows(userRow(1, "a@x.io"))

	created, err := repo.CreateUser(context.Background(), user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != 1 {
		t.Errorf("expected ID=1, got %d", created.ID)
	}
	if created.Email != "a@x.io" || created.Role != models.RoleCustomer {
		t.Errorf("unexpected user %+v", created)
	}
	if created.Phone != nil || created.LastLogin != nil {
		t.Errorf("expected nil phone and last login, got %v %v", created.Phone, created.LastLogin)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateUser_UniqueViolations(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"email index", pgUniqueError(usersEmailIndex), ErrEmailAlreadyExists},
		{"phone index", pgUniqueError(usersPhoneIndex), ErrPhoneAlreadyExists},
		{"email detail", &pgconn.PgError{Code: pgerrcode.UniqueViolation, Detail: "Key (email)=(a@x.io) already exists."}, ErrEmailAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, db := newTestUserRepo(t)
			defer db.Close()

			mock.ExpectQuery("INSERT INTO users").WillReturnError(tt.err)

			_, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.io"})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateUser_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO users").WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateUser(context.Background(), models.User{Email: "a@x.io"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Errorf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	lastLogin := testCreatedAt.Add(time.Hour)
	rows := sqlmock.NewRows(userColumns).
		AddRow(7, "a@x.io", "hash", "Ann Lee", "+15550100123", "seller", true, true, testCreatedAt, testCreatedAt, lastLogin)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = \$1 LIMIT 1`).
		WithArgs("a@x.io").
		WillReturnRows(rows)

	user, err := repo.FindUserByEmail(context.Background(), "a@x.io")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 7 || user.Role != models.RoleSeller || !user.IsVerified {
		t.Errorf("unexpected user %+v", user)
	}
	if user.Phone == nil || *user.Phone != "+15550100123" {
		t.Errorf("unexpected phone %v", user.Phone)
	}
	if user.LastLogin == nil || !user.LastLogin.Equal(lastLogin) {
		t.Errorf("unexpected last login %v", user.LastLogin)
	}
	if user.PasswordHash != "hash" {
		t.Errorf("expected password hash to be loaded")
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost@x.io").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByEmail(context.Background(), "ghost@x.io")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByEmail_DBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(errors.New("boom"))

	_, err := repo.FindUserByEmail(context.Background(), "a@x.io")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Errorf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindUserByEmail_UnknownRole(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(userColumns).
		AddRow(7, "a@x.io", "hash", "Ann Lee", nil, "superuser", true, false, testCreatedAt, testCreatedAt, nil)
	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnRows(rows)

	_, err := repo.FindUserByEmail(context.Background(), "a@x.io")
	if !errors.Is(err, ErrScanningRow) {
		t.Errorf("expected ErrScanningRow, got %v", err)
	}
	if errors.Is(err, ErrExecutingQuery) {
		t.Errorf("scan error must not be reported as a query error: %v", err)
	}
}

func TestUpdateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	name := "Bo Kim"
	at := testCreatedAt.Add(time.Minute)

	mock.ExpectQuery(`UPDATE users SET full_name = \$1, updated_at = \$2 WHERE id = \$3 RETURNING`).
		WithArgs(name, at, int64(1)).
		WillReturnRows(userRow(1, "a@x.io"))

	_, err := repo.UpdateUser(context.Background(), models.UserUpdate{ID: 1, FullName: &name, UpdatedAt: at})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpdateUser_PhoneTaken(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	phone := "+15550100123"
	mock.ExpectQuery("UPDATE users").WillReturnError(pgUniqueError(usersPhoneIndex))

	_, err := repo.UpdateUser(context.Background(), models.UserUpdate{ID: 1, Phone: &phone})
	if !errors.Is(err, ErrPhoneAlreadyExists) {
		t.Errorf("expected ErrPhoneAlreadyExists, got %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE users").WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.UpdateUser(context.Background(), models.UserUpdate{ID: 99})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateLastLogin(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	at := testCreatedAt.Add(time.Hour)
	mock.ExpectExec(`UPDATE users SET last_login = \$1 WHERE id = \$2`).
		WithArgs(at, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE users").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.UpdateLastLogin(context.Background(), 3, at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.UpdateLastLogin(context.Background(), 4, at); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
