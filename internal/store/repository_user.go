// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/models"
)

// userRepository implements [UserRepository] on top of [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// database-assigned ID.
//
// Error handling:
//   - unique violation on email → [ErrEmailAlreadyExists].
//   - unique violation on phone → [ErrPhoneAlreadyExists].
//   - any other driver error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = user.CreatedAt
	}

	query, args, err := buildCreateUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.User{}, r.queryError(ctx, "*userRepository.CreateUser", err)
	}

	return created, nil
}

// FindUserByEmail returns [ErrUserNotFound] when no row matches.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByEmailQuery(r.db.builder, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error building query")
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, r.queryError(ctx, "*userRepository.FindUserByEmail", err)
	}

	return user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if update.UpdatedAt.IsZero() {
		update.UpdatedAt = time.Now().UTC()
	}

	query, args, err := buildUpdateUserQuery(r.db.builder, update)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, r.queryError(ctx, "*userRepository.UpdateUser", err)
	}

	return user, nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, userID int64, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateLastLoginQuery(r.db.builder, userID, at)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateLastLogin").Msg("error building query")
		return err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return r.queryError(ctx, "*userRepository.UpdateLastLogin", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// queryError classifies a driver error and logs anything unexpected.
func (r *userRepository) queryError(ctx context.Context, funcName string, err error) error {
	if errors.Is(err, ErrScanningRow) {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("stored user row is invalid")
		return err
	}

	classified := r.db.errorClassificator.Classify(err)
	if errors.Is(classified, ErrEmailAlreadyExists) || errors.Is(classified, ErrPhoneAlreadyExists) {
		return classified
	}

	logger.FromContext(ctx).Err(err).
		Str("func", funcName).
		Bool("retryable", r.db.errorClassificator.Retryable(err)).
		Msg("unexpected DB error")

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// scanUser reads a row selected with userColumns.
func scanUser(row *sql.Row) (models.User, error) {
	var (
		user      models.User
		role      string
		phone     sql.NullString
		lastLogin sql.NullTime
	)

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.FullName,
		&phone,
		&role,
		&user.IsActive,
		&user.IsVerified,
		&user.CreatedAt,
		&user.UpdatedAt,
		&lastLogin,
	)
	if err != nil {
		return models.User{}, err
	}

	user.Role = models.Role(role)
	if !user.Role.Valid() {
		return models.User{}, fmt.Errorf("%w: unknown role %q", ErrScanningRow, role)
	}
	if phone.Valid {
		user.Phone = &phone.String
	}
	if lastLogin.Valid {
		t := lastLogin.Time.UTC()
		user.LastLogin = &t
	}
	user.CreatedAt = user.CreatedAt.UTC()
	user.UpdatedAt = user.UpdatedAt.UTC()

	return user, nil
}
