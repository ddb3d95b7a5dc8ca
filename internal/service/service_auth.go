// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-micro-commerce/internal/config"
	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/store"
	"github.com/MKhiriev/go-micro-commerce/internal/utils"
	"github.com/MKhiriev/go-micro-commerce/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification and access token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// notifier receives user_created events. Delivery is asynchronous.
	notifier Notifier

	// tokens signs and validates access tokens with the process-wide key.
	tokens *utils.TokenManager

	// tokenTTL controls how long a newly issued token remains valid.
	tokenTTL time.Duration

	// hashCost is the bcrypt cost for new password hashes.
	hashCost int

	// trackLastLogin enables writing users.last_login on successful login.
	trackLastLogin bool

	// dummyHash is compared against when the login email is unknown so that
	// both failure paths spend a bcrypt comparison.
	dummyHash string

	now func() time.Time

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and Notifier and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, notifier Notifier, cfg config.Auth, logger *logger.Logger) (AuthService, error) {
	dummyHash, err := utils.HashPassword("micro-commerce-dummy-password", cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("error preparing password hasher: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		notifier:       notifier,
		tokens:         utils.NewTokenManager(cfg.TokenSignKey, cfg.TokenIssuer),
		tokenTTL:       cfg.TokenTTL(),
		hashCost:       cfg.PasswordHashCost,
		trackLastLogin: cfg.TrackLastLogin,
		dummyHash:      dummyHash,
		now:            time.Now,
		logger:         logger,
	}, nil
}

// Register creates a new user account.
//
// The email is normalised, checked for an existing account, and the password
// is hashed before the row is written with isActive=true, isVerified=false and
// the customer role when none was requested. A user_created notification is
// queued after the write; a full queue only produces a log line.
//
// Returns the persisted user or:
//   - ErrDuplicateEmail if the email is taken, including a lost race with a
//     concurrent registration.
//   - ErrDuplicatePhone if the phone number is taken.
//   - A wrapped storage error for anything else.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(req.Email)

	_, err := a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		log.Debug().Str("email", email).Msg("email already registered")
		return models.User{}, ErrDuplicateEmail
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password, a.hashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	role := req.Role
	if role == "" {
		role = models.RoleCustomer
	}

	now := a.now().UTC()
	created, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     req.FullName,
		Phone:        req.Phone,
		Role:         role,
		IsActive:     true,
		IsVerified:   false,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if mapped := uniqueViolation(err); mapped != nil {
			log.Debug().Err(err).Str("email", email).Msg("user creation rejected")
			return models.User{}, mapped
		}
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if !a.notifier.Enqueue(models.NewUserCreatedNotification(created)) {
		log.Warn().Int64("id", created.ID).Msg("notification queue is full, user_created event dropped")
	}

	log.Info().Int64("id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login authenticates an existing user and issues an access token.
//
// An unknown email and a wrong password yield the same ErrInvalidCredentials.
// When last login tracking is enabled the timestamp is written before the
// token is issued; a failed write is logged and does not fail the login.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	log := logger.FromContext(ctx)
	email := normalizeEmail(credentials.Username)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.VerifyPassword(credentials.Password, a.dummyHash)
			log.Debug().Str("email", email).Msg("login for unknown email")
			return models.AuthResult{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.AuthResult{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.VerifyPassword(credentials.Password, user.PasswordHash) {
		log.Debug().Int64("id", user.ID).Msg("wrong password")
		return models.AuthResult{}, ErrInvalidCredentials
	}

	if a.trackLastLogin {
		at := a.now().UTC()
		if err := a.userRepository.UpdateLastLogin(ctx, user.ID, at); err != nil {
			log.Warn().Err(err).Int64("id", user.ID).Msg("last login update failed")
		} else {
			user.LastLogin = &at
		}
	}

	token, err := a.tokens.Issue(user.Email, user.Role, a.tokenTTL)
	if err != nil {
		log.Err(err).Int64("id", user.ID).Msg("token creation failed")
		return models.AuthResult{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.AuthResult{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
		User:        user.ToResponse(),
	}, nil
}

// CurrentUser returns the account the token was issued to.
// Invalid tokens and subjects that no longer exist yield ErrUnauthorized.
func (a *authService) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, token.Subject)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			logger.FromContext(ctx).Debug().Str("sub", token.Subject).Msg("token subject no longer exists")
			return models.User{}, ErrUnauthorized
		}
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	return user, nil
}

// UpdateProfile changes the name, phone or password of the account
// identified by email. An empty update returns the account unchanged.
func (a *authService) UpdateProfile(ctx context.Context, email string, update models.ProfileUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUnauthorized
		}
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if update.Empty() {
		return user, nil
	}

	userUpdate := models.UserUpdate{
		ID:        user.ID,
		FullName:  update.FullName,
		Phone:     update.Phone,
		UpdatedAt: a.now().UTC(),
	}
	if update.Password != nil {
		passwordHash, err := utils.HashPassword(*update.Password, a.hashCost)
		if err != nil {
			log.Err(err).Msg("password hashing failed")
			return models.User{}, err
		}
		userUpdate.PasswordHash = &passwordHash
	}

	updated, err := a.userRepository.UpdateUser(ctx, userUpdate)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUnauthorized
		}
		if mapped := uniqueViolation(err); mapped != nil {
			return models.User{}, mapped
		}
		log.Err(err).Int64("id", user.ID).Msg("user update ended with error")
		return models.User{}, fmt.Errorf("user update ended with error: %w", err)
	}

	log.Info().Int64("id", updated.ID).Msg("profile updated")
	return updated, nil
}

// ParseToken validates a raw access token. Any validation failure (expired,
// wrong issuer or algorithm, malformed) is normalised to ErrUnauthorized.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := a.tokens.Validate(tokenString)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrUnauthorized
	}

	return token, nil
}

// uniqueViolation returns the service error for a storage unique violation,
// or nil for any other error.
func uniqueViolation(err error) error {
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrDuplicateEmail
	case errors.Is(err, store.ErrPhoneAlreadyExists):
		return ErrDuplicatePhone
	default:
		return nil
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
