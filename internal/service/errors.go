// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrDuplicatePhone = errors.New("phone number already registered")

	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrValidation wraps a *validators.ValidationError.
	ErrValidation = errors.New("invalid data provided")

	ErrTokenCreationFailed = errors.New("token creation failed")
)
