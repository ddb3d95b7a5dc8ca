// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-micro-commerce/internal/validators"
	"github.com/MKhiriev/go-micro-commerce/models"
)

// AuthValidationService rejects malformed requests before they reach the
// wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.User{}, err
	}

	return v.inner.Register(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.AuthResult, error) {
	if err := v.validate(ctx, credentials); err != nil {
		return models.AuthResult{}, err
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) CurrentUser(ctx context.Context, tokenString string) (models.User, error) {
	return v.inner.CurrentUser(ctx, tokenString)
}

func (v *AuthValidationService) UpdateProfile(ctx context.Context, email string, update models.ProfileUpdate) (models.User, error) {
	if err := v.validate(ctx, update); err != nil {
		return models.User{}, err
	}

	return v.inner.UpdateProfile(ctx, email, update)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// validate wraps field failures in ErrValidation; the field list stays
// reachable through errors.As.
func (v *AuthValidationService) validate(ctx context.Context, i any) error {
	err := v.validator.Validate(ctx, i)
	if err == nil {
		return nil
	}
	if errors.Is(err, validators.ErrValidation) {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return fmt.Errorf("error during request validation: %w", err)
}
