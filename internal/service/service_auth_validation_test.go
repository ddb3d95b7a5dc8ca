// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-micro-commerce/internal/mock"
	"github.com/MKhiriev/go-micro-commerce/internal/validators"
	"github.com/MKhiriev/go-micro-commerce/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newValidationSvc(t *testing.T) (AuthService, *mock.MockAuthService) {
	t.Helper()
	inner := mock.NewMockAuthService(gomock.NewController(t))
	return NewAuthValidationService().Wrap(inner), inner
}

func TestAuthValidationService_Register_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		req    models.RegisterRequest
		fields []string
	}{
		{
			name:   "bad email and short password",
			req:    models.RegisterRequest{Email: "nope", FullName: "Ann", Password: "short"},
			fields: []string{"email", "password"},
		},
		{
			name:   "short name",
			req:    models.RegisterRequest{Email: "a@x.io", FullName: "A", Password: "password1"},
			fields: []string{"fullName"},
		},
		{
			name:   "unknown role",
			req:    models.RegisterRequest{Email: "a@x.io", FullName: "Ann", Password: "password1", Role: "root"},
			fields: []string{"role"},
		},
		{
			name:   "password over bcrypt limit",
			req:    models.RegisterRequest{Email: "a@x.io", FullName: "Ann", Password: strings.Repeat("p", 73)},
			fields: []string{"password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newValidationSvc(t)

			_, err := svc.Register(context.Background(), tt.req)
			require.ErrorIs(t, err, ErrValidation)

			var validationErr *validators.ValidationError
			require.True(t, errors.As(err, &validationErr))

			got := make([]string, 0, len(validationErr.Fields))
			for _, f := range validationErr.Fields {
				got = append(got, f.Field)
			}
			assert.ElementsMatch(t, tt.fields, got)
		})
	}
}

func TestAuthValidationService_Register_PassesValidRequest(t *testing.T) {
	svc, inner := newValidationSvc(t)
	ctx := context.Background()
	req := models.RegisterRequest{Email: "a@x.io", FullName: "Ann", Password: "password1"}

	inner.EXPECT().Register(ctx, req).Return(models.User{ID: 1}, nil)

	user, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestAuthValidationService_Login_MissingFields(t *testing.T) {
	svc, _ := newValidationSvc(t)

	_, err := svc.Login(context.Background(), models.Credentials{Username: "a@x.io"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthValidationService_UpdateProfile(t *testing.T) {
	svc, inner := newValidationSvc(t)
	ctx := context.Background()

	_, err := svc.UpdateProfile(ctx, "a@x.io", models.ProfileUpdate{Phone: strPtr("123")})
	assert.ErrorIs(t, err, ErrValidation)

	update := models.ProfileUpdate{FullName: strPtr("Ann Smith")}
	inner.EXPECT().UpdateProfile(ctx, "a@x.io", update).Return(models.User{ID: 2}, nil)

	_, err = svc.UpdateProfile(ctx, "a@x.io", update)
	assert.NoError(t, err)
}

func TestAuthValidationService_PassThrough(t *testing.T) {
	svc, inner := newValidationSvc(t)
	ctx := context.Background()

	inner.EXPECT().CurrentUser(ctx, "tok").Return(models.User{}, ErrUnauthorized)
	inner.EXPECT().ParseToken(ctx, "tok").Return(models.Token{Subject: "a@x.io"}, nil)

	_, err := svc.CurrentUser(ctx, "tok")
	assert.ErrorIs(t, err, ErrUnauthorized)

	token, err := svc.ParseToken(ctx, "tok")
	require.NoError(t, err)
	assert.Equal(t, "a@x.io", token.Subject)
}
