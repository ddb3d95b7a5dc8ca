// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-micro-commerce/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken is returned for any token that fails validation:
	// bad signature, malformed, wrong algorithm or issuer, or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	ErrInvalidTokenParams = errors.New("invalid params for issuing token")
)

// TokenManager issues and validates HS256 access tokens with a process-wide
// signing key.
type TokenManager struct {
	signKey []byte
	issuer  string
	now     func() time.Time
}

// NewTokenManager returns a TokenManager using the wall clock.
func NewTokenManager(signKey, issuer string) *TokenManager {
	return &TokenManager{
		signKey: []byte(signKey),
		issuer:  issuer,
		now:     time.Now,
	}
}

// WithClock replaces the clock used for issuance and expiry checks.
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	m.now = now
	return m
}

// Issue signs a token for subject with the given role that expires after ttl.
func (m *TokenManager) Issue(subject string, role models.Role, ttl time.Duration) (models.Token, error) {
	if subject == "" || ttl <= 0 || len(m.signKey) == 0 {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := m.now()
	expiresAt := now.Add(ttl)
	claims := &models.TokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		SignedString: signed,
		Subject:      subject,
		Role:         role,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// Validate parses tokenString and returns its claims.
// A token is expired once now reaches its exp claim.
func (m *TokenManager) Validate(tokenString string) (models.Token, error) {
	claims := &models.TokenClaims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)

	_, err := parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return m.signKey, nil
	})
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	return models.Token{
		SignedString: tokenString,
		Subject:      claims.Subject,
		Role:         claims.Role,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
