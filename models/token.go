// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set of an access token. The subject carries the
// account email.
type TokenClaims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// Token is an issued or validated access token.
type Token struct {
	// SignedString is the compact JWS representation
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`

	Subject   string
	Role      Role
	ExpiresAt time.Time
}

// String returns the compact serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
