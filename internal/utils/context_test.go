// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-micro-commerce/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetTokenFromContext_Success(t *testing.T) {
	ctx := WithToken(context.Background(), models.Token{Subject: "a@x.io"})

	token, ok := GetTokenFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if token.Subject != "a@x.io" {
		t.Errorf("expected subject a@x.io, got %s", token.Subject)
	}
}

func TestGetTokenFromContext_Missing(t *testing.T) {
	_, ok := GetTokenFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false, got true")
	}
}

func TestGetTokenFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TokenCtxKey, "not-a-token")

	if _, ok := GetTokenFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetTokenFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("other"), models.Token{Subject: "a@x.io"})

	if _, ok := GetTokenFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
