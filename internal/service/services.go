// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-micro-commerce/internal/config"
	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/store"
)

type Services struct {
	AuthService AuthService
}

// NewServices builds the service layer of the user service. The returned
// AuthService validates its input before touching storage.
func NewServices(storages *store.Storages, notifier Notifier, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	authService, err := NewAuthService(storages.UserRepository, notifier, cfg.Auth, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthValidationService().Wrap(authService),
	}, nil
}
