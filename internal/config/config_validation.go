// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or every violated group joined
// into one error otherwise.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		errs = append(errs, ErrInvalidServerConfigs)
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenTTLMinutes <= 0 || cfg.Auth.TokenIssuer == "" ||
		cfg.Auth.PasswordHashCost < bcrypt.MinCost || cfg.Auth.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, ErrInvalidAuthConfigs)
	}

	if cfg.Storage.DB.DSN == "" || cfg.Storage.DB.MaxOpenConns <= 0 {
		errs = append(errs, ErrInvalidStorageConfigs)
	}

	for name, raw := range map[string]string{
		"user":         cfg.Services.UserURL,
		"product":      cfg.Services.ProductURL,
		"order":        cfg.Services.OrderURL,
		"notification": cfg.Services.NotificationURL,
	} {
		if err := validateBaseURL(raw); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s service url: %w", ErrInvalidServicesConfigs, name, err))
		}
	}

	if cfg.Workers.NotificationQueueSize <= 0 {
		errs = append(errs, ErrInvalidWorkerConfigs)
	}

	return errors.Join(errs...)
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%q must be an absolute http(s) url", raw)
	}

	return nil
}
