// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by every
// micro-commerce binary (gateway, user service and the stub services). It is
// populated once at startup by merging defaults, a .env file, environment
// variables, command-line flags and an optional JSON file, and is treated as
// immutable afterwards.
//
// Struct tags:
//   - envPrefix : prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Auth holds the token signing parameters and password hashing cost.
	Auth Auth

	// Storage holds the relational database settings of the user service.
	Storage Storage

	// Server holds the listen address and timeouts of the inbound HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Services holds the base addresses of the backends reachable from the
	// gateway and from the user service.
	Services Services

	// Adapter holds settings of outbound clients other than the gateway proxy.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from the other sources.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Auth holds the security parameters of the user service.
type Auth struct {
	// TokenSignKey is the HMAC secret used to sign and verify access tokens.
	// Env: SECRET_KEY
	TokenSignKey string `env:"SECRET_KEY"`

	// TokenTTLMinutes is how long an access token stays valid after issuance.
	// Env: ACCESS_TOKEN_EXPIRE_MINUTES
	TokenTTLMinutes int `env:"ACCESS_TOKEN_EXPIRE_MINUTES"`

	// TokenIssuer is the "iss" claim embedded in and required from every token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"APP_TOKEN_ISSUER"`

	// PasswordHashCost is the bcrypt cost used when hashing passwords.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"APP_PASSWORD_HASH_COST"`

	// TrackLastLogin enables updating users.last_login on successful login.
	// Env: APP_TRACK_LAST_LOGIN
	TrackLastLogin bool `env:"APP_TRACK_LAST_LOGIN"`
}

// TokenTTL returns the configured token lifetime as a [time.Duration].
func (a Auth) TokenTTL() time.Duration {
	return time.Duration(a.TokenTTLMinutes) * time.Minute
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	DB DB
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. postgres:// and postgresql://
	// URLs are served by pgx; sqlite:// URLs and file: DSNs by go-sqlite3.
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL"`

	// MaxOpenConns bounds the connection pool shared by concurrent requests.
	// Env: STORAGE_MAX_OPEN_CONNS
	MaxOpenConns int `env:"STORAGE_MAX_OPEN_CONNS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request on
	// the user and stub services. The gateway does not apply it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown after a stop signal.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Services holds base addresses of the backend services.
type Services struct {
	// Env: USER_SERVICE_URL
	UserURL string `env:"USER_SERVICE_URL"`
	// Env: PRODUCT_SERVICE_URL
	ProductURL string `env:"PRODUCT_SERVICE_URL"`
	// Env: ORDER_SERVICE_URL
	OrderURL string `env:"ORDER_SERVICE_URL"`
	// Env: NOTIFICATION_SERVICE_URL
	NotificationURL string `env:"NOTIFICATION_SERVICE_URL"`

	// ProxyTimeout bounds each backend call made by the gateway. Zero keeps
	// the transport defaults, so only the inbound request context applies.
	// Env: GATEWAY_PROXY_TIMEOUT
	ProxyTimeout time.Duration `env:"GATEWAY_PROXY_TIMEOUT"`
}

// Adapter holds settings of the outbound notification client.
type Adapter struct {
	// RequestTimeout bounds a single notification delivery.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// NotificationQueueSize is the capacity of the notification dispatch queue.
	// Events enqueued while the queue is full are dropped and logged.
	// Env: WORKERS_NOTIFICATION_QUEUE_SIZE
	NotificationQueueSize int `env:"NOTIFICATION_QUEUE_SIZE"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name (debug, info, warn, error).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. .env file in the working directory (never overrides real env vars)
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(dotEnvFile).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
