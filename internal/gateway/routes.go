// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"fmt"

	"github.com/MKhiriev/go-micro-commerce/internal/config"
	"github.com/MKhiriev/go-micro-commerce/internal/utils"
)

// Backend is a downstream service addressed by the gateway.
type Backend struct {
	// Name is used in client-facing error messages and metric labels.
	Name string
	// Prefix is the path segment routed to the backend, e.g. "/users".
	Prefix string
	// BaseURL has no trailing slash.
	BaseURL string
}

// RouteTable is the static prefix to backend mapping. It is read-only after
// construction.
type RouteTable struct {
	backends []Backend
}

// NewRouteTable resolves the backend addresses from cfg.
func NewRouteTable(cfg config.Services) (*RouteTable, error) {
	routes := []struct {
		name, prefix, address string
	}{
		{name: "User", prefix: "/users", address: cfg.UserURL},
		{name: "Product", prefix: "/products", address: cfg.ProductURL},
		{name: "Order", prefix: "/orders", address: cfg.OrderURL},
	}

	table := &RouteTable{backends: make([]Backend, 0, len(routes))}
	for _, route := range routes {
		baseURL, err := utils.NormalizeBaseURL(route.address)
		if err != nil {
			return nil, fmt.Errorf("invalid %s service address: %w", route.name, err)
		}
		table.backends = append(table.backends, Backend{
			Name:    route.name,
			Prefix:  route.prefix,
			BaseURL: baseURL,
		})
	}

	return table, nil
}

// Backends returns the routed backends in registration order.
func (t *RouteTable) Backends() []Backend {
	return append([]Backend(nil), t.backends...)
}

// Lookup returns the backend routed under prefix.
func (t *RouteTable) Lookup(prefix string) (Backend, error) {
	for _, backend := range t.backends {
		if backend.Prefix == prefix {
			return backend, nil
		}
	}
	return Backend{}, fmt.Errorf("%w: %s", ErrUnknownBackend, prefix)
}
