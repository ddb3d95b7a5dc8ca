// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the outbound client shared by the gateway forwarder and the
// notification adapter.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client with the given overall request timeout.
// A zero timeout means no limit besides the request context.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{Client: resty.New().SetTimeout(timeout)}
}

// WithoutRedirects makes the client return 3xx responses as they are
// instead of following them.
func (c *HTTPClient) WithoutRedirects() *HTTPClient {
	c.SetRedirectPolicy(resty.RedirectPolicyFunc(func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}))
	return c
}
