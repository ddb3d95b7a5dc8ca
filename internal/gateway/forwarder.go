// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/textproto"
	"strings"
	"syscall"
	"time"

	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/metrics"
	"github.com/MKhiriev/go-micro-commerce/internal/utils"
)

// hopByHopHeaders apply to a single connection and are never forwarded.
var hopByHopHeaders = []string{
	"Connection",
	"Proxy-Connection",
	"Keep-Alive",
	"Proxy-Authenticate",
	"Proxy-Authorization",
	"Te",
	"Trailer",
	"Transfer-Encoding",
	"Upgrade",
}

// Request is an inbound request as seen by the forwarder.
type Request struct {
	Method string
	// Path is the remainder after the backend prefix, with or without a
	// leading slash.
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

// Response is a complete backend response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Forwarder replays requests against backends. It is safe for concurrent use.
type Forwarder struct {
	client  *utils.HTTPClient
	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewForwarder returns a Forwarder whose outbound calls are bounded by
// timeout. Redirects are returned to the caller instead of being followed.
// m may be nil.
func NewForwarder(timeout time.Duration, m *metrics.Metrics, logger *logger.Logger) *Forwarder {
	return &Forwarder{
		client:  utils.NewHTTPClient(timeout).WithoutRedirects(),
		metrics: m,
		logger:  logger,
	}
}

// Forward sends req to backend once and returns its response.
//
// The outbound request keeps the method and end-to-end headers of req. Host
// and hop-by-hop headers are dropped, and a body is sent only for POST, PUT
// and PATCH. The response body is relayed as the backend sent it, together
// with its Content-Encoding. A transport failure yields an *UnavailableError.
// When ctx is done the context error is returned as is and no response
// should be written.
func (f *Forwarder) Forward(ctx context.Context, backend Backend, req Request) (*Response, error) {
	start := time.Now()

	outbound := f.client.R().SetContext(ctx).SetDoNotParseResponse(true)
	outbound.Header = endToEndHeaders(req.Header)
	outbound.Header.Del("Host")
	outbound.Header.Del("Content-Length")
	if hasBody(req.Method) {
		outbound.SetBody(req.Body)
	}

	resp, err := outbound.Execute(req.Method, targetURL(backend, req))
	if err != nil {
		return nil, f.failure(ctx, backend, start, err)
	}

	raw := resp.RawBody()
	defer raw.Close()

	body, err := io.ReadAll(raw)
	if err != nil {
		return nil, f.failure(ctx, backend, start, err)
	}

	f.metrics.ObserveProxy(backend.Name, metrics.OutcomeForwarded, time.Since(start))
	header := endToEndHeaders(resp.Header())
	header.Del("Content-Length")

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     header,
		Body:       body,
	}, nil
}

// failure records a failed backend call and returns the error Forward
// reports for it.
func (f *Forwarder) failure(ctx context.Context, backend Backend, start time.Time, err error) error {
	log := logger.FromContext(ctx)

	if ctxErr := ctx.Err(); ctxErr != nil {
		f.metrics.ObserveProxy(backend.Name, metrics.OutcomeCanceled, time.Since(start))
		log.Debug().Err(ctxErr).Str("backend", backend.Name).Msg("client went away before backend answered")
		return ctxErr
	}

	f.metrics.ObserveProxy(backend.Name, metrics.OutcomeUnavailable, time.Since(start))
	unavailable := &UnavailableError{Backend: backend.Name, Reason: classifyTransportError(err), Err: err}
	log.Warn().Err(err).Str("backend", backend.Name).Str("reason", unavailable.Reason).Msg("backend unavailable")
	return unavailable
}

func targetURL(backend Backend, req Request) string {
	target := backend.BaseURL + "/" + strings.TrimPrefix(req.Path, "/")
	if req.RawQuery != "" {
		target += "?" + req.RawQuery
	}
	return target
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

// endToEndHeaders returns a copy of h without hop-by-hop headers, including
// any listed in its Connection header.
func endToEndHeaders(h http.Header) http.Header {
	out := h.Clone()
	if out == nil {
		return http.Header{}
	}

	for _, value := range h.Values("Connection") {
		for _, name := range strings.Split(value, ",") {
			if name = textproto.TrimString(name); name != "" {
				out.Del(name)
			}
		}
	}
	for _, name := range hopByHopHeaders {
		out.Del(name)
	}

	return out
}

func classifyTransportError(err error) string {
	var dnsErr *net.DNSError
	var netErr net.Error

	switch {
	case errors.As(err, &dnsErr):
		return ReasonHostNotFound
	case errors.Is(err, syscall.ECONNREFUSED):
		return ReasonConnectionRefused
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return ReasonTimeout
	default:
		return ReasonConnectionError
	}
}
