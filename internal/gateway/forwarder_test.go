// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package gateway

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/MKhiriev/go-micro-commerce/internal/logger"
	"github.com/MKhiriev/go-micro-commerce/internal/metrics"
	"github.com/MKhiriev/go-micro-commerce/models"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestForwarder(timeout time.Duration) (*Forwarder, *metrics.Metrics) {
	m := metrics.New("api-gateway", models.AppBuildInfo{})
	return NewForwarder(timeout, m, logger.Nop()), m
}

func userBackend(baseURL string) Backend {
	return Backend{Name: "User", Prefix: "/users", BaseURL: baseURL}
}

// ── Forward ─────────────────────────────────────────────────────────────────

func TestForward_EchoesBodyAndStatus(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/echo", r.URL.Path)
		assert.Equal(t, "a=1&b=two&a=3", r.URL.RawQuery)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Backend", "user")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write(body)
	}))
	defer backend.Close()

	f, m := newTestForwarder(time.Second)
	resp, err := f.Forward(context.Background(), userBackend(backend.URL), Request{
		Method:   http.MethodPost,
		Path:     "echo",
		RawQuery: "a=1&b=two&a=3",
		Header: http.Header{
			"Content-Type":  {"application/json"},
			"Authorization": {"Bearer tok"},
		},
		Body: []byte(`{"x":1}`),
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.JSONEq(t, `{"x":1}`, string(resp.Body))
	assert.Equal(t, "user", resp.Header.Get("X-Backend"))
	assert.Empty(t, resp.Header.Get("Content-Length"))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProxyRequestsTotal.WithLabelValues("User", metrics.OutcomeForwarded)))
}

func TestForward_BackendErrorStatusIsRelayed(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("WWW-Authenticate", "Bearer")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"could not validate credentials"}`))
	}))
	defer backend.Close()

	f, _ := newTestForwarder(time.Second)
	resp, err := f.Forward(context.Background(), userBackend(backend.URL), Request{Method: http.MethodGet, Path: "/me"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"detail":"could not validate credentials"}`, string(resp.Body))
}

func TestForward_DropsHopByHopHeaders(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Keep-Alive"))
		assert.Empty(t, r.Header.Get("X-Conn-Scoped"))
		assert.Empty(t, r.Header.Get("Proxy-Authorization"))
		assert.Equal(t, "kept", r.Header.Get("X-End-To-End"))
		assert.Equal(t, "127.0.0.1", hostOnly(r.Host))

		w.Header().Set("Keep-Alive", "timeout=5")
		w.Header().Set("X-Reply", "yes")
	}))
	defer backend.Close()

	f, _ := newTestForwarder(time.Second)
	resp, err := f.Forward(context.Background(), userBackend(backend.URL), Request{
		Method: http.MethodGet,
		Path:   "/",
		Header: http.Header{
			"Host":                {"gateway.example"},
			"Connection":          {"X-Conn-Scoped"},
			"X-Conn-Scoped":       {"secret"},
			"Keep-Alive":          {"timeout=5"},
			"Proxy-Authorization": {"Basic abc"},
			"X-End-To-End":        {"kept"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Keep-Alive"))
	assert.Equal(t, "yes", resp.Header.Get("X-Reply"))
}

// newGZipBackend answers {"x":1}, compressed when the request accepts gzip.
func newGZipBackend(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			_, _ = w.Write([]byte(`{"x":1}`))
			return
		}

		w.Header().Set("Content-Encoding", "gzip")
		zw := gzip.NewWriter(w)
		_, _ = zw.Write([]byte(`{"x":1}`))
		_ = zw.Close()
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestForward_CompressedBodyIsRelayedAsSent(t *testing.T) {
	backend := newGZipBackend(t)

	f, _ := newTestForwarder(time.Second)
	resp, err := f.Forward(context.Background(), userBackend(backend.URL), Request{
		Method: http.MethodGet,
		Path:   "/me",
		Header: http.Header{"Accept-Encoding": {"gzip"}},
	})
	require.NoError(t, err)

	assert.Equal(t, "gzip", resp.Header.Get("Content-Encoding"))

	zr, err := gzip.NewReader(bytes.NewReader(resp.Body))
	require.NoError(t, err)
	plain, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1}`, string(plain))
}

func TestForward_PlainBodyWhenClientDoesNotAcceptGZip(t *testing.T) {
	backend := newGZipBackend(t)

	f, _ := newTestForwarder(time.Second)
	resp, err := f.Forward(context.Background(), userBackend(backend.URL), Request{Method: http.MethodGet, Path: "/me"})
	require.NoError(t, err)

	assert.Empty(t, resp.Header.Get("Content-Encoding"))
	assert.JSONEq(t, `{"x":1}`, string(resp.Body))
}

func TestForward_BodyOnlyForWriteMethods(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodDelete, http.MethodPut, http.MethodPatch, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, method, r.Method)
				body, _ := io.ReadAll(r.Body)
				_, _ = w.Write([]byte(fmt.Sprintf("%d", len(body))))
			}))
			defer backend.Close()

			f, _ := newTestForwarder(time.Second)
			resp, err := f.Forward(context.Background(), userBackend(backend.URL), Request{
				Method: method,
				Path:   "/items/1",
				Body:   []byte("payload"),
			})
			require.NoError(t, err)

			want := "0"
			if hasBody(method) {
				want = "7"
			}
			assert.Equal(t, want, string(resp.Body))
		})
	}
}

func TestForward_RedirectIsNotFollowed(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/old" {
			http.Redirect(w, r, "/new", http.StatusFound)
			return
		}
		t.Errorf("redirect was followed to %s", r.URL.Path)
	}))
	defer backend.Close()

	f, _ := newTestForwarder(time.Second)
	resp, err := f.Forward(context.Background(), userBackend(backend.URL), Request{Method: http.MethodGet, Path: "old"})
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/new", resp.Header.Get("Location"))
}

func TestForward_UnreachableBackend(t *testing.T) {
	backend := httptest.NewServer(http.NotFoundHandler())
	baseURL := backend.URL
	backend.Close()

	f, m := newTestForwarder(time.Second)
	resp, err := f.Forward(context.Background(), userBackend(baseURL), Request{Method: http.MethodGet, Path: "/me"})
	require.Nil(t, resp)
	require.ErrorIs(t, err, ErrBackendUnavailable)

	var unavailable *UnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, ReasonConnectionRefused, unavailable.Reason)
	assert.Equal(t, "User service unavailable: connection refused", err.Error())
	assert.NotContains(t, err.Error(), baseURL)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProxyRequestsTotal.WithLabelValues("User", metrics.OutcomeUnavailable)))
}

func TestForward_Timeout(t *testing.T) {
	release := make(chan struct{})
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer backend.Close()
	defer close(release)

	f, _ := newTestForwarder(50 * time.Millisecond)
	_, err := f.Forward(context.Background(), userBackend(backend.URL), Request{Method: http.MethodGet, Path: "/slow"})

	var unavailable *UnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Equal(t, ReasonTimeout, unavailable.Reason)
}

func TestForward_ClientCanceled(t *testing.T) {
	started := make(chan struct{})
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-r.Context().Done()
	}))
	defer backend.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()

	f, m := newTestForwarder(5 * time.Second)
	_, err := f.Forward(ctx, userBackend(backend.URL), Request{Method: http.MethodGet, Path: "/slow"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrBackendUnavailable)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProxyRequestsTotal.WithLabelValues("User", metrics.OutcomeCanceled)))
}

// ── helpers ─────────────────────────────────────────────────────────────────

func TestClassifyTransportError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "dns", err: &net.DNSError{Err: "no such host", Name: "user-service", IsNotFound: true}, want: ReasonHostNotFound},
		{name: "refused", err: &net.OpError{Op: "dial", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}, want: ReasonConnectionRefused},
		{name: "deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: ReasonTimeout},
		{name: "reset", err: &net.OpError{Op: "read", Err: os.NewSyscallError("read", syscall.ECONNRESET)}, want: ReasonConnectionError},
		{name: "other", err: io.ErrUnexpectedEOF, want: ReasonConnectionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyTransportError(tt.err))
		})
	}
}

func TestTargetURL(t *testing.T) {
	b := Backend{BaseURL: "http://user-service:8000"}

	assert.Equal(t, "http://user-service:8000/me", targetURL(b, Request{Path: "/me"}))
	assert.Equal(t, "http://user-service:8000/me", targetURL(b, Request{Path: "me"}))
	assert.Equal(t, "http://user-service:8000/", targetURL(b, Request{}))
	assert.Equal(t, "http://user-service:8000/a/b?x=1", targetURL(b, Request{Path: "a/b", RawQuery: "x=1"}))
}

func hostOnly(hostport string) string {
	host, _, err := net.SplitHostPort(hostport)
	if err != nil {
		return hostport
	}
	return host
}
