package httpx_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cczukit/cczukit-go/pkg/httpx"
	"github.com/cczukit/cczukit-go/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestDefaultHeadersStamped(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	client := &http.Client{Transport: httpx.NewTransport(httpx.Options{})}
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, httpx.BrowserHeaders["User-Agent"], got.Get("User-Agent"))
	require.Equal(t, httpx.BrowserHeaders["Accept"], got.Get("Accept"))

	// Request ID is a valid ULID
	_, err = idx.Parse(got.Get(httpx.RequestIDHeader))
	require.NoError(t, err)
}

func TestCallerHeadersWin(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
	}))
	defer srv.Close()

	client := &http.Client{Transport: httpx.NewTransport(httpx.Options{})}
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "custom-agent")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, "custom-agent", got.Get("User-Agent"))
}

func TestOriginalRequestNotMutated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	client := &http.Client{Transport: httpx.NewTransport(httpx.Options{})}
	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	require.Empty(t, req.Header.Get(httpx.RequestIDHeader))
}

func TestRateLimitWaits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	// 10 requests/second, burst 1: the second request must wait ~100ms
	client := &http.Client{Transport: httpx.NewTransport(httpx.Options{
		Limit: httpx.RateLimitConfig{RequestsPerWindow: 10, Window: time.Second, Burst: 1},
	})}

	start := time.Now()
	for range 2 {
		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()
	}
	require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestRateLimitHonorsCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	client := &http.Client{Transport: httpx.NewTransport(httpx.Options{
		Limit: httpx.RateLimitConfig{RequestsPerWindow: 1, Window: time.Hour, Burst: 1},
	})}

	// Drain the bucket
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)
	require.NoError(t, err)

	resp, err = client.Do(req)
	require.Error(t, err)
	require.Nil(t, resp)
}
