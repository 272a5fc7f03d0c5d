// Copyright 2026 Peter Edge
//
// All rights reserved.

package bsreference

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bufdev/bsctl/internal/pkg/backoff"
	"github.com/bufdev/bsctl/internal/pkg/bscalendar"
	"github.com/stretchr/testify/require"
)

var testRetryPolicy = backoff.Policy{
	MaxAttempts:  3,
	InitialDelay: time.Millisecond,
	MaxDelay:     time.Millisecond,
}

func TestGetReferenceData(t *testing.T) {
	t.Parallel()
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Fail the first request to exercise the retry path.
		if requests.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(bscalendar.EmbeddedReferenceData())
	}))
	t.Cleanup(server.Close)

	client := newTestClient(server)
	download, err := client.GetReferenceData(context.Background(), server.URL+"/calendar.json")
	require.NoError(t, err)
	require.Equal(t, int32(2), requests.Load())
	require.Equal(t, server.URL+"/calendar.json", download.URL)
	require.Equal(t, "2025.1", download.ReferenceData.Version)
	require.Equal(t, 2000, download.Table.StartYear())
	require.Equal(t, 2090, download.Table.EndYear())
}

func TestGetReferenceDataNotFound(t *testing.T) {
	t.Parallel()
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	_, err := newTestClient(server).GetReferenceData(context.Background(), server.URL)
	require.Error(t, err)
	// 404 is not retried.
	require.Equal(t, int32(1), requests.Load())
}

func TestGetReferenceDataInvalid(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"version":"1","years":{}}`))
	}))
	t.Cleanup(server.Close)

	_, err := newTestClient(server).GetReferenceData(context.Background(), server.URL)
	require.Error(t, err)
}

func TestGetReferenceDataServerError(t *testing.T) {
	t.Parallel()
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	_, err := newTestClient(server).GetReferenceData(context.Background(), server.URL)
	require.Error(t, err)
	require.Equal(t, int32(testRetryPolicy.MaxAttempts), requests.Load())
}

func newTestClient(server *httptest.Server) Client {
	return NewClient(
		slog.New(slog.DiscardHandler),
		ClientWithHTTPClient(server.Client()),
		ClientWithRetryPolicy(testRetryPolicy),
	)
}
