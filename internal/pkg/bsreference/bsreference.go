// Copyright 2026 Peter Edge
//
// All rights reserved.

// Package bsreference provides a client for downloading Bikram Sambat reference data.
//
// Reference data is a JSON document in the bscalendar.ReferenceData format
// served over HTTP. Transient failures (network errors, 429 and 5xx
// responses) are retried with exponential backoff.
package bsreference

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/bufdev/bsctl/internal/pkg/backoff"
	"github.com/bufdev/bsctl/internal/pkg/bscalendar"
)

// maxResponseBytes caps the size of a reference data response.
const maxResponseBytes = 4 << 20

// Download is a downloaded and validated reference data document.
type Download struct {
	// URL is the URL the data was downloaded from.
	URL string
	// Data is the raw JSON document.
	Data []byte
	// ReferenceData is the parsed document.
	ReferenceData *bscalendar.ReferenceData
	// Table is the validated month-length table.
	Table *bscalendar.Table
}

// Client is the interface for downloading reference data.
type Client interface {
	// GetReferenceData downloads, parses and validates the reference data at the URL.
	GetReferenceData(ctx context.Context, url string) (*Download, error)
}

// ClientOption is a functional option for configuring the Client.
type ClientOption func(*client)

// ClientWithHTTPClient sets the HTTP client to use for requests.
func ClientWithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *client) {
		c.httpClient = httpClient
	}
}

// ClientWithRetryPolicy sets the retry policy for transient failures.
func ClientWithRetryPolicy(policy backoff.Policy) ClientOption {
	return func(c *client) {
		c.retryPolicy = policy
	}
}

// NewClient creates a new reference data client with the given options.
func NewClient(logger *slog.Logger, options ...ClientOption) Client {
	c := &client{
		logger:      logger,
		httpClient:  http.DefaultClient,
		retryPolicy: backoff.DefaultPolicy,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

type client struct {
	logger      *slog.Logger
	httpClient  *http.Client
	retryPolicy backoff.Policy
}

func (c *client) GetReferenceData(ctx context.Context, url string) (*Download, error) {
	data, err := backoff.Retry(
		ctx,
		c.retryPolicy,
		func(ctx context.Context, attempt int) ([]byte, error) {
			if attempt > 0 {
				c.logger.Debug("retrying reference data download", "url", url, "attempt", attempt+1)
			}
			return c.get(ctx, url)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("downloading reference data from %s: %w", url, err)
	}
	referenceData, err := bscalendar.ParseReferenceData(data)
	if err != nil {
		return nil, fmt.Errorf("parsing reference data from %s: %w", url, err)
	}
	table, err := referenceData.Table()
	if err != nil {
		return nil, fmt.Errorf("parsing reference data from %s: %w", url, err)
	}
	c.logger.Debug("reference data downloaded", "url", url, "version", referenceData.Version, "bytes", len(data))
	return &Download{
		URL:           url,
		Data:          data,
		ReferenceData: referenceData,
		Table:         table,
	}, nil
}

// *** PRIVATE ***

// get performs a single GET request. Non-retryable failures are wrapped with backoff.Permanent.
func (c *client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxResponseBytes {
		return nil, backoff.Permanent(fmt.Errorf("response exceeds %d bytes", maxResponseBytes))
	}
	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusTooManyRequests, resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	default:
		return nil, backoff.Permanent(fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body)))
	}
}
