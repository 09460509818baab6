// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

// Package strapi is a typed HTTP client for the headless CMS REST API.
// It covers the public content surface (collection and single-type
// endpoints with locale, population, sort, pagination and filter
// parameters) and the bootstrap-only surfaces: locale plugin,
// users-permissions, media upload and first-admin registration.
package strapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Client configuration constants
const (
	RequestTimeout = 30 * time.Second // HTTP request timeout
	MaxErrorLen    = 4 * 1024         // Maximum error response body to read (4KB)
	UserAgent      = "sitekit/1.0"    // User-Agent header value
)

// defaultHTTPClient is the shared HTTP client with appropriate timeouts.
var defaultHTTPClient = &http.Client{
	Timeout: RequestTimeout,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	},
}

// Client issues authenticated requests against the CMS REST API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (used in tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a CMS client for the given base URL. The bearer token is
// optional; when empty the Authorization header is omitted.
func New(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		token:   token,
		http:    defaultHTTPClient,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured CMS base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs one HTTP request and returns the raw response. Non-2xx
// statuses are mapped to *APIError; the body is drained and closed in
// that case.
func (c *Client) do(ctx context.Context, method, path, rawQuery string, body io.Reader) (*http.Response, error) {
	u := c.baseURL + path
	if rawQuery != "" {
		u += "?" + rawQuery
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", UserAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode)}
		// Drain a bounded amount so the connection can be reused
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, MaxErrorLen))
		_ = resp.Body.Close()
		c.logger.Debug("cms request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"body", string(detail))
		return nil, apiErr
	}

	return resp, nil
}

// doJSON performs a request and decodes the response body into out.
func (c *Client) doJSON(ctx context.Context, method, path, rawQuery string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		buf, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding payload: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	resp, err := c.do(ctx, method, path, rawQuery, body)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}

// writeEnvelope is the {"data": ...} wrapper expected by CMS write endpoints.
type writeEnvelope struct {
	Data any `json:"data"`
}

// Find fetches a collection endpoint, e.g. Find[Community](ctx, c, "communities", q).
func Find[T any](ctx context.Context, c *Client, plural string, q *Query) (*Response[T], error) {
	var out Response[T]
	if err := c.doJSON(ctx, http.MethodGet, "/api/"+plural, q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindSingle fetches a single-type endpoint, e.g. FindSingle[Setting](ctx, c, "setting", q).
func FindSingle[T any](ctx context.Context, c *Client, name string, q *Query) (*SingleResponse[T], error) {
	var out SingleResponse[T]
	if err := c.doJSON(ctx, http.MethodGet, "/api/"+name, q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts a new record to a collection endpoint and returns the
// created record, including its logical documentId.
func Create[T any](ctx context.Context, c *Client, plural string, q *Query, data any) (*SingleResponse[T], error) {
	var out SingleResponse[T]
	if err := c.doJSON(ctx, http.MethodPost, "/api/"+plural, q.Encode(), writeEnvelope{Data: data}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update issues a PUT against a collection record identified by its
// documentId. With a locale query parameter this attaches (or replaces)
// that locale's variant of the logical document.
func Update[T any](ctx context.Context, c *Client, plural, documentID string, q *Query, data any) (*SingleResponse[T], error) {
	var out SingleResponse[T]
	path := "/api/" + plural + "/" + documentID
	if err := c.doJSON(ctx, http.MethodPut, path, q.Encode(), writeEnvelope{Data: data}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSingle issues a PUT against a single-type endpoint (no pluralization,
// no documentId in the path).
func UpdateSingle[T any](ctx context.Context, c *Client, name string, q *Query, data any) (*SingleResponse[T], error) {
	var out SingleResponse[T]
	if err := c.doJSON(ctx, http.MethodPut, "/api/"+name, q.Encode(), writeEnvelope{Data: data}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
