// Package client implements the REST boundary to the remote sales API.
//
// Failure normalization happens here and nowhere else: transport errors
// and unexpected HTTP statuses collapse into nil (queries) or false
// (mutations). Callers never learn which of the two happened.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/apexsales/admin-console/internal/metrics"
)

const apiPrefix = "/api/v1"

// Client talks to the remote API. One instance is shared process-wide.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New creates a Client rooted at baseURL. Every request is bounded by
// timeout; there is no retry policy (failed mutations are never retried
// automatically).
func New(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// envelope is the response wrapper every list/query endpoint uses:
// {"response": {"data": [...]}}.
type envelope struct {
	Response struct {
		Data json.RawMessage `json:"data"`
	} `json:"response"`
}

// do issues one request and returns the raw body together with the HTTP
// status. A transport failure reports status 0. The body is always fully
// read so the connection can be reused.
func (c *Client) do(ctx context.Context, token, method, path string, payload any) ([]byte, int) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, 0
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, body)
	if err != nil {
		return nil, 0
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().
			Str("request_id", requestID).
			Str("method", method).
			Str("path", path).
			Err(err).
			Msg("api request failed")
		return nil, 0
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0
	}

	c.log.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	return raw, resp.StatusCode
}

// list fetches path and decodes the envelope data as a slice of T.
// Any failure yields nil.
func list[T any](c *Client, ctx context.Context, token, path, endpoint string) []T {
	raw, status := c.do(ctx, token, http.MethodGet, path, nil)
	if status != http.StatusOK {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "failed").Inc()
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "failed").Inc()
		return nil
	}
	var out []T
	if err := json.Unmarshal(env.Response.Data, &out); err != nil {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "failed").Inc()
		return nil
	}

	metrics.APIRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	return out
}

// first fetches path and returns the first element of the envelope data,
// the shape single-record endpoints use. Any failure yields nil.
func first[T any](c *Client, ctx context.Context, token, path, endpoint string) *T {
	rows := list[T](c, ctx, token, path, endpoint)
	if len(rows) == 0 {
		return nil
	}
	return &rows[0]
}

// mutate issues a state-changing request and reports whether the server
// answered with want (201 for creates, 200 otherwise).
func (c *Client) mutate(ctx context.Context, token, method, path string, payload any, want int, endpoint string) bool {
	_, status := c.do(ctx, token, method, path, payload)
	if status != want {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "failed").Inc()
		return false
	}
	metrics.APIRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	return true
}

// raw fetches a server-assembled export payload. Any failure yields nil.
func (c *Client) raw(ctx context.Context, token, path, endpoint string) []byte {
	body, status := c.do(ctx, token, http.MethodGet, path, nil)
	if status != http.StatusOK {
		metrics.APIRequestsTotal.WithLabelValues(endpoint, "failed").Inc()
		return nil
	}
	metrics.APIRequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	return body
}
