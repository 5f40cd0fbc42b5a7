// Package apiclient is the typed client for the remote business-card REST API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/nfrund/bcard/internal/domain"
	"github.com/nfrund/bcard/internal/metrics"
)

// TokenHeader carries the access token on authenticated requests.
const TokenHeader = "x-auth-token"

const maxErrorBody = 4 << 10

type tokenKey struct{}

// WithToken returns a context whose requests authenticate with token.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFrom returns the token stored by WithToken.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}

// Client talks to the remote REST API. It is safe for concurrent use; the
// per-visitor token travels in the request context.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a Client for baseURL (e.g. https://host/bcard2).
func New(baseURL string, timeout time.Duration) *Client {
	return NewWithHTTPClient(baseURL, &http.Client{Timeout: timeout})
}

// NewWithHTTPClient creates a Client that uses hc for transport.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// call performs one request and returns the status and body of a successful
// (2xx) response. Any other status becomes an *Error.
func (c *Client) call(ctx context.Context, op, method, path string, payload any) (int, []byte, error) {
	start := time.Now()
	status := 0
	defer func() {
		metrics.APIRequestsTotal.WithLabelValues(op, metrics.StatusClass(status)).Inc()
		metrics.APIRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, fmt.Errorf("%s: failed to create request: %w", op, err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token := TokenFrom(ctx); token != "" {
		req.Header.Set(TokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		slog.Debug("remote API request failed", "operation", op, "error", err)
		return 0, nil, fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	slog.Debug("remote API request", "operation", op, "method", method, "path", path, "status", status, "duration", time.Since(start))

	if status < 200 || status > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return status, nil, &Error{Operation: op, StatusCode: status, Message: errorMessage(b)}
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return status, nil, fmt.Errorf("%s: failed to read response: %w", op, err)
	}
	return status, b, nil
}

// callJSON performs a request and decodes a successful response into out.
func (c *Client) callJSON(ctx context.Context, op, method, path string, payload, out any) error {
	_, b, err := c.call(ctx, op, method, path, payload)
	if err != nil {
		return err
	}
	if out == nil || len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", op, err)
	}
	return nil
}
