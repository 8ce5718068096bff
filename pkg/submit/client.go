// Package submit posts collected survey answers to the remote collector.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// RequestIDHeader carries a per-submission identifier so collector logs
// can be correlated with client logs.
const RequestIDHeader = "X-Request-ID"

// ErrNotOK is matched by every error returned for a non-2xx reply.
var ErrNotOK = errors.New("submit: response not ok")

// StatusError reports a non-2xx reply from the collector.
type StatusError struct {
	StatusCode int
	Status     string
	RequestID  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("submit: unexpected status %s (request %s)", e.Status, e.RequestID)
}

// Unwrap lets errors.Is match ErrNotOK.
func (e *StatusError) Unwrap() error {
	return ErrNotOK
}

// Client sends JSON payloads to a fixed URL.
type Client struct {
	url        string
	httpClient *http.Client
	newID      func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRequestIDFunc overrides how request identifiers are generated.
func WithRequestIDFunc(fn func() string) Option {
	return func(c *Client) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// New returns a Client posting to url.
func New(url string, options ...Option) *Client {
	c := &Client{
		url:        strings.TrimSpace(url),
		httpClient: http.DefaultClient,
		newID:      uuid.NewString,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	return c
}

// URL returns the collector endpoint.
func (c *Client) URL() string {
	return c.url
}

// Send encodes payload as JSON and posts it. The reply body is discarded.
// It returns the request identifier used, also on failure.
func (c *Client) Send(ctx context.Context, payload any) (string, error) {
	requestID := c.newID()
	if c.url == "" {
		return requestID, errors.New("submit: url is required")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return requestID, errors.Wrap(err, "submit: encode payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return requestID, errors.Wrap(err, "submit: build request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return requestID, errors.Wrapf(err, "submit: post %s", c.url)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return requestID, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			RequestID:  requestID,
		}
	}
	return requestID, nil
}
