// Package remote talks to the study planner REST API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"tau/internal/domain/sync"
)

const (
	defaultTimeout = 15 * time.Second
	userAgent      = "tau-client/1.0"
	requestIDKey   = "X-Request-ID"
)

type Client struct {
	client  *http.Client
	log     *slog.Logger
	baseURL string
	timeout time.Duration
}

type Option func(*Client)

// WithHTTPClient replaces the underlying transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithTimeout bounds each request. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func New(baseURL string, log *slog.Logger, opts ...Option) *Client {
	c := &Client{
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		log:     log.With("component", "remote_client"),
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// call sends body as JSON and decodes a successful response into result.
func (c *Client) call(ctx context.Context, method, path string, body, result any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestID := uuid.NewString()
	resp, err := c.doRequest(ctx, method, path, requestID, body)
	if err != nil {
		c.log.Warn("failed to reach server",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %w", sync.ErrTransport, err)
	}

	if err := c.parseResponse(resp, result); err != nil {
		c.log.Warn("request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return err
	}
	return nil
}

func (c *Client) doRequest(ctx context.Context, method, path, requestID string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(requestIDKey, requestID)

	c.log.Debug("sending request",
		"method", method,
		"url", req.URL.String(),
		"request_id", requestID,
	)

	return c.client.Do(req)
}

func (c *Client) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %w", sync.ErrTransport, err)
	}

	c.log.Debug("response received",
		"status", resp.StatusCode,
		"bytes", len(body),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &sync.StatusError{Code: resp.StatusCode, Message: errorMessage(body)}
	}

	if result == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage picks the first human readable field of an error body.
func errorMessage(body []byte) string {
	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return strings.TrimSpace(string(body))
	}
	for _, m := range []string{errResp.Error, errResp.Message, errResp.Detail, errResp.Title} {
		if m != "" {
			return m
		}
	}
	return ""
}
