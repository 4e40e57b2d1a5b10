package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/go-querystring/query"
	"github.com/google/uuid"

	"github.com/imamik/ymir/internal/util/retry"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://ymirapp.com/api"

var _ Client = (*HTTPClient)(nil)

// HTTPClient implements Client against the Ymir HTTP API.
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     logr.Logger
	userAgent  string
	retry      retry.Policy
}

// ClientOption configures an HTTPClient.
type ClientOption func(*HTTPClient)

// WithToken sets the bearer token used to authenticate requests.
func WithToken(token string) ClientOption {
	return func(c *HTTPClient) {
		c.token = token
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient = hc
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *HTTPClient) {
		c.httpClient = &http.Client{Timeout: timeout}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger logr.Logger) ClientOption {
	return func(c *HTTPClient) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *HTTPClient) {
		c.userAgent = userAgent
	}
}

// WithRetryPolicy sets how GET requests are retried on transient failures.
func WithRetryPolicy(p retry.Policy) ClientOption {
	return func(c *HTTPClient) {
		c.retry = p
	}
}

// NewHTTPClient creates a new HTTPClient with optional configuration.
func NewHTTPClient(baseURL string, opts ...ClientOption) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logr.Discard(),
		userAgent:  "ymir-cli",
		retry:      retry.DefaultPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// HasToken reports whether the client has credentials.
func (c *HTTPClient) HasToken() bool {
	return c.token != ""
}

// get is retried on transient failures. Mutations are never retried.
func (c *HTTPClient) get(ctx context.Context, path string, params any, out any) error {
	return retry.Do(ctx, c.retry, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, params, nil, out)
		if err != nil && !transient(err) {
			return retry.Permanent(err)
		}
		return err
	})
}

func (c *HTTPClient) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

// do sends a request and decodes a JSON response into out when out is non-nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, params any, body any, out any) error {
	endpoint := c.baseURL + path
	if params != nil {
		values, err := query.Values(params)
		if err != nil {
			return fmt.Errorf("failed to encode query parameters: %w", err)
		}
		if encoded := values.Encode(); encoded != "" {
			endpoint += "?" + encoded
		}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.V(1).Info("api request", "method", method, "path", path, "status", resp.StatusCode,
		"requestID", requestID, "duration", time.Since(start).Round(time.Millisecond).String())

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}

// transient reports whether a failed request may succeed when sent again:
// throttling, server errors and network failures.
func transient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= http.StatusInternalServerError
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// decodeError maps an error response body onto *Error.
func decodeError(status int, data []byte) error {
	apiErr := &Error{StatusCode: status}

	var payload struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		apiErr.Message = payload.Message
		apiErr.Errors = payload.Errors
	}

	return apiErr
}
