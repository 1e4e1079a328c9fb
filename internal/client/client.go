// Package client is a Go client for the token API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-authgate/tokengate/internal/config"

	retry "github.com/appleboy/go-httpretry"
)

// Default client settings
const (
	defaultTimeout       = 10 * time.Second
	defaultMaxRetries    = 3
	defaultRetryDelay    = 500 * time.Millisecond
	defaultMaxRetryDelay = 5 * time.Second
)

var (
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrInvalidResponse = errors.New("invalid response from token API")
)

// APIError is a non-2xx answer from the token API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("token API returned HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("token API returned HTTP %d: %s", e.StatusCode, e.Message)
}

// Token mirrors a token record as returned by the API
type Token struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Scopes    []string  `json:"scopes"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Secret    string    `json:"secret"`
}

// CreateTokenRequest is the body of POST /tokens
type CreateTokenRequest struct {
	UserID           string   `json:"userId"`
	Scopes           []string `json:"scopes"`
	ExpiresInMinutes int      `json:"expiresInMinutes"`
}

type options struct {
	timeout            time.Duration
	insecureSkipVerify bool
	maxRetries         int
	retryDelay         time.Duration
	maxRetryDelay      time.Duration
}

// Option configures a Client
type Option func(*options)

// WithTimeout sets the per-attempt request timeout
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithInsecureSkipVerify disables TLS certificate verification
func WithInsecureSkipVerify(skip bool) Option {
	return func(o *options) {
		o.insecureSkipVerify = skip
	}
}

// WithRetry sets the retry budget and backoff bounds
func WithRetry(maxRetries int, delay, maxDelay time.Duration) Option {
	return func(o *options) {
		if maxRetries >= 0 {
			o.maxRetries = maxRetries
		}
		if delay > 0 {
			o.retryDelay = delay
		}
		if maxDelay > 0 {
			o.maxRetryDelay = maxDelay
		}
	}
}

// Client talks to a token API server
type Client struct {
	baseURL string
	http    *retry.Client
}

// New creates a client for the server at baseURL authenticating with apiKey
func New(baseURL, apiKey string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	o := options{
		timeout:       defaultTimeout,
		maxRetries:    defaultMaxRetries,
		retryDelay:    defaultRetryDelay,
		maxRetryDelay: defaultMaxRetryDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}

	rc, err := newRetryClient(
		apiKey,
		config.APIKeyHeader,
		o.timeout,
		o.insecureSkipVerify,
		o.maxRetries,
		o.retryDelay,
		o.maxRetryDelay,
	)
	if err != nil {
		return nil, err
	}

	return &Client{baseURL: baseURL, http: rc}, nil
}

// CreateToken issues a new token
func (c *Client) CreateToken(ctx context.Context, req CreateTokenRequest) (*Token, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.http.Post(
		ctx,
		c.baseURL+"/tokens",
		retry.WithBody("application/json", bytes.NewBuffer(jsonData)),
	)
	if err != nil {
		return nil, fmt.Errorf("create token request failed: %w", err)
	}
	defer resp.Body.Close()

	var tok Token
	if err := decodeResponse(resp, http.StatusCreated, &tok); err != nil {
		return nil, err
	}
	return &tok, nil
}

// ListTokens returns the unexpired tokens of userID, newest first
func (c *Client) ListTokens(ctx context.Context, userID string) ([]Token, error) {
	endpoint := c.baseURL + "/tokens?" + url.Values{"userId": {userID}}.Encode()

	resp, err := c.http.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("list tokens request failed: %w", err)
	}
	defer resp.Body.Close()

	tokens := []Token{}
	if err := decodeResponse(resp, http.StatusOK, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}

func decodeResponse(resp *http.Response, wantStatus int, out any) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read body: %v", ErrInvalidResponse, err)
	}

	if resp.StatusCode != wantStatus {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &errBody) == nil {
			apiErr.Message = errBody.Error
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}
