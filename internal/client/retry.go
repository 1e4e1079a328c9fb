package client

import (
	"fmt"
	"time"

	httpclient "github.com/appleboy/go-httpclient"
	retry "github.com/appleboy/go-httpretry"
)

// newRetryClient creates an HTTP client that sends the API key on every request
// and retries network errors and 5xx/429 responses with exponential backoff.
func newRetryClient(
	apiKey, headerName string,
	timeout time.Duration,
	insecureSkipVerify bool,
	maxRetries int,
	retryDelay, maxRetryDelay time.Duration,
) (*retry.Client, error) {
	authMode := httpclient.AuthModeSimple
	if apiKey == "" {
		authMode = httpclient.AuthModeNone
	}

	client, err := httpclient.NewAuthClient(
		authMode,
		apiKey,
		httpclient.WithTimeout(timeout),
		httpclient.WithHeaderName(headerName),
		httpclient.WithInsecureSkipVerify(insecureSkipVerify),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth client: %w", err)
	}

	retryClient, err := retry.NewRealtimeClient(
		retry.WithHTTPClient(client),
		retry.WithMaxRetries(maxRetries),
		retry.WithInitialRetryDelay(retryDelay),
		retry.WithMaxRetryDelay(maxRetryDelay),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create retry client: %w", err)
	}

	return retryClient, nil
}
