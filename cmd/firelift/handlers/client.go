// Package handlers implements the firelift CLI commands: resolving and
// storing the app configuration and talking to the fireliftd API.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/firelift/firelift/internal/api"
)

// DefaultServerURL is where a locally run fireliftd listens.
const DefaultServerURL = "http://localhost:8080"

// APIClient is a minimal client for the fireliftd HTTP API.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// APIClientOption configures an APIClient.
type APIClientOption func(*APIClient)

// WithHTTPClient overrides the HTTP client, e.g. for tests.
func WithHTTPClient(hc *http.Client) APIClientOption {
	return func(c *APIClient) { c.httpClient = hc }
}

// NewAPIClient creates a client for the server at baseURL.
func NewAPIClient(baseURL string, opts ...APIClientOption) *APIClient {
	c := &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		// Provisioning waits on several long-running platform operations.
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ServerError is a failure reported by fireliftd.
type ServerError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *ServerError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("server error (HTTP %d): %s: %s", e.StatusCode, e.Message, e.Details)
	}
	return fmt.Sprintf("server error (HTTP %d): %s", e.StatusCode, e.Message)
}

// Setup asks the server to provision a fresh project.
func (c *APIClient) Setup(ctx context.Context, req api.SetupRequest) (*api.SetupResponse, error) {
	var resp api.SetupResponse
	if err := c.postJSON(ctx, "/api/setupFirebase", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Verify asks the server to check a candidate configuration.
func (c *APIClient) Verify(ctx context.Context, req api.VerifyRequest) (*api.VerifyResponse, error) {
	var resp api.VerifyResponse
	if err := c.postJSON(ctx, "/api/verifyFirebase", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *APIClient) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr api.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Error == "" {
			return &ServerError{StatusCode: resp.StatusCode, Message: "unexpected response"}
		}
		return &ServerError{
			StatusCode: resp.StatusCode,
			Message:    apiErr.Error,
			Details:    apiErr.Details,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
