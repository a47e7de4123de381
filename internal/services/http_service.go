package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"portfolioterm/internal/logger"
)

// DefaultHTTPTimeout bounds every request when no timeout is configured.
const DefaultHTTPTimeout = 30 * time.Second

// HTTPService performs GET requests for JSON documents.
type HTTPService struct {
	initialized bool
	timeout     time.Duration
	client      *http.Client
}

// NewHTTPService creates a new HTTPService with the default timeout.
func NewHTTPService() *HTTPService {
	return &HTTPService{timeout: DefaultHTTPTimeout}
}

// Name returns the service name "http" for registration.
func (h *HTTPService) Name() string {
	return "http"
}

// Initialize sets up the HTTP client.
func (h *HTTPService) Initialize() error {
	if h.client == nil {
		h.client = &http.Client{}
	}
	h.initialized = true
	logger.Debug("HTTPService initialized", "timeout", h.timeout.String())
	return nil
}

// SetTimeout configures the per-request timeout. Non-positive values
// restore the default.
func (h *HTTPService) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	old := h.timeout
	h.timeout = timeout
	logger.Debug("HTTP timeout updated", "old_timeout", old.String(), "new_timeout", timeout.String())
}

// SetClient replaces the underlying client.
func (h *HTTPService) SetClient(client *http.Client) {
	h.client = client
}

// Fetch GETs url and returns the body. Non-2xx responses are errors.
func (h *HTTPService) Fetch(ctx context.Context, url string) ([]byte, error) {
	if !h.initialized {
		return nil, fmt.Errorf("http service not initialized")
	}
	if url == "" {
		return nil, fmt.Errorf("URL is required")
	}

	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	logger.ServiceOperation(h.Name(), "fetch", "url", url)
	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s from %s", resp.Status, url)
	}

	logger.Debug("HTTP request completed", "url", url, "status_code", resp.StatusCode, "body_length", len(body))
	return body, nil
}
