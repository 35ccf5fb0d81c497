package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wheelx-mcp/pkg/types"
)

// DefaultBaseURL is the production WheelX API host.
const DefaultBaseURL = "https://wheelx.fi"

const (
	defaultTimeout      = 30 * time.Second
	defaultProbeTimeout = 5 * time.Second
)

// Service health values reported by Ping.
const (
	StatusOperational = "operational"
	StatusDegraded    = "degraded"
	StatusUnavailable = "unavailable"
)

// WheelXClient talks to the WheelX quote and order-status API
type WheelXClient struct {
	baseURL      string
	client       *http.Client
	probeTimeout time.Duration
}

// Option customizes a WheelXClient
type Option func(*WheelXClient)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *WheelXClient) { c.client = hc }
}

// WithTimeout overrides the default 30s request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *WheelXClient) { c.client.Timeout = d }
}

// WithProbeTimeout overrides the 5s liveness probe timeout
func WithProbeTimeout(d time.Duration) Option {
	return func(c *WheelXClient) { c.probeTimeout = d }
}

// New creates a WheelX API client. An empty baseURL selects the
// production host.
func New(baseURL string, opts ...Option) *WheelXClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &WheelXClient{
		baseURL:      baseURL,
		client:       &http.Client{Timeout: defaultTimeout},
		probeTimeout: defaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API host
func (c *WheelXClient) BaseURL() string { return c.baseURL }

func validateQuoteRequest(req types.QuoteRequest) error {
	if req.FromToken == "" {
		return &ValidationError{Field: "from_token", Reason: "must not be empty"}
	}
	if req.ToToken == "" {
		return &ValidationError{Field: "to_token", Reason: "must not be empty"}
	}
	if req.FromAddress == "" {
		return &ValidationError{Field: "from_address", Reason: "must not be empty"}
	}
	if req.ToAddress == "" {
		return &ValidationError{Field: "to_address", Reason: "must not be empty"}
	}
	if req.Amount == 0 {
		return &ValidationError{Field: "amount", Reason: "must be greater than zero"}
	}
	if req.Slippage != nil && *req.Slippage < 0 {
		return &ValidationError{Field: "slippage", Reason: "must not be negative"}
	}
	return nil
}

// GetQuote requests a swap/bridge quote. The slippage key is omitted
// from the payload when req.Slippage is nil.
func (c *WheelXClient) GetQuote(ctx context.Context, req types.QuoteRequest) (*types.QuoteResponse, error) {
	if err := validateQuoteRequest(req); err != nil {
		return nil, err
	}

	url := c.baseURL + "/v1/quote"

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var quote types.QuoteResponse
	if err := json.Unmarshal(respBody, &quote); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &quote, nil
}

// GetOrderStatus looks up an order by the request ID of a previously
// issued quote. Unknown ids surface as an HTTPStatusError from the
// provider.
func (c *WheelXClient) GetOrderStatus(ctx context.Context, requestID string) (*types.OrderStatus, error) {
	if requestID == "" {
		return nil, &ValidationError{Field: "request_id", Reason: "must not be empty"}
	}

	url := c.baseURL + "/v1/order/" + requestID

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	respBody, err := c.do(httpReq)
	if err != nil {
		return nil, err
	}

	var order types.OrderStatus
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &order, nil
}

// Ping probes the provider's web root with a short bounded timeout and
// maps the outcome onto a health string. It never returns an error.
func (c *WheelXClient) Ping(ctx context.Context) string {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return StatusUnavailable
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return StatusUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return StatusOperational
	}
	return StatusDegraded
}

// do executes a request and returns the body of a 2xx response. Non-2xx
// statuses become HTTPStatusError; network failures become
// TransportError.
func (c *WheelXClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &TransportError{Op: req.Method, URL: req.URL.String(), Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: req.Method, URL: req.URL.String(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPStatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(respBody),
		}
	}

	return respBody, nil
}
