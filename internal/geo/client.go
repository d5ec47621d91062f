package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/evyataryagoni/iptracker/internal/logger"
	"github.com/evyataryagoni/iptracker/internal/metrics"
	"github.com/evyataryagoni/iptracker/internal/models"
)

// API docs: https://geo.ipify.org/docs
// Sample request: https://geo.ipify.org/api/v2/country,city?apiKey=KEY&ipAddress=8.8.8.8
const DefaultBaseURL = "https://geo.ipify.org/api/v2/country,city"

// Mode selects the request variant of a lookup
type Mode int

const (
	// Bare resolves the caller's own public address
	Bare Mode = iota
	// ByIP resolves the given IP address
	ByIP
	// ByDomain resolves the given domain name
	ByDomain
	// Mock returns DefaultRecord without touching the network
	Mock
)

func (m Mode) String() string {
	switch m {
	case Bare:
		return "bare"
	case ByIP:
		return "ip"
	case ByDomain:
		return "domain"
	case Mock:
		return "mock"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

var (
	// ErrNetwork wraps transport level failures (DNS, connectivity, timeouts)
	// and success bodies that could not be decoded
	ErrNetwork = errors.New("network error or service unavailable")

	// ErrIncomplete means the provider answered without a usable coordinate pair
	ErrIncomplete = errors.New("location data unavailable for this address")
)

// HTTPError is returned for non-2xx provider responses
type HTTPError struct {
	StatusCode int
	Message    string // provider message, empty when the body had none
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error, status %d", e.StatusCode)
}

// Client talks to the remote geolocation provider.
// One GET per lookup; no retry, no backoff and no timeout beyond the
// http.Client defaults.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithBaseURL points the client at another endpoint
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a lookup client. m and log may be nil.
func NewClient(apiKey string, m *metrics.Metrics, log *logger.Logger, opts ...Option) *Client {
	if log == nil {
		log = logger.NewDefault()
	}

	c := &Client{
		httpClient: &http.Client{},
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		metrics:    m,
		logger:     log.WithComponent("GeoClient"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup resolves value according to mode.
// value is ignored for Bare and Mock.
func (c *Client) Lookup(ctx context.Context, mode Mode, value string) (models.LocationRecord, error) {
	start := time.Now()

	record, err := c.lookup(ctx, mode, value)

	if c.metrics != nil {
		c.metrics.LookupDuration.WithLabelValues(mode.String()).Observe(time.Since(start).Seconds())
		c.metrics.LookupsTotal.WithLabelValues(mode.String(), resultLabel(err)).Inc()
	}
	return record, err
}

func (c *Client) lookup(ctx context.Context, mode Mode, value string) (models.LocationRecord, error) {
	if mode == Mock {
		c.logger.Debug().Msg("Returning sample record")
		return models.DefaultRecord(), nil
	}

	reqURL, err := c.buildURL(mode, value)
	if err != nil {
		return models.LocationRecord{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return models.LocationRecord{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.LocationRecord{}, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.LocationRecord{}, decodeHTTPError(resp)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.LocationRecord{}, fmt.Errorf("%w: failed to decode response: %v", ErrNetwork, err)
	}

	return body.record()
}

// buildURL adds apiKey and, depending on mode, ipAddress or domain
func (c *Client) buildURL(mode Mode, value string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("apiKey", c.apiKey)
	switch mode {
	case Bare:
	case ByIP:
		q.Set("ipAddress", value)
	case ByDomain:
		q.Set("domain", value)
	default:
		return "", fmt.Errorf("unsupported lookup mode: %s", mode)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// decodeHTTPError prefers the provider's message and falls back to the status code
func decodeHTTPError(resp *http.Response) error {
	httpErr := &HTTPError{StatusCode: resp.StatusCode}

	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Messages != nil {
		httpErr.Message = *body.Messages
	}
	return httpErr
}

func resultLabel(err error) string {
	var httpErr *HTTPError
	switch {
	case err == nil:
		return "success"
	case errors.As(err, &httpErr):
		return "http_error"
	case errors.Is(err, ErrIncomplete):
		return "incomplete"
	default:
		return "network_error"
	}
}
