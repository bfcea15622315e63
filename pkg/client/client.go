// Package client provides the core Scryfall HTTP client with rate
// limiting, circuit breaking, retrying, and error classification.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/reonyanarticle/scryfall-mcp/pkg/logging"
	"github.com/reonyanarticle/scryfall-mcp/pkg/ratelimit"
)

// DefaultBaseURL is the production Scryfall API endpoint.
const DefaultBaseURL = "https://api.scryfall.com"

// MaxPageSize is the upstream contract's page size ceiling. Requests must
// never ask for more items than this.
const MaxPageSize = 175

// Prometheus metrics for Scryfall client operations.
var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scryfall_requests_total",
		Help: "Total Scryfall requests by endpoint and status",
	}, []string{"endpoint", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scryfall_request_duration_seconds",
		Help:    "Scryfall request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scryfall_errors_total",
		Help: "Total Scryfall errors by class",
	}, []string{"class"})
)

// Config holds the client configuration.
type Config struct {
	// BaseURL of the upstream API.
	BaseURL string

	// UserAgent identification header (REQUIRED by Scryfall).
	// Format: "AppName/Version (contact@example.com)"
	UserAgent string

	// Timeout for a single HTTP call.
	Timeout time.Duration

	// Retry policy for transient failures.
	Retry RetryConfig

	// RateInterval is the minimum spacing between upstream requests.
	RateInterval time.Duration

	// BreakerThreshold is the consecutive-failure count opening the circuit.
	BreakerThreshold int

	// BreakerRecovery is the wait before a half-open trial is admitted.
	BreakerRecovery time.Duration
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(userAgent string) Config {
	return Config{
		BaseURL:          DefaultBaseURL,
		UserAgent:        userAgent,
		Timeout:          30 * time.Second,
		Retry:            DefaultRetryConfig(),
		RateInterval:     ratelimit.DefaultInterval,
		BreakerThreshold: ratelimit.DefaultFailureThreshold,
		BreakerRecovery:  ratelimit.DefaultRecoveryTimeout,
	}
}

// Client is the Scryfall API client. All upstream calls pass through the
// circuit breaker gate and the rate limiter, in that order, and report
// their terminal outcome back to the breaker.
type Client struct {
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	breaker    *ratelimit.Breaker
	config     Config
	logger     zerolog.Logger
	sleep      sleepFunc
}

// New creates a Scryfall client.
func New(cfg Config) (*Client, error) {
	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user-agent is required (Scryfall rejects unidentified clients)")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Retry.MaxAttempts <= 0 {
		cfg.Retry = DefaultRetryConfig()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		limiter: ratelimit.NewLimiter(cfg.RateInterval),
		breaker: ratelimit.NewBreaker(cfg.BreakerThreshold, cfg.BreakerRecovery),
		config:  cfg,
		logger:  logging.NewLogger("client"),
		sleep:   defaultSleep,
	}, nil
}

// get performs a GET to endpoint with rate limiting, circuit breaking,
// and retry handling, returning the raw response body.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	startTime := time.Now()
	defer func() {
		requestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	// Gate before any network activity. A rejection here means the
	// upstream is known-unhealthy; no retry, no rate limit slot consumed.
	if err := c.breaker.Allow(); err != nil {
		c.logger.Warn().Str("endpoint", endpoint).Msg("Request rejected, circuit open")
		requestsTotal.WithLabelValues(endpoint, "circuit_open").Inc()
		return nil, err
	}

	var body []byte
	err := retryWithBackoff(ctx, c.config.Retry, c.sleep, c.logger, func() error {
		var attemptErr error
		body, attemptErr = c.doAttempt(ctx, endpoint, params)
		return attemptErr
	})
	if err != nil {
		// A caller abandoning the request says nothing about upstream
		// health; only genuine upstream failures count against the
		// breaker. Abort still frees a half-open trial slot.
		if errors.Is(err, ErrContextCancelled) || ctx.Err() != nil {
			c.breaker.Abort()
			return nil, err
		}
		c.breaker.RecordFailure()
		return nil, err
	}

	c.breaker.RecordSuccess()
	return body, nil
}

// doAttempt performs one rate-limited HTTP attempt.
func (c *Client) doAttempt(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, &APIError{Class: ErrorClassNetwork, Message: "rate limit wait cancelled", Err: err}
	}

	reqURL := c.config.BaseURL + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &APIError{Class: ErrorClassClient, Message: "create request", Err: err}
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("endpoint", endpoint).Msg("Executing Scryfall request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		requestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, &APIError{Class: ErrorClassNetwork, Message: "request failed", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		errorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return nil, &APIError{Class: ErrorClassNetwork, Message: "read response body", Err: err}
	}

	requestsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	apiErr := c.errorFromResponse(resp, body)
	errorsTotal.WithLabelValues(string(apiErr.Class)).Inc()
	c.logger.Warn().
		Str("endpoint", endpoint).
		Int("status", resp.StatusCode).
		Str("error_class", string(apiErr.Class)).
		Msg("Scryfall request error")
	return nil, apiErr
}

// errorFromResponse builds a classified APIError from a non-200 response,
// preferring the Scryfall error object's details over the raw status.
func (c *Client) errorFromResponse(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Class:      classifyStatus(resp.StatusCode),
		Message:    resp.Status,
	}

	var serr scryfallError
	if err := json.Unmarshal(body, &serr); err == nil && serr.Object == "error" && serr.Details != "" {
		apiErr.Message = serr.Details
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		if hint := resp.Header.Get("Retry-After"); hint != "" {
			if seconds, err := strconv.Atoi(hint); err == nil && seconds > 0 {
				apiErr.RetryAfter = time.Duration(seconds) * time.Second
			}
		}
	}

	return apiErr
}

// SearchOptions tunes a card search request.
type SearchOptions struct {
	// Unique is the strategy for omitting similar cards (default "cards").
	Unique string

	// Order is the sort field (default "name").
	Order string

	// IncludeMultilingual includes non-English printings.
	IncludeMultilingual bool

	// IncludeExtras includes tokens, emblems and the like.
	IncludeExtras bool

	// Page is the result page to fetch (1-based).
	Page int
}

// SearchCardsRaw searches for cards and returns the raw response payload.
// The pipeline caches this blob as-is, so fields beyond the mapped models
// survive a cache round-trip.
func (c *Client) SearchCardsRaw(ctx context.Context, query string, opts SearchOptions) ([]byte, error) {
	if opts.Unique == "" {
		opts.Unique = "cards"
	}
	if opts.Order == "" {
		opts.Order = "name"
	}
	if opts.Page <= 0 {
		opts.Page = 1
	}

	params := url.Values{
		"q":      {query},
		"unique": {opts.Unique},
		"order":  {opts.Order},
		"page":   {strconv.Itoa(opts.Page)},
	}
	if opts.IncludeMultilingual {
		params.Set("include_multilingual", "true")
	}
	if opts.IncludeExtras {
		params.Set("include_extras", "true")
	}

	return c.get(ctx, "/cards/search", params)
}

// SearchCards searches for cards matching a Scryfall query string.
func (c *Client) SearchCards(ctx context.Context, query string, opts SearchOptions) (*SearchResult, error) {
	body, err := c.SearchCardsRaw(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	var result SearchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode search result: %w", err)
	}
	return &result, nil
}

// AutocompleteRaw returns the raw autocomplete catalog payload.
func (c *Client) AutocompleteRaw(ctx context.Context, prefix string) ([]byte, error) {
	return c.get(ctx, "/cards/autocomplete", url.Values{"q": {prefix}})
}

// Autocomplete returns card name completions for a prefix.
func (c *Client) Autocomplete(ctx context.Context, prefix string) ([]string, error) {
	body, err := c.AutocompleteRaw(ctx, prefix)
	if err != nil {
		return nil, err
	}

	var catalog Catalog
	if err := json.Unmarshal(body, &catalog); err != nil {
		return nil, fmt.Errorf("decode autocomplete catalog: %w", err)
	}
	return catalog.Data, nil
}

// GetCardByName fetches a single card by name, fuzzy or exact.
func (c *Client) GetCardByName(ctx context.Context, name string, fuzzy bool) (*Card, error) {
	params := url.Values{}
	if fuzzy {
		params.Set("fuzzy", name)
	} else {
		params.Set("exact", name)
	}

	body, err := c.get(ctx, "/cards/named", params)
	if err != nil {
		return nil, err
	}

	var card Card
	if err := json.Unmarshal(body, &card); err != nil {
		return nil, fmt.Errorf("decode card: %w", err)
	}
	return &card, nil
}

// GetRandomCard fetches a random card, optionally filtered by a query.
func (c *Client) GetRandomCard(ctx context.Context, query string) (*Card, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}

	body, err := c.get(ctx, "/cards/random", params)
	if err != nil {
		return nil, err
	}

	var card Card
	if err := json.Unmarshal(body, &card); err != nil {
		return nil, fmt.Errorf("decode card: %w", err)
	}
	return &card, nil
}

// BreakerState returns the circuit breaker state (for observability and tests).
func (c *Client) BreakerState() ratelimit.State {
	return c.breaker.State()
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}
