package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/prilive-com/tgbot/internal/scrub"
	"github.com/prilive-com/tgbot/tg"
)

const (
	// DefaultBaseURL is the Telegram Bot API endpoint (port 443).
	DefaultBaseURL = "https://api.telegram.org"

	// ContentTypeJSON is sent with every POST body.
	ContentTypeJSON = "application/json;charset=UTF-8"

	maxResponseSize = 10 << 20 // 10MB
)

// Client performs single GET and POST requests against the Bot API.
// It is safe for concurrent use.
type Client struct {
	baseURL         string
	logger          *slog.Logger
	metrics         *Metrics
	secret          tg.SecretToken
	breakerSettings *BreakerSettings
	breaker         *gobreaker.CircuitBreaker[*tg.APIResponse]

	poolConfig PoolConfig
	poolMu     sync.Mutex
	pool       Pool
}

// Option configures the Client.
type Option func(*Client)

// WithPool sets the connection pool. The Client does not create its own.
func WithPool(pool Pool) Option {
	return func(c *Client) {
		c.pool = pool
	}
}

// WithPoolConfig sets the configuration of the default pool.
// Ignored when WithPool is used.
func WithPoolConfig(cfg PoolConfig) Option {
	return func(c *Client) {
		c.poolConfig = cfg
	}
}

// WithBaseURL sets the API base URL (useful for testing and local Bot API servers).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithMetrics records per-method request metrics.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithCircuitBreaker enables a circuit breaker that fails calls fast with
// tg.ErrCircuitOpen after repeated network or parse failures.
func WithCircuitBreaker(settings BreakerSettings) Option {
	return func(c *Client) {
		c.breakerSettings = &settings
	}
}

// WithSecret redacts the given key from returned errors.
func WithSecret(token tg.SecretToken) Option {
	return func(c *Client) {
		c.secret = token
	}
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		poolConfig: DefaultPoolConfig(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	if c.breakerSettings != nil {
		c.breaker = c.newBreaker(*c.breakerSettings)
	}

	return c
}

// BaseURL returns the API base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections held by the pool.
// The Client stays usable; later requests open new connections.
func (c *Client) Close() error {
	c.poolMu.Lock()
	pool := c.pool
	c.poolMu.Unlock()

	if ic, ok := pool.(idleCloser); ok {
		ic.CloseIdleConnections()
	}
	return nil
}

// Get issues a GET request to the full URL and decodes the response envelope.
func (c *Client) Get(ctx context.Context, rawURL string) (*tg.APIResponse, error) {
	return c.execute(ctx, methodName(rawURL), func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
}

// Post marshals body to JSON and POSTs it to BaseURL()+urlPath.
func (c *Client) Post(ctx context.Context, urlPath string, body any) (*tg.APIResponse, error) {
	method := methodName(urlPath)

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("tgbot: %s: failed to marshal request: %w", method, err)
	}

	return c.execute(ctx, method, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+urlPath, bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		// Content-Length is written from ContentLength, in bytes.
		req.ContentLength = int64(len(data))
		req.Header.Set("Content-Type", ContentTypeJSON)
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
}

func (c *Client) execute(ctx context.Context, method string, build func() (*http.Request, error)) (*tg.APIResponse, error) {
	start := time.Now()

	var resp *tg.APIResponse
	var err error
	if c.breaker != nil {
		resp, err = c.breaker.Execute(func() (*tg.APIResponse, error) {
			resp, err := c.do(method, build)
			if err != nil && ctx.Err() != nil {
				return nil, &callerAbort{err: err}
			}
			return resp, err
		})
		var abort *callerAbort
		if errors.As(err, &abort) {
			err = abort.err
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = fmt.Errorf("%w: %w", tg.ErrCircuitOpen, err)
		}
	} else {
		resp, err = c.do(method, build)
	}

	elapsed := time.Since(start)
	c.metrics.observe(method, outcome(resp, err), elapsed)

	if err != nil {
		c.logger.DebugContext(ctx, "telegram request failed",
			"method", method,
			"duration", elapsed,
			"error", err,
		)
		return nil, err
	}

	c.logger.DebugContext(ctx, "telegram request",
		"method", method,
		"ok", resp.OK,
		"error_code", resp.ErrorCode,
		"duration", elapsed,
	)
	return resp, nil
}

func (c *Client) do(method string, build func() (*http.Request, error)) (*tg.APIResponse, error) {
	req, err := build()
	if err != nil {
		return nil, fmt.Errorf("tgbot: %s: failed to create request: %w", method, scrub.TokenFromError(err, c.secret))
	}

	httpResp, err := c.getPool().Do(req)
	if err != nil {
		return nil, &NetworkError{Method: method, Err: scrub.TokenFromError(err, c.secret)}
	}
	defer httpResp.Body.Close()

	// Read maxResponseSize+1 to detect overflow without false positive
	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseSize+1))
	if err != nil {
		return nil, &NetworkError{
			Method: method,
			Err:    fmt.Errorf("failed to read response: %w", scrub.TokenFromError(err, c.secret)),
		}
	}

	if int64(len(body)) > maxResponseSize {
		return nil, &ParseError{Method: method, StatusCode: httpResp.StatusCode, Err: tg.ErrResponseTooLarge}
	}

	var apiResp tg.APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, &ParseError{Method: method, StatusCode: httpResp.StatusCode, Err: err}
	}
	apiResp.Method = method

	return &apiResp, nil
}

// getPool returns the injected pool or creates the default one on first use.
func (c *Client) getPool() Pool {
	c.poolMu.Lock()
	defer c.poolMu.Unlock()
	if c.pool == nil {
		c.pool = NewPool(c.poolConfig)
	}
	return c.pool
}

// methodName extracts the API method (last path segment) from a path or URL.
func methodName(rawURL string) string {
	if i := strings.IndexAny(rawURL, "?#"); i >= 0 {
		rawURL = rawURL[:i]
	}
	return path.Base(rawURL)
}

func outcome(resp *tg.APIResponse, err error) string {
	var netErr *NetworkError
	var parseErr *ParseError
	switch {
	case err == nil && resp.OK:
		return OutcomeOK
	case err == nil:
		return OutcomeAPIError
	case errors.Is(err, tg.ErrCircuitOpen):
		return OutcomeCircuitOpen
	case errors.As(err, &netErr):
		return OutcomeNetworkError
	case errors.As(err, &parseErr):
		return OutcomeParseError
	default:
		return OutcomeError
	}
}
