package tgbot

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/prilive-com/tgbot/internal/scrub"
	"github.com/prilive-com/tgbot/tg"
	"github.com/prilive-com/tgbot/transport"
)

// Transport performs the HTTP requests of a Bot.
// *transport.Client is the default implementation.
type Transport interface {
	Get(ctx context.Context, rawURL string) (*tg.APIResponse, error)
	Post(ctx context.Context, urlPath string, body any) (*tg.APIResponse, error)
	BaseURL() string
}

var _ Transport = (*transport.Client)(nil)

// Bot is a Telegram Bot API client bound to one API key.
// It is safe for concurrent use.
type Bot struct {
	apiKey        tg.SecretToken
	username      string
	transport     Transport
	logger        *slog.Logger
	ownsTransport bool
}

type config struct {
	transport  Transport
	baseURL    string
	pool       transport.Pool
	poolConfig transport.PoolConfig
	breaker    *transport.BreakerSettings
	metrics    *transport.Metrics
	logger     *slog.Logger
}

// Option configures the Bot.
type Option func(*config)

// WithTransport replaces the HTTP transport. Transport options
// (WithBaseURL, WithPool, WithTimeout, WithMetrics, WithCircuitBreaker)
// are then ignored.
func WithTransport(t Transport) Option {
	return func(c *config) {
		c.transport = t
	}
}

// WithBaseURL sets the API base URL (useful for testing and local Bot API servers).
func WithBaseURL(url string) Option {
	return func(c *config) {
		c.baseURL = url
	}
}

// WithPool injects the connection pool, e.g. a shared *http.Client.
func WithPool(pool transport.Pool) Option {
	return func(c *config) {
		c.pool = pool
	}
}

// WithTimeout bounds each request of the default pool. 0 disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.poolConfig.RequestTimeout = d
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithMetrics records per-method request metrics.
func WithMetrics(m *transport.Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithCircuitBreaker enables the transport circuit breaker.
func WithCircuitBreaker(settings transport.BreakerSettings) Option {
	return func(c *config) {
		c.breaker = &settings
	}
}

// New creates a Bot. apiKey is embedded verbatim in every request path.
// username is informational only.
func New(apiKey, username string, opts ...Option) (*Bot, error) {
	if apiKey == "" {
		return nil, tg.NewConfigError("api_key", "api key is required")
	}

	cfg := config{
		baseURL:    transport.DefaultBaseURL,
		poolConfig: transport.DefaultPoolConfig(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	secret := tg.SecretToken(apiKey)
	b := &Bot{
		apiKey:    secret,
		username:  username,
		transport: cfg.transport,
		logger:    cfg.logger,
	}

	if b.transport == nil {
		topts := []transport.Option{
			transport.WithBaseURL(cfg.baseURL),
			transport.WithPoolConfig(cfg.poolConfig),
			transport.WithLogger(cfg.logger),
			transport.WithSecret(secret),
		}
		if cfg.pool != nil {
			topts = append(topts, transport.WithPool(cfg.pool))
		}
		if cfg.metrics != nil {
			topts = append(topts, transport.WithMetrics(cfg.metrics))
		}
		if cfg.breaker != nil {
			topts = append(topts, transport.WithCircuitBreaker(*cfg.breaker))
		}
		b.transport = transport.New(topts...)
		b.ownsTransport = true
	}

	b.logger.Debug("bot created", "username", username, "api_key", secret)
	return b, nil
}

// Username returns the username given to New.
func (b *Bot) Username() string {
	return b.username
}

// Close releases idle connections of a transport created by New.
// An injected transport is left to its owner.
func (b *Bot) Close() error {
	if !b.ownsTransport {
		return nil
	}
	if c, ok := b.transport.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// methodPath returns "/{apiKey}/{method}".
func (b *Bot) methodPath(method string) string {
	return "/" + b.apiKey.Value() + "/" + method
}

// post is the shared dispatch of all JSON-bodied methods. The response is
// returned as received; ok:false is not an error.
func (b *Bot) post(ctx context.Context, method string, payload any) (*tg.APIResponse, error) {
	resp, err := b.transport.Post(ctx, b.methodPath(method), payload)
	if err != nil {
		return nil, scrub.TokenFromError(err, b.apiKey)
	}
	return resp, nil
}

func (b *Bot) get(ctx context.Context, rawURL string) (*tg.APIResponse, error) {
	resp, err := b.transport.Get(ctx, rawURL)
	if err != nil {
		return nil, scrub.TokenFromError(err, b.apiKey)
	}
	return resp, nil
}
