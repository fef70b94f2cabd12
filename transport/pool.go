package transport

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"
)

// Pool sends HTTP requests over reusable connections.
// *http.Client satisfies it.
type Pool interface {
	Do(req *http.Request) (*http.Response, error)
}

// idleCloser is implemented by pools that hold idle keep-alive connections.
type idleCloser interface {
	CloseIdleConnections()
}

var _ Pool = (*http.Client)(nil)

// PoolConfig holds connection pool configuration.
type PoolConfig struct {
	// Timeouts. RequestTimeout 0 means no overall limit; the caller's
	// context is then the only bound on a hung request.
	RequestTimeout time.Duration
	ConnectTimeout time.Duration
	TLSTimeout     time.Duration
	IdleTimeout    time.Duration
	KeepAlive      time.Duration

	// Connection pool
	MaxIdleConns        int
	MaxIdleConnsPerHost int
	MaxConnsPerHost     int
}

// DefaultPoolConfig returns sensible defaults for Telegram API.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		RequestTimeout:      30 * time.Second,
		ConnectTimeout:      10 * time.Second,
		TLSTimeout:          10 * time.Second,
		IdleTimeout:         90 * time.Second,
		KeepAlive:           30 * time.Second,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     20,
	}
}

// NewPool creates a keep-alive HTTP client with the given configuration.
func NewPool(cfg PoolConfig) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   cfg.ConnectTimeout,
			KeepAlive: cfg.KeepAlive,
		}).DialContext,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		TLSHandshakeTimeout:   cfg.TLSTimeout,
		MaxIdleConns:          cfg.MaxIdleConns,
		MaxIdleConnsPerHost:   cfg.MaxIdleConnsPerHost,
		MaxConnsPerHost:       cfg.MaxConnsPerHost,
		IdleConnTimeout:       cfg.IdleTimeout,
		ExpectContinueTimeout: 1 * time.Second,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.RequestTimeout,
	}
}
