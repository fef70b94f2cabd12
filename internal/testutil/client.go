package testutil

import (
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/require"

	"github.com/prilive-com/tgbot"
	"github.com/prilive-com/tgbot/transport"
)

// BreakerNeverTrip returns settings where the breaker never opens.
func BreakerNeverTrip() transport.BreakerSettings {
	return transport.BreakerSettings{
		MaxRequests: 100,
		Interval:    0,
		Timeout:     time.Hour,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return false
		},
	}
}

// BreakerAggressiveTrip returns settings for testing breaker behavior.
// Trips after just 2 consecutive failures.
func BreakerAggressiveTrip() transport.BreakerSettings {
	return transport.BreakerSettings{
		MaxRequests: 1,
		Interval:    0,
		Timeout:     2 * time.Second, // Long enough to stay open during test assertions
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
	}
}

// NewTestTransport creates a transport pointed at baseURL.
func NewTestTransport(t *testing.T, baseURL string, opts ...transport.Option) *transport.Client {
	t.Helper()

	defaultOpts := []transport.Option{
		transport.WithBaseURL(baseURL),
	}

	c := transport.New(append(defaultOpts, opts...)...)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// NewTestBot creates a bot for TestAPIKey pointed at baseURL.
func NewTestBot(t *testing.T, baseURL string, opts ...tgbot.Option) *tgbot.Bot {
	t.Helper()

	defaultOpts := []tgbot.Option{
		tgbot.WithBaseURL(baseURL),
	}

	bot, err := tgbot.New(TestAPIKey, TestBotUsername, append(defaultOpts, opts...)...)
	require.NoError(t, err)

	t.Cleanup(func() { _ = bot.Close() })
	return bot
}
