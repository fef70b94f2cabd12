package transport

import (
	"errors"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/prilive-com/tgbot/tg"
)

// BreakerSettings configures the optional circuit breaker.
type BreakerSettings struct {
	// MaxRequests is the maximum number of requests allowed in half-open state.
	MaxRequests uint32

	// Interval is the cyclic period of the closed state.
	// If 0, internal counts never reset in closed state.
	Interval time.Duration

	// Timeout is the duration of the open state before transitioning to half-open.
	Timeout time.Duration

	// ReadyToTrip determines if breaker should trip based on failure counts.
	// If nil, uses default (50% failure rate after 3 requests).
	ReadyToTrip func(counts gobreaker.Counts) bool
}

// DefaultBreakerSettings returns production-ready defaults.
func DefaultBreakerSettings() BreakerSettings {
	return BreakerSettings{
		MaxRequests: 5,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: defaultReadyToTrip,
	}
}

func defaultReadyToTrip(counts gobreaker.Counts) bool {
	if counts.Requests < 3 {
		return false
	}
	ratio := float64(counts.TotalFailures) / float64(counts.Requests)
	return ratio >= 0.5
}

func (c *Client) newBreaker(s BreakerSettings) *gobreaker.CircuitBreaker[*tg.APIResponse] {
	if s.ReadyToTrip == nil {
		s.ReadyToTrip = defaultReadyToTrip
	}
	return gobreaker.NewCircuitBreaker[*tg.APIResponse](gobreaker.Settings{
		Name:         "tgbot-transport",
		MaxRequests:  s.MaxRequests,
		Interval:     s.Interval,
		Timeout:      s.Timeout,
		ReadyToTrip:  s.ReadyToTrip,
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.logger.Info("circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
}

// callerAbort marks a failure caused by the caller's own context being
// canceled or expiring. The pool's RequestTimeout is not a caller abort.
type callerAbort struct{ err error }

func (e *callerAbort) Error() string { return e.err.Error() }
func (e *callerAbort) Unwrap() error { return e.err }

// isBreakerSuccess decides what counts as a breaker failure.
// Network and parse errors count unless the caller aborted. ok:false
// responses are returned without error and never reach here as failures.
func isBreakerSuccess(err error) bool {
	if err == nil {
		return true
	}
	var abort *callerAbort
	if errors.As(err, &abort) {
		return true
	}
	var netErr *NetworkError
	var parseErr *ParseError
	return !errors.As(err, &netErr) && !errors.As(err, &parseErr)
}
