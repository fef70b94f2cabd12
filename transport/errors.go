package transport

import "fmt"

// NetworkError reports a connection-level failure: refused connection,
// DNS or TLS failure, socket error, or a body that could not be read.
type NetworkError struct {
	Method string
	Err    error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("tgbot: %s: network error: %v", e.Method, e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not a valid JSON envelope.
// The raw body is not kept.
type ParseError struct {
	Method     string
	StatusCode int
	Err        error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("tgbot: %s: failed to parse response (status=%d): %v", e.Method, e.StatusCode, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error { return e.Err }
