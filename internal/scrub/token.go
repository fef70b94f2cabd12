// Package scrub removes the bot API key from error messages.
package scrub

import (
	"strings"

	"github.com/prilive-com/tgbot/tg"
)

// TokenFromError removes the API key from err's message.
// net/http errors carry the request URL, and the key is part of every URL.
// The error chain is kept for errors.Is/As via Unwrap().
func TokenFromError(err error, token tg.SecretToken) error {
	if err == nil {
		return nil
	}
	tokenVal := token.Value()
	if tokenVal == "" {
		return err
	}
	msg := err.Error()
	if !strings.Contains(msg, tokenVal) {
		return err
	}
	return &scrubbedError{
		msg: strings.ReplaceAll(msg, tokenVal, "[REDACTED]"),
		err: err,
	}
}

type scrubbedError struct {
	msg string
	err error
}

func (e *scrubbedError) Error() string { return e.msg }
func (e *scrubbedError) Unwrap() error { return e.err }
