package tg

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Sentinel errors, matched with errors.Is against APIResponse.Err.
var (
	// Any method, by HTTP status.
	ErrUnauthorized    = errors.New("tgbot: unauthorized (invalid api key)")
	ErrForbidden       = errors.New("tgbot: forbidden")
	ErrNotFound        = errors.New("tgbot: not found")
	ErrTooManyRequests = errors.New("tgbot: too many requests")

	// EditMessage and DeleteMessage.
	ErrMessageNotFound      = errors.New("tgbot: message not found")
	ErrMessageNotModified   = errors.New("tgbot: message not modified")
	ErrMessageCantBeEdited  = errors.New("tgbot: message can't be edited")
	ErrMessageCantBeDeleted = errors.New("tgbot: message can't be deleted")

	// Sending to a chat or user.
	ErrBotBlocked      = errors.New("tgbot: bot blocked by user")
	ErrBotKicked       = errors.New("tgbot: bot kicked from chat")
	ErrChatNotFound    = errors.New("tgbot: chat not found")
	ErrUserDeactivated = errors.New("tgbot: user deactivated")

	// KickChatMember, UnbanChatMember and GetAdminList.
	ErrUserNotFound = errors.New("tgbot: user not found")
	ErrNoRights     = errors.New("tgbot: not enough rights")

	// Produced by the client, not by Telegram.
	ErrCircuitOpen      = errors.New("tgbot: circuit breaker open")
	ErrResponseTooLarge = errors.New("tgbot: response too large")
	ErrInvalidConfig    = errors.New("tgbot: invalid configuration")
)

// ResponseParameters contains information about why a request was unsuccessful.
type ResponseParameters struct {
	MigrateToChatID int64 `json:"migrate_to_chat_id,omitempty"`
	RetryAfter      int   `json:"retry_after,omitempty"`
}

// APIError represents an ok:false response from Telegram API.
// It is only produced on request via APIResponse.Err; the client itself
// returns such responses as regular values.
// Use errors.As() to extract details, errors.Is() to match sentinels.
type APIError struct {
	Code        int
	Description string
	RetryAfter  time.Duration
	Method      string              // API method that failed
	Parameters  *ResponseParameters // Additional response parameters
	cause       error               // Underlying sentinel for errors.Is()
}

func (e *APIError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("tgbot: %s failed: %s (code=%d, retry_after=%s)",
			e.Method, e.Description, e.Code, e.RetryAfter)
	}
	return fmt.Sprintf("tgbot: %s failed: %s (code=%d)", e.Method, e.Description, e.Code)
}

// Unwrap returns the underlying sentinel error for errors.Is() support.
func (e *APIError) Unwrap() error { return e.cause }

// NewAPIError creates an APIError with automatic sentinel detection.
func NewAPIError(method string, code int, description string) *APIError {
	return &APIError{
		Code:        code,
		Description: description,
		Method:      method,
		cause:       DetectSentinel(code, description),
	}
}

// descriptionSentinels is checked in order; the first matching fragment wins.
var descriptionSentinels = []struct {
	fragment string
	err      error
}{
	{"message is not modified", ErrMessageNotModified},
	{"message to edit not found", ErrMessageNotFound},
	{"message to delete not found", ErrMessageNotFound},
	{"message not found", ErrMessageNotFound},
	{"message can't be edited", ErrMessageCantBeEdited},
	{"message can't be deleted", ErrMessageCantBeDeleted},
	{"bot was blocked", ErrBotBlocked},
	{"bot was kicked", ErrBotKicked},
	{"chat not found", ErrChatNotFound},
	{"user not found", ErrUserNotFound},
	{"user is deactivated", ErrUserDeactivated},
	{"not enough rights", ErrNoRights},
}

var codeSentinels = map[int]error{
	401: ErrUnauthorized,
	403: ErrForbidden,
	404: ErrNotFound,
	429: ErrTooManyRequests,
}

// DetectSentinel maps an error_code and description to a sentinel error,
// or nil. The description is more specific and wins over the code.
func DetectSentinel(code int, desc string) error {
	desc = strings.ToLower(desc)
	for _, s := range descriptionSentinels {
		if strings.Contains(desc, s.fragment) {
			return s.err
		}
	}
	return codeSentinels[code]
}

// ConfigError represents a configuration error, such as a missing API key.
// It matches ErrInvalidConfig with errors.Is().
type ConfigError struct {
	Key     string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("tgbot: config: %s - %s", e.Key, e.Message)
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// NewConfigError creates a new ConfigError.
func NewConfigError(key, message string) *ConfigError {
	return &ConfigError{Key: key, Message: message}
}
