package tg

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ChatID represents a Telegram chat identifier.
// Valid types: int64 (numeric ID) or string (channel username like "@channelusername")
type ChatID = any

// APIResponse is the Telegram response envelope: {ok, result} on success,
// {ok: false, description, error_code} on failure. The client returns it as
// received; callers check OK themselves.
type APIResponse struct {
	OK          bool                `json:"ok"`
	Result      json.RawMessage     `json:"result,omitempty"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Description string              `json:"description,omitempty"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`

	// Method is the API method that produced the response. Not part of the wire format.
	Method string `json:"-"`
}

// Err returns nil for ok responses and an *APIError otherwise.
func (r *APIResponse) Err() error {
	if r == nil {
		return errors.New("tgbot: nil response")
	}
	if r.OK {
		return nil
	}
	apiErr := NewAPIError(r.Method, r.ErrorCode, r.Description)
	if r.Parameters != nil {
		apiErr.Parameters = r.Parameters
		if r.Parameters.RetryAfter > 0 {
			apiErr.RetryAfter = time.Duration(r.Parameters.RetryAfter) * time.Second
		}
	}
	return apiErr
}

// Decode unmarshals the result into v. It returns the API error for ok:false responses.
func (r *APIResponse) Decode(v any) error {
	if err := r.Err(); err != nil {
		return err
	}
	if len(r.Result) == 0 {
		return fmt.Errorf("tgbot: %s: empty result", r.Method)
	}
	if err := json.Unmarshal(r.Result, v); err != nil {
		return fmt.Errorf("tgbot: %s: failed to parse result: %w", r.Method, err)
	}
	return nil
}

// User represents a Telegram user or bot.
type User struct {
	ID                      int64  `json:"id"`
	IsBot                   bool   `json:"is_bot"`
	FirstName               string `json:"first_name"`
	LastName                string `json:"last_name,omitempty"`
	Username                string `json:"username,omitempty"`
	LanguageCode            string `json:"language_code,omitempty"`
	CanJoinGroups           bool   `json:"can_join_groups,omitempty"`
	CanReadAllGroupMessages bool   `json:"can_read_all_group_messages,omitempty"`
	SupportsInlineQueries   bool   `json:"supports_inline_queries,omitempty"`
}

// Chat represents a Telegram chat.
type Chat struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title,omitempty"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Message represents a Telegram message. Only the fields commonly read
// back from send results are mapped.
type Message struct {
	MessageID int         `json:"message_id"`
	From      *User       `json:"from,omitempty"`
	Date      int64       `json:"date"`
	Chat      *Chat       `json:"chat"`
	Text      string      `json:"text,omitempty"`
	Caption   string      `json:"caption,omitempty"`
	Photo     []PhotoSize `json:"photo,omitempty"`
}

// PhotoSize represents one size of a photo or thumbnail.
type PhotoSize struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	FileSize     int64  `json:"file_size,omitempty"`
}

// File represents a file ready to be downloaded (result of getFile).
// Use Bot.GetFileURL with FilePath to build the download link.
type File struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	FileSize     int64  `json:"file_size,omitempty"`
	FilePath     string `json:"file_path,omitempty"`
}

// ChatMember is one entry of getChatAdministrators.
type ChatMember struct {
	Status      string `json:"status"`
	User        *User  `json:"user"`
	IsAnonymous bool   `json:"is_anonymous,omitempty"`
	CustomTitle string `json:"custom_title,omitempty"`
}

// WebhookInfo contains information about the current webhook.
type WebhookInfo struct {
	URL                  string   `json:"url"`
	HasCustomCertificate bool     `json:"has_custom_certificate"`
	PendingUpdateCount   int      `json:"pending_update_count"`
	IPAddress            string   `json:"ip_address,omitempty"`
	LastErrorDate        int64    `json:"last_error_date,omitempty"`
	LastErrorMessage     string   `json:"last_error_message,omitempty"`
	MaxConnections       int      `json:"max_connections,omitempty"`
	AllowedUpdates       []string `json:"allowed_updates,omitempty"`
}

// InputMediaPhoto is a photo entry of a media group.
type InputMediaPhoto struct {
	Type      string    `json:"type"`
	Media     string    `json:"media"` // file_id or URL
	Caption   string    `json:"caption,omitempty"`
	ParseMode ParseMode `json:"parse_mode,omitempty"`
}

// NewInputMediaPhoto returns a photo media entry with Type set.
func NewInputMediaPhoto(media, caption string) InputMediaPhoto {
	return InputMediaPhoto{Type: "photo", Media: media, Caption: caption}
}
