package tgbot

import (
	"time"

	"github.com/prilive-com/tgbot/tg"
)

// MessageOptions holds the optional fields shared by message-sending methods.
type MessageOptions struct {
	ParseMode             tg.ParseMode // default "html"
	DisableWebPagePreview bool         // default false
	DisableNotification   bool         // default false
	ReplyToMessageID      *int         // default nil, sent as null
}

// DefaultMessageOptions returns the options applied when none are given.
func DefaultMessageOptions() MessageOptions {
	return MessageOptions{ParseMode: tg.ParseModeHTML}
}

// MessageOption configures MessageOptions.
type MessageOption func(*MessageOptions)

// WithParseMode sets the parse mode.
func WithParseMode(mode tg.ParseMode) MessageOption {
	return func(o *MessageOptions) {
		o.ParseMode = mode
	}
}

// WithDisableWebPagePreview disables link previews.
func WithDisableWebPagePreview(disable bool) MessageOption {
	return func(o *MessageOptions) {
		o.DisableWebPagePreview = disable
	}
}

// WithDisableNotification sends the message without sound.
func WithDisableNotification(disable bool) MessageOption {
	return func(o *MessageOptions) {
		o.DisableNotification = disable
	}
}

// Silent is shorthand for WithDisableNotification(true).
func Silent() MessageOption {
	return WithDisableNotification(true)
}

// WithReplyTo makes the message a reply to messageID.
func WithReplyTo(messageID int) MessageOption {
	return func(o *MessageOptions) {
		o.ReplyToMessageID = &messageID
	}
}

func buildMessageOptions(opts []MessageOption) MessageOptions {
	o := DefaultMessageOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// EditOption configures EditMessage.
type EditOption func(*EditMessageTextRequest)

// WithEditParseMode sets the parse mode for editing. Default "html".
func WithEditParseMode(mode tg.ParseMode) EditOption {
	return func(r *EditMessageTextRequest) {
		r.ParseMode = mode
	}
}

// WithEditKeyboard replaces the inline keyboard of the edited message.
func WithEditKeyboard(kb tg.InlineKeyboardMarkup) EditOption {
	return func(r *EditMessageTextRequest) {
		r.ReplyMarkup = &kb
	}
}

// KickOption configures KickChatMember.
type KickOption func(*KickChatMemberRequest)

// WithUntilDate bans the user until t. Zero time or a ban of more than
// 366 days or less than 30 seconds is treated by Telegram as forever.
func WithUntilDate(t time.Time) KickOption {
	return func(r *KickChatMemberRequest) {
		if t.IsZero() {
			r.UntilDate = 0
			return
		}
		r.UntilDate = t.Unix()
	}
}
