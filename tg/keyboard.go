package tg

import "encoding/json"

// ReplyMarkup is a keyboard that can be attached to a message:
// InlineKeyboardMarkup or ReplyKeyboardMarkup.
type ReplyMarkup interface {
	replyMarkup()
}

func (InlineKeyboardMarkup) replyMarkup() {}
func (ReplyKeyboardMarkup) replyMarkup()  {}

// InlineKeyboardMarkup represents an inline keyboard attached to a message.
type InlineKeyboardMarkup struct {
	InlineKeyboard [][]InlineKeyboardButton `json:"inline_keyboard"`
}

// InlineKeyboardButton represents a button in an inline keyboard.
// A button without URL is a callback button and always carries
// callback_data, even when empty.
type InlineKeyboardButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data,omitempty"`
	URL          string `json:"url,omitempty"`
}

type callbackButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

// MarshalJSON implements json.Marshaler.
func (b InlineKeyboardButton) MarshalJSON() ([]byte, error) {
	if b.URL == "" {
		return json.Marshal(callbackButton{Text: b.Text, CallbackData: b.CallbackData})
	}
	type plain InlineKeyboardButton
	return json.Marshal(plain(b))
}

// ReplyKeyboardMarkup represents a custom keyboard shown instead of the
// user's regular keyboard.
type ReplyKeyboardMarkup struct {
	Keyboard        [][]KeyboardButton `json:"keyboard"`
	ResizeKeyboard  bool               `json:"resize_keyboard"`
	OneTimeKeyboard bool               `json:"one_time_keyboard"`
}

// KeyboardButton is a reply keyboard button. Pressing it sends Text as a
// regular message, so there is no payload.
type KeyboardButton struct {
	Text string `json:"text"`
}

// Button constructors

// Btn creates a callback button (most common type).
func Btn(text, callbackData string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, CallbackData: callbackData}
}

// BtnURL creates a URL button.
func BtnURL(text, url string) InlineKeyboardButton {
	return InlineKeyboardButton{Text: text, URL: url}
}

// Row creates a row of buttons (for use with InlineKeyboard).
func Row(buttons ...InlineKeyboardButton) []InlineKeyboardButton {
	return buttons
}

// InlineKeyboard creates a keyboard from rows of buttons.
func InlineKeyboard(rows ...[]InlineKeyboardButton) *InlineKeyboardMarkup {
	if rows == nil {
		rows = [][]InlineKeyboardButton{}
	}
	return &InlineKeyboardMarkup{InlineKeyboard: rows}
}

// InlineItem is one top-level entry of MakeInlineKeyboardMarkup:
// either a single ButtonSpec or a ButtonRow.
type InlineItem interface {
	inlineRow() []InlineKeyboardButton
}

// ButtonSpec describes a callback button. Payload becomes callback_data.
type ButtonSpec struct {
	Text    string `json:"text"`
	Payload string `json:"payload"`
}

func (b ButtonSpec) button() InlineKeyboardButton {
	return InlineKeyboardButton{Text: b.Text, CallbackData: b.Payload}
}

// A lone button occupies its own row.
func (b ButtonSpec) inlineRow() []InlineKeyboardButton {
	return []InlineKeyboardButton{b.button()}
}

// ButtonRow is an explicit row of buttons, kept left to right.
type ButtonRow []ButtonSpec

func (r ButtonRow) inlineRow() []InlineKeyboardButton {
	row := make([]InlineKeyboardButton, 0, len(r))
	for _, b := range r {
		row = append(row, b.button())
	}
	return row
}

// MakeInlineKeyboardMarkup converts button descriptions into an inline
// keyboard. Row order and order within a row follow the input exactly.
// A nil item is skipped.
func MakeInlineKeyboardMarkup(items ...InlineItem) InlineKeyboardMarkup {
	rows := make([][]InlineKeyboardButton, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		rows = append(rows, item.inlineRow())
	}
	return InlineKeyboardMarkup{InlineKeyboard: rows}
}

// ReplyKeyboardOption configures MakeReplyKeyboardMarkup.
type ReplyKeyboardOption func(*ReplyKeyboardMarkup)

// WithResizeKeyboard sets resize_keyboard. Default: true.
func WithResizeKeyboard(resize bool) ReplyKeyboardOption {
	return func(m *ReplyKeyboardMarkup) {
		m.ResizeKeyboard = resize
	}
}

// WithOneTimeKeyboard sets one_time_keyboard. Default: false.
func WithOneTimeKeyboard(oneTime bool) ReplyKeyboardOption {
	return func(m *ReplyKeyboardMarkup) {
		m.OneTimeKeyboard = oneTime
	}
}

// MakeReplyKeyboardMarkup builds a reply keyboard; each input row maps to
// one output row.
func MakeReplyKeyboardMarkup(rows [][]KeyboardButton, opts ...ReplyKeyboardOption) ReplyKeyboardMarkup {
	keyboard := make([][]KeyboardButton, 0, len(rows))
	for _, row := range rows {
		out := make([]KeyboardButton, len(row))
		copy(out, row)
		keyboard = append(keyboard, out)
	}

	m := ReplyKeyboardMarkup{
		Keyboard:       keyboard,
		ResizeKeyboard: true,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// TextButtons is shorthand for a reply keyboard row of plain text buttons.
func TextButtons(texts ...string) []KeyboardButton {
	row := make([]KeyboardButton, 0, len(texts))
	for _, t := range texts {
		row = append(row, KeyboardButton{Text: t})
	}
	return row
}
