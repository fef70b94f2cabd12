package tgbot

import "github.com/prilive-com/tgbot/tg"

// SendMessageRequest is the payload of sendMessage. SendButton fills ReplyMarkup.
type SendMessageRequest struct {
	ChatID                tg.ChatID      `json:"chat_id"`
	Text                  string         `json:"text"`
	ParseMode             tg.ParseMode   `json:"parse_mode"`
	DisableWebPagePreview bool           `json:"disable_web_page_preview"`
	DisableNotification   bool           `json:"disable_notification"`
	ReplyToMessageID      *int           `json:"reply_to_message_id"`
	ReplyMarkup           tg.ReplyMarkup `json:"reply_markup,omitempty"`
}

// SendPhotoRequest is the payload of sendPhoto.
type SendPhotoRequest struct {
	ChatID  tg.ChatID `json:"chat_id"`
	Photo   string    `json:"photo"` // file_id or URL
	Caption string    `json:"caption,omitempty"`
}

// SendVideoRequest is the payload of sendVideo.
type SendVideoRequest struct {
	ChatID  tg.ChatID `json:"chat_id"`
	Video   string    `json:"video"` // file_id or URL
	Caption string    `json:"caption,omitempty"`
}

// SendAudioRequest is the payload built by SendAudio.
type SendAudioRequest struct {
	ChatID tg.ChatID `json:"chat_id"`
	Audio  string    `json:"audio"`
}

// SendDocumentRequest is the payload of sendDocument.
type SendDocumentRequest struct {
	ChatID   tg.ChatID `json:"chat_id"`
	Document string    `json:"document"`
}

// SendMediaGroupRequest is the payload of sendMediaGroup.
type SendMediaGroupRequest struct {
	ChatID                tg.ChatID            `json:"chat_id"`
	Media                 []tg.InputMediaPhoto `json:"media"`
	ParseMode             tg.ParseMode         `json:"parse_mode"`
	DisableWebPagePreview bool                 `json:"disable_web_page_preview"`
}

// DeleteMessageRequest is the payload of deleteMessage.
type DeleteMessageRequest struct {
	ChatID    tg.ChatID `json:"chat_id"`
	MessageID int       `json:"message_id"`
}

// EditMessageTextRequest is the payload of editMessageText.
type EditMessageTextRequest struct {
	ChatID      tg.ChatID                `json:"chat_id"`
	MessageID   int                      `json:"message_id"`
	Text        string                   `json:"text"`
	ParseMode   tg.ParseMode             `json:"parse_mode"`
	ReplyMarkup *tg.InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

// ForwardMessageRequest is the payload of forwardMessage.
type ForwardMessageRequest struct {
	ChatID              tg.ChatID `json:"chat_id"`
	FromChatID          tg.ChatID `json:"from_chat_id"`
	MessageID           int       `json:"message_id"`
	DisableNotification bool      `json:"disable_notification"`
}

// ChatRequest is the payload of methods taking only chat_id.
type ChatRequest struct {
	ChatID tg.ChatID `json:"chat_id"`
}

// GetFileRequest is the payload of getFile.
type GetFileRequest struct {
	FileID string `json:"file_id"`
}

// SendChatActionRequest is the payload of sendChatAction.
type SendChatActionRequest struct {
	ChatID tg.ChatID     `json:"chat_id"`
	Action tg.ChatAction `json:"action"`
}

// KickChatMemberRequest is the payload of kickChatMember.
type KickChatMemberRequest struct {
	ChatID    tg.ChatID `json:"chat_id"`
	UserID    int64     `json:"user_id"`
	UntilDate int64     `json:"until_date,omitempty"`
}

// UnbanChatMemberRequest is the payload of unbanChatMember.
type UnbanChatMemberRequest struct {
	ChatID tg.ChatID `json:"chat_id"`
	UserID int64     `json:"user_id"`
}
