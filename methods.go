package tgbot

import (
	"context"
	"net/url"

	"github.com/prilive-com/tgbot/tg"
)

// ================== Messages ==================

// SendMessage sends a text message. Without options the payload carries
// parse_mode "html", both disable flags false and a null reply_to_message_id.
func (b *Bot) SendMessage(ctx context.Context, chatID tg.ChatID, text string, opts ...MessageOption) (*tg.APIResponse, error) {
	return b.post(ctx, "sendMessage", newSendMessageRequest(chatID, text, nil, opts))
}

// SendButton sends a text message with a keyboard attached.
func (b *Bot) SendButton(ctx context.Context, chatID tg.ChatID, markup tg.ReplyMarkup, text string, opts ...MessageOption) (*tg.APIResponse, error) {
	return b.post(ctx, "sendMessage", newSendMessageRequest(chatID, text, markup, opts))
}

func newSendMessageRequest(chatID tg.ChatID, text string, markup tg.ReplyMarkup, opts []MessageOption) SendMessageRequest {
	o := buildMessageOptions(opts)
	return SendMessageRequest{
		ChatID:                chatID,
		Text:                  text,
		ParseMode:             o.ParseMode,
		DisableWebPagePreview: o.DisableWebPagePreview,
		DisableNotification:   o.DisableNotification,
		ReplyToMessageID:      o.ReplyToMessageID,
		ReplyMarkup:           markup,
	}
}

// EditMessage replaces the text of a sent message (editMessageText).
func (b *Bot) EditMessage(ctx context.Context, chatID tg.ChatID, messageID int, text string, opts ...EditOption) (*tg.APIResponse, error) {
	req := EditMessageTextRequest{
		ChatID:    chatID,
		MessageID: messageID,
		Text:      text,
		ParseMode: tg.ParseModeHTML,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return b.post(ctx, "editMessageText", req)
}

// DeleteMessage deletes a message.
func (b *Bot) DeleteMessage(ctx context.Context, chatID tg.ChatID, messageID int) (*tg.APIResponse, error) {
	return b.post(ctx, "deleteMessage", DeleteMessageRequest{
		ChatID:    chatID,
		MessageID: messageID,
	})
}

// ForwardMessage forwards a message. Only DisableNotification of opts is used.
func (b *Bot) ForwardMessage(ctx context.Context, chatID, fromChatID tg.ChatID, messageID int, opts ...MessageOption) (*tg.APIResponse, error) {
	o := buildMessageOptions(opts)
	return b.post(ctx, "forwardMessage", ForwardMessageRequest{
		ChatID:              chatID,
		FromChatID:          fromChatID,
		MessageID:           messageID,
		DisableNotification: o.DisableNotification,
	})
}

// ================== Media ==================

// SendPhoto sends a photo by file_id or URL. An empty caption is omitted.
func (b *Bot) SendPhoto(ctx context.Context, chatID tg.ChatID, photo, caption string) (*tg.APIResponse, error) {
	return b.post(ctx, "sendPhoto", SendPhotoRequest{
		ChatID:  chatID,
		Photo:   photo,
		Caption: caption,
	})
}

// SendVideo sends a video by file_id or URL. An empty caption is omitted.
func (b *Bot) SendVideo(ctx context.Context, chatID tg.ChatID, video, caption string) (*tg.APIResponse, error) {
	return b.post(ctx, "sendVideo", SendVideoRequest{
		ChatID:  chatID,
		Video:   video,
		Caption: caption,
	})
}

// SendAudio posts {chat_id, audio} to sendMessage, not sendAudio.
// Telegram answers with a "message text is empty" ok:false response.
// Kept for compatibility with existing callers; use a sendAudio-backed
// method once one is added.
func (b *Bot) SendAudio(ctx context.Context, chatID tg.ChatID, audio string) (*tg.APIResponse, error) {
	return b.post(ctx, "sendMessage", SendAudioRequest{
		ChatID: chatID,
		Audio:  audio,
	})
}

// SendDocument sends a document by file_id or URL.
func (b *Bot) SendDocument(ctx context.Context, chatID tg.ChatID, document string) (*tg.APIResponse, error) {
	return b.post(ctx, "sendDocument", SendDocumentRequest{
		ChatID:   chatID,
		Document: document,
	})
}

// SendMediaGroup sends photos as an album.
func (b *Bot) SendMediaGroup(ctx context.Context, chatID tg.ChatID, media []tg.InputMediaPhoto, opts ...MessageOption) (*tg.APIResponse, error) {
	o := buildMessageOptions(opts)
	if media == nil {
		media = []tg.InputMediaPhoto{}
	}
	return b.post(ctx, "sendMediaGroup", SendMediaGroupRequest{
		ChatID:                chatID,
		Media:                 media,
		ParseMode:             o.ParseMode,
		DisableWebPagePreview: o.DisableWebPagePreview,
	})
}

// SendChatAction broadcasts a status such as tg.ActionTyping.
func (b *Bot) SendChatAction(ctx context.Context, chatID tg.ChatID, action tg.ChatAction) (*tg.APIResponse, error) {
	return b.post(ctx, "sendChatAction", SendChatActionRequest{
		ChatID: chatID,
		Action: action,
	})
}

// ================== Chats ==================

// GetAdminList returns the chat administrators (getChatAdministrators).
func (b *Bot) GetAdminList(ctx context.Context, chatID tg.ChatID) (*tg.APIResponse, error) {
	return b.post(ctx, "getChatAdministrators", ChatRequest{ChatID: chatID})
}

// KickChatMember removes a user from a chat. Without WithUntilDate the
// ban is permanent.
func (b *Bot) KickChatMember(ctx context.Context, chatID tg.ChatID, userID int64, opts ...KickOption) (*tg.APIResponse, error) {
	req := KickChatMemberRequest{
		ChatID: chatID,
		UserID: userID,
	}
	for _, opt := range opts {
		opt(&req)
	}
	return b.post(ctx, "kickChatMember", req)
}

// UnbanChatMember lifts a ban.
func (b *Bot) UnbanChatMember(ctx context.Context, chatID tg.ChatID, userID int64) (*tg.APIResponse, error) {
	return b.post(ctx, "unbanChatMember", UnbanChatMemberRequest{
		ChatID: chatID,
		UserID: userID,
	})
}

// ================== Bot & Files ==================

// GetMe returns the bot's own user.
func (b *Bot) GetMe(ctx context.Context) (*tg.APIResponse, error) {
	return b.post(ctx, "getMe", struct{}{})
}

// GetFileMeta returns file metadata including file_path (getFile).
func (b *Bot) GetFileMeta(ctx context.Context, fileID string) (*tg.APIResponse, error) {
	return b.post(ctx, "getFile", GetFileRequest{FileID: fileID})
}

// GetFileURL returns the download URL of a file_path from GetFileMeta.
// No request is made.
func (b *Bot) GetFileURL(filePath string) string {
	return b.transport.BaseURL() + "/file/" + b.apiKey.Value() + "/" + filePath
}

// ================== Webhook ==================

// SetWebhook registers webhookURL with a GET request. webhookURL is
// query-escaped here, so pass it unescaped: an already escaped URL is
// escaped twice and Telegram registers the escaped form.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL string) (*tg.APIResponse, error) {
	return b.get(ctx, b.methodURL("setWebhook")+"?url="+url.QueryEscape(webhookURL))
}

// GetWebhookInfo returns the current webhook status with a GET request.
func (b *Bot) GetWebhookInfo(ctx context.Context) (*tg.APIResponse, error) {
	return b.get(ctx, b.methodURL("getWebhookInfo"))
}

func (b *Bot) methodURL(method string) string {
	return b.transport.BaseURL() + b.methodPath(method)
}
