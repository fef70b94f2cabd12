package tg

import "strings"

// ParseMode defines the text formatting mode for messages.
type ParseMode string

// Supported parse modes. Telegram matches them case-insensitively.
const (
	ParseModeHTML       ParseMode = "html"
	ParseModeMarkdown   ParseMode = "Markdown"
	ParseModeMarkdownV2 ParseMode = "MarkdownV2"
)

// String returns the parse mode string value.
func (p ParseMode) String() string {
	return string(p)
}

// IsValid returns true if the parse mode is supported by Telegram.
func (p ParseMode) IsValid() bool {
	for _, m := range []ParseMode{ParseModeHTML, ParseModeMarkdown, ParseModeMarkdownV2} {
		if strings.EqualFold(string(p), string(m)) {
			return true
		}
	}
	return p == ""
}

// ChatAction is the status broadcast by sendChatAction.
type ChatAction string

// Chat actions accepted by sendChatAction.
const (
	ActionTyping          ChatAction = "typing"
	ActionUploadPhoto     ChatAction = "upload_photo"
	ActionRecordVideo     ChatAction = "record_video"
	ActionUploadVideo     ChatAction = "upload_video"
	ActionRecordVoice     ChatAction = "record_voice"
	ActionUploadVoice     ChatAction = "upload_voice"
	ActionUploadDocument  ChatAction = "upload_document"
	ActionChooseSticker   ChatAction = "choose_sticker"
	ActionFindLocation    ChatAction = "find_location"
	ActionRecordVideoNote ChatAction = "record_video_note"
	ActionUploadVideoNote ChatAction = "upload_video_note"
)

// String returns the action string value.
func (a ChatAction) String() string {
	return string(a)
}
