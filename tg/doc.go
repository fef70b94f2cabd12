// Package tg provides the Telegram wire types shared by the bot client and
// the transport.
//
// This package contains:
//   - The response envelope (APIResponse) and a handful of result types
//   - Error types and sentinel errors
//   - SecretToken for safe API key handling
//   - Parse modes, chat actions and input media
//   - Inline and reply keyboard builders
//
// # Usage
//
//	import "github.com/prilive-com/tgbot/tg"
//
//	markup := tg.MakeInlineKeyboardMarkup(
//	    tg.ButtonSpec{Text: "Yes", Payload: "vote:yes"},
//	    tg.ButtonRow{{Text: "Maybe", Payload: "vote:maybe"}, {Text: "No", Payload: "vote:no"}},
//	)
package tg
