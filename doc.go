// Package tgbot is a Telegram Bot API client.
//
// Each Bot method maps to one Bot API method, builds its JSON payload and
// performs exactly one HTTPS request over a shared keep-alive pool.
//
// # Quick Start
//
//	bot, err := tgbot.New("bot123456:ABC-DEF", "my_bot")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer bot.Close()
//
//	resp, err := bot.SendMessage(ctx, chatID, "<b>hello</b>")
//	if err != nil {
//	    // network or parse failure
//	}
//	if !resp.OK {
//	    // Telegram rejected the call; resp.Err() gives a typed *tg.APIError
//	}
//
// # Responses
//
// Methods return the raw *tg.APIResponse envelope. An ok:false response
// is not an error: callers check resp.OK, or use resp.Err and resp.Decode.
//
// # Keyboards
//
// Keyboard builders live in the tg subpackage:
//
//	kb := tg.MakeInlineKeyboardMarkup(
//	    tg.ButtonSpec{Text: "A", Payload: "pA"},
//	    tg.ButtonRow{{Text: "B", Payload: "pB"}, {Text: "C", Payload: "pC"}},
//	)
//	bot.SendButton(ctx, chatID, kb, "Pick one")
//
// # Features
//
//   - Keep-alive connection pool, created lazily or injected with WithPool
//   - Optional circuit breaker with sony/gobreaker
//   - Optional Prometheus metrics
//   - API key redaction in logs and errors
//   - Structured logging with slog
package tgbot
