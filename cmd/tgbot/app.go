package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/prilive-com/tgbot"
	"github.com/prilive-com/tgbot/cmd/tgbot/config"
	"github.com/prilive-com/tgbot/tg"
)

// app carries what commands share: output streams, the config path and
// a lazily created bot.
type app struct {
	out     io.Writer
	errOut  io.Writer
	cfgPath string
}

func newApp(out, errOut io.Writer) *app {
	return &app{out: out, errOut: errOut}
}

// bot loads the configuration and creates a client for one command.
func (a *app) bot() (*tgbot.Bot, error) {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return nil, err
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	opts := []tgbot.Option{
		tgbot.WithBaseURL(cfg.BaseURL),
		tgbot.WithTimeout(cfg.RequestTimeout),
		tgbot.WithLogger(logger),
	}
	return tgbot.New(cfg.APIKey, cfg.BotUsername, opts...)
}

// call runs fn with a fresh bot and prints the response envelope.
func (a *app) call(ctx context.Context, fn func(context.Context, *tgbot.Bot) (*tg.APIResponse, error)) error {
	bot, err := a.bot()
	if err != nil {
		return err
	}
	defer bot.Close()

	resp, err := fn(ctx, bot)
	if err != nil {
		return err
	}
	if err := a.print(resp); err != nil {
		return err
	}
	// A rejected call is a failed command, even though the library
	// returns it without error.
	return resp.Err()
}

func (a *app) print(resp *tg.APIResponse) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

// parseChatID accepts a numeric chat ID or a channel username such as "@news".
func parseChatID(s string) tg.ChatID {
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id
	}
	return s
}
